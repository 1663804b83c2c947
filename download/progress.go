package download

import (
	"fmt"
	"io"
	"time"

	"github.com/NathanPERIER/plexmedia-downloader/util"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/truncate"
)

// ProgressReporter tracks the transfer of one file at a time.
type ProgressReporter interface {
	Start(name string, total int64) Tracker
}

// Tracker receives the size of every chunk written. Total 0 means unknown.
type Tracker interface {
	Add(n int)
	Finish()
}

// NopProgress discards progress.
type NopProgress struct{}

func (NopProgress) Start(string, int64) Tracker { return nopTracker{} }

type nopTracker struct{}

func (nopTracker) Add(int) {}
func (nopTracker) Finish() {}

const redrawEvery = 100 * time.Millisecond

// BarReporter draws a single-line progress bar, redrawn in place.
type BarReporter struct {
	out   io.Writer
	width int
}

// NewBarReporter draws on out, fitting the line in width columns.
func NewBarReporter(out io.Writer, width int) *BarReporter {
	return &BarReporter{out: out, width: util.Max(width, 40)}
}

func (r *BarReporter) Start(name string, total int64) Tracker {
	nameWidth := r.width / 3
	barWidth := r.width - nameWidth - 26

	return &barTracker{
		out:   r.out,
		name:  truncate.StringWithTail(name, uint(nameWidth), "…"),
		total: total,
		bar:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(util.Max(barWidth, 10))),
	}
}

type barTracker struct {
	out     io.Writer
	name    string
	total   int64
	current int64
	drawn   time.Time
	bar     progress.Model
}

func (t *barTracker) Add(n int) {
	t.current += int64(n)
	if time.Since(t.drawn) >= redrawEvery {
		t.draw()
	}
}

func (t *barTracker) Finish() {
	t.draw()
	_, _ = fmt.Fprintln(t.out)
}

func (t *barTracker) draw() {
	t.drawn = time.Now()

	if t.total <= 0 {
		_, _ = fmt.Fprintf(t.out, "\r%s %s", t.name, humanize.IBytes(uint64(t.current)))
		return
	}

	percent := float64(t.current) / float64(t.total)
	_, _ = fmt.Fprintf(
		t.out,
		"\r%s %s %s/%s",
		t.name,
		t.bar.ViewAs(percent),
		humanize.IBytes(uint64(t.current)),
		humanize.IBytes(uint64(t.total)),
	)
}
