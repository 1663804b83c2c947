package download

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/NathanPERIER/plexmedia-downloader/color"
	"github.com/NathanPERIER/plexmedia-downloader/style"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/muesli/reflow/truncate"
)

// ManifestPrinter shows a plan before it is executed.
type ManifestPrinter interface {
	Print(plan *Plan) error
}

// TablePrinter renders an Episode / Title / Download table per plan.
type TablePrinter struct {
	out io.Writer
	// titleWidth truncates long episode titles, 0 keeps them whole.
	titleWidth int
}

func NewTablePrinter(out io.Writer, titleWidth int) *TablePrinter {
	return &TablePrinter{out: out, titleWidth: titleWidth}
}

func (p *TablePrinter) Print(plan *Plan) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Episode", "Title", "Download"})

	for _, row := range plan.Rows {
		title := row.Title
		if p.titleWidth > 0 {
			title = truncate.StringWithTail(title, uint(p.titleWidth), "…")
		}

		download := style.Fg(color.Failure)("no")
		if row.Download {
			download = style.Fg(color.Success)("yes")
		}
		tw.AppendRow(table.Row{row.Episode, title, download})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignCenter, AlignHeader: text.AlignCenter},
	})

	title := plan.Name
	if plan.Year > 0 {
		title = fmt.Sprintf("%s (%d)", title, plan.Year)
	}

	_, err := fmt.Fprintf(p.out, "%s\n%s\n", style.Title(title), tw.Render())
	return err
}

// JSONPrinter writes one manifest object per line.
type JSONPrinter struct {
	enc *json.Encoder
}

func NewJSONPrinter(out io.Writer) *JSONPrinter {
	return &JSONPrinter{enc: json.NewEncoder(out)}
}

func (p *JSONPrinter) Print(plan *Plan) error {
	return p.enc.Encode(plan.Manifest())
}
