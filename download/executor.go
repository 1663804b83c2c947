package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/NathanPERIER/plexmedia-downloader/filesystem"
	"github.com/NathanPERIER/plexmedia-downloader/log"
	"github.com/NathanPERIER/plexmedia-downloader/media"
	"github.com/NathanPERIER/plexmedia-downloader/plex"
)

// Error is a media file the server refused to stream. It does not stop the batch.
type Error struct {
	Filename   string
	Title      string
	StatusCode int
	Reason     string
}

func (e *Error) Error() string {
	return fmt.Sprintf("Got HTTP %d error while downloading %s", e.StatusCode, e.Title)
}

// Opener starts streaming a media part.
type Opener interface {
	Open(ctx context.Context, server *plex.Server, url string) (*http.Response, error)
}

// Reporter is told what happens to every record.
type Reporter interface {
	Found(name string)
	DryRun(path string)
	Saved(path string, size int64)
	Failed(err *Error)
}

// Result counts what a run did.
type Result struct {
	Downloaded int
	Failed     int
	Skipped    int
	Bytes      int64
}

func (r *Result) add(other Result) {
	r.Downloaded += other.Downloaded
	r.Failed += other.Failed
	r.Skipped += other.Skipped
	r.Bytes += other.Bytes
}

// Executor downloads the fetch set of a plan, one file after the other.
type Executor struct {
	opener   Opener
	server   *plex.Server
	options  Options
	progress ProgressReporter
	reporter Reporter
}

func NewExecutor(opener Opener, server *plex.Server, options Options, progress ProgressReporter, reporter Reporter) *Executor {
	if progress == nil {
		progress = NopProgress{}
	}
	return &Executor{
		opener:   opener,
		server:   server,
		options:  options,
		progress: progress,
		reporter: reporter,
	}
}

// Execute processes plan.Fetch in order. In dry-run mode target paths are
// only reported. Transport and filesystem errors abort and are returned
// along with what was done so far.
func (e *Executor) Execute(ctx context.Context, plan *Plan) (Result, error) {
	result := Result{Skipped: len(plan.Skip)}
	folderReady := false

	for _, record := range plan.Fetch {
		path := plan.Path(record)

		if e.options.DryRun {
			e.reporter.DryRun(path)
			continue
		}

		if !folderReady {
			if err := filesystem.API().MkdirAll(plan.Folder, 0o755); err != nil {
				return result, fmt.Errorf("create folder %s: %w", plan.Folder, err)
			}
			folderReady = true
		}

		size, err := e.fetch(ctx, record, path)

		var dlErr *Error
		if errors.As(err, &dlErr) {
			log.WithFields(log.Fields{
				"file":   dlErr.Filename,
				"status": dlErr.StatusCode,
				"reason": dlErr.Reason,
			}).Error(dlErr)
			e.reporter.Failed(dlErr)
			result.Failed++
			continue
		}
		if err != nil {
			return result, err
		}

		log.WithFields(log.Fields{"file": path, "bytes": size}).Info("downloaded")
		e.reporter.Saved(path, size)
		result.Downloaded++
		result.Bytes += size
	}

	return result, nil
}

func (e *Executor) fetch(ctx context.Context, record media.Record, path string) (int64, error) {
	resp, err := e.opener.Open(ctx, e.server, record.URL)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if !plex.OK(resp) {
		return 0, &Error{
			Filename:   record.Filename(e.options.OriginalFilename),
			Title:      record.Title,
			StatusCode: resp.StatusCode,
			Reason:     plex.Reason(resp),
		}
	}

	file, err := filesystem.API().Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	total := resp.ContentLength
	if total <= 0 {
		total = record.Size
	}
	if total < 0 {
		total = 0
	}

	tracker := e.progress.Start(path, total)
	defer tracker.Finish()

	return copyChunks(file, resp.Body, e.options.chunkSize(), tracker)
}

func copyChunks(dst io.Writer, src io.Reader, chunkSize int, tracker Tracker) (int64, error) {
	var written int64
	buf := make([]byte, chunkSize)

	for {
		n, readErr := src.Read(buf)
		if n > 0 {
			if _, err := dst.Write(buf[:n]); err != nil {
				return written, fmt.Errorf("write: %w", err)
			}
			written += int64(n)
			tracker.Add(n)
		}

		if errors.Is(readErr, io.EOF) {
			return written, nil
		}
		if readErr != nil {
			return written, fmt.Errorf("read: %w", readErr)
		}
	}
}
