package media

import (
	"cmp"
	"fmt"
)

// Record is a single downloadable video file.
type Record struct {
	Season  int
	Episode int
	Title   string
	URL     string
	// Extension is the container reported by the server, without the dot.
	Extension string
	// OriginalFilename is the basename of the file on the server, possibly empty.
	OriginalFilename string
	// Size is the part size reported in the metadata, 0 when unknown.
	Size int64
}

// Indicator formats a season and episode as SxxEyy. Numbers wider than two
// digits are kept whole.
func Indicator(season, episode int) string {
	return fmt.Sprintf("S%02dE%02d", season, episode)
}

// Indicator returns the record's SxxEyy indicator.
func (r Record) Indicator() string {
	return Indicator(r.Season, r.Episode)
}

// Filename is the name the record is written under. With original set, the
// server-side filename is used when the server reported one.
func (r Record) Filename(original bool) string {
	if original && r.OriginalFilename != "" {
		return r.OriginalFilename
	}
	return r.Indicator() + "." + r.Extension
}

// Compare orders records by season, then episode. Records with the same
// season and episode compare equal.
func Compare(a, b Record) int {
	if c := cmp.Compare(a.Season, b.Season); c != 0 {
		return c
	}
	return cmp.Compare(a.Episode, b.Episode)
}

// Less reports whether a sorts strictly before b.
func Less(a, b Record) bool {
	return Compare(a, b) < 0
}
