// Package link extracts the server and resource addressed by a Plex web deep link.
//
// A deep link looks like
//
//	https://app.plex.tv/desktop/#!/server/<server_hash>/details?key=%2Flibrary%2Fmetadata%2F1234
//
// The fragment, once its leading '!' is removed, is itself a URL.
package link

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	ErrMissingServer = errors.New("missing server segment")
	ErrMissingKey    = errors.New("missing key parameter")
)

// ParseError reports a deep link that does not address a resource.
type ParseError struct {
	Link string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid deep link %q: %v", e.Link, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Target is what a deep link points at.
type Target struct {
	// ServerHash is the client identifier of the media server.
	ServerHash string
	// ResourceKey is the metadata path, e.g. /library/metadata/1234.
	ResourceKey string
}

// Parse returns the server hash and resource key embedded in link.
func Parse(link string) (Target, error) {
	fail := func(err error) (Target, error) {
		return Target{}, &ParseError{Link: link, Err: err}
	}

	outer, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return fail(err)
	}

	fragment, err := url.Parse(strings.TrimPrefix(outer.EscapedFragment(), "!"))
	if err != nil {
		return fail(err)
	}

	segments := strings.Split(fragment.Path, "/")
	if len(segments) < 3 || segments[2] == "" {
		return fail(ErrMissingServer)
	}

	key := fragment.Query().Get("key")
	if key == "" {
		return fail(ErrMissingKey)
	}

	return Target{ServerHash: segments[2], ResourceKey: key}, nil
}
