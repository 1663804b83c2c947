package plex

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"runtime"

	"github.com/NathanPERIER/plexmedia-downloader/constant"
	"github.com/NathanPERIER/plexmedia-downloader/key"
	"github.com/spf13/viper"
)

// HTTPDoer abstracts http.Client.Do for testing.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// ClientIdentifier is the X-Plex-Client-Identifier of this installation.
func ClientIdentifier() string {
	if id := viper.GetString(key.PlexClientIdentifier); id != "" {
		return id
	}
	return constant.Plexdl
}

// NewRequest builds a request carrying the standard X-Plex headers and,
// when non-empty, the token.
func NewRequest(ctx context.Context, method, url, token string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", constant.PlexAccept)
	req.Header.Set("User-Agent", constant.UserAgent)
	applyStandardHeaders(req, ClientIdentifier())
	if token != "" {
		req.Header.Set(constant.PlexTokenHdr, token)
	}
	return req, nil
}

func applyStandardHeaders(req *http.Request, clientIdentifier string) {
	req.Header.Set("X-Plex-Client-Identifier", clientIdentifier)
	req.Header.Set("X-Plex-Product", constant.PlexProduct)
	req.Header.Set("X-Plex-Version", constant.Version)
	req.Header.Set("X-Plex-Device-Name", constant.PlexDevice)
	req.Header.Set("X-Plex-Platform", runtime.GOOS)
}
