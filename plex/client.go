package plex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/NathanPERIER/plexmedia-downloader/log"
	"github.com/NathanPERIER/plexmedia-downloader/media"
)

// Client fetches metadata and media from a media server.
type Client struct {
	http    HTTPDoer
	timeout time.Duration
}

// NewClient returns a client. timeout bounds metadata requests only; zero disables it.
func NewClient(doer HTTPDoer, timeout time.Duration) *Client {
	return &Client{http: doer, timeout: timeout}
}

// Metadata GETs server.URI()+path and decodes the MediaContainer envelope.
func (c *Client) Metadata(ctx context.Context, server *Server, path string) (media.Envelope, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	url := server.URI() + path
	log.WithFields(log.Fields{"url": url, "server": server.Name}).Debug("fetching metadata")

	req, err := NewRequest(ctx, http.MethodGet, url, server.AccessToken, nil)
	if err != nil {
		return media.Envelope{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return media.Envelope{}, fmt.Errorf("fetch metadata: %w", err)
	}
	defer resp.Body.Close()

	if !OK(resp) {
		_, _ = io.Copy(io.Discard, resp.Body)
		return media.Envelope{}, &FetchError{URL: url, StatusCode: resp.StatusCode, Reason: Reason(resp)}
	}

	var envelope media.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return media.Envelope{}, fmt.Errorf("decode metadata from %s: %w", url, err)
	}
	return envelope, nil
}

// Open starts a streaming GET for a media part. The caller checks the status
// and closes the body.
func (c *Client) Open(ctx context.Context, server *Server, url string) (*http.Response, error) {
	req, err := NewRequest(ctx, http.MethodGet, url, server.AccessToken, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Del("Accept")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", url, err)
	}
	return resp, nil
}
