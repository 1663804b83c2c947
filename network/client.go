// Package network provides the HTTP client shared by plex.tv and media server requests.
package network

import (
	"net/http"
	"time"
)

// Client has no overall timeout since media downloads stream for as long as
// they need. Metadata calls bound themselves with a context deadline.
var Client = &http.Client{
	Transport: newTransport(),
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 10
	t.MaxIdleConnsPerHost = 4
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = time.Minute
	t.ExpectContinueTimeout = 5 * time.Second
	return t
}
