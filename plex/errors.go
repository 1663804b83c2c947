package plex

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// ErrServerNotFound is returned when the account cannot reach the server a link points to.
var ErrServerNotFound = errors.New("user doesn't have access to the server on which the resource is hosted")

// ErrNoConnection is returned for a server plex.tv lists without any usable uri.
var ErrNoConnection = errors.New("server has no usable connection")

// FetchError is a non-2xx answer to a metadata request.
type FetchError struct {
	URL        string
	StatusCode int
	Reason     string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("request to url %q yielded response code %d %s", e.URL, e.StatusCode, e.Reason)
}

// AuthError is a rejected plex.tv login.
type AuthError struct {
	StatusCode int
	Message    string
}

func (e *AuthError) Error() string {
	return "user authentication error: " + e.Message
}

// Reason returns the reason phrase of a response, e.g. "Not Found".
func Reason(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		return http.StatusText(resp.StatusCode)
	}
	return reason
}

// OK reports whether the status code is 2xx.
func OK(resp *http.Response) bool {
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
