// Package auth gathers Plex credentials from an ordered list of providers and
// keeps the account token in the system keyring.
package auth

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/NathanPERIER/plexmedia-downloader/filesystem"
	"github.com/samber/mo"
)

// ErrInvalidCookie is returned for an auth-sync cookie that does not carry a token.
var ErrInvalidCookie = errors.New("invalid plex.tv auth cookie")

// Credentials are whatever the user supplied to log into plex.tv. Any of
// username+password, token or cookie is enough.
type Credentials struct {
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	Token    string `json:"token,omitempty"`
	// Cookie is the base64 encoded JSON auth-sync cookie from plex.tv.
	Cookie string `json:"cookie,omitempty"`
}

// Valid reports whether c is sufficient to authenticate.
func (c Credentials) Valid() bool {
	return (c.Username != "" && c.Password != "") || c.Token != "" || c.Cookie != ""
}

// AccountToken returns the token to authenticate with, preferring the cookie's.
// None means a username/password sign-in is required.
func (c Credentials) AccountToken() (mo.Option[string], error) {
	if c.Cookie != "" {
		token, err := decodeCookie(c.Cookie)
		if err != nil {
			return mo.None[string](), err
		}
		return mo.Some(token), nil
	}

	if c.Token != "" {
		return mo.Some(c.Token), nil
	}

	return mo.None[string](), nil
}

func decodeCookie(cookie string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(cookie))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidCookie, err)
	}

	var payload struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidCookie, err)
	}
	if payload.Token == "" {
		return "", ErrInvalidCookie
	}
	return payload.Token, nil
}

// LoadFile reads credentials from a json file with the keys username,
// password, token and cookie.
func LoadFile(path string) (Credentials, error) {
	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return Credentials{}, fmt.Errorf("read auth file: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return Credentials{}, fmt.Errorf("decode auth file %s: %w", path, err)
	}
	return creds, nil
}
