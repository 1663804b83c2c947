package auth

import (
	"errors"
	"fmt"

	"github.com/NathanPERIER/plexmedia-downloader/log"
	"github.com/samber/mo"
)

// ErrNoCredentials is returned when no provider yields valid credentials.
var ErrNoCredentials = errors.New("no credentials supplied")

// Provider yields credentials, or None to defer to the next provider.
type Provider interface {
	Name() string
	Provide() (mo.Option[Credentials], error)
}

// Chain tries providers in order.
type Chain []Provider

// Resolve returns the first valid credentials. A provider error aborts the chain.
func (c Chain) Resolve() (Credentials, error) {
	for _, p := range c {
		creds, err := p.Provide()
		if err != nil {
			return Credentials{}, fmt.Errorf("%s credentials: %w", p.Name(), err)
		}

		if found, ok := creds.Get(); ok && found.Valid() {
			log.Infof("using credentials from %s", p.Name())
			return found, nil
		}
	}
	return Credentials{}, ErrNoCredentials
}

// Static provides credentials given on the command line.
type Static Credentials

func (Static) Name() string { return "flags" }

func (s Static) Provide() (mo.Option[Credentials], error) {
	creds := Credentials(s)
	if !creds.Valid() {
		return mo.None[Credentials](), nil
	}
	return mo.Some(creds), nil
}

// File provides credentials from a json auth file. An empty path defers.
type File struct {
	Path string
	// Optional makes a missing file defer instead of failing.
	Optional bool
}

func (File) Name() string { return "auth file" }

func (f File) Provide() (mo.Option[Credentials], error) {
	if f.Path == "" {
		return mo.None[Credentials](), nil
	}

	if f.Optional {
		if exists, err := fileExists(f.Path); err != nil || !exists {
			return mo.None[Credentials](), nil
		}
	}

	creds, err := LoadFile(f.Path)
	if err != nil {
		return mo.None[Credentials](), err
	}
	return mo.Some(creds), nil
}

// Keyring provides the token saved by a previous login.
type Keyring struct{}

func (Keyring) Name() string { return "keyring" }

func (Keyring) Provide() (mo.Option[Credentials], error) {
	token, err := LoadToken()
	if err != nil || token == "" {
		return mo.None[Credentials](), nil
	}
	return mo.Some(Credentials{Token: token}), nil
}
