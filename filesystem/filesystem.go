// Package filesystem holds the afero backend used for every file the application touches.
//
// Downloads, config, logs and caches all go through API(), so tests can swap in an
// in-memory filesystem with SetMemMapFs.
package filesystem

import (
	"io"
	"os"

	"github.com/spf13/afero"
)

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active backend.
func API() afero.Afero {
	return backend
}

// SetMemMapFs switches to a volatile in-memory backend.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// SetFs installs an arbitrary backend, e.g. a read-only or base-path wrapper.
func SetFs(fs afero.Fs) {
	backend = afero.Afero{Fs: fs}
}

// CacheStore lets gache persist the server list and release info on the active backend.
// It resolves API() on every call, so a backend swapped after the cache is built still applies.
type CacheStore struct{}

func (CacheStore) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return API().OpenFile(name, flag, perm)
}

func (CacheStore) MkdirAll(path string, perm os.FileMode) error {
	return API().MkdirAll(path, perm)
}
