// Package where resolves the per-user directories and files the application reads and writes.
package where

import (
	"os"
	"path/filepath"

	"github.com/NathanPERIER/plexmedia-downloader/constant"
	"github.com/NathanPERIER/plexmedia-downloader/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the default configuration directory.
const EnvConfigPath = "PLEXDL_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the configuration directory, honoring PLEXDL_CONFIG_PATH
// before the platform default (XDG_CONFIG_HOME on Linux).
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Plexdl))
}

// Cache resolves the cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Plexdl))
}

// Logs resolves the directory holding dated log files.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// AuthFile is the default location of the json credentials file.
func AuthFile() string {
	return filepath.Join(Config(), "auth.json")
}

// Resources is the cache file holding the servers reachable by each account.
func Resources() string {
	return filepath.Join(Cache(), "resources.json")
}

// Version is the cache file holding the latest release tag.
func Version() string {
	return filepath.Join(Cache(), "version.json")
}
