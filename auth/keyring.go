package auth

import (
	"errors"

	"github.com/NathanPERIER/plexmedia-downloader/constant"
	"github.com/NathanPERIER/plexmedia-downloader/filesystem"
	"github.com/zalando/go-keyring"
)

const keyringUser = "plex-token"

// SaveToken persists the plex.tv account token to the system keyring.
func SaveToken(token string) error {
	if token == "" {
		return errors.New("token cannot be empty")
	}
	return keyring.Set(constant.Plexdl, keyringUser, token)
}

// LoadToken retrieves the plex.tv account token from the system keyring.
func LoadToken() (string, error) {
	return keyring.Get(constant.Plexdl, keyringUser)
}

// DeleteToken removes the stored token. Deleting a missing token is not an error.
func DeleteToken() error {
	err := keyring.Delete(constant.Plexdl, keyringUser)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}

func fileExists(path string) (bool, error) {
	return filesystem.API().Exists(path)
}
