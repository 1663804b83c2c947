package config

import (
	"github.com/NathanPERIER/plexmedia-downloader/key"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// EnsureClientIdentifier returns the persisted X-Plex-Client-Identifier,
// generating and saving one on first use so plex.tv sees a single device.
func EnsureClientIdentifier() (string, error) {
	if id := viper.GetString(key.PlexClientIdentifier); id != "" {
		return id, nil
	}

	id := uuid.NewString()
	viper.Set(key.PlexClientIdentifier, id)

	switch err := viper.WriteConfig(); err.(type) {
	case nil:
		return id, nil
	case viper.ConfigFileNotFoundError:
		return id, viper.SafeWriteConfig()
	default:
		return id, err
	}
}
