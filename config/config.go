// Package config manages application settings: registered defaults, environment bindings and the TOML config file.
package config

import (
	"strings"

	"github.com/NathanPERIER/plexmedia-downloader/constant"
	"github.com/NathanPERIER/plexmedia-downloader/filesystem"
	"github.com/NathanPERIER/plexmedia-downloader/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer is a strings.Replacer used to normalize configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup registers defaults and env bindings, then reads plexdl.toml if one exists.
// A missing config file is not an error.
func Setup() error {
	viper.SetConfigName(constant.Plexdl)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Plexdl)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}

	return nil
}
