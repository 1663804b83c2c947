package config

import (
	"testing"
	"time"

	"github.com/NathanPERIER/plexmedia-downloader/filesystem"
	"github.com/NathanPERIER/plexmedia-downloader/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without a config file", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should populate every registered default", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("Download defaults should be conservative", func() {
			So(Setup(), ShouldBeNil)
			So(viper.GetBool(key.DownloadsDryRun), ShouldBeFalse)
			So(viper.GetBool(key.DownloadsSkipExisting), ShouldBeFalse)
			So(viper.GetBool(key.DownloadsOriginalFilename), ShouldBeFalse)
			So(viper.GetInt(key.DownloadsChunkSize), ShouldEqual, 4096)
			So(viper.GetDuration(key.PlexResourcesLifetime), ShouldEqual, time.Hour)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("downloads.skip_existing"), ShouldEqual, "downloads_skip_existing")
		})
	})
}

func TestFieldEnv(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.DownloadsSkipExisting]

		Convey("Its env name should carry the application prefix", func() {
			So(field.Env(), ShouldEqual, "PLEXDL_DOWNLOADS_SKIP_EXISTING")
		})

		Convey("Its type name should match the default value", func() {
			So(field.Type(), ShouldEqual, "bool")
			lifetime := Default[key.PlexResourcesLifetime]
			So(lifetime.Type(), ShouldEqual, "duration")
		})
	})
}

func TestEnsureClientIdentifier(t *testing.T) {
	Convey("Given a fresh configuration", t, func() {
		So(Setup(), ShouldBeNil)
		viper.Set(key.PlexClientIdentifier, "")

		Convey("An identifier is generated once", func() {
			first, err := EnsureClientIdentifier()
			So(err, ShouldBeNil)
			So(first, ShouldHaveLength, 36)

			second, err := EnsureClientIdentifier()
			So(err, ShouldBeNil)
			So(second, ShouldEqual, first)
		})

		Convey("A configured identifier is kept", func() {
			viper.Set(key.PlexClientIdentifier, "fixed")
			id, err := EnsureClientIdentifier()
			So(err, ShouldBeNil)
			So(id, ShouldEqual, "fixed")
		})
	})
}

func TestPretty(t *testing.T) {
	Convey("Given the resources lifetime field", t, func() {
		So(Setup(), ShouldBeNil)
		field := Default[key.PlexResourcesLifetime]

		Convey("Its pretty form names the key and the env variable", func() {
			out := field.Pretty()
			So(out, ShouldContainSubstring, key.PlexResourcesLifetime)
			So(out, ShouldContainSubstring, "PLEXDL_PLEX_RESOURCES_LIFETIME")
			So(out, ShouldContainSubstring, "duration")
		})

		Convey("Durations are highlighted in their short form", func() {
			So(highlight(90*time.Minute), ShouldContainSubstring, "1h30m0s")
		})

		Convey("Empty strings are marked", func() {
			So(highlight(""), ShouldContainSubstring, "(empty)")
		})
	})
}
