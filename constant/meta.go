// Package constant holds application identifiers and build metadata.
package constant

import _ "embed"

// Logo is printed above the root command help.
//
//go:embed ascii.txt
var Logo string

const (
	// Plexdl is the canonical application identifier used for filesystem paths, env prefixes and CLI branding.
	Plexdl = "plexdl"

	// Version is the current application semantic version string.
	Version = "0.3.0"

	// Repository is the GitHub owner/name releases are published under.
	Repository = "NathanPERIER/plexmedia-downloader"

	// UserAgent is sent with every request to plex.tv and media servers.
	UserAgent = Plexdl + "/" + Version
)

// Build metadata, overridden at link time with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
