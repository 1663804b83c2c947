// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Download behaviour - these keys drive the planner and the executor.
const (
	DownloadsSkipExisting     = "downloads.skip_existing"
	DownloadsOriginalFilename = "downloads.original_filename"
	DownloadsDryRun           = "downloads.dry_run"
	DownloadsOutput           = "downloads.output"
	DownloadsChunkSize        = "downloads.chunk_size"
	DownloadsProgress         = "downloads.progress"
)

// Authentication - these keys configure where credentials come from.
const (
	AuthFile          = "auth.file"
	AuthRememberToken = "auth.remember_token"
)

// Plex - these keys configure how the application presents itself to plex.tv and media servers.
const (
	PlexClientIdentifier  = "plex.client_identifier"
	PlexResourcesLifetime = "plex.resources_lifetime"
	PlexTimeout           = "plex.timeout"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern terminal output.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
