package constant

// Plex product identification, sent as X-Plex-* headers.
const (
	PlexProduct  = "Plex Media Downloader"
	PlexDevice   = "plexdl"
	PlexAccept   = "application/json"
	PlexTokenHdr = "X-Plex-Token"
)

// plex.tv endpoints used for account login and server discovery.
const (
	PlexAccountURL   = "https://plex.tv/users/account.json"
	PlexSignInURL    = "https://plex.tv/users/sign_in.json"
	PlexResourcesURL = "https://plex.tv/api/v2/resources?includeHttps=1&includeRelay=1"
)

// SafeSlash replaces '/' in folder names derived from titles.
const SafeSlash = "∕"
