// Package media models what a Plex library item expands to once resolved.
//
// A Node (Show, Season or Episode) is built once from a metadata payload and
// flattened into Records, one per downloadable file. Records carry everything
// needed to name the file on disk and to fetch it from the server.
package media
