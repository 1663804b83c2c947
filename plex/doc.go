// Package plex talks to plex.tv and to Plex Media Servers: account login,
// server discovery and metadata requests.
package plex
