package plex

import (
	"strings"
)

// Connection is one way of reaching a server, as listed by plex.tv.
type Connection struct {
	Protocol string `json:"protocol"`
	Address  string `json:"address"`
	Port     int    `json:"port"`
	URI      string `json:"uri"`
	Local    bool   `json:"local"`
	Relay    bool   `json:"relay"`
}

// Server is a media server resource the account has access to.
type Server struct {
	Name             string       `json:"name"`
	Product          string       `json:"product"`
	ProductVersion   string       `json:"productVersion"`
	ClientIdentifier string       `json:"clientIdentifier"`
	Provides         string       `json:"provides"`
	Owned            bool         `json:"owned"`
	AccessToken      string       `json:"accessToken"`
	PublicAddress    string       `json:"publicAddress"`
	Presence         bool         `json:"presence"`
	Connections      []Connection `json:"connections"`
}

// URI is the base url of the server, without trailing slash. The connection
// on the public address is preferred, otherwise the best scored one.
func (s *Server) URI() string {
	for _, conn := range s.Connections {
		if conn.Address == s.PublicAddress && conn.URI != "" {
			return strings.TrimRight(conn.URI, "/")
		}
	}
	return selectBestConnection(s.Connections)
}

// Online reports the presence flag from plex.tv.
func (s *Server) Online() bool {
	return s.Presence
}

// IsServer is false for players and other non-server resources.
func (s *Server) IsServer() bool {
	return s.Provides == "" || strings.Contains(s.Provides, "server")
}

func selectBestConnection(connections []Connection) string {
	bestScore := -1 << 31
	bestURL := ""
	for _, conn := range connections {
		uri := strings.TrimSpace(conn.URI)
		if uri == "" {
			continue
		}

		score := 0
		switch strings.ToLower(conn.Protocol) {
		case "https":
			score += 50
		case "":
		default:
			score -= 10
		}

		if strings.Contains(uri, ".plex.direct") {
			score += 30
		}
		if conn.Local {
			score += 5
		}
		if conn.Relay {
			score -= 5
		}

		if score > bestScore {
			bestScore = score
			bestURL = strings.TrimRight(uri, "/")
		}
	}
	return bestURL
}
