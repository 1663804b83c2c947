package plex

import (
	"fmt"

	"github.com/samber/lo"
)

// Registry maps server client identifiers to servers for one run.
type Registry struct {
	servers map[string]*Server
	order   []string
}

// NewRegistry indexes servers by client identifier. Non-server resources are ignored.
func NewRegistry(servers []Server) *Registry {
	r := &Registry{servers: make(map[string]*Server, len(servers))}
	for i := range servers {
		s := &servers[i]
		if !s.IsServer() {
			continue
		}
		if _, ok := r.servers[s.ClientIdentifier]; !ok {
			r.order = append(r.order, s.ClientIdentifier)
		}
		r.servers[s.ClientIdentifier] = s
	}
	return r
}

// Get returns the server with the given hash. A known server that cannot be
// reached through any connection is an ErrNoConnection.
func (r *Registry) Get(hash string) (*Server, error) {
	s, ok := r.servers[hash]
	if !ok {
		return nil, fmt.Errorf("%w (%s)", ErrServerNotFound, hash)
	}
	if s.URI() == "" {
		return nil, fmt.Errorf("%s (%s): %w", s.Name, hash, ErrNoConnection)
	}
	return s, nil
}

// All returns servers in discovery order.
func (r *Registry) All() []*Server {
	return lo.Map(r.order, func(id string, _ int) *Server {
		return r.servers[id]
	})
}

func (r *Registry) Len() int {
	return len(r.order)
}
