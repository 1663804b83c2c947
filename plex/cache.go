package plex

import (
	"sync"
	"time"

	"github.com/NathanPERIER/plexmedia-downloader/filesystem"
	"github.com/metafates/gache"
	"github.com/samber/mo"
)

type cacheData struct {
	Servers map[string][]Server `json:"servers"`
}

// ResourceCache persists plex.tv resources per user uuid.
type ResourceCache struct {
	internal *gache.Cache[*cacheData]
	mu       sync.RWMutex
}

// NewResourceCache stores resources at path for lifetime.
func NewResourceCache(path string, lifetime time.Duration) *ResourceCache {
	return &ResourceCache{
		internal: gache.New[*cacheData](
			&gache.Options{
				Path:       path,
				Lifetime:   lifetime,
				FileSystem: &filesystem.CacheStore{},
			},
		),
	}
}

// Get returns the servers cached for user.
func (c *ResourceCache) Get(user string) mo.Option[[]Server] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, expired, err := c.internal.Get()
	if err != nil || expired || data == nil {
		return mo.None[[]Server]()
	}

	servers, ok := data.Servers[user]
	if ok {
		return mo.Some(servers)
	}
	return mo.None[[]Server]()
}

// Set caches servers for user.
func (c *ResourceCache) Set(user string, servers []Server) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, expired, err := c.internal.Get()
	if err != nil {
		return err
	}

	if expired || data == nil {
		data = &cacheData{}
	}
	if data.Servers == nil {
		data.Servers = make(map[string][]Server)
	}
	data.Servers[user] = servers
	return c.internal.Set(data)
}
