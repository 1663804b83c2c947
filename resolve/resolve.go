// Package resolve turns a resource key into the media nodes it designates.
package resolve

import (
	"context"
	"fmt"

	"github.com/NathanPERIER/plexmedia-downloader/log"
	"github.com/NathanPERIER/plexmedia-downloader/media"
	"github.com/NathanPERIER/plexmedia-downloader/plex"
	"github.com/samber/mo"
)

// Fetcher retrieves metadata listings from a server.
type Fetcher interface {
	Metadata(ctx context.Context, server *plex.Server, path string) (media.Envelope, error)
}

// Notice reports a metadata entry that produced no node.
type Notice struct {
	Type  string
	Title string
}

func (n Notice) String() string {
	return fmt.Sprintf("Media type %s isn't supported yet", n.Type)
}

// Notifier receives notices as resolution goes.
type Notifier func(Notice)

// Resolver expands resource keys on one server.
type Resolver struct {
	fetcher Fetcher
	server  *plex.Server
	notify  Notifier
}

// New returns a resolver. notify may be nil.
func New(fetcher Fetcher, server *plex.Server, notify Notifier) *Resolver {
	if notify == nil {
		notify = func(Notice) {}
	}
	return &Resolver{fetcher: fetcher, server: server, notify: notify}
}

// Resolve fetches resourceKey and converts every entry into a node, in
// payload order. Unsupported entries are reported and left out. Any failed
// request aborts the whole resolution.
func (r *Resolver) Resolve(ctx context.Context, resourceKey string) ([]media.Node, error) {
	envelope, err := r.fetcher.Metadata(ctx, r.server, resourceKey)
	if err != nil {
		return nil, err
	}

	var nodes []media.Node
	for _, entry := range envelope.MediaContainer.Metadata {
		node, err := r.node(ctx, entry)
		if err != nil {
			return nil, err
		}

		if n, ok := node.Get(); ok {
			nodes = append(nodes, n)
		}
	}

	return nodes, nil
}

func (r *Resolver) node(ctx context.Context, entry media.Metadata) (mo.Option[media.Node], error) {
	switch entry.Type {
	case media.TypeShow:
		container, err := r.children(ctx, entry, "allLeaves")
		if err != nil {
			return mo.None[media.Node](), err
		}

		show, err := media.NewShow(container)
		if err != nil {
			return mo.None[media.Node](), fmt.Errorf("show %q: %w", entry.Title, err)
		}
		return mo.Some[media.Node](show), nil

	case media.TypeSeason:
		container, err := r.children(ctx, entry, "children")
		if err != nil {
			return mo.None[media.Node](), err
		}

		season, err := media.NewSeason(container)
		if err != nil {
			return mo.None[media.Node](), fmt.Errorf("season %q: %w", entry.Title, err)
		}
		return mo.Some[media.Node](season), nil

	case media.TypeEpisode:
		episode, err := media.NewEpisode(entry)
		if err != nil {
			return mo.None[media.Node](), err
		}
		return mo.Some[media.Node](episode), nil

	default:
		notice := Notice{Type: entry.Type, Title: entry.Title}
		log.WithFields(log.Fields{"type": entry.Type, "title": entry.Title}).Warn("unsupported media type")
		r.notify(notice)
		return mo.None[media.Node](), nil
	}
}

func (r *Resolver) children(ctx context.Context, entry media.Metadata, listing string) (media.Container, error) {
	path := fmt.Sprintf("/library/metadata/%s/%s", entry.RatingKey, listing)
	envelope, err := r.fetcher.Metadata(ctx, r.server, path)
	if err != nil {
		return media.Container{}, err
	}
	return envelope.MediaContainer, nil
}
