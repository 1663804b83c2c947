package resolve

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/NathanPERIER/plexmedia-downloader/media"
	"github.com/NathanPERIER/plexmedia-downloader/plex"
	. "github.com/smartystreets/goconvey/convey"
)

type fakeFetcher struct {
	listings map[string]media.Container
	requests []string
}

func (f *fakeFetcher) Metadata(_ context.Context, server *plex.Server, path string) (media.Envelope, error) {
	f.requests = append(f.requests, path)
	container, ok := f.listings[path]
	if !ok {
		return media.Envelope{}, &plex.FetchError{URL: server.URI() + path, StatusCode: http.StatusNotFound, Reason: "Not Found"}
	}
	return media.Envelope{MediaContainer: container}, nil
}

func episode(show string, season, index int) media.Metadata {
	return media.Metadata{
		Type:             media.TypeEpisode,
		RatingKey:        fmt.Sprintf("%d%02d", season, index),
		Title:            fmt.Sprintf("Episode %d", index),
		GrandparentTitle: show,
		ParentIndex:      season,
		Index:            index,
		Media: []media.Info{{
			Container: "mp4",
			Part:      []media.Part{{Key: fmt.Sprintf("/library/parts/%d%02d/file.mp4", season, index)}},
		}},
	}
}

func TestResolve(t *testing.T) {
	Convey("Given a server with a show, a season and an episode", t, func() {
		server := &plex.Server{Name: "home", Connections: []plex.Connection{{URI: "http://plex.local:32400"}}}
		fetcher := &fakeFetcher{listings: map[string]media.Container{
			"/library/metadata/1/allLeaves": {
				ViewGroup:   media.TypeEpisode,
				ParentTitle: "Firefly",
				Metadata:    []media.Metadata{episode("Firefly", 1, 2), episode("Firefly", 1, 1)},
			},
			"/library/metadata/2/children": {
				ViewGroup:        media.TypeEpisode,
				GrandparentTitle: "Dark",
				ParentIndex:      2,
				Metadata:         []media.Metadata{episode("Dark", 2, 3), episode("Dark", 2, 1)},
			},
		}}

		var notices []Notice
		resolver := New(fetcher, server, func(n Notice) { notices = append(notices, n) })
		ctx := context.Background()

		Convey("A show expands through allLeaves", func() {
			fetcher.listings["/library/metadata/1"] = media.Container{
				Metadata: []media.Metadata{{Type: media.TypeShow, RatingKey: "1", Title: "Firefly"}},
			}

			nodes, err := resolver.Resolve(ctx, "/library/metadata/1")
			So(err, ShouldBeNil)
			So(nodes, ShouldHaveLength, 1)
			So(nodes[0].Name(), ShouldEqual, "Firefly")
			So(fetcher.requests, ShouldResemble, []string{"/library/metadata/1", "/library/metadata/1/allLeaves"})

			records := nodes[0].Media(server.URI())
			So(records[0].Indicator(), ShouldEqual, "S01E01")
			So(records[0].URL, ShouldEqual, "http://plex.local:32400/library/parts/101/file.mp4")
		})

		Convey("A season expands through children and keeps payload order", func() {
			fetcher.listings["/library/metadata/2"] = media.Container{
				Metadata: []media.Metadata{{Type: media.TypeSeason, RatingKey: "2", Title: "Season 2"}},
			}

			nodes, err := resolver.Resolve(ctx, "/library/metadata/2")
			So(err, ShouldBeNil)
			So(nodes, ShouldHaveLength, 1)
			So(nodes[0].Name(), ShouldEqual, "Dark Season 2")

			records := nodes[0].Media(server.URI())
			So(records[0].Indicator(), ShouldEqual, "S02E03")
			So(records[1].Indicator(), ShouldEqual, "S02E01")
		})

		Convey("Unsupported entries are reported and left out", func() {
			fetcher.listings["/library/metadata/3"] = media.Container{
				Metadata: []media.Metadata{
					{Type: media.TypeShow, RatingKey: "1", Title: "Firefly"},
					episode("Firefly", 1, 5),
					{Type: "clip", Title: "Trailer"},
					{Type: media.TypeMovie, Title: "Serenity"},
				},
			}

			nodes, err := resolver.Resolve(ctx, "/library/metadata/3")
			So(err, ShouldBeNil)
			So(nodes, ShouldHaveLength, 2)
			So(nodes[1].Name(), ShouldEqual, "Firefly S01E05")

			So(notices, ShouldHaveLength, 2)
			So(notices[0].String(), ShouldEqual, "Media type clip isn't supported yet")
			So(notices[1].Type, ShouldEqual, media.TypeMovie)
		})

		Convey("An empty listing is not an error", func() {
			fetcher.listings["/library/metadata/4"] = media.Container{}

			nodes, err := resolver.Resolve(ctx, "/library/metadata/4")
			So(err, ShouldBeNil)
			So(nodes, ShouldBeEmpty)
		})

		Convey("A failed lookup aborts", func() {
			_, err := resolver.Resolve(ctx, "/library/metadata/404")
			var fetchErr *plex.FetchError
			So(errors.As(err, &fetchErr), ShouldBeTrue)
			So(fetchErr.StatusCode, ShouldEqual, http.StatusNotFound)
			So(fetchErr.URL, ShouldEqual, "http://plex.local:32400/library/metadata/404")
		})

		Convey("A failed expansion aborts with no partial result", func() {
			fetcher.listings["/library/metadata/5"] = media.Container{
				Metadata: []media.Metadata{
					episode("Firefly", 1, 1),
					{Type: media.TypeSeason, RatingKey: "99", Title: "Gone"},
				},
			}

			nodes, err := resolver.Resolve(ctx, "/library/metadata/5")
			So(nodes, ShouldBeNil)
			var fetchErr *plex.FetchError
			So(errors.As(err, &fetchErr), ShouldBeTrue)
		})

		Convey("A listing not grouped by episode aborts", func() {
			fetcher.listings["/library/metadata/6"] = media.Container{
				Metadata: []media.Metadata{{Type: media.TypeSeason, RatingKey: "6", Title: "Odd"}},
			}
			fetcher.listings["/library/metadata/6/children"] = media.Container{ViewGroup: "track"}

			_, err := resolver.Resolve(ctx, "/library/metadata/6")
			So(errors.Is(err, media.ErrUnexpectedGrouping), ShouldBeTrue)
		})
	})
}
