package media

import (
	"errors"
	"fmt"
)

// ErrNoMediaPart is returned for an episode without any downloadable part.
var ErrNoMediaPart = errors.New("no media part")

// Episode is a leaf node owning exactly one record.
type Episode struct {
	show             string
	season           int
	episode          int
	title            string
	key              string
	extension        string
	originalFilename string
	size             int64
}

// NewEpisode builds an episode from its metadata entry.
func NewEpisode(m Metadata) (*Episode, error) {
	part, ok := m.FirstPart().Get()
	if !ok || part.Key == "" {
		return nil, fmt.Errorf("episode %q (%s): %w", m.Title, Indicator(m.ParentIndex, m.Index), ErrNoMediaPart)
	}

	return &Episode{
		show:             m.GrandparentTitle,
		season:           m.ParentIndex,
		episode:          m.Index,
		title:            m.Title,
		key:              part.Key,
		extension:        m.FirstMedia().MustGet().Container,
		originalFilename: serverBase(part.File),
		size:             part.Size,
	}, nil
}

// Record returns the episode's single record.
func (e *Episode) Record(serverURI string) Record {
	return Record{
		Season:           e.season,
		Episode:          e.episode,
		Title:            e.title,
		URL:              serverURI + e.key,
		Extension:        e.extension,
		OriginalFilename: e.originalFilename,
		Size:             e.size,
	}
}

func (e *Episode) Media(serverURI string) []Record {
	return []Record{e.Record(serverURI)}
}

// Name is "{show} SxxEyy".
func (e *Episode) Name() string {
	return e.show + " " + Indicator(e.season, e.episode)
}

func (e *Episode) BaseName() string {
	return e.show
}

func (e *Episode) compare(other *Episode) int {
	return Compare(e.Record(""), other.Record(""))
}

func episodesOf(c Container) ([]*Episode, error) {
	episodes := make([]*Episode, 0, len(c.Metadata))
	for _, m := range c.Metadata {
		ep, err := NewEpisode(m)
		if err != nil {
			return nil, err
		}
		episodes = append(episodes, ep)
	}
	return episodes, nil
}

func flatten(episodes []*Episode, serverURI string) []Record {
	records := make([]Record, 0, len(episodes))
	for _, ep := range episodes {
		records = append(records, ep.Media(serverURI)...)
	}
	return records
}
