package media

import (
	"errors"
	"fmt"
)

// ErrUnexpectedGrouping is returned when a season or show listing is not
// grouped by episode.
var ErrUnexpectedGrouping = errors.New("listing is not grouped by episode")

// Season holds one season's episodes in payload order.
type Season struct {
	show     string
	number   int
	episodes []*Episode
}

// NewSeason builds a season from a /children listing.
func NewSeason(c Container) (*Season, error) {
	if c.ViewGroup != TypeEpisode {
		return nil, fmt.Errorf("season of %q: viewGroup %q: %w", c.GrandparentTitle, c.ViewGroup, ErrUnexpectedGrouping)
	}

	episodes, err := episodesOf(c)
	if err != nil {
		return nil, fmt.Errorf("season %d of %q: %w", c.ParentIndex, c.GrandparentTitle, err)
	}

	return &Season{
		show:     c.GrandparentTitle,
		number:   c.ParentIndex,
		episodes: episodes,
	}, nil
}

// Media lists records in the order the server returned the episodes.
func (s *Season) Media(serverURI string) []Record {
	return flatten(s.episodes, serverURI)
}

func (s *Season) Name() string {
	return fmt.Sprintf("%s Season %d", s.show, s.number)
}

func (s *Season) BaseName() string {
	return s.show
}
