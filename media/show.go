package media

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Show holds every episode of a show, sorted by season then episode.
type Show struct {
	title    string
	year     int
	episodes []*Episode
}

// NewShow builds a show from an /allLeaves listing. Episodes are sorted once
// here; ties keep the payload order.
func NewShow(c Container) (*Show, error) {
	if c.ViewGroup != TypeEpisode {
		return nil, fmt.Errorf("show %q: viewGroup %q: %w", c.ParentTitle, c.ViewGroup, ErrUnexpectedGrouping)
	}

	episodes, err := episodesOf(c)
	if err != nil {
		return nil, fmt.Errorf("show %q: %w", c.ParentTitle, err)
	}

	slices.SortStableFunc(episodes, func(a, b *Episode) int {
		return a.compare(b)
	})

	return &Show{
		title:    c.ParentTitle,
		year:     c.ParentYear,
		episodes: episodes,
	}, nil
}

func (s *Show) Media(serverURI string) []Record {
	return flatten(s.episodes, serverURI)
}

func (s *Show) Name() string {
	return s.title
}

func (s *Show) BaseName() string {
	return s.title
}

// Year is the show's first air year, 0 when unknown.
func (s *Show) Year() int {
	return s.year
}
