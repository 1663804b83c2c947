package media

import (
	"strings"

	"github.com/samber/mo"
)

// Metadata types as returned under MediaContainer.Metadata.
const (
	TypeShow    = "show"
	TypeSeason  = "season"
	TypeEpisode = "episode"
	TypeMovie   = "movie"
)

// Envelope is the JSON document returned by every library endpoint.
type Envelope struct {
	MediaContainer Container `json:"MediaContainer"`
}

// Container is the MediaContainer object. Show and season listings carry the
// parent titles and indexes at this level.
type Container struct {
	Size             int        `json:"size"`
	ViewGroup        string     `json:"viewGroup"`
	ParentTitle      string     `json:"parentTitle"`
	ParentYear       int        `json:"parentYear"`
	ParentIndex      int        `json:"parentIndex"`
	GrandparentTitle string     `json:"grandparentTitle"`
	Metadata         []Metadata `json:"Metadata"`
}

// Metadata is one library item.
type Metadata struct {
	Type             string `json:"type"`
	RatingKey        string `json:"ratingKey"`
	Key              string `json:"key"`
	Title            string `json:"title"`
	Year             int    `json:"year"`
	GrandparentTitle string `json:"grandparentTitle"`
	ParentTitle      string `json:"parentTitle"`
	ParentIndex      int    `json:"parentIndex"`
	Index            int    `json:"index"`
	Media            []Info `json:"Media"`
}

// Info is one encoded version of an item.
type Info struct {
	Container string `json:"container"`
	Part      []Part `json:"Part"`
}

// Part is one file of a media version.
type Part struct {
	Key  string `json:"key"`
	File string `json:"file"`
	Size int64  `json:"size"`
}

// FirstMedia returns the first media version, the one that gets downloaded.
func (m Metadata) FirstMedia() mo.Option[Info] {
	if len(m.Media) == 0 {
		return mo.None[Info]()
	}
	return mo.Some(m.Media[0])
}

// FirstPart returns the first part of the first media version.
func (m Metadata) FirstPart() mo.Option[Part] {
	info, ok := m.FirstMedia().Get()
	if !ok || len(info.Part) == 0 {
		return mo.None[Part]()
	}
	return mo.Some(info.Part[0])
}

// serverBase strips the directories from a path reported by the server,
// whichever separator the server's OS uses.
func serverBase(file string) string {
	if i := strings.LastIndexAny(file, `/\`); i >= 0 {
		return file[i+1:]
	}
	return file
}
