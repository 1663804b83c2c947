package media

import "fmt"

func episodeMeta(show string, season, index int, title string) Metadata {
	return Metadata{
		Type:             TypeEpisode,
		RatingKey:        fmt.Sprintf("%d%02d", season, index),
		Title:            title,
		GrandparentTitle: show,
		ParentIndex:      season,
		Index:            index,
		Media: []Info{{
			Container: "mkv",
			Part: []Part{{
				Key:  fmt.Sprintf("/library/parts/%d%02d/file.mkv", season, index),
				File: fmt.Sprintf("/data/tv/%s/Season %d/%s - %s.mkv", show, season, show, title),
				Size: int64(season*1000 + index),
			}},
		}},
	}
}

func listing(show string, season int, entries ...Metadata) Container {
	return Container{
		ViewGroup:        TypeEpisode,
		ParentTitle:      show,
		ParentYear:       2008,
		ParentIndex:      season,
		GrandparentTitle: show,
		Metadata:         entries,
	}
}

func indicators(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Indicator()
	}
	return out
}
