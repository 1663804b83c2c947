package download

import (
	"path/filepath"

	"github.com/NathanPERIER/plexmedia-downloader/filesystem"
	"github.com/NathanPERIER/plexmedia-downloader/media"
	"github.com/NathanPERIER/plexmedia-downloader/util"
)

// Row is one manifest line.
type Row struct {
	Episode  string `json:"episode" jsonschema:"description=SxxEyy indicator"`
	Title    string `json:"title"`
	Filename string `json:"filename"`
	Download bool   `json:"download" jsonschema:"description=false when the file already exists and skipping is enabled"`
}

// Manifest is the printable form of a plan.
type Manifest struct {
	Name   string `json:"name"`
	Year   int    `json:"year,omitempty" jsonschema:"description=first air year of a show"`
	Folder string `json:"folder"`
	Rows   []Row  `json:"rows"`
}

// Plan partitions a node's records into the ones to fetch and the ones to skip.
type Plan struct {
	Name   string
	Year   int
	Folder string
	Fetch  []media.Record
	Skip   []media.Record
	Rows   []Row

	original bool
}

// Path is where record is written.
func (p *Plan) Path(record media.Record) string {
	return filepath.Join(p.Folder, record.Filename(p.original))
}

// Manifest returns the rows with the node name and folder.
func (p *Plan) Manifest() Manifest {
	return Manifest{Name: p.Name, Year: p.Year, Folder: p.Folder, Rows: p.Rows}
}

// Planner decides, record by record, whether a download is needed.
type Planner struct {
	options Options
}

func NewPlanner(options Options) *Planner {
	return &Planner{options: options}
}

// Plan expands node against serverURI. Only the filesystem is consulted.
func (p *Planner) Plan(node media.Node, serverURI string) (*Plan, error) {
	plan := &Plan{
		Name:     node.Name(),
		Folder:   filepath.Join(p.options.Output, util.SafeFolderName(node.BaseName())),
		original: p.options.OriginalFilename,
	}
	if dated, ok := node.(interface{ Year() int }); ok {
		plan.Year = dated.Year()
	}

	for _, record := range node.Media(serverURI) {
		skip, err := p.skip(plan.Path(record))
		if err != nil {
			return nil, err
		}

		if skip {
			plan.Skip = append(plan.Skip, record)
		} else {
			plan.Fetch = append(plan.Fetch, record)
		}

		plan.Rows = append(plan.Rows, Row{
			Episode:  record.Indicator(),
			Title:    record.Title,
			Filename: record.Filename(p.options.OriginalFilename),
			Download: !skip,
		})
	}

	return plan, nil
}

func (p *Planner) skip(path string) (bool, error) {
	if !p.options.SkipExisting {
		return false, nil
	}
	return filesystem.API().Exists(path)
}
