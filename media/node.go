package media

// Node is a resolved library item that can enumerate its downloadable files.
type Node interface {
	// Media lists the node's records. serverURI only prefixes part keys to
	// build absolute download URLs.
	Media(serverURI string) []Record
	// Name is the human-readable name shown in manifests.
	Name() string
	// BaseName names the folder the node's files are written to.
	BaseName() string
}

var (
	_ Node = (*Episode)(nil)
	_ Node = (*Season)(nil)
	_ Node = (*Show)(nil)
)
