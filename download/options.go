package download

import (
	"github.com/NathanPERIER/plexmedia-downloader/key"
	"github.com/spf13/viper"
)

const defaultChunkSize = 4096

// Options control planning and execution.
type Options struct {
	SkipExisting     bool
	DryRun           bool
	OriginalFilename bool
	// Output is the directory show folders are created in.
	Output    string
	ChunkSize int
}

// OptionsFromConfig reads the downloads.* keys.
func OptionsFromConfig() Options {
	return Options{
		SkipExisting:     viper.GetBool(key.DownloadsSkipExisting),
		DryRun:           viper.GetBool(key.DownloadsDryRun),
		OriginalFilename: viper.GetBool(key.DownloadsOriginalFilename),
		Output:           viper.GetString(key.DownloadsOutput),
		ChunkSize:        viper.GetInt(key.DownloadsChunkSize),
	}
}

func (o Options) chunkSize() int {
	if o.ChunkSize <= 0 {
		return defaultChunkSize
	}
	return o.ChunkSize
}
