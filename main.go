// Package main is the entry point for plexdl.
package main

import (
	"github.com/NathanPERIER/plexmedia-downloader/cmd"
	"github.com/NathanPERIER/plexmedia-downloader/config"
	"github.com/NathanPERIER/plexmedia-downloader/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
