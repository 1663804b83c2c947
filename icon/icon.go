// Package icon renders status symbols in the variant chosen by icons.variant.
package icon

import (
	"github.com/NathanPERIER/plexmedia-downloader/color"
	"github.com/NathanPERIER/plexmedia-downloader/key"
	"github.com/NathanPERIER/plexmedia-downloader/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	squares = "squares"
)

// AvailableVariants lists the values accepted by icons.variant.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, squares}
}

type Icon int

const (
	Success Icon = iota + 1
	Fail
	Warn
	Progress
	Download
	Skip
	Server
	Unsupported
)

// glyph is one symbol in every variant. Emoji carry their own colors,
// the other variants are tinted.
type glyph struct {
	emoji string
	nerd  string
	plain string
	tint  lipgloss.Color
}

var glyphs = map[Icon]glyph{
	Success:     {emoji: "🎉", nerd: "\uf00c", plain: "✓", tint: color.Success},
	Fail:        {emoji: "💀", nerd: "\uf00d", plain: "✗", tint: color.Failure},
	Warn:        {emoji: "⚠️", nerd: "\uf071", plain: "!", tint: color.Warning},
	Progress:    {emoji: "⏳", nerd: "\uf252", plain: "…", tint: color.Pending},
	Download:    {emoji: "📥", nerd: "\uf019", plain: "↓", tint: color.Transfer},
	Skip:        {emoji: "⏭️", nerd: "\uf051", plain: "-", tint: color.Skipped},
	Server:      {emoji: "🖥️", nerd: "\uf233", plain: "#", tint: color.Accent},
	Unsupported: {emoji: "🚫", nerd: "\uf05e", plain: "?", tint: color.Prompt},
}

func (g glyph) render(variant string) string {
	switch variant {
	case emoji:
		return g.emoji
	case nerd:
		return style.Fg(g.tint)(g.nerd)
	case squares:
		return style.Fg(g.tint)("▇")
	default:
		return style.Fg(g.tint)(g.plain)
	}
}

// Get renders i in the configured variant. Unknown variants fall back to plain.
func Get(i Icon) string {
	g, ok := glyphs[i]
	if !ok {
		return ""
	}
	return g.render(viper.GetString(key.IconsVariant))
}
