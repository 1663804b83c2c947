// Package util provides small domain-agnostic helpers shared by the commands and the downloader.
package util

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/NathanPERIER/plexmedia-downloader/constant"
	"golang.org/x/exp/constraints"
	"golang.org/x/term"
)

// SafeFolderName turns a display title into a single path component.
// Only '/' is substituted (with U+2215), everything else is kept verbatim.
func SafeFolderName(name string) string {
	return strings.ReplaceAll(name, "/", constant.SafeSlash)
}

// Quantify returns a pluralized string representation of a count and its associated labels.
func Quantify(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// Capitalize transforms the first rune of a string to its uppercase equivalent.
func Capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// TerminalSize retrieves the current character dimensions of the terminal window.
func TerminalSize() (width, height int, err error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// TerminalWidth is TerminalSize's width, or fallback when stdout is not a terminal.
func TerminalWidth(fallback int) int {
	width, _, err := TerminalSize()
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}

// PrintErasable prints an ephemeral message to stdout and returns a closure to clear it.
func PrintErasable(msg string) (eraser func()) {
	return PrintErasableTo(os.Stdout, msg)
}

// PrintErasableTo is PrintErasable on an arbitrary writer.
func PrintErasableTo(w io.Writer, msg string) (eraser func()) {
	fmt.Fprintf(w, "\r%s", msg)
	return func() {
		fmt.Fprintf(w, "\r%s\r", strings.Repeat(" ", len(msg)))
	}
}

// Ignore executes a function and explicitly discards its error return value.
func Ignore(f func() error) {
	_ = f()
}

// Max returns the largest of items, or the zero value when there are none.
func Max[T constraints.Ordered](items ...T) (max T) {
	if len(items) == 0 {
		return
	}
	max = items[0]
	for _, item := range items[1:] {
		if item > max {
			max = item
		}
	}
	return
}
