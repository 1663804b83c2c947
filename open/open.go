// Package open hands a path or url to the desktop's default handler.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

const (
	windows = "windows"
	darwin  = "darwin"
	linux   = "linux"
	android = "android"
)

// Start opens input without waiting for the handler to exit.
func Start(input string) error {
	cmd, ok := command(runtime.GOOS, input)
	if !ok {
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
	return cmd.Start()
}

func command(goos, input string) (*exec.Cmd, bool) {
	switch goos {
	case windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", input), true
	case darwin:
		return exec.Command("open", input), true
	case linux:
		return exec.Command("xdg-open", input), true
	case android:
		return exec.Command("termux-open", input), true
	default:
		return nil, false
	}
}
