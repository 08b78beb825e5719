package tui

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

var errNoClipboard = errors.New("no clipboard tool")

// clipboardTools lists candidate commands per OS in preference order.
var clipboardTools = map[string][][]string{
	"darwin":  {{"pbcopy"}},
	"windows": {{"clip"}},
	"linux": {
		{"wl-copy"},
		{"xclip", "-selection", "clipboard"},
		{"xsel", "--clipboard", "--input"},
	},
}

// clipboardCommand picks the first available tool for goos. wl-copy is only
// used under Wayland.
func clipboardCommand(goos string, lookPath func(string) (string, error), wayland bool) ([]string, error) {
	tools, ok := clipboardTools[goos]
	if !ok {
		return nil, fmt.Errorf("clipboard not supported on %s", goos)
	}
	for _, t := range tools {
		if t[0] == "wl-copy" && !wayland {
			continue
		}
		if _, err := lookPath(t[0]); err == nil {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: install xclip, xsel or wl-clipboard", errNoClipboard)
}

// copyToClipboard copies text to the system clipboard.
func copyToClipboard(text string) error {
	argv, err := clipboardCommand(runtime.GOOS, exec.LookPath, os.Getenv("WAYLAND_DISPLAY") != "")
	if err != nil {
		return err
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}
