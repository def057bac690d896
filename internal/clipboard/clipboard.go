package clipboard

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

// Copy places text on the system clipboard. On Linux it falls back to
// wl-copy and xclip when the default backend is unavailable (e.g. headless
// Wayland sessions).
func Copy(text string) error {
	if err := clipboard.WriteAll(text); err == nil {
		return nil
	}
	if runtime.GOOS == "linux" {
		for _, fallback := range [][]string{
			{"wl-copy"},
			{"xclip", "-selection", "clipboard"},
		} {
			cmd := exec.Command(fallback[0], fallback[1:]...)
			cmd.Stdin = strings.NewReader(text)
			if err := cmd.Run(); err == nil {
				return nil
			}
		}
	}
	return errors.New("clipboard unavailable")
}
