// Package userpath resolves operator-supplied paths using the usual shell
// conventions: ~ expands to the home directory, relative paths resolve
// against the working directory.
package userpath

import (
	"os"
	"path/filepath"
	"strings"
)

// Resolve expands a leading ~ and returns a cleaned absolute path.
// Resolution is best effort: if the home or working directory cannot be
// determined, the cleaned input is returned unchanged.
func Resolve(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return ""
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err == nil && strings.TrimSpace(home) != "" {
			if trimmed == "~" {
				return filepath.Clean(home)
			}
			return filepath.Join(home, trimmed[2:])
		}
	}
	if filepath.IsAbs(trimmed) {
		return filepath.Clean(trimmed)
	}
	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return filepath.Clean(trimmed)
	}
	return abs
}

// Home returns the user home directory, falling back to "." when unknown.
func Home() string {
	home, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(home) == "" {
		return "."
	}
	return home
}
