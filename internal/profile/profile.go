// Package profile locates Perch config files and named profiles.
package profile

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/perchbot/perch/internal/userpath"
)

const (
	DefaultConfigName = "perch.yaml"
	ProfileExt        = ".yaml"
)

// ConfigDir returns the base directory for profile configs.
func ConfigDir() string {
	return filepath.Join(userpath.Home(), ".perch", "profiles")
}

// ActiveProfileFile returns the path to the active profile marker.
func ActiveProfileFile() string {
	return filepath.Join(userpath.Home(), ".perch", "active_profile")
}

// ProfileConfigPath returns the config path for a profile name.
func ProfileConfigPath(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultConfigName
	}
	return filepath.Join(ConfigDir(), name+ProfileExt)
}

// DefaultConfigPath returns the active profile config path if set,
// otherwise perch.yaml in the working directory.
func DefaultConfigPath() string {
	name, err := ReadActiveProfile()
	if err != nil || strings.TrimSpace(name) == "" {
		return DefaultConfigName
	}
	return ProfileConfigPath(name)
}

// ReadActiveProfile loads the active profile name.
func ReadActiveProfile() (string, error) {
	data, err := os.ReadFile(ActiveProfileFile())
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// WriteActiveProfile sets the active profile name.
func WriteActiveProfile(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	path := ActiveProfileFile()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(name+"\n"), 0o644)
}

// ListProfiles returns available profile names.
func ListProfiles() ([]string, error) {
	entries, err := os.ReadDir(ConfigDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ProfileExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ProfileExt))
	}
	sort.Strings(names)
	return names, nil
}
