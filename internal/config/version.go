package config

import (
	"strconv"
	"strings"
)

// CurrentVersion is the latest supported configuration file version.
const CurrentVersion = 1

// parseConfigVersion reads the version field from a raw config map.
// A missing or blank version parses as 0.
func parseConfigVersion(raw map[string]any) (int, bool) {
	if raw == nil {
		return 0, true
	}
	value, ok := raw["version"]
	if !ok || value == nil {
		return 0, true
	}
	switch typed := value.(type) {
	case int:
		return typed, true
	case int64:
		return int(typed), true
	case float64:
		return int(typed), true
	case string:
		trimmed := strings.TrimSpace(typed)
		if trimmed == "" {
			return 0, true
		}
		parsed, err := strconv.Atoi(trimmed)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}
