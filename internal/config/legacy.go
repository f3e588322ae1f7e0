package config

import "fmt"

// legacyIssues detects deprecated config shapes in the raw map. Any finding
// blocks schema validation: the schema would reject the moved keys with less
// helpful messages than these.
func legacyIssues(raw any) []Issue {
	rawMap, ok := raw.(map[string]any)
	if !ok {
		return nil
	}

	var issues []Issue

	version, parsed := parseConfigVersion(rawMap)
	switch {
	case !parsed:
		issues = append(issues, Issue{Path: "version", Message: "version must be a number"})
	case version > CurrentVersion:
		issues = append(issues, Issue{
			Path:    "version",
			Message: fmt.Sprintf("config version %d is newer than this build (current: %d); upgrade Perch to continue", version, CurrentVersion),
		})
	case version < CurrentVersion:
		issues = append(issues, Issue{
			Path:    "version",
			Message: fmt.Sprintf("config version %d is missing or outdated (current: %d); migrate the config and set version: %d", version, CurrentVersion, CurrentVersion),
		})
	}

	if plugins, ok := rawMap["plugins"].(map[string]any); ok {
		for _, key := range []string{"sandbox", "browser", "websearch"} {
			if _, moved := plugins[key]; moved {
				issues = append(issues, Issue{
					Path:    "plugins." + key,
					Message: fmt.Sprintf("legacy setting: plugins.%s has moved to tools.%s", key, key),
				})
			}
		}
	}

	if _, moved := rawMap["memory"]; moved {
		issues = append(issues, Issue{
			Path:    "memory",
			Message: "legacy setting: memory has moved to session.memory",
		})
	}

	if agents, ok := rawMap["agents"].(map[string]any); ok {
		for key := range agents {
			if key != "list" && key != "defaults" {
				issues = append(issues, Issue{
					Path:    "agents",
					Message: "legacy setting: agents must be a list under agents.list",
				})
				break
			}
		}
	}

	return issues
}
