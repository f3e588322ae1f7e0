package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/perchbot/perch/internal/userpath"
)

// duplicateAgentDirIssue checks whether two or more agents share a working
// directory after path resolution. All duplicates are reported in a single
// aggregated issue at agents.list.
func duplicateAgentDirIssue(cfg *Config) (Issue, bool) {
	byDir := map[string][]string{}
	for _, agent := range cfg.Agents.List {
		dir := strings.TrimSpace(agent.Workspace)
		if dir == "" {
			continue
		}
		resolved := userpath.Resolve(dir)
		byDir[resolved] = append(byDir[resolved], agent.ID)
	}

	var dups []string
	for dir, ids := range byDir {
		if len(ids) > 1 {
			dups = append(dups, fmt.Sprintf("%s (%s)", dir, strings.Join(ids, ", ")))
		}
	}
	if len(dups) == 0 {
		return Issue{}, false
	}
	sort.Strings(dups)
	return Issue{
		Path:    "agents.list",
		Message: "duplicate agent workspace directories: " + strings.Join(dups, "; "),
	}, true
}
