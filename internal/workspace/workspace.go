// Package workspace resolves agent workspace directories.
package workspace

import (
	"path/filepath"

	"github.com/perchbot/perch/internal/config"
	"github.com/perchbot/perch/internal/userpath"
)

// DefaultDir is the workspace used when the config names none.
func DefaultDir() string {
	return filepath.Join(userpath.Home(), ".perch", "workspace")
}

// ResolveDir returns the default agent's workspace directory. The agent's
// own workspace wins, then the global workspace path, then DefaultDir.
func ResolveDir(cfg *config.Config) string {
	if cfg != nil {
		if agent := cfg.Agents.DefaultAgent(); agent != nil && agent.Workspace != "" {
			return userpath.Resolve(agent.Workspace)
		}
		if cfg.Workspace.Path != "" {
			return userpath.Resolve(cfg.Workspace.Path)
		}
	}
	return DefaultDir()
}
