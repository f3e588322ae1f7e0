package plugins

import (
	"context"
	"fmt"
	"strings"

	"github.com/perchbot/perch/internal/config"
	"github.com/perchbot/perch/internal/userpath"
	"github.com/perchbot/perch/internal/workspace"
)

// ValidateConfigWithPlugins runs the base config validator and then
// cross-checks every plugin reference against the registry built from the
// config. Base failures are returned unchanged; the plugin stage accumulates
// all issues before returning.
func ValidateConfigWithPlugins(ctx context.Context, raw any) config.Result {
	result := config.ValidateObject(raw)
	if !result.Valid {
		return result
	}
	cfg := result.Config

	var issues []config.Issue

	for _, path := range cfg.Plugins.Load.Paths {
		trimmed := strings.TrimSpace(path)
		if trimmed == "" {
			continue
		}
		resolved := userpath.Resolve(trimmed)
		if !config.Exists(resolved) {
			issues = append(issues, config.Issue{
				Path:    "plugins.load.paths",
				Message: fmt.Sprintf("plugin path not found: %s", resolved),
			})
		}
	}

	workspaceDir := workspace.ResolveDir(cfg)
	reg, err := Load(ctx, Options{
		Config:       cfg,
		WorkspaceDir: workspaceDir,
		Cache:        false,
		Mode:         ModeValidate,
	})
	if err != nil {
		issues = append(issues, config.Issue{
			Path:    "plugins",
			Message: fmt.Sprintf("plugin load failed: %v", err),
		})
		return config.Failure(issues...)
	}

	known := reg.IDSet()
	issues = append(issues, unknownReferenceIssues(cfg, known)...)

	for _, diag := range reg.Diagnostics() {
		if diag.Level != DiagnosticError {
			continue
		}
		issues = append(issues, diagnosticIssue(diag))
	}

	if len(issues) > 0 {
		return config.Failure(issues...)
	}
	return result
}

// unknownReferenceIssues flags every plugin id referenced by the config that
// the registry does not know about.
func unknownReferenceIssues(cfg *config.Config, known map[string]struct{}) []config.Issue {
	var issues []config.Issue

	flag := func(path, id string) {
		issues = append(issues, config.Issue{
			Path:    path,
			Message: fmt.Sprintf("plugin not found: %s", id),
		})
	}

	for _, id := range sortedEntryIDs(cfg.Plugins.Entries) {
		if _, ok := known[id]; !ok {
			flag("plugins.entries."+id, id)
		}
	}
	for _, id := range cfg.Plugins.Allow {
		if strings.TrimSpace(id) == "" {
			continue
		}
		if _, ok := known[id]; !ok {
			flag("plugins.allow", id)
		}
	}
	for _, id := range cfg.Plugins.Deny {
		if strings.TrimSpace(id) == "" {
			continue
		}
		if _, ok := known[id]; !ok {
			flag("plugins.deny", id)
		}
	}
	if slot := strings.TrimSpace(cfg.Plugins.Slots.Memory); slot != "" {
		if _, ok := known[slot]; !ok {
			flag("plugins.slots.memory", slot)
		}
	}

	return issues
}

func diagnosticIssue(diag Diagnostic) config.Issue {
	if diag.PluginID == "" {
		return config.Issue{
			Path:    "plugins",
			Message: fmt.Sprintf("plugin: %s", diag.Message),
		}
	}
	return config.Issue{
		Path:    "plugins.entries." + diag.PluginID,
		Message: fmt.Sprintf("plugin %s: %s", diag.PluginID, diag.Message),
	}
}
