package config

import (
	"reflect"
	"strings"
	"testing"
)

func TestValidateObjectLegacyShapesShortCircuit(t *testing.T) {
	raw := map[string]any{
		"version": 1,
		"plugins": map[string]any{
			"sandbox": map[string]any{"enabled": true},
		},
		// Would be a schema violation, but legacy findings block schema checks.
		"bogus": true,
	}

	result := ValidateObject(raw)
	if result.Valid {
		t.Fatalf("expected failure")
	}
	if len(result.Issues) != 1 {
		t.Fatalf("expected only the legacy issue, got %v", result.Issues)
	}
	issue := result.Issues[0]
	if issue.Path != "plugins.sandbox" {
		t.Fatalf("unexpected path %q", issue.Path)
	}
	if !strings.Contains(issue.Message, "tools.sandbox") {
		t.Fatalf("unexpected message %q", issue.Message)
	}
}

func TestValidateObjectLegacyMemoryAndAgents(t *testing.T) {
	raw := map[string]any{
		"version": 1,
		"memory":  map[string]any{"enabled": true},
		"agents": map[string]any{
			"main": map[string]any{"provider": "anthropic"},
		},
	}

	result := ValidateObject(raw)
	if result.Valid {
		t.Fatalf("expected failure")
	}
	paths := issuePaths(result.Issues)
	if !paths["memory"] || !paths["agents"] {
		t.Fatalf("expected memory and agents issues, got %v", result.Issues)
	}
}

func TestValidateObjectMissingVersion(t *testing.T) {
	result := ValidateObject(map[string]any{})
	if result.Valid {
		t.Fatalf("expected failure for missing version")
	}
	if result.Issues[0].Path != "version" {
		t.Fatalf("unexpected issue %v", result.Issues[0])
	}
}

func TestValidateObjectNewerVersion(t *testing.T) {
	result := ValidateObject(map[string]any{"version": 99})
	if result.Valid {
		t.Fatalf("expected failure for newer version")
	}
	if !strings.Contains(result.Issues[0].Message, "newer than this build") {
		t.Fatalf("unexpected message %q", result.Issues[0].Message)
	}
}

func TestValidateObjectSchemaIssuesUseDottedPaths(t *testing.T) {
	raw := map[string]any{
		"version": 1,
		"llm": map[string]any{
			"default_provider": 123,
		},
	}

	result := ValidateObject(raw)
	if result.Valid {
		t.Fatalf("expected schema failure")
	}
	found := false
	for _, issue := range result.Issues {
		if issue.Path == "llm.default_provider" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected issue at llm.default_provider, got %v", result.Issues)
	}
}

func TestValidateObjectRejectsUnknownKeys(t *testing.T) {
	raw := map[string]any{
		"version": 1,
		"serverz": map[string]any{},
	}

	result := ValidateObject(raw)
	if result.Valid {
		t.Fatalf("expected failure for unknown key")
	}
	found := false
	for _, issue := range result.Issues {
		if strings.Contains(issue.Message, "serverz") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected issue naming serverz, got %v", result.Issues)
	}
}

func TestValidateObjectDuplicateAgentDirs(t *testing.T) {
	raw := map[string]any{
		"version": 1,
		"agents": map[string]any{
			"list": []any{
				map[string]any{"id": "main", "workspace": "/tmp/perch-shared"},
				map[string]any{"id": "second", "workspace": "/tmp/perch-shared"},
			},
		},
	}

	result := ValidateObject(raw)
	if result.Valid {
		t.Fatalf("expected failure for duplicate workspaces")
	}
	if len(result.Issues) != 1 {
		t.Fatalf("expected single aggregated issue, got %v", result.Issues)
	}
	issue := result.Issues[0]
	if issue.Path != "agents.list" {
		t.Fatalf("unexpected path %q", issue.Path)
	}
	if !strings.Contains(issue.Message, "main") || !strings.Contains(issue.Message, "second") {
		t.Fatalf("expected both agent ids in message, got %q", issue.Message)
	}
}

func TestValidateObjectBackfillsDefaults(t *testing.T) {
	raw := map[string]any{
		"version": 1,
		"llm": map[string]any{
			"default_provider": "anthropic",
			"providers": map[string]any{
				"anthropic": map[string]any{"default_model": "claude-sonnet"},
			},
		},
		"agents": map[string]any{
			"list": []any{
				map[string]any{"id": "main", "workspace": "/tmp/perch-main"},
			},
		},
	}

	result := ValidateObject(raw)
	if !result.Valid {
		t.Fatalf("expected success, got %v", result.Issues)
	}
	cfg := result.Config
	agent := cfg.Agents.List[0]
	if agent.Provider != "anthropic" {
		t.Fatalf("expected provider backfill, got %q", agent.Provider)
	}
	if agent.Model != "claude-sonnet" {
		t.Fatalf("expected model backfill, got %q", agent.Model)
	}
	if cfg.Session.DefaultAgentID != "main" {
		t.Fatalf("expected default agent backfill, got %q", cfg.Session.DefaultAgentID)
	}
	if cfg.Session.Scoping.DMScope != "main" {
		t.Fatalf("expected dm_scope default, got %q", cfg.Session.Scoping.DMScope)
	}
	if cfg.Session.Reset.Mode != "never" {
		t.Fatalf("expected reset mode default, got %q", cfg.Session.Reset.Mode)
	}
}

func TestValidateObjectNonMapInput(t *testing.T) {
	result := ValidateObject("not a config")
	if result.Valid {
		t.Fatalf("expected failure for non-map input")
	}
}

func TestValidateObjectDeterministic(t *testing.T) {
	raw := map[string]any{
		"version": 1,
		"llm": map[string]any{
			"default_provider": 123,
		},
		"logging": map[string]any{
			"level": 7,
		},
	}

	first := ValidateObject(raw)
	second := ValidateObject(raw)
	if first.Valid || second.Valid {
		t.Fatalf("expected failures")
	}
	if !reflect.DeepEqual(first.Issues, second.Issues) {
		t.Fatalf("expected identical issues across calls:\n%v\n%v", first.Issues, second.Issues)
	}
}

func issuePaths(issues []Issue) map[string]bool {
	paths := make(map[string]bool, len(issues))
	for _, issue := range issues {
		paths[issue.Path] = true
	}
	return paths
}
