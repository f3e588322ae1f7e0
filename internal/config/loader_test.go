package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadRawResolvesIncludes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), `
$include: extra.yaml
identity:
  name: perch
`)
	writeFile(t, filepath.Join(dir, "extra.yaml"), `
identity:
  vibe: helpful
logging:
  level: debug
`)

	raw, err := LoadRaw(filepath.Join(dir, "base.yaml"))
	if err != nil {
		t.Fatalf("LoadRaw() error = %v", err)
	}
	identity, ok := raw["identity"].(map[string]any)
	if !ok {
		t.Fatalf("expected identity map, got %T", raw["identity"])
	}
	if identity["name"] != "perch" {
		t.Fatalf("expected base value to win, got %v", identity["name"])
	}
	if identity["vibe"] != "helpful" {
		t.Fatalf("expected included value to merge, got %v", identity["vibe"])
	}
	logging, ok := raw["logging"].(map[string]any)
	if !ok || logging["level"] != "debug" {
		t.Fatalf("expected included logging section, got %v", raw["logging"])
	}
}

func TestLoadRawDetectsIncludeCycle(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.yaml"), "$include: b.yaml\n")
	writeFile(t, filepath.Join(dir, "b.yaml"), "$include: a.yaml\n")

	_, err := LoadRaw(filepath.Join(dir, "a.yaml"))
	if err == nil || !strings.Contains(err.Error(), "include cycle") {
		t.Fatalf("expected include cycle error, got %v", err)
	}
}

func TestLoadRawIncludesAndEnvInSameFile(t *testing.T) {
	t.Setenv("PERCH_TEST_NAME", "perch-dev")
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), `
$include: extra.yaml
identity:
  name: ${PERCH_TEST_NAME}
`)
	writeFile(t, filepath.Join(dir, "extra.yaml"), `
logging:
  level: debug
`)

	raw, err := LoadRaw(filepath.Join(dir, "base.yaml"))
	if err != nil {
		t.Fatalf("LoadRaw() error = %v", err)
	}
	identity, ok := raw["identity"].(map[string]any)
	if !ok || identity["name"] != "perch-dev" {
		t.Fatalf("expected expanded identity name, got %v", raw["identity"])
	}
	logging, ok := raw["logging"].(map[string]any)
	if !ok || logging["level"] != "debug" {
		t.Fatalf("expected included logging section, got %v", raw["logging"])
	}
}

func TestLoadRawAcceptsIncludeAlias(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), `
include: extra.yaml
identity:
  name: perch
`)
	writeFile(t, filepath.Join(dir, "extra.yaml"), `
logging:
  level: warn
`)

	raw, err := LoadRaw(filepath.Join(dir, "base.yaml"))
	if err != nil {
		t.Fatalf("LoadRaw() error = %v", err)
	}
	if _, ok := raw["include"]; ok {
		t.Fatalf("include key should be stripped after resolution")
	}
	logging, ok := raw["logging"].(map[string]any)
	if !ok || logging["level"] != "warn" {
		t.Fatalf("expected included logging section, got %v", raw["logging"])
	}
}

func TestLoadRawParsesJSON5(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "perch.json5"), `{
  // comments are allowed
  version: 1,
  identity: { name: "perch" },
}`)

	raw, err := LoadRaw(filepath.Join(dir, "perch.json5"))
	if err != nil {
		t.Fatalf("LoadRaw() error = %v", err)
	}
	identity, ok := raw["identity"].(map[string]any)
	if !ok || identity["name"] != "perch" {
		t.Fatalf("expected identity from json5, got %v", raw["identity"])
	}
}

func TestLoadRawExpandsEnv(t *testing.T) {
	t.Setenv("PERCH_TEST_TOKEN", "tok-123")
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "perch.yaml"), `
channels:
  telegram:
    bot_token: ${PERCH_TEST_TOKEN}
`)

	raw, err := LoadRaw(filepath.Join(dir, "perch.yaml"))
	if err != nil {
		t.Fatalf("LoadRaw() error = %v", err)
	}
	channels := raw["channels"].(map[string]any)
	telegram := channels["telegram"].(map[string]any)
	if telegram["bot_token"] != "tok-123" {
		t.Fatalf("expected env expansion, got %v", telegram["bot_token"])
	}
}

func TestLoadRawRejectsMultipleDocuments(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "perch.yaml"), "version: 1\n---\nversion: 2\n")

	_, err := LoadRaw(filepath.Join(dir, "perch.yaml"))
	if err == nil || !strings.Contains(err.Error(), "single document") {
		t.Fatalf("expected single document error, got %v", err)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	path := writeConfig(t, `
identity:
  name: perch
  extra: true
`)

	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for unknown field")
	}
}

func TestLoadValidConfig(t *testing.T) {
	path := writeConfig(t, `
identity:
  name: perch
llm:
  default_provider: anthropic
  providers:
    anthropic:
      default_model: claude-sonnet
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Identity.Name != "perch" {
		t.Fatalf("unexpected identity: %+v", cfg.Identity)
	}
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(strings.TrimSpace(contents)+"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "perch.yaml")
	trimmed := strings.TrimSpace(contents)
	if !strings.HasPrefix(trimmed, "version:") {
		trimmed = "version: 1\n" + trimmed
	}
	writeFile(t, path, trimmed)
	return path
}
