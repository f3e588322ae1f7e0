package config

import (
	"fmt"
	"os"
)

// Config is the main configuration structure for Perch.
type Config struct {
	Version   int             `yaml:"version,omitempty"`
	Identity  IdentityConfig  `yaml:"identity,omitempty"`
	Workspace WorkspaceConfig `yaml:"workspace,omitempty"`
	Agents    AgentsConfig    `yaml:"agents,omitempty"`
	Session   SessionConfig   `yaml:"session,omitempty"`
	LLM       LLMConfig       `yaml:"llm,omitempty"`
	Channels  ChannelsConfig  `yaml:"channels,omitempty"`
	Tools     ToolsConfig     `yaml:"tools,omitempty"`
	Plugins   PluginsConfig   `yaml:"plugins,omitempty"`
	Logging   LoggingConfig   `yaml:"logging,omitempty"`
}

type IdentityConfig struct {
	Name  string `yaml:"name,omitempty"`
	Vibe  string `yaml:"vibe,omitempty"`
	Emoji string `yaml:"emoji,omitempty"`
}

type WorkspaceConfig struct {
	Path     string `yaml:"path,omitempty"`
	MaxChars int    `yaml:"max_chars,omitempty"`
}

type ToolsConfig struct {
	Sandbox   SandboxToolConfig `yaml:"sandbox,omitempty"`
	Browser   BrowserToolConfig `yaml:"browser,omitempty"`
	WebSearch SearchToolConfig  `yaml:"websearch,omitempty"`
}

type SandboxToolConfig struct {
	Enabled bool `yaml:"enabled,omitempty"`
	Timeout int  `yaml:"timeout_seconds,omitempty"`
}

type BrowserToolConfig struct {
	Enabled  bool   `yaml:"enabled,omitempty"`
	Headless bool   `yaml:"headless,omitempty"`
	URL      string `yaml:"url,omitempty"`
}

type SearchToolConfig struct {
	Enabled  bool   `yaml:"enabled,omitempty"`
	Provider string `yaml:"provider,omitempty"`
}

type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// Load reads a configuration file and validates it through the base validator.
// Plugin cross-checks are not run here; see the plugins package for the
// plugin-aware entry point.
func Load(path string) (*Config, error) {
	raw, err := LoadRaw(path)
	if err != nil {
		return nil, err
	}
	result := ValidateObject(raw)
	if !result.Valid {
		return nil, result.Err()
	}
	return result.Config, nil
}

// Exists reports whether a file or directory exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ValidationError wraps accumulated issues for callers that want an error value.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Issues) == 0 {
		return "config validation failed"
	}
	if len(e.Issues) == 1 {
		return fmt.Sprintf("config validation failed: %s", e.Issues[0])
	}
	return fmt.Sprintf("config validation failed: %s (and %d more)", e.Issues[0], len(e.Issues)-1)
}
