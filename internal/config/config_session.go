package config

type SessionConfig struct {
	DefaultAgentID string             `yaml:"default_agent_id,omitempty"`
	Memory         MemoryConfig       `yaml:"memory,omitempty"`
	Scoping        SessionScopeConfig `yaml:"scoping,omitempty"`
	Reset          ResetConfig        `yaml:"reset,omitempty"`
}

type MemoryConfig struct {
	Enabled   bool   `yaml:"enabled,omitempty"`
	Directory string `yaml:"directory,omitempty"`
	MaxLines  int    `yaml:"max_lines,omitempty"`
	Days      int    `yaml:"days,omitempty"`
}

// SessionScopeConfig controls how conversations map onto sessions.
type SessionScopeConfig struct {
	// DMScope controls how DM sessions are scoped:
	// - "main": all DMs share one session (default)
	// - "per-peer": separate session per peer
	DMScope string `yaml:"dm_scope,omitempty"`
}

// ResetConfig controls when sessions are automatically reset.
type ResetConfig struct {
	// Mode is the reset mode: "daily", "idle", or "never" (default).
	Mode string `yaml:"mode,omitempty"`

	// AtHour is the hour (0-23) to reset sessions when mode is "daily".
	AtHour int `yaml:"at_hour,omitempty"`

	// IdleMinutes is minutes of inactivity before reset when mode is "idle".
	IdleMinutes int `yaml:"idle_minutes,omitempty"`
}
