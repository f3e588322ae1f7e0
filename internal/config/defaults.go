package config

import "strings"

// ApplyModelDefaults backfills per-agent provider and model from agent
// defaults and the LLM section. Runs on validated configs only.
func ApplyModelDefaults(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.LLM.DefaultProvider == "" {
		cfg.LLM.DefaultProvider = "anthropic"
	}
	for i := range cfg.Agents.List {
		agent := &cfg.Agents.List[i]
		if agent.Provider == "" {
			agent.Provider = cfg.Agents.Defaults.Provider
		}
		if agent.Provider == "" {
			agent.Provider = cfg.LLM.DefaultProvider
		}
		if agent.Model == "" {
			agent.Model = cfg.Agents.Defaults.Model
		}
		if agent.Model == "" {
			if provider, ok := cfg.LLM.Providers[agent.Provider]; ok {
				agent.Model = provider.DefaultModel
			}
		}
	}
}

// ApplySessionDefaults backfills session scoping, reset, and default-agent
// settings. Runs on validated configs only.
func ApplySessionDefaults(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.Session.Scoping.DMScope == "" {
		cfg.Session.Scoping.DMScope = "main"
	}
	if cfg.Session.Reset.Mode == "" {
		cfg.Session.Reset.Mode = "never"
	}
	if strings.TrimSpace(cfg.Session.DefaultAgentID) == "" {
		if agent := cfg.Agents.DefaultAgent(); agent != nil {
			cfg.Session.DefaultAgentID = agent.ID
		}
	}
	if cfg.Session.Memory.MaxLines == 0 {
		cfg.Session.Memory.MaxLines = 400
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
}
