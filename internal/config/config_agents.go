package config

import "strings"

type AgentsConfig struct {
	List     []AgentConfig `yaml:"list,omitempty"`
	Defaults AgentDefaults `yaml:"defaults,omitempty"`
}

// AgentConfig describes a single agent. Workspace is the agent's working
// directory; two agents must not share one.
type AgentConfig struct {
	ID        string `yaml:"id,omitempty"`
	Name      string `yaml:"name,omitempty"`
	Default   bool   `yaml:"default,omitempty"`
	Workspace string `yaml:"workspace,omitempty"`
	Provider  string `yaml:"provider,omitempty"`
	Model     string `yaml:"model,omitempty"`
}

type AgentDefaults struct {
	Provider string `yaml:"provider,omitempty"`
	Model    string `yaml:"model,omitempty"`
}

// DefaultAgent returns the agent marked default, falling back to the first
// configured agent. Returns nil when no agents are configured.
func (a AgentsConfig) DefaultAgent() *AgentConfig {
	for i := range a.List {
		if a.List[i].Default {
			return &a.List[i]
		}
	}
	if len(a.List) > 0 {
		return &a.List[0]
	}
	return nil
}

// Agent looks up an agent by id.
func (a AgentsConfig) Agent(id string) (*AgentConfig, bool) {
	id = strings.TrimSpace(id)
	for i := range a.List {
		if a.List[i].ID == id {
			return &a.List[i], true
		}
	}
	return nil, false
}
