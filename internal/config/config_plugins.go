package config

type PluginsConfig struct {
	Enabled *bool                        `yaml:"enabled,omitempty"`
	Load    PluginLoadConfig             `yaml:"load,omitempty"`
	Entries map[string]PluginEntryConfig `yaml:"entries,omitempty"`
	Allow   []string                     `yaml:"allow,omitempty"`
	Deny    []string                     `yaml:"deny,omitempty"`
	Slots   PluginSlotsConfig            `yaml:"slots,omitempty"`
}

type PluginLoadConfig struct {
	Paths []string `yaml:"paths,omitempty"`
}

type PluginEntryConfig struct {
	Enabled *bool          `yaml:"enabled,omitempty"`
	Path    string         `yaml:"path,omitempty"`
	Config  map[string]any `yaml:"config,omitempty"`
}

// PluginSlotsConfig assigns plugins to named slots. A slot names the plugin
// that provides a built-in capability.
type PluginSlotsConfig struct {
	Memory string `yaml:"memory,omitempty"`
}

// LoadingEnabled reports whether plugin loading is on. Unset means enabled.
func (p PluginsConfig) LoadingEnabled() bool {
	return p.Enabled == nil || *p.Enabled
}
