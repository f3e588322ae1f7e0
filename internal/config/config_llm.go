package config

type LLMConfig struct {
	DefaultProvider string                       `yaml:"default_provider,omitempty"`
	Providers       map[string]LLMProviderConfig `yaml:"providers,omitempty"`
}

type LLMProviderConfig struct {
	APIKey       string `yaml:"api_key,omitempty"`
	DefaultModel string `yaml:"default_model,omitempty"`
	BaseURL      string `yaml:"base_url,omitempty"`
}
