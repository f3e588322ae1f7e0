package config

type ChannelsConfig struct {
	Telegram TelegramConfig `yaml:"telegram,omitempty"`
	Discord  DiscordConfig  `yaml:"discord,omitempty"`
}

type TelegramConfig struct {
	Enabled  bool   `yaml:"enabled,omitempty"`
	BotToken string `yaml:"bot_token,omitempty"`
}

type DiscordConfig struct {
	Enabled  bool   `yaml:"enabled,omitempty"`
	BotToken string `yaml:"bot_token,omitempty"`
	AppID    string `yaml:"app_id,omitempty"`
}
