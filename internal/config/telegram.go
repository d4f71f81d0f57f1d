package config

type TelegramConfig struct {
	ApiToken string  `yaml:"token"`
	Chats    []int64 `yaml:"allowed-chats"`
}

func (t *TelegramConfig) Token() string {
	return t.ApiToken
}

// AllowedChats lists the chats served by the bot; empty means any chat.
func (t *TelegramConfig) AllowedChats() []int64 {
	return t.Chats
}
