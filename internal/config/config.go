package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

type TgBot struct {
	Enabled          bool   `toml:"tg_bot_enabled"`
	TelegramApiToken string `toml:"telegram_api_token"`
}

type Server struct {
	Host       string `toml:"host"`
	Port       int    `toml:"port"`
	Debug      bool   `toml:"debug_mode"`
	SQLitePath string `toml:"sqlite_path"`
	// TopN is how many compositions the generator reports.
	TopN int `toml:"top_n"`
}

type Config struct {
	TgBot  TgBot
	Server Server
}

func New() (Config, error) {
	var tgBotCfg TgBot
	_, err := toml.DecodeFile("configs/bot.toml", &tgBotCfg)
	if err != nil {
		return Config{}, err
	}
	token := os.Getenv("TELEGRAM_APITOKEN")
	if token != "" {
		tgBotCfg.TelegramApiToken = token
	}

	var serverCfg Server
	_, err = toml.DecodeFile("configs/server.toml", &serverCfg)
	if err != nil {
		return Config{}, err
	}

	return Config{
		TgBot:  tgBotCfg,
		Server: serverCfg,
	}, nil
}
