package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Telegram TelegramConfig
	GitHub   GitHubConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type TelegramConfig struct {
	BotToken       string
	BaseURL        string
	RequestTimeout time.Duration
}

type GitHubConfig struct {
	Token          string
	Repo           string
	FilePath       string
	BaseURL        string
	RequestTimeout time.Duration
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// .env опционален: в контейнере конфигурация приходит из окружения
	_ = viper.ReadInConfig()

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Telegram: TelegramConfig{
			BotToken:       viper.GetString("TELEGRAM_BOT_TOKEN"),
			BaseURL:        viper.GetString("TELEGRAM_BASE_URL"),
			RequestTimeout: time.Duration(viper.GetInt("TELEGRAM_REQUEST_TIMEOUT")) * time.Second,
		},
		GitHub: GitHubConfig{
			Token:          viper.GetString("GITHUB_TOKEN"),
			Repo:           viper.GetString("GITHUB_REPO"),
			FilePath:       viper.GetString("GITHUB_FILE_PATH"),
			BaseURL:        viper.GetString("GITHUB_BASE_URL"),
			RequestTimeout: time.Duration(viper.GetInt("GITHUB_REQUEST_TIMEOUT")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 10000
	}
	if cfg.Telegram.BaseURL == "" {
		cfg.Telegram.BaseURL = "https://api.telegram.org"
	}
	if cfg.Telegram.RequestTimeout == 0 {
		cfg.Telegram.RequestTimeout = 30 * time.Second
	}
	if cfg.GitHub.BaseURL == "" {
		cfg.GitHub.BaseURL = "https://api.github.com"
	}
	if cfg.GitHub.FilePath == "" {
		cfg.GitHub.FilePath = "locations.json"
	}
	if cfg.GitHub.RequestTimeout == 0 {
		cfg.GitHub.RequestTimeout = 30 * time.Second
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// TelegramConfigured сообщает, настроен ли токен бота (для статусной страницы)
func (c *Config) TelegramConfigured() bool {
	return c.Telegram.BotToken != ""
}

// GitHubConfigured сообщает, настроен ли доступ к репозиторию
func (c *Config) GitHubConfigured() bool {
	return c.GitHub.Token != "" && c.GitHub.Repo != ""
}
