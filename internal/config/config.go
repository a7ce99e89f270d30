// Package config provides configuration management using viper.
// It supports loading from YAML files and environment variable overrides.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Bot       BotConfig       `mapstructure:"bot"`
	Store     StoreConfig     `mapstructure:"store"`
	Whitelist WhitelistConfig `mapstructure:"whitelist"`
	Trivia    TriviaConfig    `mapstructure:"trivia"`
	Games     GamesConfig     `mapstructure:"games"`
	Dashboard DashboardConfig `mapstructure:"dashboard"`
}

// BotConfig holds Telegram bot configuration.
type BotConfig struct {
	Token string `mapstructure:"token"`
}

// StoreConfig holds the document store configuration.
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

// WhitelistConfig holds chat whitelist configuration.
type WhitelistConfig struct {
	Chats []int64 `mapstructure:"chats"`
}

// TriviaConfig holds trivia game configuration.
type TriviaConfig struct {
	ExpirySeconds int `mapstructure:"expiry_seconds"`
	RewardPoints  int `mapstructure:"reward_points"`
}

// Expiry returns the round expiry as a duration.
func (t *TriviaConfig) Expiry() time.Duration {
	return time.Duration(t.ExpirySeconds) * time.Second
}

// GamesConfig holds shared game configuration.
type GamesConfig struct {
	// WinDetection enables three-in-a-row detection in both tic-tac-toe
	// variants. Off by default: the legacy bot only ever ended games on
	// a full board.
	WinDetection bool `mapstructure:"win_detection"`
}

// DashboardConfig holds the read-only dashboard configuration.
type DashboardConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr"`
}

// Load reads configuration from file and environment variables.
// It looks for config.yaml in the config directory.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Environment variables use underscore separator and uppercase,
	// e.g. BOT_TOKEN, STORE_PATH, DASHBOARD_ADDR.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is OK - env vars can provide all config
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("store.path", "db.json")

	v.SetDefault("trivia.expiry_seconds", 120)
	v.SetDefault("trivia.reward_points", 5)

	v.SetDefault("games.win_detection", false)

	v.SetDefault("dashboard.enabled", true)
	v.SetDefault("dashboard.addr", ":4000")
}

// IsChatAllowed checks if a chat ID is in the whitelist.
func (c *Config) IsChatAllowed(chatID int64) bool {
	// Empty whitelist means all chats are allowed
	if len(c.Whitelist.Chats) == 0 {
		return true
	}
	for _, id := range c.Whitelist.Chats {
		if id == chatID {
			return true
		}
	}
	return false
}
