package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines bot configuration.
type Config struct {
	Discord DiscordConfig `yaml:"discord"`
	Data    DataConfig    `yaml:"data"`
	Log     LogConfig     `yaml:"log"`
}

type DiscordConfig struct {
	Token   string `yaml:"token"`
	AppID   string `yaml:"app_id"`
	GuildID string `yaml:"guild_id"`
}

type DataConfig struct {
	Dir   string `yaml:"dir"`
	Watch bool   `yaml:"watch"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment
// variables. The Discord token is the only required setting.
func Load() (Config, error) {
	cfg := Config{
		Data: DataConfig{
			Dir:   "./data",
			Watch: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("GANGBOARD_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if token := os.Getenv("GANGBOARD_TOKEN"); token != "" {
		cfg.Discord.Token = token
	}
	if appID := os.Getenv("GANGBOARD_APP_ID"); appID != "" {
		cfg.Discord.AppID = appID
	}
	if guildID := os.Getenv("GANGBOARD_GUILD_ID"); guildID != "" {
		cfg.Discord.GuildID = guildID
	}
	if dir := os.Getenv("GANGBOARD_DATA_DIR"); dir != "" {
		cfg.Data.Dir = dir
	}
	if watchStr := os.Getenv("GANGBOARD_WATCH"); watchStr != "" {
		watch, err := strconv.ParseBool(watchStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid GANGBOARD_WATCH: %w", err)
		}
		cfg.Data.Watch = watch
	}
	if level := os.Getenv("GANGBOARD_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	if cfg.Discord.Token == "" {
		return Config{}, errors.New("discord token is required (GANGBOARD_TOKEN)")
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
