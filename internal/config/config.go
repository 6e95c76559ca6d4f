package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultReminderIntervalSeconds = 60
	defaultReminderBuffer          = 16
)

type Config struct {
	DataFile                string
	ReminderIntervalSeconds int
	ReminderBuffer          int
	DesktopNotifications    bool
}

func (c Config) ReminderInterval() time.Duration {
	return time.Duration(c.ReminderIntervalSeconds) * time.Second
}

// Load reads ~/.config/habitquest/config.json, creating it with defaults on
// first run. Environment variables prefixed HABITQUEST_ override file values.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("config: resolve home directory: %w", err)
	}
	return LoadFrom(filepath.Join(home, ".config", "habitquest"))
}

func LoadFrom(dir string) (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("habitquest")
	v.AutomaticEnv()

	v.SetDefault("data_file", filepath.Join(dir, "data.json"))
	v.SetDefault("reminder_interval_seconds", defaultReminderIntervalSeconds)
	v.SetDefault("reminder_buffer", defaultReminderBuffer)
	v.SetDefault("desktop_notifications", true)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("config: read %s: %w", dir, err)
		}
		// First run: persist the defaults so the user has a file to edit.
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Config{}, fmt.Errorf("config: create %s: %w", dir, err)
		}
		if err := v.WriteConfigAs(filepath.Join(dir, "config.json")); err != nil {
			return Config{}, fmt.Errorf("config: write defaults: %w", err)
		}
	}

	cfg := Config{
		DataFile:                v.GetString("data_file"),
		ReminderIntervalSeconds: v.GetInt("reminder_interval_seconds"),
		ReminderBuffer:          v.GetInt("reminder_buffer"),
		DesktopNotifications:    v.GetBool("desktop_notifications"),
	}
	if cfg.ReminderIntervalSeconds <= 0 {
		cfg.ReminderIntervalSeconds = defaultReminderIntervalSeconds
	}
	if cfg.ReminderBuffer <= 0 {
		cfg.ReminderBuffer = defaultReminderBuffer
	}
	return cfg, nil
}
