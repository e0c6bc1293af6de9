package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type StorageConfig struct {
	Backend string `mapstructure:"backend"` // text | json | sqlite
}

type LogConfig struct {
	Level string `mapstructure:"level"` // debug | info | warn | error
	File  string `mapstructure:"file"`  // empty: stderr for commands, discarded in the TUI
}

type ReminderConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type Config struct {
	DataFile string         `mapstructure:"data_file"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Autosave bool           `mapstructure:"autosave"`
	Watch    bool           `mapstructure:"watch"`
	Theme    string         `mapstructure:"theme"`
	Log      LogConfig      `mapstructure:"log"`
	Reminder ReminderConfig `mapstructure:"reminder"`
}

func Default() Config {
	return Config{
		DataFile: "TodoListItems.txt",
		Storage:  StorageConfig{Backend: "text"},
		Autosave: true,
		Watch:    false,
		Theme:    "classic",
		Log:      LogConfig{Level: "info"},
		Reminder: ReminderConfig{Enabled: true},
	}
}

// DefaultPath is ~/.config/todolist/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "todolist", "config.yaml"), nil
}

// Load reads path (or DefaultPath when empty) on top of Default. A missing
// file is fine; a broken one is not.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)

	v.SetDefault("data_file", cfg.DataFile)
	v.SetDefault("storage.backend", cfg.Storage.Backend)
	v.SetDefault("autosave", cfg.Autosave)
	v.SetDefault("watch", cfg.Watch)
	v.SetDefault("theme", cfg.Theme)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.file", cfg.Log.File)
	v.SetDefault("reminder.enabled", cfg.Reminder.Enabled)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config unmarshal: %w", err)
	}

	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))
	cfg.DataFile = expandHome(cfg.DataFile)
	cfg.Log.File = expandHome(cfg.Log.File)
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Storage.Backend {
	case "text", "json", "sqlite":
	default:
		return fmt.Errorf("storage.backend: unknown backend %q (want text|json|sqlite)", c.Storage.Backend)
	}
	if strings.TrimSpace(c.DataFile) == "" {
		return errors.New("data_file: required")
	}
	return nil
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}
