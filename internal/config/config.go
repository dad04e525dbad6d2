// Package config loads lichen settings from defaults, a YAML file, and
// LICHEN_* environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const appName = "lichen"

type Config struct {
	DBPath   string       `mapstructure:"db_path"`
	LogLevel string       `mapstructure:"log_level"`
	Sort     string       `mapstructure:"sort"`
	Editor   EditorConfig `mapstructure:"editor"`
	View     ViewConfig   `mapstructure:"view"`
}

type EditorConfig struct {
	ShowLineNumbers bool `mapstructure:"show_line_numbers"`
	LiveTransforms  bool `mapstructure:"live_transforms"`
	ShowToolbar     bool `mapstructure:"show_toolbar"`
	TabWidth        int  `mapstructure:"tab_width"`
}

type ViewConfig struct {
	Width int `mapstructure:"width"` // 0 disables wrapping
}

// Load reads the config file at path, or config.yaml in the config
// directory when path is empty. A missing default file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		dir, err := ConfigDir()
		if err != nil {
			return nil, fmt.Errorf("get config dir: %w", err)
		}
		v.SetConfigName("config")
		v.AddConfigPath(dir)
	}

	dataDir, err := DataDir()
	if err != nil {
		return nil, fmt.Errorf("get data dir: %w", err)
	}
	v.SetDefault("db_path", filepath.Join(dataDir, "notes.db"))
	v.SetDefault("log_level", "info")
	v.SetDefault("sort", "newest")
	v.SetDefault("editor.show_line_numbers", false)
	v.SetDefault("editor.live_transforms", true)
	v.SetDefault("editor.show_toolbar", true)
	v.SetDefault("editor.tab_width", 4)
	v.SetDefault("view.width", 80)

	v.SetEnvPrefix(appName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.DBPath = expandHome(cfg.DBPath)
	return &cfg, nil
}

// SlogLevel maps LogLevel to a slog level. Unknown names are info.
func (c *Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// ConfigDir returns $XDG_CONFIG_HOME/lichen, or ~/.config/lichen.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// DataDir returns $XDG_DATA_HOME/lichen, or ~/.local/share/lichen.
func DataDir() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", appName), nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
