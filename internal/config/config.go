package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Keys     KeysConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// KeysConfig holds keybinding overrides.
type KeysConfig struct {
	Dismiss string
	Menu    string
	Palette string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	StageTitle string
}

// Load reads configuration from file and env. Env var overrides use prefix MENUSTACK_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "menustack", "menustack.db"))
	v.SetDefault("keys.dismiss", "esc")
	v.SetDefault("keys.menu", "m")
	v.SetDefault("keys.palette", "ctrl+k")
	v.SetDefault("ui.stage_title", "Stage")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("MENUSTACK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "menustack"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("MENUSTACK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	c.Database.Path = v.GetString("database.path")
	c.Keys.Dismiss = NormalizeKey(v.GetString("keys.dismiss"))
	c.Keys.Menu = NormalizeKey(v.GetString("keys.menu"))
	c.Keys.Palette = NormalizeKey(v.GetString("keys.palette"))
	c.UI.StageTitle = v.GetString("ui.stage_title")

	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.Database.Path) == "" {
		return fmt.Errorf("config: database.path must not be empty")
	}
	names := []struct {
		name string
		key  string
	}{
		{"keys.dismiss", c.Keys.Dismiss},
		{"keys.menu", c.Keys.Menu},
		{"keys.palette", c.Keys.Palette},
	}
	seen := make(map[string]string, len(names))
	for _, n := range names {
		if n.key == "" {
			return fmt.Errorf("config: %s must not be empty", n.name)
		}
		if other, dup := seen[n.key]; dup {
			return fmt.Errorf("config: %s and %s both bound to %q", n.name, other, n.key)
		}
		seen[n.key] = n.name
	}
	return nil
}

// NormalizeKey canonicalizes a key chord name the way bubbletea reports it.
func NormalizeKey(k string) string {
	s := strings.ToLower(strings.TrimSpace(k))
	s = strings.ReplaceAll(s, "control+", "ctrl+")
	s = strings.ReplaceAll(s, "return", "enter")
	if s == " " || s == "spacebar" {
		return "space"
	}
	return s
}
