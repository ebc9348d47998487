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
	Session    SessionConfig
	Workspaces WorkspacesConfig
	Layout     LayoutConfig
	UI         UIConfig
}

// SessionConfig holds sqlite settings for session persistence.
type SessionConfig struct {
	Path    string
	Restore bool
}

// WorkspacesConfig holds workspace naming.
type WorkspacesConfig struct {
	Names []string
}

// LayoutConfig holds layout behavior settings.
type LayoutConfig struct {
	Default       string
	MatrixColumns int
	FocusWarp     bool
}

// UIConfig holds presentation settings.
type UIConfig struct {
	ScreenName string
	Theme      string
	ShowStatus bool
}

// Load reads configuration from file and env. Env var overrides use prefix TILEWM_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("session.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "tilewm", "tilewm.db"))
	v.SetDefault("session.restore", true)
	v.SetDefault("workspaces.names", []string{"1", "2", "3", "4"})
	v.SetDefault("layout.default", "max")
	v.SetDefault("layout.matrix_columns", 2)
	v.SetDefault("layout.focus_warp", false)
	v.SetDefault("ui.screen_name", "main")
	v.SetDefault("ui.theme", "dark")
	v.SetDefault("ui.show_status", true)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("TILEWM_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "tilewm"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TILEWM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if len(c.Workspaces.Names) == 0 {
		c.Workspaces.Names = []string{"1"}
	}
	if c.Layout.MatrixColumns < 1 {
		c.Layout.MatrixColumns = 2
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed. Used by the settings command for non-sensitive preferences.
func Save(cfg Config) error {
	path := os.Getenv("TILEWM_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "tilewm", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("session.path", cfg.Session.Path)
	v.Set("session.restore", cfg.Session.Restore)
	v.Set("workspaces.names", cfg.Workspaces.Names)
	v.Set("layout.default", cfg.Layout.Default)
	v.Set("layout.matrix_columns", cfg.Layout.MatrixColumns)
	v.Set("layout.focus_warp", cfg.Layout.FocusWarp)
	v.Set("ui.screen_name", cfg.UI.ScreenName)
	v.Set("ui.theme", cfg.UI.Theme)
	v.Set("ui.show_status", cfg.UI.ShowStatus)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
