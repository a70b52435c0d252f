package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// applyDefaults seeds Viper with defaults defined in Options.
// This centralizes default values and descriptions in one place.
func applyDefaults(v *viper.Viper) {
	for _, o := range Options() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load resolves configuration with precedence: defaults < file < env.
// The provided Viper instance is mutated with defaults, file contents,
// and env.
func Load(ctx context.Context, v *viper.Viper) error {
	// Configure Viper search paths. If SetConfigFile was provided
	// upstream, it takes precedence; these paths are harmless fallbacks.
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "md2html"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "md2html"))
		}
		v.AddConfigPath(".")
	}

	// Apply centralized defaults (lowest precedence)
	applyDefaults(v)

	// Read config file if present (overrides defaults)
	_ = v.ReadInConfig()

	// Environment variables: MD2HTML_* (highest among these sources)
	v.SetEnvPrefix("md2html")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Normalize dependent values post-merge
	if v.GetString("data_dir") == "" {
		v.Set("data_dir", defaultDataDir())
	}
	if strings.TrimSpace(v.GetString("site.dir")) == "" {
		v.Set("site.dir", ".")
	}
	return nil
}

// defaultDataDir resolves the default data dir:
// $XDG_DATA_HOME/md2html or ~/.local/share/md2html
func defaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "md2html")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "md2html")
}

// DefaultConfigPath resolves the standard config.toml location.
func DefaultConfigPath() string {
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		home, _ := os.UserHomeDir()
		xdg = filepath.Join(home, ".config")
	}
	return filepath.Join(xdg, "md2html", "config.toml")
}

type Option struct {
	Key     string
	Default any
	Comment string
}

// CachePath builds the render-cache sqlite path from data_dir rules.
func CachePath(v *viper.Viper) string {
	dir := v.GetString("data_dir")
	if dir == "" {
		dir = defaultDataDir()
	}
	// Expand ~ for convenience
	if len(dir) > 0 && dir[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, dir[1:])
		}
	}
	return filepath.Join(dir, "md2html.db")
}

// Options returns the configuration options and their meanings.
func Options() []Option {
	return []Option{
		{Key: "data_dir", Default: defaultDataDir(), Comment: "Directory for local state; render cache is data_dir/md2html.db"},
		{Key: "http_addr", Default: ":8080", Comment: "HTTP listen address for the serve command"},

		{Key: "site.dir", Default: ".", Comment: "Directory of markdown pages for build/serve"},

		{Key: "cache.enabled", Default: true, Comment: "Reuse rendered HTML for unchanged sources (build/serve)"},

		{Key: "preview.style", Default: "dark", Comment: "Glamour style for terminal preview"},
		{Key: "preview.width", Default: 0, Comment: "Preview word-wrap width; 0 autodetects the terminal"},
	}
}
