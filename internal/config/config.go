package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/idilsaglam/lists/internal/source"
)

// Config holds application configuration.
type Config struct {
	API APIConfig
	UI  UIConfig
	Log LogConfig
}

// APIConfig says where the starting lists come from.
type APIConfig struct {
	Endpoint string
	Timeout  time.Duration
	File     string // when set, read this file instead of calling Endpoint
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme string
}

// LogConfig holds logger settings. The TUI owns the terminal, so logs always
// go to a file.
type LogConfig struct {
	File    string
	Verbose bool
}

var themes = []string{"classic", "neon", "mono"}

// New returns a viper instance with defaults, the optional config file and
// LISTS_ env overrides wired in. Callers may bind flags on it before Load.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("api.endpoint", source.DefaultEndpoint)
	v.SetDefault("api.timeout", "10s")
	v.SetDefault("api.file", "")
	v.SetDefault("ui.theme", "classic")
	v.SetDefault("log.file", defaultLogFile())
	v.SetDefault("log.verbose", false)

	v.SetConfigType("toml")
	if p := os.Getenv("LISTS_CONFIG"); p != "" {
		v.SetConfigFile(p)
	} else {
		v.AddConfigPath(filepath.Join(configHome(), "lists"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("LISTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file if present and unmarshals v.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the program cannot run with.
func (c Config) Validate() error {
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive, got %s", c.API.Timeout)
	}
	if c.API.File == "" {
		u, err := url.Parse(c.API.Endpoint)
		if err != nil {
			return fmt.Errorf("api.endpoint: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("api.endpoint: unsupported scheme %q", u.Scheme)
		}
	}
	ok := false
	for _, t := range themes {
		if strings.EqualFold(c.UI.Theme, t) {
			ok = true
		}
	}
	if !ok {
		return fmt.Errorf("ui.theme: unknown theme %q (want one of %s)", c.UI.Theme, strings.Join(themes, ", "))
	}
	return nil
}

func configHome() string {
	if d := os.Getenv("XDG_CONFIG_HOME"); d != "" {
		return d
	}
	return filepath.Join(os.Getenv("HOME"), ".config")
}

func defaultLogFile() string {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".local", "state")
	}
	return filepath.Join(dir, "lists", "lists.log")
}
