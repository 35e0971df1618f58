// Package config handles the XDG configuration directory and runtime settings.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// AppName is the application directory name.
	AppName = "taskdeck"

	// ConfigFile is the optional settings file inside the config directory.
	ConfigFile = "config.yaml"

	// LogFile is the default diagnostic log filename.
	LogFile = "taskdeck.log"

	// EnvPrefix prefixes every environment override (TASKDECK_BASE_URL, ...).
	EnvPrefix = "TASKDECK"

	// DefaultBaseURL is the tasks endpoint used when nothing else is configured.
	DefaultBaseURL = "https://task-manager-backend-ftod.onrender.com/api/tasks"

	// DefaultTimeout bounds every API call.
	DefaultTimeout = 10 * time.Second

	// DefaultLogLevel is the zerolog level name used when none is configured.
	DefaultLogLevel = "info"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// BaseURL is the REST endpoint devoted to tasks.
	BaseURL string

	// Timeout bounds each API call.
	Timeout time.Duration

	// LogLevel is a zerolog level name.
	LogLevel string

	// LogFile is where diagnostics go while the terminal UI owns the screen.
	LogFile string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a new Config with defaults for the given config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/taskdeck or $HOME/.config/taskdeck.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{
		Dir:      dir,
		BaseURL:  DefaultBaseURL,
		Timeout:  DefaultTimeout,
		LogLevel: DefaultLogLevel,
		LogFile:  filepath.Join(dir, LogFile),
	}, nil
}

// Load builds a Config from defaults, an optional config.yaml in the config
// directory, a .env file in the working directory and TASKDECK_* variables,
// in increasing order of precedence.
//
// The result is not validated: callers apply command-line overrides first
// and then call Validate. The timeout must carry a unit ("10s", "1m").
func Load(configDir string) (*Config, error) {
	cfg, err := New(configDir)
	if err != nil {
		return nil, err
	}

	// A missing .env is the common case
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	v := viper.New()
	v.SetDefault("base_url", cfg.BaseURL)
	v.SetDefault("timeout", cfg.Timeout.String())
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("log_file", cfg.LogFile)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(cfg.SettingsPath())
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("invalid %s: %w", ConfigFile, err)
		}
	}

	timeout, err := time.ParseDuration(v.GetString("timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid timeout: %q (use a unit, e.g. 10s)", v.GetString("timeout"))
	}

	cfg.BaseURL = v.GetString("base_url")
	cfg.Timeout = timeout
	cfg.LogLevel = v.GetString("log_level")
	cfg.LogFile = v.GetString("log_file")
	return cfg, nil
}

// Validate checks the settings that the client depends on.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid base URL: %q", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("invalid timeout: %s", c.Timeout)
	}
	return nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// SettingsPath returns the path to the optional config.yaml.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}
