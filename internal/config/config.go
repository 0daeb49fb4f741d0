package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. HNSEARCH_API_BASE_URL
const EnvPrefix = "HNSEARCH"

// Config represents the application configuration
type Config struct {
	Version     int        `toml:"version" mapstructure:"version"`
	DefaultTerm string     `toml:"default_term" mapstructure:"default_term"`
	API         APIConfig  `toml:"api" mapstructure:"api"`
	UISettings  UISettings `toml:"ui" mapstructure:"ui"`
	Log         LogConfig  `toml:"log" mapstructure:"log"`
}

// APIConfig configures the search API client
type APIConfig struct {
	BaseURL     string `toml:"base_url" mapstructure:"base_url"`
	HitsPerPage int    `toml:"hits_per_page" mapstructure:"hits_per_page"`
	Timeout     string `toml:"timeout" mapstructure:"timeout"`
	UserAgent   string `toml:"user_agent" mapstructure:"user_agent"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	SubmitLabel string `toml:"submit_label" mapstructure:"submit_label"`
	MoreLabel   string `toml:"more_label" mapstructure:"more_label"`
	ShowHelp    bool   `toml:"show_help" mapstructure:"show_help"`
}

// LogConfig configures the log file
type LogConfig struct {
	File  string `toml:"file" mapstructure:"file"`
	Level string `toml:"level" mapstructure:"level"`
}

// TimeoutDuration returns the parsed request timeout, 0 when unset or invalid
func (a APIConfig) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(a.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// Validate reports every problem with the configuration at once
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.Version != 1 {
		result = multierror.Append(result, fmt.Errorf("unsupported config version %d", c.Version))
	}

	u, err := url.Parse(c.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		result = multierror.Append(result, fmt.Errorf("api.base_url must be an http(s) URL, got %q", c.API.BaseURL))
	}

	if c.API.HitsPerPage < 1 || c.API.HitsPerPage > 1000 {
		result = multierror.Append(result, fmt.Errorf("api.hits_per_page must be between 1 and 1000, got %d", c.API.HitsPerPage))
	}

	if c.API.Timeout != "" {
		if d, err := time.ParseDuration(c.API.Timeout); err != nil || d <= 0 {
			result = multierror.Append(result, fmt.Errorf("api.timeout must be a positive duration, got %q", c.API.Timeout))
		}
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		result = multierror.Append(result, fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level))
	}

	return result.ErrorOrNil()
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	v        *viper.Viper
	filePath string
}

// NewConfigService creates a config service reading the default config file.
// v carries flag bindings; nil creates a fresh viper instance.
func NewConfigService(v *viper.Viper) ConfigService {
	return NewConfigServiceAt(DefaultPath(), v)
}

// NewConfigServiceAt creates a config service for a specific file
func NewConfigServiceAt(path string, v *viper.Viper) ConfigService {
	if v == nil {
		v = viper.New()
	}
	return &configService{v: v, filePath: path}
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "hnsearch", "config.toml")
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the service's file. A missing file
// yields the defaults, still subject to environment and flag overrides.
func (cs *configService) Load() (*Config, error) {
	return cs.load(cs.filePath, false)
}

// LoadFromPath loads configuration from a specific path, which must exist
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	return cs.load(path, true)
}

func (cs *configService) load(path string, mustExist bool) (*Config, error) {
	v := cs.v
	setDefaults(v, DefaultConfig())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if errors.Is(err, os.ErrNotExist) {
		if mustExist {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
	} else {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:     1,
		DefaultTerm: "redux",
		API: APIConfig{
			BaseURL:     "https://hn.algolia.com/api/v1",
			HitsPerPage: 100,
			Timeout:     "10s",
			UserAgent:   "hnsearch",
		},
		UISettings: UISettings{
			SubmitLabel: "Search",
			MoreLabel:   "More",
			ShowHelp:    true,
		},
		Log: LogConfig{
			File:  "hnsearch.log",
			Level: "info",
		},
	}
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("version", cfg.Version)
	v.SetDefault("default_term", cfg.DefaultTerm)
	v.SetDefault("api.base_url", cfg.API.BaseURL)
	v.SetDefault("api.hits_per_page", cfg.API.HitsPerPage)
	v.SetDefault("api.timeout", cfg.API.Timeout)
	v.SetDefault("api.user_agent", cfg.API.UserAgent)
	v.SetDefault("ui.submit_label", cfg.UISettings.SubmitLabel)
	v.SetDefault("ui.more_label", cfg.UISettings.MoreLabel)
	v.SetDefault("ui.show_help", cfg.UISettings.ShowHelp)
	v.SetDefault("log.file", cfg.Log.File)
	v.SetDefault("log.level", cfg.Log.Level)
}
