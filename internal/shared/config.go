package shared

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

//go:embed config.example.toml
var exampleConf []byte

const (
	EnvAccessToken = "SPOTIFY_ACCESS_TOKEN"
	EnvLogLevel    = "LYRX_LOG_LEVEL"
)

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Catalog CatalogConfig `toml:"catalog"`
	Lyrics  LyricsConfig  `toml:"lyrics"`
	HTTP    HTTPConfig    `toml:"http"`
	Log     LogConfig     `toml:"log"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host           string   `toml:"host"`
	Port           int      `toml:"port"`
	AllowedOrigins []string `toml:"allowed_origins"`
	RateLimit      float64  `toml:"rate_limit"`
	RateBurst      int      `toml:"rate_burst"`
}

// CatalogConfig contains the Spotify Web API settings.
type CatalogConfig struct {
	BaseURL     string `toml:"base_url"`
	AccessToken string `toml:"access_token"`
}

// LyricsConfig contains the LRCLIB search settings.
type LyricsConfig struct {
	BaseURL   string `toml:"base_url"`
	Limit     int    `toml:"limit"`
	UserAgent string `toml:"user_agent"`
}

// HTTPConfig contains outbound request settings.
type HTTPConfig struct {
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level string `toml:"level"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Timeout returns the per-call upstream timeout.
func (h HTTPConfig) Timeout() time.Duration {
	return time.Duration(h.TimeoutSeconds) * time.Second
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Values missing from the file keep the embedded defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// ResolveConfig loads path when it exists and falls back to defaults otherwise,
// then applies the environment (after loading a .env file from the working directory).
func ResolveConfig(path string) (*Config, error) {
	if err := LoadDotEnv(".env"); err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			loaded, err := LoadConfig(path)
			if err != nil {
				return nil, err
			}
			config = loaded
		}
	}

	config.ApplyEnv(os.LookupEnv)
	return config, nil
}

// LoadDotEnv loads environment variables from the given files. A missing file is not an error;
// variables already present in the environment win.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("%w: failed to load %s: %v", ErrInvalidConfig, p, err)
		}
	}
	return nil
}

// ApplyEnv overlays environment variables on the config.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvAccessToken); ok && v != "" {
		c.Catalog.AccessToken = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
}

// Validate checks the settings the relay cannot run without.
func (c *Config) Validate() error {
	if c.Catalog.AccessToken == "" {
		return fmt.Errorf("%w: %s must be set", ErrMissingCredentials, EnvAccessToken)
	}
	if c.Catalog.BaseURL == "" || c.Lyrics.BaseURL == "" {
		return fmt.Errorf("%w: catalog and lyrics base_url are required", ErrInvalidConfig)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server port %d out of range", ErrInvalidConfig, c.Server.Port)
	}
	if c.Lyrics.Limit <= 0 {
		return fmt.Errorf("%w: lyrics limit must be positive", ErrInvalidConfig)
	}
	if c.HTTP.TimeoutSeconds <= 0 {
		return fmt.Errorf("%w: http timeout_seconds must be positive", ErrInvalidConfig)
	}
	return nil
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
