package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"orbit/internal/auth"
)

// Environment variables read by Load.
const (
	EnvAPIURL   = "ORBIT_API_URL"
	EnvLogFile  = "ORBIT_LOG_FILE"
	EnvLogLevel = "ORBIT_LOG_LEVEL"
)

// Config holds runtime settings for the orbit client.
//
// Units: RequestTimeout is a time.Duration; zero disables the timeout.
type Config struct {
	APIURL         string
	LogFile        string
	LogLevel       string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIURL = auth.DefaultBaseURL
	c.LogFile = defaultLogFile()
	c.LogLevel = "info"
	c.RequestTimeout = 30 * time.Second
}

// Load builds a Config from defaults, then the YAML file at path (if
// non-empty), then the environment. Flags are applied by the caller
// afterwards so that they take precedence.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}
	cfg.mergeEnv(os.LookupEnv)
	return cfg, nil
}

func (c *Config) mergeEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvAPIURL); ok && v != "" {
		c.APIURL = v
	}
	if v, ok := lookup(EnvLogFile); ok && v != "" {
		c.LogFile = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
}

// Validate checks that the configuration can be used.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("api url %q: %w", c.APIURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api url %q: scheme must be http or https", c.APIURL)
	}
	if u.Host == "" {
		return fmt.Errorf("api url %q: missing host", c.APIURL)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request timeout %s: must not be negative", c.RequestTimeout)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("log level %q: want debug, info, warn or error", s)
	}
}

func defaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "orbit.log"
	}
	return filepath.Join(dir, "orbit", "orbit.log")
}
