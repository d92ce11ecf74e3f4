// Package config loads the dashboard configuration from an optional YAML
// file and environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"fx_dashboard/internal/feature/fxrates/adapters/fxapi"
	"fx_dashboard/internal/platform/redis"
)

// DefaultPath is read when FXDASH_CONFIG is unset.
const DefaultPath = "config.yaml"

// Config is the top-level configuration.
type Config struct {
	Server   Server       `yaml:"server"`
	Upstream Upstream     `yaml:"upstream"`
	Redis    redis.Config `yaml:"redis"`
	Cache    Cache        `yaml:"cache"`
	Logging  Logging      `yaml:"logging"`
}

// Server holds listener settings.
type Server struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Upstream locates the FX API.
type Upstream struct {
	BaseURL   string        `yaml:"base_url"`
	Timeout   time.Duration `yaml:"timeout"`
	RateLimit int           `yaml:"rate_limit"` // requests per minute, 0 = unlimited
}

// Cache configures the Redis response cache.
type Cache struct {
	Namespace   string `yaml:"namespace"`
	RefreshHour int    `yaml:"refresh_hour"`
	Location    string `yaml:"location"`
}

// Logging configures the application logger.
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server:   Server{Addr: ":8080", AllowedOrigins: []string{"*"}},
		Upstream: Upstream{BaseURL: fxapi.DefaultBaseURL, Timeout: fxapi.DefaultTimeout},
		Cache:    Cache{Namespace: "fx", RefreshHour: 16, Location: "Europe/Berlin"},
		Logging:  Logging{Level: "info", Format: "json"},
	}
}

// Load reads the YAML file at path over the defaults, then applies
// environment variable overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Path returns FXDASH_CONFIG or DefaultPath.
func Path() string {
	if p := os.Getenv("FXDASH_CONFIG"); p != "" {
		return p
	}
	return DefaultPath
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.Server.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("FX_API_BASE_URL"); v != "" {
		cfg.Upstream.BaseURL = v
	}
	if v := os.Getenv("FX_API_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("FX_API_TIMEOUT: %w", err)
		}
		cfg.Upstream.Timeout = d
	}
	if v := os.Getenv("FX_API_RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("FX_API_RATE_LIMIT: %w", err)
		}
		cfg.Upstream.RateLimit = n
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		cfg.Redis.Host = v
	}
	if v := os.Getenv("REDIS_PORT"); v != "" {
		cfg.Redis.Port = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("REDIS_DB: %w", err)
		}
		cfg.Redis.DB = n
	}
	if v := os.Getenv("CACHE_NAMESPACE"); v != "" {
		cfg.Cache.Namespace = v
	}
	if v := os.Getenv("CACHE_REFRESH_HOUR"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CACHE_REFRESH_HOUR: %w", err)
		}
		cfg.Cache.RefreshHour = n
	}
	if v := os.Getenv("CACHE_LOCATION"); v != "" {
		cfg.Cache.Location = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	return nil
}

// Validate rejects settings the server cannot start with.
func (c Config) Validate() error {
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("upstream base_url is required")
	}
	if c.Upstream.Timeout <= 0 {
		return fmt.Errorf("upstream timeout must be positive, got %v", c.Upstream.Timeout)
	}
	if c.Upstream.RateLimit < 0 {
		return fmt.Errorf("upstream rate_limit must not be negative, got %d", c.Upstream.RateLimit)
	}
	if c.Cache.RefreshHour < 0 || c.Cache.RefreshHour > 23 {
		return fmt.Errorf("cache refresh_hour must be within 0..23, got %d", c.Cache.RefreshHour)
	}
	return nil
}

// CacheLocation resolves Cache.Location, falling back to UTC.
func (c Config) CacheLocation() *time.Location {
	if c.Cache.Location == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Cache.Location)
	if err != nil {
		return time.UTC
	}
	return loc
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
