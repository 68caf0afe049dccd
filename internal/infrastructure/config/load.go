package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"indexprice/internal/domain/model"
)

// Load reads defaults, then the YAML file at path, then .env, then the
// process environment. A missing file is only an error when path is not
// DefaultPath.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case errors.Is(err, os.ErrNotExist) && path == DefaultPath:
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.Redis.URL = v
		cfg.Redis.Enabled = true
	}
	if v := os.Getenv("DERIBIT_BASE_URL"); v != "" {
		cfg.Source.BaseURL = v
	}
	if v := os.Getenv("API_V1_PREFIX"); v != "" {
		cfg.API.BasePath = v
	}
	if v := os.Getenv("SOURCE_MODE"); v != "" {
		cfg.Source.Mode = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("INGEST_CURRENCIES"); v != "" {
		cfg.Ingestion.Currencies = splitList(v)
	}

	if v := os.Getenv("SERVER_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid SERVER_PORT %q: %w", v, err)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv("FETCH_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid FETCH_INTERVAL %q: %w", v, err)
		}
		cfg.Ingestion.Interval = d
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d out of range", c.Server.Port))
	}

	switch c.Database.Store {
	case "postgres":
		if c.PostgresDSN() == "" {
			errs = append(errs, errors.New("database.url or database.host is required for the postgres store"))
		}
	case "memory":
	default:
		errs = append(errs, fmt.Errorf("database.store must be postgres or memory, got %q", c.Database.Store))
	}

	if _, err := c.SourceMode(); err != nil {
		errs = append(errs, err)
	}
	if c.Source.FailureRate < 0 || c.Source.FailureRate > 1 {
		errs = append(errs, errors.New("source.failure_rate must be between 0 and 1"))
	}

	if len(c.Ingestion.Currencies) == 0 {
		errs = append(errs, errors.New("ingestion.currencies must not be empty"))
	}
	if c.Ingestion.Interval <= 0 {
		errs = append(errs, errors.New("ingestion.interval must be positive"))
	}
	if c.Ingestion.MaxAttempts < 1 {
		errs = append(errs, errors.New("ingestion.max_attempts must be at least 1"))
	}
	if c.Ingestion.RetryDelay < 0 {
		errs = append(errs, errors.New("ingestion.retry_delay must not be negative"))
	}
	if c.Ingestion.WorkersPerTicker < 1 {
		errs = append(errs, errors.New("ingestion.workers_per_ticker must be at least 1"))
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("logging.format %q is not json or text", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func (c *Config) SourceMode() (model.SourceMode, error) {
	return model.ParseSourceMode(strings.ToLower(c.Source.Mode))
}

// PostgresDSN returns database.url when set, otherwise a URL built from the
// individual connection fields.
func (c *Config) PostgresDSN() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}
	if c.Database.Host == "" {
		return ""
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     net.JoinHostPort(c.Database.Host, strconv.Itoa(c.Database.Port)),
		Path:     "/" + c.Database.Name,
		RawQuery: url.Values{"sslmode": []string{c.Database.SSLMode}}.Encode(),
	}
	return u.String()
}

// RedisURL returns redis.url when set, otherwise a URL built from the
// individual connection fields.
func (c *Config) RedisURL() string {
	if c.Redis.URL != "" {
		return c.Redis.URL
	}
	u := url.URL{
		Scheme: "redis",
		Host:   net.JoinHostPort(c.Redis.Host, strconv.Itoa(c.Redis.Port)),
		Path:   "/" + strconv.Itoa(c.Redis.DB),
	}
	if c.Redis.Password != "" {
		u.User = url.UserPassword("", c.Redis.Password)
	}
	return u.String()
}
