package config

import "time"

const DefaultPath = "configs/config.yaml"

type Config struct {
	Server struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
		RequestTimeout  time.Duration `yaml:"request_timeout"`
	} `yaml:"server"`

	API struct {
		BasePath string `yaml:"base_path"`
	} `yaml:"api"`

	Database struct {
		// Store is "postgres" or "memory".
		Store           string        `yaml:"store"`
		URL             string        `yaml:"url"`
		Host            string        `yaml:"host"`
		Port            int           `yaml:"port"`
		User            string        `yaml:"user"`
		Password        string        `yaml:"password"`
		Name            string        `yaml:"name"`
		SSLMode         string        `yaml:"sslmode"`
		MaxOpenConns    int           `yaml:"max_open_conns"`
		MaxIdleConns    int           `yaml:"max_idle_conns"`
		ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	} `yaml:"database"`

	Redis struct {
		Enabled   bool          `yaml:"enabled"`
		URL       string        `yaml:"url"`
		Host      string        `yaml:"host"`
		Port      int           `yaml:"port"`
		Password  string        `yaml:"password"`
		DB        int           `yaml:"db"`
		ResultTTL time.Duration `yaml:"result_ttl"`
		History   int           `yaml:"history"`
	} `yaml:"redis"`

	Source struct {
		// Mode is "live" (Deribit) or "test" (synthetic prices).
		Mode        string        `yaml:"mode"`
		BaseURL     string        `yaml:"base_url"`
		Timeout     time.Duration `yaml:"timeout"`
		FailureRate float64       `yaml:"failure_rate"`
	} `yaml:"source"`

	Ingestion struct {
		Currencies       []string      `yaml:"currencies"`
		Interval         time.Duration `yaml:"interval"`
		MaxAttempts      int           `yaml:"max_attempts"`
		RetryDelay       time.Duration `yaml:"retry_delay"`
		AttemptTimeout   time.Duration `yaml:"attempt_timeout"`
		WorkersPerTicker int           `yaml:"workers_per_ticker"`
	} `yaml:"ingestion"`

	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	var c Config

	c.Server.Port = 8000
	c.Server.ReadTimeout = 10 * time.Second
	c.Server.WriteTimeout = 35 * time.Second
	c.Server.ShutdownTimeout = 30 * time.Second
	c.Server.RequestTimeout = 30 * time.Second

	c.API.BasePath = "/api/v1"

	c.Database.Store = "postgres"
	c.Database.Host = "localhost"
	c.Database.Port = 5432
	c.Database.User = "postgres"
	c.Database.Name = "deribit"
	c.Database.SSLMode = "disable"
	c.Database.MaxOpenConns = 10
	c.Database.MaxIdleConns = 5
	c.Database.ConnMaxLifetime = 30 * time.Minute

	c.Redis.Host = "localhost"
	c.Redis.Port = 6379
	c.Redis.ResultTTL = 24 * time.Hour
	c.Redis.History = 50

	c.Source.Mode = "live"
	c.Source.BaseURL = "https://test.deribit.com/api/v2"
	c.Source.Timeout = 30 * time.Second

	c.Ingestion.Currencies = []string{"btc", "eth"}
	c.Ingestion.Interval = 60 * time.Second
	c.Ingestion.MaxAttempts = 3
	c.Ingestion.RetryDelay = 60 * time.Second
	c.Ingestion.AttemptTimeout = 45 * time.Second
	c.Ingestion.WorkersPerTicker = 1

	c.Logging.Level = "info"
	c.Logging.Format = "json"

	return &c
}
