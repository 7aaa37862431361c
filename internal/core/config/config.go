package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config represents the top-level application config.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	External ExternalConfig `koanf:"external"`
	Intake   IntakeConfig   `koanf:"intake"`
}

type ServerConfig struct {
	Port int    `koanf:"port"`
	Host string `koanf:"host"`
	Mode string `koanf:"mode"` // debug | release
}

type DatabaseConfig struct {
	DSN          string `koanf:"dsn"`
	MaxOpenConns int    `koanf:"max_open_conns"`
	MaxIdleConns int    `koanf:"max_idle_conns"`
	AutoMigrate  bool   `koanf:"auto_migrate"`
}

// ExternalConfig points at the read-only intake feed owned by the
// reception system.
type ExternalConfig struct {
	Driver         string `koanf:"driver"` // mysql | postgres
	DSN            string `koanf:"dsn"`
	Table          string `koanf:"table"`
	CategoryFilter string `koanf:"category_filter"`
	FetchLimit     int    `koanf:"fetch_limit"`
}

type IntakeConfig struct {
	DefaultCategory string `koanf:"default_category"`
	ScanCacheTTL    string `koanf:"scan_cache_ttl"` // parsed and validated on startup
	PollInterval    string `koanf:"poll_interval"`
	AutoAssign      bool   `koanf:"auto_assign"`
	BatchLimit      int    `koanf:"batch_limit"`
}

func (c IntakeConfig) ScanCacheTTLDuration() time.Duration {
	d, err := time.ParseDuration(c.ScanCacheTTL)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

func (c IntakeConfig) PollIntervalDuration() time.Duration {
	d, err := time.ParseDuration(c.PollInterval)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d (must be 1-65535)", c.Server.Port)
	}
	if strings.TrimSpace(c.Server.Host) == "" {
		return fmt.Errorf("server.host is required")
	}
	if c.Server.Mode != "debug" && c.Server.Mode != "release" {
		return fmt.Errorf("invalid server.mode %q (must be debug or release)", c.Server.Mode)
	}

	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if c.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("database.max_open_conns must be > 0")
	}
	if c.Database.MaxIdleConns <= 0 {
		return fmt.Errorf("database.max_idle_conns must be > 0")
	}

	if c.External.Driver != "mysql" && c.External.Driver != "postgres" {
		return fmt.Errorf("unsupported external.driver %q (must be mysql or postgres)", c.External.Driver)
	}
	if strings.TrimSpace(c.External.DSN) == "" {
		return fmt.Errorf("external.dsn is required")
	}
	if strings.TrimSpace(c.External.Table) == "" {
		return fmt.Errorf("external.table is required")
	}
	if c.External.FetchLimit <= 0 {
		return fmt.Errorf("external.fetch_limit must be > 0")
	}

	if strings.TrimSpace(c.Intake.DefaultCategory) == "" {
		return fmt.Errorf("intake.default_category is required")
	}
	if ttl, err := time.ParseDuration(c.Intake.ScanCacheTTL); err != nil || ttl <= 0 {
		return fmt.Errorf("invalid intake.scan_cache_ttl %q", c.Intake.ScanCacheTTL)
	}
	if interval, err := time.ParseDuration(c.Intake.PollInterval); err != nil || interval <= 0 {
		return fmt.Errorf("invalid intake.poll_interval %q", c.Intake.PollInterval)
	}
	if c.Intake.BatchLimit <= 0 {
		return fmt.Errorf("intake.batch_limit must be > 0")
	}

	return nil
}

// Load parses config from file + env and validates it.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"server.port":              8080,
		"server.host":              "0.0.0.0",
		"server.mode":              "release",
		"database.dsn":             "postgres://localhost:5432/turnio?sslmode=disable",
		"database.max_open_conns":  25,
		"database.max_idle_conns":  25,
		"database.auto_migrate":    true,
		"external.driver":          "mysql",
		"external.dsn":             "",
		"external.table":           "intake_records",
		"external.category_filter": "general",
		"external.fetch_limit":     100,
		"intake.default_category":  "A",
		"intake.scan_cache_ttl":    "10s",
		"intake.poll_interval":     "30s",
		"intake.auto_assign":       true,
		"intake.batch_limit":       100,
	}
	for key, value := range defaults {
		k.Set(key, value)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider("TURNIO_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "TURNIO_")), "__", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
