package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourceMySQL    = "mysql"
	SourcePostgres = "postgres"
)

const (
	HandoffLog   = "log"
	HandoffSMTP  = "smtp"
	HandoffMySQL = "mysql"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Session  SessionConfig  `yaml:"session"`
	Checkout CheckoutConfig `yaml:"checkout"`
	SMTP     SMTPConfig     `yaml:"smtp"`
}

type ServerConfig struct {
	Port            string        `yaml:"port" validate:"required,numeric"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
}

type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

type CatalogConfig struct {
	Source        string `yaml:"source" validate:"oneof=embedded file mysql postgres"`
	Path          string `yaml:"path" validate:"required_if=Source file"`
	MySQLDSN      string `yaml:"mysql_dsn" validate:"required_if=Source mysql"`
	PostgresDSN   string `yaml:"postgres_dsn" validate:"required_if=Source postgres"`
	GenerateStart int    `yaml:"generate_start" validate:"gte=1"`
	GenerateCount int    `yaml:"generate_count" validate:"gte=0"`
	// Seed fixes the generator's random source. Zero picks a fresh one.
	Seed uint64 `yaml:"seed"`
}

type SessionConfig struct {
	Secret          string        `yaml:"secret" validate:"required,min=16"`
	TTL             time.Duration `yaml:"ttl" validate:"gt=0"`
	JanitorInterval time.Duration `yaml:"janitor_interval" validate:"gt=0"`
}

// CheckoutConfig picks where checkout snapshots are handed off to.
type CheckoutConfig struct {
	Handoff  string `yaml:"handoff" validate:"oneof=log smtp mysql"`
	MySQLDSN string `yaml:"mysql_dsn" validate:"required_if=Handoff mysql"`
}

type SMTPConfig struct {
	Addr string   `yaml:"addr" validate:"omitempty,hostname_port"`
	From string   `yaml:"from" validate:"required_with=Addr,omitempty,email"`
	To   []string `yaml:"to" validate:"required_with=Addr,dive,email"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8080",
			ShutdownTimeout: 10 * time.Second,
		},
		Log: LogConfig{Level: "info"},
		Catalog: CatalogConfig{
			Source:        SourceEmbedded,
			GenerateStart: 11,
			GenerateCount: 95,
		},
		Session: SessionConfig{
			Secret:          "change-me-in-production-please",
			TTL:             2 * time.Hour,
			JanitorInterval: time.Minute,
		},
		Checkout: CheckoutConfig{Handoff: HandoffLog},
	}
}

// Load builds the configuration from defaults, the YAML file at path (when
// path is not empty) and finally environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Checkout.Handoff == HandoffSMTP && c.SMTP.Addr == "" {
		return errors.New("invalid config: smtp handoff needs smtp.addr")
	}
	return nil
}

func applyEnv(cfg *Config) error {
	cfg.Server.Port = getenv("APP_PORT", cfg.Server.Port)
	cfg.Log.Level = getenv("LOG_LEVEL", cfg.Log.Level)

	cfg.Catalog.Source = getenv("CATALOG_SOURCE", cfg.Catalog.Source)
	cfg.Catalog.Path = getenv("CATALOG_PATH", cfg.Catalog.Path)
	cfg.Catalog.MySQLDSN = getenv("MYSQL_DSN", cfg.Catalog.MySQLDSN)
	cfg.Catalog.PostgresDSN = getenv("PG_DSN", cfg.Catalog.PostgresDSN)

	cfg.Session.Secret = getenv("SESSION_SECRET", cfg.Session.Secret)

	cfg.Checkout.Handoff = getenv("CHECKOUT_HANDOFF", cfg.Checkout.Handoff)
	cfg.Checkout.MySQLDSN = getenv("CHECKOUT_MYSQL_DSN", cfg.Checkout.MySQLDSN)

	cfg.SMTP.Addr = getenv("SMTP_ADDR", cfg.SMTP.Addr)
	cfg.SMTP.From = getenv("SMTP_FROM", cfg.SMTP.From)
	if to := getenv("SMTP_TO", ""); to != "" {
		cfg.SMTP.To = splitList(to)
	}

	var errs []error
	if v := getenv("CATALOG_SEED", ""); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("CATALOG_SEED: %w", err))
		}
		cfg.Catalog.Seed = seed
	}
	if v := getenv("SESSION_TTL", ""); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("SESSION_TTL: %w", err))
		}
		cfg.Session.TTL = ttl
	}
	return errors.Join(errs...)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
