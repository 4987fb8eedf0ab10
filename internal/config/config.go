package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"leadbook/internal/auth"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	EnvProduction = "production"

	// DevSecret signs tokens outside production when JWT_SECRET is unset.
	DevSecret = "leadbook-dev-secret-change-me"
)

type Config struct {
	Env         string        `yaml:"app_env"`
	ListenAddr  string        `yaml:"listen_addr"`
	StoreDriver string        `yaml:"store_driver"`
	DatabaseURL string        `yaml:"database_url"`
	SQLitePath  string        `yaml:"sqlite_path"`
	RedisURL    string        `yaml:"redis_url"`
	JWTSecret   string        `yaml:"jwt_secret"`
	TokenTTL    time.Duration `yaml:"token_ttl"`
	AutoMigrate bool          `yaml:"auto_migrate"`
	SeedDemo    bool          `yaml:"seed_demo"`
	LogLevel    string        `yaml:"log_level"`
	LogFormat   string        `yaml:"log_format"`
	H2C         bool          `yaml:"h2c"`
}

func Defaults() Config {
	return Config{
		Env:         "development",
		ListenAddr:  ":8080",
		StoreDriver: DriverSQLite,
		SQLitePath:  "leadbook.db",
		JWTSecret:   DevSecret,
		TokenTTL:    24 * time.Hour,
		AutoMigrate: true,
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

// Load layers defaults, the YAML file named by CONFIG_FILE, and the process
// environment (after .env has been folded into it), later layers winning.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: .env: %w", err)
	}
	cfg := Defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return cfg, err
		}
	}
	if err := cfg.mergeEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) mergeFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"APP_ENV":      &c.Env,
		"LISTEN_ADDR":  &c.ListenAddr,
		"STORE_DRIVER": &c.StoreDriver,
		"DATABASE_URL": &c.DatabaseURL,
		"SQLITE_PATH":  &c.SQLitePath,
		"REDIS_URL":    &c.RedisURL,
		"JWT_SECRET":   &c.JWTSecret,
		"LOG_LEVEL":    &c.LogLevel,
		"LOG_FORMAT":   &c.LogFormat,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	bools := map[string]*bool{
		"AUTO_MIGRATE": &c.AutoMigrate,
		"SEED_DEMO":    &c.SeedDemo,
		"H2C":          &c.H2C,
	}
	for key, dst := range bools {
		v, ok := lookup(key)
		if !ok || v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", key, err)
		}
		*dst = b
	}
	if v, ok := lookup("TOKEN_TTL"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: TOKEN_TTL: %w", err)
		}
		c.TokenTTL = d
	}
	return nil
}

func (c Config) Production() bool { return c.Env == EnvProduction }

func (c Config) Validate() error {
	switch c.StoreDriver {
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config: DATABASE_URL is required for the postgres store")
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("config: SQLITE_PATH is required for the sqlite store")
		}
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if len(c.JWTSecret) < auth.MinSecretLen {
		return fmt.Errorf("config: JWT_SECRET must be at least %d bytes", auth.MinSecretLen)
	}
	if c.Production() && c.JWTSecret == DevSecret {
		return fmt.Errorf("config: JWT_SECRET must be set in production")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("config: TOKEN_TTL must be positive")
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("config: LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	return nil
}
