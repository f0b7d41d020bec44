package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Ledger   LedgerConfig   `mapstructure:"ledger"`
	Log      LogConfig      `mapstructure:"log"`
	Tracing  TracingConfig  `mapstructure:"tracing"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

// AuthConfig lists the roles treated as privileged (finance/admin capability).
type AuthConfig struct {
	PrivilegedRoles []string `mapstructure:"privileged_roles"`
}

type LedgerConfig struct {
	DefaultAdvanceLimit   string `mapstructure:"default_advance_limit"` // decimal string
	Currency              string `mapstructure:"currency"`
	AdvanceNumberPrefix   string `mapstructure:"advance_number_prefix"`
	AdvanceNumberAttempts int    `mapstructure:"advance_number_attempts"`
}

// AdvanceLimit parses the configured default advance limit.
func (l LedgerConfig) AdvanceLimit() (decimal.Decimal, error) {
	limit, err := decimal.NewFromString(l.DefaultAdvanceLimit)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing ledger.default_advance_limit: %w", err)
	}
	if limit.IsNegative() {
		return decimal.Zero, errors.New("ledger.default_advance_limit must not be negative")
	}
	return limit, nil
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

type TracingConfig struct {
	OTLPEndpoint string `mapstructure:"otlp_endpoint"` // empty = tracing disabled
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Validate checks settings the service cannot start without.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("jwt.secret is required")
	}
	if len(c.Auth.PrivilegedRoles) == 0 {
		return errors.New("auth.privileged_roles must name at least one role")
	}
	if c.Ledger.AdvanceNumberAttempts < 1 {
		return errors.New("ledger.advance_number_attempts must be positive")
	}
	if _, err := c.Ledger.AdvanceLimit(); err != nil {
		return err
	}
	return nil
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: PSL_ (POD Seller Ledger).
// Nested keys use underscore: PSL_DATABASE_HOST, PSL_JWT_SECRET, etc.
// A .env file in the working directory, if present, is loaded into the
// process environment first.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "seller_ledger")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.enabled", true)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "pod-back-office")
	v.SetDefault("auth.privileged_roles", []string{"ADMIN", "SUPER_ADMIN", "FINANCE"})
	v.SetDefault("ledger.default_advance_limit", "5000")
	v.SetDefault("ledger.currency", "USD")
	v.SetDefault("ledger.advance_number_prefix", "ADV")
	v.SetDefault("ledger.advance_number_attempts", 5)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("tracing.otlp_endpoint", "")
	v.SetDefault("metrics.enabled", true)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: PSL_DATABASE_HOST -> database.host
	v.SetEnvPrefix("PSL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required; env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
