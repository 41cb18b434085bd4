// Package config handles configuration for the authentication service,
// including defaults and an environment-variable overlay.
package config

import "time"

// Config holds runtime settings.
//
// Fields:
//   - Database: PostgreSQL connection settings (composed into a pgx DSN).
//   - Redis: revocation-store settings.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use the
//     development default in production.
//   - AccessTokenTTL / RefreshTokenTTL: token lifetimes.
type Config struct {
	Database        DatabaseConfig
	Redis           RedisConfig
	SecretKey       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// DatabaseConfig describes the PostgreSQL backend.
type DatabaseConfig struct {
	Host           string
	Port           int
	Name           string
	User           string
	Password       string
	SSL            bool
	PoolSize       int
	ConnectTimeout time.Duration
}

// RedisConfig describes the Redis backend used for token revocation.
type RedisConfig struct {
	Host      string
	Port      int
	Password  string
	DB        int
	KeyPrefix string
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.Database = DatabaseConfig{
		Host:           "localhost",
		Port:           5432,
		Name:           "product_sample",
		User:           "postgres",
		Password:       "",
		SSL:            false,
		PoolSize:       10,
		ConnectTimeout: 30 * time.Second,
	}
	c.Redis = RedisConfig{
		Host:      "localhost",
		Port:      6379,
		DB:        0,
		KeyPrefix: "app:",
	}
	c.SecretKey = "secretKey"
	c.AccessTokenTTL = time.Hour
	c.RefreshTokenTTL = 7 * 24 * time.Hour
}

// Load builds a Config by applying defaults and then overlaying values from
// environment variables.
func Load() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	return cfg
}
