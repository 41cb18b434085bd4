package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config fields from environment variables.
//
// Recognized variables:
//
//	DB_HOST, DB_PORT, DB_NAME, DB_USER, DB_PASSWORD, DB_SSL,
//	DB_POOL_SIZE, DB_TIMEOUT (milliseconds),
//	REDIS_HOST, REDIS_PORT, REDIS_PASSWORD, REDIS_DB, REDIS_PREFIX,
//	AUTH_SECRET_KEY, ACCESS_TOKEN_TTL, REFRESH_TOKEN_TTL (Go durations).
//
// Unset or unparsable values leave the current (default) value in place.
func parseEnv(c *Config) {
	envString(&c.Database.Host, "DB_HOST")
	envInt(&c.Database.Port, "DB_PORT")
	envString(&c.Database.Name, "DB_NAME")
	envString(&c.Database.User, "DB_USER")
	envString(&c.Database.Password, "DB_PASSWORD")
	envBool(&c.Database.SSL, "DB_SSL")
	envInt(&c.Database.PoolSize, "DB_POOL_SIZE")
	envMillis(&c.Database.ConnectTimeout, "DB_TIMEOUT")

	envString(&c.Redis.Host, "REDIS_HOST")
	envInt(&c.Redis.Port, "REDIS_PORT")
	envString(&c.Redis.Password, "REDIS_PASSWORD")
	envInt(&c.Redis.DB, "REDIS_DB")
	envString(&c.Redis.KeyPrefix, "REDIS_PREFIX")

	envString(&c.SecretKey, "AUTH_SECRET_KEY")
	envDuration(&c.AccessTokenTTL, "ACCESS_TOKEN_TTL")
	envDuration(&c.RefreshTokenTTL, "REFRESH_TOKEN_TTL")
}

func envString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

func envInt(dst *int, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func envBool(dst *bool, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v == "true"
	}
}

func envMillis(dst *time.Duration, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = time.Duration(n) * time.Millisecond
		}
	}
}

func envDuration(dst *time.Duration, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}

// DSN renders the settings as a pgx connection string.
func (c DatabaseConfig) DSN() string {
	sslmode := "disable"
	if c.SSL {
		sslmode = "require"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     c.Name,
		RawQuery: "sslmode=" + sslmode,
	}
	return u.String()
}

// Addr renders the host:port pair for the Redis client.
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
