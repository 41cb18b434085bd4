// Package storage opens and owns the backing connections: PostgreSQL for
// user records (schema managed by the embedded migrations) and Redis for
// the token revocation marks.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"

	"github.com/productsample/authcore/config"
	"github.com/productsample/authcore/migrations"
	"github.com/productsample/authcore/repositories/users"
	"github.com/productsample/authcore/token"
)

// Store bundles the open connections and vends the repositories bound to
// them.
type Store struct {
	db    *sql.DB
	redis *redis.Client
}

// Open connects to PostgreSQL, applies pending migrations, and connects to
// Redis, failing fast when either backend is unreachable.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	db, err := sql.Open("pgx", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	db.SetMaxOpenConns(cfg.Database.PoolSize)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	if err := migrations.Up(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	rc := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rc.Ping(ctx).Err(); err != nil {
		db.Close()
		rc.Close()
		return nil, fmt.Errorf("redis ping error: %w", err)
	}

	return &Store{db: db, redis: rc}, nil
}

// Conn exposes the underlying database handle.
func (s *Store) Conn() *sql.DB { return s.db }

// Users returns the user repository bound to the store's connection.
func (s *Store) Users() users.Repository {
	return users.NewPostgresRepository(s.db)
}

// Revocations returns the revocation store bound to the Redis client.
func (s *Store) Revocations(prefix string) token.RevocationStore {
	return token.NewRedisRevocationStore(s.redis, prefix)
}

// Close releases both backend connections.
func (s *Store) Close() error {
	rerr := s.redis.Close()
	derr := s.db.Close()
	if derr != nil {
		return derr
	}
	return rerr
}
