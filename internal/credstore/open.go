package credstore

import (
	"context"
	"fmt"

	"github.com/anrokk/SportMap-Client/internal/config"
)

// Open builds the backend named by CREDSTORE_BACKEND.
func Open(cfg config.Config) (Store, error) {
	switch cfg.CredStoreBackend {
	case "", "sqlite":
		return NewSQLiteStore(cfg.CredStorePath)
	case "redis":
		client := ConnectRedis(cfg.RedisAddr, cfg.RedisPassword)
		if client == nil {
			return nil, fmt.Errorf("redis credstore selected but REDIS_ADDR is empty")
		}
		return NewRedisStore(client), nil
	case "postgres":
		pool, err := ConnectPostgres(cfg.PostgresURL)
		if err != nil {
			return nil, err
		}
		store := NewPostgresStore(pool)
		if err := store.EnsureSchema(context.Background()); err != nil {
			pool.Close()
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown credstore backend %q", cfg.CredStoreBackend)
	}
}
