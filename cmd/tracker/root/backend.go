package root

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/dukerupert/togethertracker/internal/config"
	"github.com/dukerupert/togethertracker/internal/database"
	"github.com/dukerupert/togethertracker/internal/kv"
)

const redisPingTimeout = 2 * time.Second

// openStore opens the configured backend and returns a closer for it.
func openStore(cfg *config.Config, logger *slog.Logger) (*kv.Store, func() error, error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		logger.Warn("memory backend selected, nothing will be kept after exit")
		return kv.NewStore(kv.NewMemory(), logger), func() error { return nil }, nil

	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.Storage.RedisAddr})
		ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("connect redis %s: %w", cfg.Storage.RedisAddr, err)
		}
		logger.Debug("storage opened", "backend", "redis", "addr", cfg.Storage.RedisAddr)
		return kv.NewStore(kv.NewRedis(client, cfg.Storage.RedisPrefix), logger), client.Close, nil

	default:
		db, err := database.Open(cfg.Storage.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open database: %w", err)
		}
		logger.Debug("storage opened", "backend", "sqlite", "path", cfg.Storage.DBPath)
		return kv.NewStore(kv.NewSQLite(db), logger), db.Close, nil
	}
}
