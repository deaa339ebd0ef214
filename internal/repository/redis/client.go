package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/railway-assistant/internal/config"
	"github.com/railway-assistant/internal/domain/repository"
)

// Client - подключение к Redis, через стримы которого ходят вызовы actions
type Client struct {
	rdb    *redis.Client
	logger *zap.Logger
}

// Connect создает клиента и проверяет соединение в пределах ctx
func Connect(ctx context.Context, cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr(), err)
	}

	logger.Info("Redis connected",
		zap.String("addr", cfg.Addr()),
		zap.Int("db", cfg.DB),
	)

	return &Client{rdb: rdb, logger: logger}, nil
}

// Streams - репозиторий стримов поверх этого подключения
func (c *Client) Streams(readTimeout time.Duration) repository.StreamRepository {
	return NewStreamRepository(c.rdb, readTimeout, c.logger)
}

func (c *Client) Health(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *Client) Close() error {
	c.logger.Info("Closing Redis connection")
	return c.rdb.Close()
}
