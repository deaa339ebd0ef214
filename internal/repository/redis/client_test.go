package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/railway-assistant/internal/config"
	"github.com/railway-assistant/internal/domain"
	redisRepo "github.com/railway-assistant/internal/repository/redis"
)

func TestConnect_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := redisRepo.Connect(ctx, &config.RedisConfig{Host: "127.0.0.1", Port: 1}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "127.0.0.1:1")
}

func TestClient_Streams(t *testing.T) {
	getTestRedisClient(t) // skips without Redis

	ctx := context.Background()
	client, err := redisRepo.Connect(ctx, &config.RedisConfig{Host: "localhost", Port: 6379, DB: 1}, zap.NewNop())
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.Health(ctx))

	streams := client.Streams(0)
	require.NoError(t, streams.CreateConsumerGroup(ctx, testRequestStream, "client-group"))
	require.NoError(t, streams.PublishToStream(ctx, testRequestStream, domain.ActionRequestEvent{NextAction: "action_show_delay"}))

	messages, err := streams.ConsumeBatch(ctx, testRequestStream, "client-group", "c1", 10)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0].Data, "action_show_delay")
}
