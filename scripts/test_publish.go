//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/railway-assistant/internal/domain"
)

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	actionName := flag.String("action", "action_show_schedule", "action to execute")
	intent := flag.String("intent", domain.IntentAskScheduleNext, "intent of the latest message")
	from := flag.String("from", "Łodzi", "departure city entity")
	to := flag.String("to", "Krakowa", "arrival city entity")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := domain.ActionRequestEvent{
		RequestID:  uuid.New(),
		NextAction: *actionName,
		Tracker: domain.Tracker{
			SenderID: "test-publish",
			LatestMessage: domain.Message{
				Intent: domain.Intent{Name: *intent},
				Entities: []domain.Entity{
					{Entity: domain.EntityFromCity, Value: *from},
					{Entity: domain.EntityToCity, Value: *to},
				},
			},
		},
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	// Запоминаем хвост стрима ответов до публикации
	lastID := "$"
	if last, err := client.XRevRangeN(ctx, domain.StreamActionDone, "+", "-", 1).Result(); err == nil && len(last) > 0 {
		lastID = last[0].ID
	}

	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: domain.StreamActionRequest,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("✅ Event published\n")
	fmt.Printf("   Stream: %s\n", domain.StreamActionRequest)
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Request ID: %s\n", event.RequestID)
	fmt.Printf("   Action: %s (%s → %s)\n", event.NextAction, *from, *to)

	fmt.Printf("\n⏳ Waiting for response in %s...\n", domain.StreamActionDone)

	deadline := time.Now().Add(30 * time.Second)
	for time.Now().Before(deadline) {
		streams, err := client.XRead(ctx, &redis.XReadArgs{
			Streams: []string{domain.StreamActionDone, lastID},
			Count:   10,
			Block:   time.Second,
		}).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			log.Fatalf("Failed to read responses: %v", err)
		}

		for _, stream := range streams {
			for _, msg := range stream.Messages {
				lastID = msg.ID

				raw, ok := msg.Values["data"].(string)
				if !ok {
					continue
				}
				var done domain.ActionDoneEvent
				if err := json.Unmarshal([]byte(raw), &done); err != nil {
					continue
				}
				if done.RequestID != event.RequestID {
					continue
				}

				fmt.Printf("\n✅ Response received!\n")
				pretty, _ := json.MarshalIndent(done, "", "  ")
				fmt.Printf("%s\n", pretty)
				return
			}
		}
	}

	fmt.Println("❌ Timeout waiting for response")
}
