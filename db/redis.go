package db

import (
	"context"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client
var Ctx = context.Background()

const (
	StageMetricsKey = "newscategorize:metrics:stages"
	MaxMetricsKept  = 1000
)

func ConnectRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		fmt.Println("REDIS_URL environment variable is not set")
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	Redis = redis.NewClient(opt)

	_, err = Redis.Ping(Ctx).Result()
	return err
}

func CloseRedis() {
	if Redis != nil {
		Redis.Close()
	}
}

// PushMetric prepends an entry to the capped metrics list.
func PushMetric(key string, data string) error {
	if err := Redis.LPush(Ctx, key, data).Err(); err != nil {
		return err
	}
	return Redis.LTrim(Ctx, key, 0, MaxMetricsKept-1).Err()
}
