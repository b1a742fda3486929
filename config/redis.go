package config

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// ConnectRedis initializes the shared redis client. Redis is optional: when
// no address is configured or the server is unreachable the client stays nil
// and callers fall back to in-memory storage.
func ConnectRedis() {
	var opt *redis.Options
	if AppConfig.RedisURL != "" {
		parsedOpt, err := redis.ParseURL(AppConfig.RedisURL)
		if err != nil {
			log.Println("Failed to parse Redis URL:", err)
			log.Println("Running without redis, sessions held in memory")
			return
		}
		opt = parsedOpt
	} else if AppConfig.RedisAddr != "" {
		opt = &redis.Options{Addr: AppConfig.RedisAddr}
	} else {
		log.Println("Redis not configured, sessions held in memory")
		return
	}

	RedisClient = redis.NewClient(opt)

	if _, err := RedisClient.Ping(context.Background()).Result(); err != nil {
		log.Println("Redis connection failed:", err)
		log.Println("Running without redis, sessions held in memory")
		RedisClient = nil
		return
	}

	log.Println("Redis connected")
}

func CloseRedis() {
	if RedisClient != nil {
		RedisClient.Close()
		log.Println("Redis connection closed")
	}
}
