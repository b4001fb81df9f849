package cache

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Client *redis.Client

const (
	servicesKey = "servicos:all"
	servicesTTL = 5 * time.Minute
)

// Init connects to Redis when REDIS_ADDR is set. The cache is optional:
// without it every listing goes straight to the database.
func Init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR is not set, service cache disabled")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Printf("Failed to connect to Redis, service cache disabled: %v", err)
		return
	}

	Client = client
	log.Println("✅ Connected to Redis")
}

// GetServices returns the cached service listing, if any.
func GetServices(ctx context.Context) ([]byte, bool) {
	if Client == nil {
		return nil, false
	}

	payload, err := Client.Get(ctx, servicesKey).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

// SetServices stores the service listing JSON.
func SetServices(ctx context.Context, payload []byte) {
	if Client == nil {
		return
	}

	if err := Client.Set(ctx, servicesKey, payload, servicesTTL).Err(); err != nil {
		log.Printf("Failed to cache service listing: %v", err)
	}
}

// InvalidateServices drops the cached listing after a write.
func InvalidateServices(ctx context.Context) {
	if Client == nil {
		return
	}

	if err := Client.Del(ctx, servicesKey).Err(); err != nil {
		log.Printf("Failed to invalidate service listing cache: %v", err)
	}
}
