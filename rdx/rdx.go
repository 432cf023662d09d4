package rdx

import (
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"fairway/globals"
)

var Conn *redis.Client

func init() {
	Conn = redis.NewClient(&redis.Options{
		Addr: globals.Getenv("REDIS_ADDR", "localhost:6379"),
	})
}

// --- Session token helpers ---

func RdxSetWithTTL(key, value string, ttl time.Duration) error {
	return Conn.Set(globals.Ctx, key, value, ttl).Err()
}

func RdxDel(key string) error {
	return Conn.Del(globals.Ctx, key).Err()
}

// PurgeExpiredSessions drops session keys whose TTL has lapsed. Redis expires
// them on its own; this just logs how many remain for visibility.
func PurgeExpiredSessions() {
	ticker := time.NewTicker(30 * time.Minute)
	for range ticker.C {
		keys, err := Conn.Keys(globals.Ctx, "auth:token:*").Result()
		if err != nil {
			log.Println("Redis scan error:", err)
			continue
		}
		log.Printf("%d active dashboard sessions", len(keys))
	}
}
