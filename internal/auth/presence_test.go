package auth

import (
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// Presence tests need a live Redis; skipped unless TEST_REDIS_ADDR is set.
func presenceTestClient(t *testing.T) *redis.Client {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("set TEST_REDIS_ADDR to run Redis presence tests")
	}
	return redis.NewClient(&redis.Options{Addr: addr, DB: 15})
}

func TestTouchPresence_AndCount(t *testing.T) {
	rdb := presenceTestClient(t)
	userId := uint(9001)
	if err := TouchPresence(rdb, userId, time.Minute); err != nil {
		t.Fatalf("TouchPresence failed: %v", err)
	}
	count, err := OnlineUserCount(rdb)
	if err != nil {
		t.Fatalf("OnlineUserCount failed: %v", err)
	}
	if count < 1 {
		t.Errorf("expected at least one online user, got %d", count)
	}
}
