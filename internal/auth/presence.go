package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	presenceKeyFmt = "presence:%d"
	presenceTTL    = 30 * time.Minute
)

// TouchPresence refreshes the last-seen marker for a user. Presence is
// advisory only and is never consulted when authorizing requests.
func TouchPresence(rdb *redis.Client, userId uint, ttl time.Duration) error {
	ctx := context.Background()
	key := fmt.Sprintf(presenceKeyFmt, userId)
	return rdb.Set(ctx, key, time.Now().UTC().Format(time.RFC3339), ttl).Err()
}

// OnlineUserCount returns the number of users seen within the presence TTL.
func OnlineUserCount(rdb *redis.Client) (int, error) {
	ctx := context.Background()
	var cursor uint64
	userIds := make(map[string]struct{})
	for {
		keys, newCursor, err := rdb.Scan(ctx, cursor, "presence:*", 100).Result()
		if err != nil {
			return 0, err
		}
		for _, key := range keys {
			parts := strings.Split(key, ":")
			if len(parts) == 2 && parts[0] == "presence" && parts[1] != "" {
				userIds[parts[1]] = struct{}{}
			}
		}
		if newCursor == 0 {
			break
		}
		cursor = newCursor
	}
	return len(userIds), nil
}
