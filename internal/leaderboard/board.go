package leaderboard

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const xpKey = "leaderboard:xp"

// Board keeps a redis sorted set of users scored by lifetime XP. All
// methods tolerate a nil client so the service still works without redis.
type Board struct {
	redis *redis.Client
}

type Entry struct {
	UserID  string `json:"user_id"`
	TotalXP int64  `json:"total_xp"`
}

func New(redisClient *redis.Client) *Board {
	return &Board{redis: redisClient}
}

// SetScore records the user's current lifetime XP. Scores only move up
// because XP is monotone, so a plain ZADD is enough.
func (b *Board) SetScore(ctx context.Context, userID string, totalXP int64) error {
	if b.redis == nil {
		return nil
	}
	return b.redis.ZAdd(ctx, xpKey, redis.Z{Score: float64(totalXP), Member: userID}).Err()
}

// Top returns the highest-XP users, best first.
func (b *Board) Top(ctx context.Context, limit int) ([]Entry, error) {
	if b.redis == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 10
	}
	scores, err := b.redis.ZRevRangeWithScores(ctx, xpKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(scores))
	for _, z := range scores {
		member, _ := z.Member.(string)
		entries = append(entries, Entry{UserID: member, TotalXP: int64(z.Score)})
	}
	return entries, nil
}
