package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	types "github.com/mooncoven/mooncoven-backend/internal/domain"
	"github.com/mooncoven/mooncoven-backend/internal/pkg/logger"
)

// DrawCache is a read-through cache for the immutable daily draw. Since a
// draw never changes once created, caching it for the rest of its UTC day is
// always safe.
type DrawCache interface {
	GetDraw(ctx context.Context, userID uuid.UUID, drawDate string) (*types.DailyDraw, bool, error)
	SetDraw(ctx context.Context, draw *types.DailyDraw) error
	Close() error
}

type drawCache struct {
	log *logger.Logger
	rdb *goredis.Client
}

// NewDrawCache connects to REDIS_ADDR. Callers treat a missing address as
// "cache disabled" and pass a nil DrawCache around.
func NewDrawCache(log *logger.Logger) (DrawCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &drawCache{
		log: log.With("client", "DrawCache"),
		rdb: rdb,
	}, nil
}

func drawKey(userID uuid.UUID, drawDate string) string {
	return fmt.Sprintf("draw:%s:%s", userID, drawDate)
}

func (c *drawCache) GetDraw(ctx context.Context, userID uuid.UUID, drawDate string) (*types.DailyDraw, bool, error) {
	raw, err := c.rdb.Get(ctx, drawKey(userID, drawDate)).Bytes()
	if err == goredis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var draw types.DailyDraw
	if err := json.Unmarshal(raw, &draw); err != nil {
		return nil, false, err
	}
	return &draw, true, nil
}

func (c *drawCache) SetDraw(ctx context.Context, draw *types.DailyDraw) error {
	if draw == nil {
		return fmt.Errorf("nil draw")
	}
	raw, err := json.Marshal(draw)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, drawKey(draw.UserID, draw.DrawDate), raw, ttlForDate(draw.DrawDate, time.Now())).Err()
}

func (c *drawCache) Close() error {
	return c.rdb.Close()
}

// ttlForDate expires the entry at the end of its UTC day, falling back to an
// hour when the date does not parse.
func ttlForDate(drawDate string, now time.Time) time.Duration {
	day, err := time.ParseInLocation("2006-01-02", drawDate, time.UTC)
	if err != nil {
		return time.Hour
	}
	ttl := day.Add(24 * time.Hour).Sub(now.UTC())
	if ttl <= 0 {
		return time.Minute
	}
	return ttl
}
