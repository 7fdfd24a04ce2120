package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/mooncoven/mooncoven-backend/internal/clients/redis"
	types "github.com/mooncoven/mooncoven-backend/internal/domain"
	apperrors "github.com/mooncoven/mooncoven-backend/internal/pkg/errors"
	"github.com/mooncoven/mooncoven-backend/internal/pkg/logger"
	reporituals "github.com/mooncoven/mooncoven-backend/internal/data/repos/rituals"
)

// DayBucket maps an instant to its UTC calendar day, the key that scopes
// at-most-one-draw-per-day. Held to UTC so the bucket cannot vary per call
// within the same logical day.
func DayBucket(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

type DailyDrawService interface {
	// GetOrCreate returns today's draw for the user, generating it on the
	// first call of the day. isNew is true exactly once per (user, day).
	GetOrCreate(ctx context.Context, userID uuid.UUID, intention string) (draw *types.DailyDraw, isNew bool, err error)
	GetToday(ctx context.Context, userID uuid.UUID) (*types.DailyDraw, error)
	History(ctx context.Context, userID uuid.UUID, limit int) ([]*types.DailyDraw, error)
}

type dailyDrawService struct {
	log       *logger.Logger
	repo      reporituals.DailyDrawRepo
	cache     redis.DrawCache // optional, nil when redis is not configured
	deck      []string
	drawCount int
	now       func() time.Time
}

func NewDailyDrawService(log *logger.Logger, repo reporituals.DailyDrawRepo, cache redis.DrawCache, deck []string, drawCount int) DailyDrawService {
	return &dailyDrawService{
		log:       log.With("service", "DailyDrawService"),
		repo:      repo,
		cache:     cache,
		deck:      deck,
		drawCount: drawCount,
		now:       time.Now,
	}
}

func (s *dailyDrawService) GetOrCreate(ctx context.Context, userID uuid.UUID, intention string) (*types.DailyDraw, bool, error) {
	if userID == uuid.Nil {
		return nil, false, apperrors.ErrUnauthorized
	}
	bucket := DayBucket(s.now())

	if s.cache != nil {
		if cached, ok, err := s.cache.GetDraw(ctx, userID, bucket); err != nil {
			s.log.Warn("draw cache read failed", "error", err)
		} else if ok {
			return cached, false, nil
		}
	}

	existing, err := s.repo.GetByDate(ctx, nil, userID, bucket)
	if err != nil {
		return nil, false, fmt.Errorf("lookup daily draw: %w", err)
	}
	if existing != nil {
		s.cacheDraw(ctx, existing)
		return existing, false, nil
	}

	cards, err := drawCards(s.deck, s.drawCount)
	if err != nil {
		return nil, false, err
	}
	raw, err := json.Marshal(cards)
	if err != nil {
		return nil, false, fmt.Errorf("encode cards: %w", err)
	}
	row := &types.DailyDraw{
		ID:        uuid.New(),
		UserID:    userID,
		DrawDate:  bucket,
		Cards:     datatypes.JSON(raw),
		Intention: intention,
		CreatedAt: s.now().UTC(),
	}

	created, err := s.repo.Create(ctx, nil, row)
	if err != nil {
		return nil, false, fmt.Errorf("create daily draw: %w", err)
	}
	if !created {
		// Lost the first-call race; a concurrent writer's artifact is the
		// durable one, our candidate is discarded.
		winner, err := s.repo.GetByDate(ctx, nil, userID, bucket)
		if err != nil {
			return nil, false, fmt.Errorf("refetch daily draw after conflict: %w", err)
		}
		if winner == nil {
			return nil, false, fmt.Errorf("daily draw conflict but no stored row for %s/%s", userID, bucket)
		}
		s.cacheDraw(ctx, winner)
		return winner, false, nil
	}

	s.cacheDraw(ctx, row)
	return row, true, nil
}

func (s *dailyDrawService) GetToday(ctx context.Context, userID uuid.UUID) (*types.DailyDraw, error) {
	if userID == uuid.Nil {
		return nil, apperrors.ErrUnauthorized
	}
	bucket := DayBucket(s.now())
	if s.cache != nil {
		if cached, ok, err := s.cache.GetDraw(ctx, userID, bucket); err != nil {
			s.log.Warn("draw cache read failed", "error", err)
		} else if ok {
			return cached, nil
		}
	}
	draw, err := s.repo.GetByDate(ctx, nil, userID, bucket)
	if err != nil {
		return nil, fmt.Errorf("lookup daily draw: %w", err)
	}
	if draw == nil {
		return nil, apperrors.ErrNotFound
	}
	s.cacheDraw(ctx, draw)
	return draw, nil
}

func (s *dailyDrawService) History(ctx context.Context, userID uuid.UUID, limit int) ([]*types.DailyDraw, error) {
	if userID == uuid.Nil {
		return nil, apperrors.ErrUnauthorized
	}
	return s.repo.ListByUser(ctx, nil, userID, limit)
}

func (s *dailyDrawService) cacheDraw(ctx context.Context, draw *types.DailyDraw) {
	if s.cache == nil || draw == nil {
		return
	}
	if err := s.cache.SetDraw(ctx, draw); err != nil {
		s.log.Warn("draw cache write failed", "error", err)
	}
}

// drawCards samples n distinct cards without replacement.
func drawCards(deck []string, n int) ([]string, error) {
	if n <= 0 {
		return nil, fmt.Errorf("draw size %d must be positive: %w", n, apperrors.ErrInvalidArgument)
	}
	if n > len(deck) {
		return nil, fmt.Errorf("draw size %d exceeds deck size %d: %w", n, len(deck), apperrors.ErrInvalidArgument)
	}
	shuffled := make([]string, len(deck))
	copy(shuffled, deck)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n], nil
}
