package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	reposocial "github.com/mooncoven/mooncoven-backend/internal/data/repos/social"
	types "github.com/mooncoven/mooncoven-backend/internal/domain"
	apperrors "github.com/mooncoven/mooncoven-backend/internal/pkg/errors"
	"github.com/mooncoven/mooncoven-backend/internal/pkg/logger"
)

type ActivityCursorService interface {
	// Advance moves the watermark to at (zero value means now). The stored
	// value never moves backward; a stale at leaves it unchanged.
	Advance(ctx context.Context, userID uuid.UUID, at time.Time) (*types.ActivityCursor, error)
	Get(ctx context.Context, userID uuid.UUID) (*types.ActivityCursor, error)
}

// Unseen reports whether an item created at createdAt is still unseen for the
// owner of cursor. A nil cursor means nothing has been seen yet.
func Unseen(cursor *types.ActivityCursor, createdAt time.Time) bool {
	if cursor == nil {
		return true
	}
	return createdAt.After(cursor.LastSeenAt)
}

type activityCursorService struct {
	log  *logger.Logger
	repo reposocial.ActivityCursorRepo
	now  func() time.Time
}

func NewActivityCursorService(log *logger.Logger, repo reposocial.ActivityCursorRepo) ActivityCursorService {
	return &activityCursorService{
		log:  log.With("service", "ActivityCursorService"),
		repo: repo,
		now:  time.Now,
	}
}

func (s *activityCursorService) Advance(ctx context.Context, userID uuid.UUID, at time.Time) (*types.ActivityCursor, error) {
	if userID == uuid.Nil {
		return nil, apperrors.ErrUnauthorized
	}
	if at.IsZero() {
		at = s.now()
	}
	if err := s.repo.AdvanceTo(ctx, nil, userID, at); err != nil {
		return nil, fmt.Errorf("advance activity cursor: %w", err)
	}
	cursor, err := s.repo.Get(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("reload activity cursor: %w", err)
	}
	return cursor, nil
}

func (s *activityCursorService) Get(ctx context.Context, userID uuid.UUID) (*types.ActivityCursor, error) {
	if userID == uuid.Nil {
		return nil, apperrors.ErrUnauthorized
	}
	return s.repo.Get(ctx, nil, userID)
}
