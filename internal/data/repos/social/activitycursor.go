package social

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/mooncoven/mooncoven-backend/internal/domain"
	"github.com/mooncoven/mooncoven-backend/internal/pkg/logger"
)

type ActivityCursorRepo interface {
	Get(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.ActivityCursor, error)
	// AdvanceTo upserts the cursor, keeping the greater of the stored and
	// proposed timestamps so the watermark never moves backward even when a
	// caller passes a stale value.
	AdvanceTo(ctx context.Context, tx *gorm.DB, userID uuid.UUID, at time.Time) error
}

type activityCursorRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewActivityCursorRepo(db *gorm.DB, log *logger.Logger) ActivityCursorRepo {
	return &activityCursorRepo{
		db:  db,
		log: log.With("repo", "ActivityCursorRepo"),
	}
}

func (r *activityCursorRepo) Get(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.ActivityCursor, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("missing user id")
	}
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var out types.ActivityCursor
	err := transaction.WithContext(ctx).
		Model(&types.ActivityCursor{}).
		Where("user_id = ?", userID).
		First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *activityCursorRepo) AdvanceTo(ctx context.Context, tx *gorm.DB, userID uuid.UUID, at time.Time) error {
	if userID == uuid.Nil || at.IsZero() {
		return fmt.Errorf("missing user id or timestamp")
	}
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	now := time.Now().UTC()
	row := &types.ActivityCursor{
		UserID:     userID,
		LastSeenAt: at.UTC(),
		UpdatedAt:  now,
	}
	// CASE WHEN instead of GREATEST so the clamp also works on sqlite.
	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"last_seen_at": gorm.Expr("CASE WHEN excluded.last_seen_at > activity_cursor.last_seen_at THEN excluded.last_seen_at ELSE activity_cursor.last_seen_at END"),
				"updated_at":   now,
			}),
		}).
		Create(row).Error
}
