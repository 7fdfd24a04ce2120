package rituals

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

type DailyDrawRepo interface {
	// Create inserts the row unless one already exists for the same
	// (user_id, draw_date). It reports created=false when the unique index
	// rejected the insert, meaning a concurrent writer won the race.
	Create(ctx context.Context, tx *gorm.DB, row *types.DailyDraw) (created bool, err error)
	GetByDate(ctx context.Context, tx *gorm.DB, userID uuid.UUID, drawDate string) (*types.DailyDraw, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.DailyDraw, error)
}

type dailyDrawRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDailyDrawRepo(db *gorm.DB, log *logger.Logger) DailyDrawRepo {
	return &dailyDrawRepo{
		db:  db,
		log: log.With("repo", "DailyDrawRepo"),
	}
}

func (r *dailyDrawRepo) Create(ctx context.Context, tx *gorm.DB, row *types.DailyDraw) (bool, error) {
	if row == nil || row.UserID == uuid.Nil || row.DrawDate == "" || len(row.Cards) == 0 {
		return false, fmt.Errorf("invalid daily draw")
	}
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	res := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "draw_date"}},
			DoNothing: true,
		}).
		Create(row)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *dailyDrawRepo) GetByDate(ctx context.Context, tx *gorm.DB, userID uuid.UUID, drawDate string) (*types.DailyDraw, error) {
	if userID == uuid.Nil || drawDate == "" {
		return nil, fmt.Errorf("missing ids")
	}
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var out types.DailyDraw
	err := transaction.WithContext(ctx).
		Model(&types.DailyDraw{}).
		Where("user_id = ? AND draw_date = ?", userID, drawDate).
		First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *dailyDrawRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.DailyDraw, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("missing user id")
	}
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if limit <= 0 {
		limit = 30
	}
	var out []*types.DailyDraw
	if err := transaction.WithContext(ctx).
		Model(&types.DailyDraw{}).
		Where("user_id = ?", userID).
		Order("draw_date DESC").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
