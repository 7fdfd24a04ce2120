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

type AltarCandleRepo interface {
	// UpsertSlot lights a slot-bound candle. Relighting an occupied slot
	// overwrites lit_at and variant in place; last write wins.
	UpsertSlot(ctx context.Context, tx *gorm.DB, row *types.AltarCandle) error
	// CreateFree lights a free-placed candle; always a fresh row.
	CreateFree(ctx context.Context, tx *gorm.DB, row *types.AltarCandle) error
	GetBySlot(ctx context.Context, tx *gorm.DB, userID uuid.UUID, slot string) (*types.AltarCandle, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.AltarCandle, error)
}

type altarCandleRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAltarCandleRepo(db *gorm.DB, log *logger.Logger) AltarCandleRepo {
	return &altarCandleRepo{
		db:  db,
		log: log.With("repo", "AltarCandleRepo"),
	}
}

func (r *altarCandleRepo) UpsertSlot(ctx context.Context, tx *gorm.DB, row *types.AltarCandle) error {
	if row == nil || row.UserID == uuid.Nil || row.Slot == nil || *row.Slot == "" || row.Variant == "" {
		return fmt.Errorf("invalid slot candle")
	}
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	now := time.Now().UTC()
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = now
	}
	row.UpdatedAt = now
	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "slot"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"variant",
				"lit_at",
				"updated_at",
			}),
		}).
		Create(row).Error
}

func (r *altarCandleRepo) CreateFree(ctx context.Context, tx *gorm.DB, row *types.AltarCandle) error {
	if row == nil || row.UserID == uuid.Nil || row.Variant == "" {
		return fmt.Errorf("invalid candle")
	}
	if row.Slot != nil {
		return fmt.Errorf("free candle must not carry a slot")
	}
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	now := time.Now().UTC()
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = now
	}
	row.UpdatedAt = now
	return transaction.WithContext(ctx).Create(row).Error
}

func (r *altarCandleRepo) GetBySlot(ctx context.Context, tx *gorm.DB, userID uuid.UUID, slot string) (*types.AltarCandle, error) {
	if userID == uuid.Nil || slot == "" {
		return nil, fmt.Errorf("missing ids")
	}
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var out types.AltarCandle
	err := transaction.WithContext(ctx).
		Model(&types.AltarCandle{}).
		Where("user_id = ? AND slot = ?", userID, slot).
		First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *altarCandleRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.AltarCandle, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("missing user id")
	}
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var out []*types.AltarCandle
	if err := transaction.WithContext(ctx).
		Model(&types.AltarCandle{}).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
