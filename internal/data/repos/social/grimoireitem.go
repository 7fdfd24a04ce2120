package social

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/mooncoven/mooncoven-backend/internal/domain"
	"github.com/mooncoven/mooncoven-backend/internal/pkg/logger"
)

// GrimoireItemRepo mirrors PostLikeRepo against the grimoire_item table;
// the toggle algorithm upstream is shared across both.
type GrimoireItemRepo interface {
	Insert(ctx context.Context, tx *gorm.DB, userID, postID uuid.UUID) error
	Delete(ctx context.Context, tx *gorm.DB, userID, postID uuid.UUID) error
	Exists(ctx context.Context, tx *gorm.DB, userID, postID uuid.UUID) (bool, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.GrimoireItem, error)
}

type grimoireItemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGrimoireItemRepo(db *gorm.DB, log *logger.Logger) GrimoireItemRepo {
	return &grimoireItemRepo{
		db:  db,
		log: log.With("repo", "GrimoireItemRepo"),
	}
}

func (r *grimoireItemRepo) Insert(ctx context.Context, tx *gorm.DB, userID, postID uuid.UUID) error {
	if userID == uuid.Nil || postID == uuid.Nil {
		return fmt.Errorf("missing ids")
	}
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	row := &types.GrimoireItem{
		ID:        uuid.New(),
		UserID:    userID,
		PostID:    postID,
		CreatedAt: time.Now().UTC(),
	}
	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
			DoNothing: true,
		}).
		Create(row).Error
}

func (r *grimoireItemRepo) Delete(ctx context.Context, tx *gorm.DB, userID, postID uuid.UUID) error {
	if userID == uuid.Nil || postID == uuid.Nil {
		return fmt.Errorf("missing ids")
	}
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&types.GrimoireItem{}).Error
}

func (r *grimoireItemRepo) Exists(ctx context.Context, tx *gorm.DB, userID, postID uuid.UUID) (bool, error) {
	if userID == uuid.Nil || postID == uuid.Nil {
		return false, fmt.Errorf("missing ids")
	}
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var n int64
	if err := transaction.WithContext(ctx).
		Model(&types.GrimoireItem{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *grimoireItemRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.GrimoireItem, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("missing user id")
	}
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var out []*types.GrimoireItem
	if err := transaction.WithContext(ctx).
		Model(&types.GrimoireItem{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
