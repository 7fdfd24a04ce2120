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

type PostLikeRepo interface {
	// Insert is idempotent: a concurrent duplicate hits the unique index and
	// is dropped by ON CONFLICT DO NOTHING, which is the correct outcome.
	Insert(ctx context.Context, tx *gorm.DB, userID, postID uuid.UUID) error
	// Delete is idempotent: deleting an absent edge is not an error.
	Delete(ctx context.Context, tx *gorm.DB, userID, postID uuid.UUID) error
	Exists(ctx context.Context, tx *gorm.DB, userID, postID uuid.UUID) (bool, error)
	CountForPost(ctx context.Context, tx *gorm.DB, postID uuid.UUID) (int64, error)
}

type postLikeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostLikeRepo(db *gorm.DB, log *logger.Logger) PostLikeRepo {
	return &postLikeRepo{
		db:  db,
		log: log.With("repo", "PostLikeRepo"),
	}
}

func (r *postLikeRepo) Insert(ctx context.Context, tx *gorm.DB, userID, postID uuid.UUID) error {
	if userID == uuid.Nil || postID == uuid.Nil {
		return fmt.Errorf("missing ids")
	}
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	row := &types.PostLike{
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

func (r *postLikeRepo) Delete(ctx context.Context, tx *gorm.DB, userID, postID uuid.UUID) error {
	if userID == uuid.Nil || postID == uuid.Nil {
		return fmt.Errorf("missing ids")
	}
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&types.PostLike{}).Error
}

func (r *postLikeRepo) Exists(ctx context.Context, tx *gorm.DB, userID, postID uuid.UUID) (bool, error) {
	if userID == uuid.Nil || postID == uuid.Nil {
		return false, fmt.Errorf("missing ids")
	}
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var n int64
	if err := transaction.WithContext(ctx).
		Model(&types.PostLike{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *postLikeRepo) CountForPost(ctx context.Context, tx *gorm.DB, postID uuid.UUID) (int64, error) {
	if postID == uuid.Nil {
		return 0, fmt.Errorf("missing post id")
	}
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var n int64
	if err := transaction.WithContext(ctx).
		Model(&types.PostLike{}).
		Where("post_id = ?", postID).
		Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
