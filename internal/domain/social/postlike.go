package social

import (
	"time"

	"github.com/google/uuid"
)

// PostLike is a presence edge: the row existing IS the liked state.
// The composite unique index keeps concurrent toggles from ever producing
// a duplicate edge.
type PostLike struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_post_like_user_post,priority:1" json:"user_id"`
	PostID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_post_like_user_post,priority:2;index" json:"post_id"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (PostLike) TableName() string { return "post_like" }
