package social

import (
	"time"

	"github.com/google/uuid"
)

// GrimoireItem marks a post as saved to the owner's grimoire. Same presence
// semantics as PostLike, different table.
type GrimoireItem struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_grimoire_item_user_post,priority:1" json:"user_id"`
	PostID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_grimoire_item_user_post,priority:2;index" json:"post_id"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (GrimoireItem) TableName() string { return "grimoire_item" }
