package social

import (
	"time"

	"github.com/google/uuid"
)

// ActivityCursor is the per-user read watermark. A single row per user;
// LastSeenAt only ever moves forward (the repo upsert clamps).
// Feed items created after LastSeenAt count as unseen.
type ActivityCursor struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	LastSeenAt time.Time `gorm:"column:last_seen_at;not null" json:"last_seen_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

func (ActivityCursor) TableName() string { return "activity_cursor" }
