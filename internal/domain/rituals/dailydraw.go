package rituals

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DailyDraw records one tarot draw per user per UTC calendar day. The
// composite unique index is what makes GetOrCreate race-safe: concurrent
// first calls for the same day can both compute a candidate, but only one
// insert lands.
//
// Rows are immutable once created and kept forever as history.
type DailyDraw struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_daily_draw_user_date,priority:1" json:"user_id"`

	// DrawDate is the UTC day bucket, formatted 2006-01-02.
	DrawDate string `gorm:"column:draw_date;size:10;not null;uniqueIndex:ux_daily_draw_user_date,priority:2" json:"draw_date"`

	// Cards is the ordered list of drawn card IDs, no duplicates.
	Cards     datatypes.JSON `gorm:"column:cards;not null" json:"cards"`
	Intention string         `gorm:"column:intention;type:text" json:"intention,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (DailyDraw) TableName() string { return "daily_draw" }
