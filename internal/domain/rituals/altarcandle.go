package rituals

import (
	"time"

	"github.com/google/uuid"
)

// AltarCandle is a timed-activation item on the user's altar.
//
// Slot-placed candles have a non-nil Slot; the unique index on
// (user_id, slot) means relighting a slot overwrites LitAt in place rather
// than creating a second row. Free-placed candles have a NULL slot (unique
// indexes ignore NULLs on both postgres and sqlite) and any number may
// coexist.
//
// Whether a candle is burning is derived lazily from LitAt and the variant's
// burn duration; nothing ever writes an "expired" state back.
type AltarCandle struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:ux_altar_candle_user_slot,priority:1" json:"user_id"`

	Slot    *string `gorm:"column:slot;uniqueIndex:ux_altar_candle_user_slot,priority:2" json:"slot,omitempty"`
	Variant string  `gorm:"column:variant;not null" json:"variant"`
	PosX    int     `gorm:"column:pos_x;not null;default:0" json:"pos_x"`
	PosY    int     `gorm:"column:pos_y;not null;default:0" json:"pos_y"`

	LitAt *time.Time `gorm:"column:lit_at" json:"lit_at,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (AltarCandle) TableName() string { return "altar_candle" }
