package models

import (
	"time"
)

// ScheduleSlot is a reservable time unit. Available is flipped to false by
// the slot claim when a hiring takes it and back to true on cancellation.
type ScheduleSlot struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	StartTime time.Time `json:"inicio"`
	EndTime   time.Time `json:"fim"`
	Available bool      `json:"disponivel" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
