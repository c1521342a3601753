package domain

import (
	"time"

	"planner-backend/pkg/datekey"
)

// CalendarNote is the note document for one calendar day. It is keyed by
// the day itself, so a user has at most one note per day. A note that
// would be saved empty is deleted instead of stored blank.
type CalendarNote struct {
	UserID    string      `json:"user_id" gorm:"primaryKey"`
	Day       datekey.Key `json:"day" gorm:"primaryKey"`
	Note      string      `json:"note" gorm:"not null"`
	UpdatedAt time.Time   `json:"updated_at"`
}
