package domain

import "time"

// Memo is a saved dictation note. Speech capture happens on the client;
// the server only ever sees the committed transcript text.
type Memo struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index;not null"`
	Text      string    `json:"text" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
