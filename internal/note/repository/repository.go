package repository

import (
	"planner-backend/internal/note/domain"
	"planner-backend/pkg/datekey"
)

// NoteRepository defines the interface for calendar note data access
type NoteRepository interface {
	// FindByDay finds the note for one day, nil when absent
	FindByDay(userID string, day datekey.Key) (*domain.CalendarNote, error)

	// FindByUser returns all of a user's notes
	FindByUser(userID string) ([]*domain.CalendarNote, error)

	// Upsert replaces the note document for a day
	Upsert(note *domain.CalendarNote) error

	// Delete removes the note document for a day
	Delete(userID string, day datekey.Key) error
}
