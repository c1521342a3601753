package usecase

import (
	"planner-backend/pkg/datekey"
)

// NoteUsecase defines the interface for calendar note business logic
type NoteUsecase interface {
	// GetNote returns the note text for one day, "" when absent
	GetNote(userID string, day datekey.Key) (string, error)

	// SaveNote stores a day's note; whitespace-only text deletes the
	// note document instead
	SaveNote(userID string, day datekey.Key, note string) error

	// AppendTaskLine appends a mirrored task line as a bullet to the
	// day's note
	AppendTaskLine(userID string, day datekey.Key, line string) error

	// NotesByDay returns all of a user's notes keyed by day
	NotesByDay(userID string) (map[datekey.Key]string, error)

	// SetNotifier sets the snapshot notifier called after every mutation
	SetNotifier(n Notifier)
}

// Notifier is told after every successful note write.
type Notifier interface {
	NotesChanged(userID string)
}
