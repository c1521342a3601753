package usecase

import (
	"planner-backend/internal/task/domain"
	"planner-backend/pkg/datekey"
)

// TaskUsecase defines the interface for task business logic
type TaskUsecase interface {
	// CreateTask creates a task from raw entry text, extracting an
	// embedded due date and mirroring it into the calendar
	CreateTask(userID string, list domain.List, text string) (*domain.Task, error)

	// GetUserTasks retrieves one of a user's lists in display order
	GetUserTasks(userID string, list domain.List) ([]*domain.Task, error)

	// UpdateTask applies a full text/date re-entry to a task
	UpdateTask(userID, taskID string, updates TaskUpdateRequest) (*domain.Task, error)

	// ToggleImportant flips a task's important flag
	ToggleImportant(userID, taskID string) (*domain.Task, error)

	// DeleteTask deletes a task
	DeleteTask(userID, taskID string) error

	// SetMirror sets the calendar mirror used for due-date writes
	SetMirror(m CalendarMirror)

	// SetNotifier sets the snapshot notifier called after every mutation
	SetNotifier(n Notifier)
}

// TaskUpdateRequest represents the fields that can be updated
type TaskUpdateRequest struct {
	Text    *string `json:"text,omitempty"`
	DueDate *string `json:"due_date,omitempty"` // manual entry; empty string clears the date
}

// CalendarMirror appends a task's text to the note of its due date's day.
type CalendarMirror interface {
	AppendTaskLine(userID string, day datekey.Key, line string) error
}

// Notifier is told after every successful write so live subscribers get a
// fresh snapshot.
type Notifier interface {
	TasksChanged(userID string, list domain.List)
}
