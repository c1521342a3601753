package usecase

import (
	memodomain "planner-backend/internal/memo/domain"
	taskdomain "planner-backend/internal/task/domain"
)

// MemoUsecase defines the interface for memo business logic
type MemoUsecase interface {
	// CreateMemo saves a committed transcript as a memo
	CreateMemo(userID, text string) (*memodomain.Memo, error)

	// GetUserMemos returns a user's memos newest first
	GetUserMemos(userID string) ([]*memodomain.Memo, error)

	// UpdateMemo replaces a memo's text
	UpdateMemo(userID, memoID, text string) (*memodomain.Memo, error)

	// DeleteMemo deletes a memo
	DeleteMemo(userID, memoID string) error

	// AddAsTask creates a task from the memo's text in the chosen list
	AddAsTask(userID, memoID string, list taskdomain.List) (*taskdomain.Task, error)

	// SetTaskCreator sets the task creation dependency for AddAsTask
	SetTaskCreator(c TaskCreator)

	// SetNotifier sets the snapshot notifier called after every mutation
	SetNotifier(n Notifier)
}

// TaskCreator creates tasks; satisfied by the task usecase.
type TaskCreator interface {
	CreateTask(userID string, list taskdomain.List, text string) (*taskdomain.Task, error)
}

// Notifier is told after every successful memo write.
type Notifier interface {
	MemosChanged(userID string)
}
