package repository

import "planner-backend/internal/memo/domain"

// MemoRepository defines the interface for memo data access
type MemoRepository interface {
	// Create creates a new memo
	Create(memo *domain.Memo) error

	// FindByID finds a memo by its ID
	FindByID(id string) (*domain.Memo, error)

	// FindByUser returns a user's memos newest first
	FindByUser(userID string) ([]*domain.Memo, error)

	// Update updates an existing memo
	Update(memo *domain.Memo) error

	// Delete deletes a memo by ID
	Delete(id string) error
}
