package repository

import "planner-backend/internal/directory/domain"

// LinkRepository defines the interface for directory link data access
type LinkRepository interface {
	// CreateAll inserts links in one batch
	CreateAll(links []*domain.Link) error

	// Create inserts a single link
	Create(link *domain.Link) error

	// FindByID finds a link by its ID
	FindByID(id string) (*domain.Link, error)

	// FindByUser returns all of a user's links ordered by column and position
	FindByUser(userID string) ([]*domain.Link, error)

	// CountByUser returns how many links a user has
	CountByUser(userID string) (int64, error)

	// Update updates an existing link
	Update(link *domain.Link) error

	// Delete deletes a link by ID
	Delete(id string) error
}
