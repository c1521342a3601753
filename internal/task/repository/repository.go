package repository

import (
	"planner-backend/internal/task/domain"
	"planner-backend/pkg/datekey"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *domain.Task) error

	// FindByID finds a task by its ID
	FindByID(id string) (*domain.Task, error)

	// FindByList finds all tasks in one of a user's lists
	FindByList(userID string, list domain.List) ([]*domain.Task, error)

	// Update updates an existing task
	Update(task *domain.Task) error

	// Delete deletes a task by ID
	Delete(id string) error

	// FindDueReminders finds tasks due on the given day whose reminder
	// has not been sent yet
	FindDueReminders(day datekey.Key) ([]*domain.Task, error)

	// MarkReminderSent marks a task's due-today reminder as sent
	MarkReminderSent(id string) error
}
