package domain

import (
	"fmt"
	"sort"
	"time"

	"planner-backend/pkg/datekey"
)

// List names one of the two disjoint task collections. A task belongs to
// the list it was created in and never moves between lists.
type List string

const (
	ListLife List = "life"
	ListWork List = "work"
)

// ParseList validates a list name from client input.
func ParseList(s string) (List, error) {
	switch List(s) {
	case ListLife, ListWork:
		return List(s), nil
	}
	return "", fmt.Errorf("unknown task list %q", s)
}

// Task represents one entry in a life or work task list.
type Task struct {
	ID           string       `json:"id" gorm:"primaryKey"`
	UserID       string       `json:"user_id" gorm:"index;not null"`
	List         List         `json:"list" gorm:"index;not null"`
	Text         string       `json:"text" gorm:"not null"`
	Important    bool         `json:"important" gorm:"default:false"`
	DueDate      *datekey.Key `json:"due_date,omitempty"`
	ReminderSent bool         `json:"-" gorm:"default:false"` // due-today push already delivered
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// OrderForDisplay sorts tasks into the order the lists render them in:
// dated tasks first, ascending by due date; undated tasks after, newest
// first. The sort is stable, so same-day tasks keep their incoming
// relative order.
func OrderForDisplay(tasks []*Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		switch {
		case a.DueDate != nil && b.DueDate == nil:
			return true
		case a.DueDate == nil && b.DueDate != nil:
			return false
		case a.DueDate != nil && b.DueDate != nil:
			return a.DueDate.Before(*b.DueDate)
		default:
			return a.CreatedAt.After(b.CreatedAt)
		}
	})
}
