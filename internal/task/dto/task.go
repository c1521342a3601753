package dto

// CreateTaskRequest represents a new task entry. Text is the raw entry line;
// an embedded DD.MM.YYYY token becomes the due date.
type CreateTaskRequest struct {
	List string `json:"list" binding:"required"`
	Text string `json:"text" binding:"required"`
}

// UpdateTaskRequest represents a task edit. Omitted fields are left alone;
// an empty due_date clears the date.
type UpdateTaskRequest struct {
	Text    *string `json:"text,omitempty"`
	DueDate *string `json:"due_date,omitempty"`
}
