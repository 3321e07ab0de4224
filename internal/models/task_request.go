package models

// CreateTaskRequest represents the request body for creating a task
type CreateTaskRequest struct {
	Title  string `json:"title"`
	Status string `json:"status,omitempty"` // Optional, defaults to "To Do"
}

// UpdateTaskRequest represents a partial task update. Nil fields are
// left unchanged.
type UpdateTaskRequest struct {
	Title  *string `json:"title,omitempty"`
	Status *string `json:"status,omitempty"`
}
