package entities

import "time"

// Task statuses. These are the only values the tasks.status column accepts.
const (
	StatusTodo       = "To Do"
	StatusInProgress = "In Progress"
	StatusDone       = "Done"
)

// Statuses lists the task statuses in board column order.
var Statuses = []string{StatusTodo, StatusInProgress, StatusDone}

// IsValidStatus reports whether s is a recognized task status.
func IsValidStatus(s string) bool {
	return s == StatusTodo || s == StatusInProgress || s == StatusDone
}

// Task represents a task entity in the database
type Task struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	UserID    int       `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
