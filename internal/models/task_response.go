package models

import "taskboard-be/internal/entities"

// GroupedTasks holds one ordered slice per status column. A struct
// rather than a map so the JSON keys always serialize in board order
// and empty columns serialize as [] instead of being omitted.
type GroupedTasks struct {
	Todo       []entities.Task `json:"To Do"`
	InProgress []entities.Task `json:"In Progress"`
	Done       []entities.Task `json:"Done"`
}

// NewGroupedTasks returns a grouping with all three columns allocated.
func NewGroupedTasks() *GroupedTasks {
	return &GroupedTasks{
		Todo:       []entities.Task{},
		InProgress: []entities.Task{},
		Done:       []entities.Task{},
	}
}

// Add appends a task to the column matching its status. Tasks with an
// unrecognized status are skipped; the database constraint makes that
// unreachable in practice.
func (g *GroupedTasks) Add(task entities.Task) {
	switch task.Status {
	case entities.StatusTodo:
		g.Todo = append(g.Todo, task)
	case entities.StatusInProgress:
		g.InProgress = append(g.InProgress, task)
	case entities.StatusDone:
		g.Done = append(g.Done, task)
	}
}

// Total returns the number of tasks across all columns.
func (g *GroupedTasks) Total() int {
	return len(g.Todo) + len(g.InProgress) + len(g.Done)
}

// TaskListResponse represents the response for listing tasks
type TaskListResponse struct {
	Message    string        `json:"message"`
	Tasks      *GroupedTasks `json:"tasks"`
	TotalTasks int           `json:"totalTasks"`
}

// TaskResponse represents the response for a single task
type TaskResponse struct {
	Message string        `json:"message"`
	Task    entities.Task `json:"task"`
}
