// Package board is the client-side state controller for the task
// board: a partition of tasks by status column and a pure reducer over
// it, plus an HTTP client that keeps the partition in sync with the
// server.
package board

import (
	"taskboard-be/internal/entities"
)

// Partition maps each status column to its ordered tasks. A task
// appears in exactly one column at a time.
type Partition map[string][]entities.Task

// NewPartition returns a partition with the three fixed columns empty.
func NewPartition() Partition {
	p := make(Partition, len(entities.Statuses))
	for _, status := range entities.Statuses {
		p[status] = []entities.Task{}
	}
	return p
}

// Total returns the number of tasks across all columns.
func (p Partition) Total() int {
	n := 0
	for _, tasks := range p {
		n += len(tasks)
	}
	return n
}

// Action describes what happened to the board.
type Action int

const (
	// ActionLoad replaces the whole partition with Event.Tasks.
	ActionLoad Action = iota
	// ActionCreate appends Event.Task to its status column.
	ActionCreate
	// ActionUpdate moves Event.Task to the column of its new status.
	ActionUpdate
	// ActionDelete removes Event.Task (by id) from wherever it sits.
	ActionDelete
)

// Event is a single server-confirmed board change.
type Event struct {
	Action Action
	Task   entities.Task
	Tasks  Partition // only for ActionLoad
}

// Apply reduces an event into a new partition. The input partition is
// never mutated. Update and delete scan every column for the task id,
// so the last server response for an id always wins its placement.
func Apply(p Partition, ev Event) Partition {
	switch ev.Action {
	case ActionLoad:
		next := NewPartition()
		for status, tasks := range ev.Tasks {
			next[status] = append([]entities.Task{}, tasks...)
		}
		return next
	case ActionCreate:
		next := removeByID(p, ev.Task.ID)
		next[ev.Task.Status] = append(next[ev.Task.Status], ev.Task)
		return next
	case ActionUpdate:
		next := removeByID(p, ev.Task.ID)
		next[ev.Task.Status] = append(next[ev.Task.Status], ev.Task)
		return next
	case ActionDelete:
		return removeByID(p, ev.Task.ID)
	}
	return p
}

// removeByID copies the partition without any task carrying the id.
func removeByID(p Partition, id int) Partition {
	next := NewPartition()
	for status, tasks := range p {
		kept := []entities.Task{}
		for _, task := range tasks {
			if task.ID != id {
				kept = append(kept, task)
			}
		}
		next[status] = kept
	}
	return next
}
