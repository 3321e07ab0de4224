package repository

import (
	"database/sql"
	"fmt"

	"taskboard-be/internal/entities"
)

// TaskRepository defines the interface for task database operations.
// Every lookup is scoped to a user id so ownership checks cannot be
// forgotten at a call site.
type TaskRepository interface {
	Create(userID int, title, status string) (*entities.Task, error)
	FindByID(userID, taskID int) (*entities.Task, error)
	FindByUserID(userID int) ([]entities.Task, error)
	Update(userID, taskID int, title, status *string) (*entities.Task, error)
	Delete(userID, taskID int) error
}

type taskRepository struct {
	db *sql.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *sql.DB) TaskRepository {
	return &taskRepository{db: db}
}

// Create inserts a new task into the database
func (r *taskRepository) Create(userID int, title, status string) (*entities.Task, error) {
	query := `
		INSERT INTO tasks (user_id, title, status)
		VALUES ($1, $2, $3)
		RETURNING id, title, status, user_id, created_at, updated_at
	`

	var task entities.Task
	err := r.db.QueryRow(query, userID, title, status).Scan(
		&task.ID,
		&task.Title,
		&task.Status,
		&task.UserID,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return &task, nil
}

// FindByID finds a task by id, scoped to its owner. A task owned by
// someone else scans as ErrNotFound, same as a task that doesn't exist.
func (r *taskRepository) FindByID(userID, taskID int) (*entities.Task, error) {
	query := `
		SELECT id, title, status, user_id, created_at, updated_at
		FROM tasks
		WHERE id = $1 AND user_id = $2
	`

	var task entities.Task
	err := r.db.QueryRow(query, taskID, userID).Scan(
		&task.ID,
		&task.Title,
		&task.Status,
		&task.UserID,
		&task.CreatedAt,
		&task.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	return &task, nil
}

// FindByUserID returns all tasks owned by a user, newest first
func (r *taskRepository) FindByUserID(userID int) ([]entities.Task, error) {
	query := `
		SELECT id, title, status, user_id, created_at, updated_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []entities.Task{}
	for rows.Next() {
		var task entities.Task
		err := rows.Scan(
			&task.ID,
			&task.Title,
			&task.Status,
			&task.UserID,
			&task.CreatedAt,
			&task.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// Update applies a partial update. Nil fields keep their current value
// via COALESCE, so a single statement covers every combination.
func (r *taskRepository) Update(userID, taskID int, title, status *string) (*entities.Task, error) {
	query := `
		UPDATE tasks
		SET title = COALESCE($3, title),
		    status = COALESCE($4, status),
		    updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING id, title, status, user_id, created_at, updated_at
	`

	var task entities.Task
	err := r.db.QueryRow(query, taskID, userID, title, status).Scan(
		&task.ID,
		&task.Title,
		&task.Status,
		&task.UserID,
		&task.CreatedAt,
		&task.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return &task, nil
}

// Delete removes a task, scoped to its owner. Deleting a task that is
// already gone reports ErrNotFound rather than success.
func (r *taskRepository) Delete(userID, taskID int) error {
	result, err := r.db.Exec(`DELETE FROM tasks WHERE id = $1 AND user_id = $2`, taskID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
