package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"taskboard-be/internal/apperrors"
	"taskboard-be/internal/cache"
	"taskboard-be/internal/entities"
	"taskboard-be/internal/models"
	"taskboard-be/internal/repository"
	"taskboard-be/internal/validation"
)

const taskListCacheTTL = 5 * time.Minute

// TaskService defines the interface for task business logic. Every
// operation takes the owner's user id; nothing here can reach another
// user's tasks.
type TaskService interface {
	List(ownerID int) (*models.TaskListResponse, error)
	Create(ownerID int, req *models.CreateTaskRequest) (*entities.Task, error)
	Get(ownerID, taskID int) (*entities.Task, error)
	Update(ownerID, taskID int, req *models.UpdateTaskRequest) (*entities.Task, error)
	Delete(ownerID, taskID int) error
}

type taskService struct {
	repo  repository.TaskRepository
	cache cache.Cache
	ctx   context.Context
}

// NewTaskService creates a new task service. cacheClient may be nil;
// the service then always reads through to the database.
func NewTaskService(repo repository.TaskRepository, cacheClient cache.Cache) TaskService {
	return &taskService{
		repo:  repo,
		cache: cacheClient,
		ctx:   context.Background(),
	}
}

func taskListCacheKey(ownerID int) string {
	return fmt.Sprintf("tasks:%d", ownerID)
}

// List returns the owner's tasks grouped by status, newest first within
// each column, plus the total count.
func (s *taskService) List(ownerID int) (*models.TaskListResponse, error) {
	if s.cache != nil {
		var cached models.TaskListResponse
		if err := s.cache.GetJSON(s.ctx, taskListCacheKey(ownerID), &cached); err == nil {
			return &cached, nil
		}
	}

	tasks, err := s.repo.FindByUserID(ownerID)
	if err != nil {
		return nil, err
	}

	grouped := models.NewGroupedTasks()
	for _, task := range tasks {
		grouped.Add(task)
	}

	response := &models.TaskListResponse{
		Message:    "Tasks retrieved successfully",
		Tasks:      grouped,
		TotalTasks: grouped.Total(),
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(s.ctx, taskListCacheKey(ownerID), response, taskListCacheTTL); err != nil {
			log.Printf("Warning: failed to cache task list for user %d: %v", ownerID, err)
		}
	}

	return response, nil
}

// Create stores a new task for the owner. Status defaults to "To Do"
// when omitted.
func (s *taskService) Create(ownerID int, req *models.CreateTaskRequest) (*entities.Task, error) {
	if fields := validation.ValidateCreateTask(req.Title, req.Status); len(fields) > 0 {
		return nil, apperrors.NewValidation(fields)
	}

	status := req.Status
	if status == "" {
		status = entities.StatusTodo
	}

	task, err := s.repo.Create(ownerID, strings.TrimSpace(req.Title), status)
	if err != nil {
		return nil, err
	}

	s.invalidateListCache(ownerID)
	return task, nil
}

// Get fetches a single task owned by ownerID
func (s *taskService) Get(ownerID, taskID int) (*entities.Task, error) {
	task, err := s.repo.FindByID(ownerID, taskID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NewNotFound("Task not found")
	}
	if err != nil {
		return nil, err
	}
	return task, nil
}

// Update applies a partial update to a task owned by ownerID. Any
// recognized status is reachable directly; the board UI restricting
// moves to adjacent columns is a client convention, not a server rule.
func (s *taskService) Update(ownerID, taskID int, req *models.UpdateTaskRequest) (*entities.Task, error) {
	if fields := validation.ValidateUpdateTask(req.Title, req.Status); len(fields) > 0 {
		return nil, apperrors.NewValidation(fields)
	}

	title := req.Title
	if title != nil {
		trimmed := strings.TrimSpace(*title)
		title = &trimmed
	}

	task, err := s.repo.Update(ownerID, taskID, title, req.Status)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NewNotFound("Task not found")
	}
	if err != nil {
		return nil, err
	}

	s.invalidateListCache(ownerID)
	return task, nil
}

// Delete removes a task owned by ownerID. A second delete of the same
// id reports NotFound, not success.
func (s *taskService) Delete(ownerID, taskID int) error {
	err := s.repo.Delete(ownerID, taskID)
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NewNotFound("Task not found")
	}
	if err != nil {
		return err
	}

	s.invalidateListCache(ownerID)
	return nil
}

func (s *taskService) invalidateListCache(ownerID int) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(s.ctx, taskListCacheKey(ownerID)); err != nil {
		log.Printf("Warning: failed to invalidate task list cache for user %d: %v", ownerID, err)
	}
}
