package service

import (
	"context"
	"time"

	"taskboard-be/internal/cache"
	"taskboard-be/internal/entities"
	"taskboard-be/internal/repository"
)

// MockUserRepository implements repository.UserRepository for testing
type MockUserRepository struct {
	CreateFunc      func(name, email, passwordHash string) (*entities.User, error)
	FindByEmailFunc func(email string) (*entities.User, error)
	FindByIDFunc    func(id int) (*entities.User, error)
}

func (m *MockUserRepository) Create(name, email, passwordHash string) (*entities.User, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(name, email, passwordHash)
	}
	return nil, repository.ErrNotFound
}

func (m *MockUserRepository) FindByEmail(email string) (*entities.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(email)
	}
	return nil, repository.ErrNotFound
}

func (m *MockUserRepository) FindByID(id int) (*entities.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(id)
	}
	return nil, repository.ErrNotFound
}

// MockTaskRepository implements repository.TaskRepository for testing
type MockTaskRepository struct {
	CreateFunc       func(userID int, title, status string) (*entities.Task, error)
	FindByIDFunc     func(userID, taskID int) (*entities.Task, error)
	FindByUserIDFunc func(userID int) ([]entities.Task, error)
	UpdateFunc       func(userID, taskID int, title, status *string) (*entities.Task, error)
	DeleteFunc       func(userID, taskID int) error
}

func (m *MockTaskRepository) Create(userID int, title, status string) (*entities.Task, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(userID, title, status)
	}
	return nil, repository.ErrNotFound
}

func (m *MockTaskRepository) FindByID(userID, taskID int) (*entities.Task, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(userID, taskID)
	}
	return nil, repository.ErrNotFound
}

func (m *MockTaskRepository) FindByUserID(userID int) ([]entities.Task, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(userID)
	}
	return []entities.Task{}, nil
}

func (m *MockTaskRepository) Update(userID, taskID int, title, status *string) (*entities.Task, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(userID, taskID, title, status)
	}
	return nil, repository.ErrNotFound
}

func (m *MockTaskRepository) Delete(userID, taskID int) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(userID, taskID)
	}
	return repository.ErrNotFound
}

// MockCache implements cache.Cache for testing, recording invalidations
type MockCache struct {
	DeletedKeys []string
	GetJSONFunc func(ctx context.Context, key string, dest interface{}) error
	SetJSONFunc func(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	m.DeletedKeys = append(m.DeletedKeys, key)
	return nil
}

func (m *MockCache) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if m.SetJSONFunc != nil {
		return m.SetJSONFunc(ctx, key, value, expiration)
	}
	return nil
}

func (m *MockCache) GetJSON(ctx context.Context, key string, dest interface{}) error {
	if m.GetJSONFunc != nil {
		return m.GetJSONFunc(ctx, key, dest)
	}
	return cache.ErrCacheMiss
}
