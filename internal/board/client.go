package board

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"taskboard-be/internal/entities"
	"taskboard-be/internal/models"
)

// Client talks to the task API and holds the board partition. Mutations
// are reflected only after the server confirms them; on any failure the
// partition is left unchanged and the error is returned for the caller
// to surface to the user.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client

	partition Partition
	loading   bool
}

// NewClient creates a board client for the given API base URL and
// bearer token.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: http.DefaultClient,
		partition:  NewPartition(),
	}
}

// Partition returns the current board partition.
func (c *Client) Partition() Partition {
	return c.partition
}

// Loading reports whether the initial fetch is still in flight.
func (c *Client) Loading() bool {
	return c.loading
}

// Refresh fetches the full partition from the server.
func (c *Client) Refresh() error {
	c.loading = true
	defer func() { c.loading = false }()

	var response models.TaskListResponse
	if err := c.do(http.MethodGet, "/api/tasks", nil, &response); err != nil {
		return err
	}

	loaded := Partition{
		entities.StatusTodo:       response.Tasks.Todo,
		entities.StatusInProgress: response.Tasks.InProgress,
		entities.StatusDone:       response.Tasks.Done,
	}
	c.partition = Apply(c.partition, Event{Action: ActionLoad, Tasks: loaded})
	return nil
}

// CreateTask creates a task and appends the server-confirmed task into
// its status column.
func (c *Client) CreateTask(title, status string) (*entities.Task, error) {
	var response models.TaskResponse
	body := models.CreateTaskRequest{Title: title, Status: status}
	if err := c.do(http.MethodPost, "/api/tasks", body, &response); err != nil {
		return nil, err
	}

	c.partition = Apply(c.partition, Event{Action: ActionCreate, Task: response.Task})
	return &response.Task, nil
}

// UpdateTaskStatus moves a task to a new status column once the server
// confirms the update.
func (c *Client) UpdateTaskStatus(taskID int, status string) (*entities.Task, error) {
	var response models.TaskResponse
	body := models.UpdateTaskRequest{Status: &status}
	path := fmt.Sprintf("/api/tasks/%d", taskID)
	if err := c.do(http.MethodPut, path, body, &response); err != nil {
		return nil, err
	}

	c.partition = Apply(c.partition, Event{Action: ActionUpdate, Task: response.Task})
	return &response.Task, nil
}

// DeleteTask deletes a task and removes it from its column.
func (c *Client) DeleteTask(taskID int) error {
	path := fmt.Sprintf("/api/tasks/%d", taskID)
	if err := c.do(http.MethodDelete, path, nil, nil); err != nil {
		return err
	}

	c.partition = Apply(c.partition, Event{Action: ActionDelete, Task: entities.Task{ID: taskID}})
	return nil
}

func (c *Client) do(method, path string, body, dest interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
			return fmt.Errorf("%s (status %d)", apiErr.Message, resp.StatusCode)
		}
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
