package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard-be/internal/apperrors"
	"taskboard-be/internal/middleware"
	"taskboard-be/internal/models"
	"taskboard-be/internal/service"
	"taskboard-be/internal/validation"
)

type TaskController struct {
	taskService service.TaskService
	development bool
}

func NewTaskController(taskService service.TaskService, development bool) *TaskController {
	return &TaskController{
		taskService: taskService,
		development: development,
	}
}

// List handles GET /api/tasks
func (tc *TaskController) List(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserIDKey).(int)

	response, err := tc.taskService.List(ownerID)
	if err != nil {
		respondError(c, err, tc.development)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Create handles POST /api/tasks
func (tc *TaskController) Create(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserIDKey).(int)

	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
		})
		return
	}

	task, err := tc.taskService.Create(ownerID, &req)
	if err != nil {
		respondError(c, err, tc.development)
		return
	}

	c.JSON(http.StatusCreated, models.TaskResponse{
		Message: "Task created successfully",
		Task:    *task,
	})
}

// Get handles GET /api/tasks/:id
func (tc *TaskController) Get(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserIDKey).(int)

	taskID, fields := validation.ParseTaskID(c.Param("id"))
	if fields != nil {
		respondError(c, apperrors.NewValidation(fields), tc.development)
		return
	}

	task, err := tc.taskService.Get(ownerID, taskID)
	if err != nil {
		respondError(c, err, tc.development)
		return
	}

	c.JSON(http.StatusOK, models.TaskResponse{
		Message: "Task retrieved successfully",
		Task:    *task,
	})
}

// Update handles PUT /api/tasks/:id
func (tc *TaskController) Update(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserIDKey).(int)

	taskID, fields := validation.ParseTaskID(c.Param("id"))
	if fields != nil {
		respondError(c, apperrors.NewValidation(fields), tc.development)
		return
	}

	var req models.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
		})
		return
	}

	task, err := tc.taskService.Update(ownerID, taskID, &req)
	if err != nil {
		respondError(c, err, tc.development)
		return
	}

	c.JSON(http.StatusOK, models.TaskResponse{
		Message: "Task updated successfully",
		Task:    *task,
	})
}

// Delete handles DELETE /api/tasks/:id
func (tc *TaskController) Delete(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserIDKey).(int)

	taskID, fields := validation.ParseTaskID(c.Param("id"))
	if fields != nil {
		respondError(c, apperrors.NewValidation(fields), tc.development)
		return
	}

	if err := tc.taskService.Delete(ownerID, taskID); err != nil {
		respondError(c, err, tc.development)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
	})
}
