package delivery

import (
	"errors"
	"net/http"

	"planner-backend/internal/task/domain"
	taskdto "planner-backend/internal/task/dto"
	"planner-backend/internal/task/usecase"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles task HTTP requests
type TaskHandler struct {
	taskUsecase usecase.TaskUsecase
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskUsecase usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{
		taskUsecase: taskUsecase,
	}
}

// GetTasks returns one of the user's lists in display order
// GET /api/tasks?list=life|work
func (h *TaskHandler) GetTasks(c *gin.Context) {
	userID := c.GetString("userID")

	list, err := domain.ParseList(c.DefaultQuery("list", string(domain.ListLife)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tasks, err := h.taskUsecase.GetUserTasks(userID, list)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list, "tasks": tasks})
}

// CreateTask creates a task from a raw entry line
// POST /api/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID := c.GetString("userID")

	var req taskdto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "list and text are required"})
		return
	}

	list, err := domain.ParseList(req.List)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.CreateTask(userID, list, req.Text)
	if err != nil {
		respondTaskError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// UpdateTask edits a task's text and/or due date
// PUT /api/tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID := c.GetString("userID")

	var req taskdto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	task, err := h.taskUsecase.UpdateTask(userID, c.Param("id"), usecase.TaskUpdateRequest{
		Text:    req.Text,
		DueDate: req.DueDate,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// ToggleImportant flips a task's important flag
// PATCH /api/tasks/:id/important
func (h *TaskHandler) ToggleImportant(c *gin.Context) {
	userID := c.GetString("userID")

	task, err := h.taskUsecase.ToggleImportant(userID, c.Param("id"))
	if err != nil {
		respondTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// DeleteTask deletes a task
// DELETE /api/tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.taskUsecase.DeleteTask(userID, c.Param("id")); err != nil {
		respondTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrEmptyText), errors.Is(err, usecase.ErrInvalidDueDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
