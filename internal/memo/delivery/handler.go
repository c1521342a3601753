package delivery

import (
	"errors"
	"net/http"

	"planner-backend/internal/memo/usecase"
	taskdomain "planner-backend/internal/task/domain"

	"github.com/gin-gonic/gin"
)

// MemoHandler handles voice memo HTTP requests
type MemoHandler struct {
	memoUsecase usecase.MemoUsecase
}

// NewMemoHandler creates a new MemoHandler
func NewMemoHandler(memoUsecase usecase.MemoUsecase) *MemoHandler {
	return &MemoHandler{
		memoUsecase: memoUsecase,
	}
}

type memoRequest struct {
	Text string `json:"text" binding:"required"`
}

type addAsTaskRequest struct {
	List string `json:"list" binding:"required"`
}

// GetMemos returns the user's memos newest first
// GET /api/memos
func (h *MemoHandler) GetMemos(c *gin.Context) {
	userID := c.GetString("userID")

	memos, err := h.memoUsecase.GetUserMemos(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, memos)
}

// CreateMemo stores a committed transcript
// POST /api/memos
func (h *MemoHandler) CreateMemo(c *gin.Context) {
	userID := c.GetString("userID")

	var req memoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	memo, err := h.memoUsecase.CreateMemo(userID, req.Text)
	if err != nil {
		respondMemoError(c, err)
		return
	}
	c.JSON(http.StatusCreated, memo)
}

// UpdateMemo replaces a memo's text
// PUT /api/memos/:id
func (h *MemoHandler) UpdateMemo(c *gin.Context) {
	userID := c.GetString("userID")

	var req memoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	memo, err := h.memoUsecase.UpdateMemo(userID, c.Param("id"), req.Text)
	if err != nil {
		respondMemoError(c, err)
		return
	}
	c.JSON(http.StatusOK, memo)
}

// DeleteMemo deletes a memo
// DELETE /api/memos/:id
func (h *MemoHandler) DeleteMemo(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.memoUsecase.DeleteMemo(userID, c.Param("id")); err != nil {
		respondMemoError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Memo deleted"})
}

// AddAsTask sends a memo's text through the task entry pipeline
// POST /api/memos/:id/task
func (h *MemoHandler) AddAsTask(c *gin.Context) {
	userID := c.GetString("userID")

	var req addAsTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "list is required"})
		return
	}

	list, err := taskdomain.ParseList(req.List)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.memoUsecase.AddAsTask(userID, c.Param("id"), list)
	if err != nil {
		respondMemoError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func respondMemoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrMemoNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrEmptyText):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
