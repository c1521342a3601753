package delivery

import (
	"errors"
	"net/http"

	"planner-backend/internal/directory/domain"
	"planner-backend/internal/directory/usecase"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler handles housing directory HTTP requests
type DirectoryHandler struct {
	directoryUsecase usecase.DirectoryUsecase
}

// NewDirectoryHandler creates a new DirectoryHandler
func NewDirectoryHandler(directoryUsecase usecase.DirectoryUsecase) *DirectoryHandler {
	return &DirectoryHandler{
		directoryUsecase: directoryUsecase,
	}
}

type createLinkRequest struct {
	Column      string `json:"column" binding:"required"`
	Name        string `json:"name" binding:"required"`
	URL         string `json:"url" binding:"required"`
	Description string `json:"description"`
}

type updateLinkRequest struct {
	Name        string `json:"name" binding:"required"`
	URL         string `json:"url" binding:"required"`
	Description string `json:"description"`
}

// GetColumns returns all of the user's links grouped per column, seeding
// the built-in defaults on first access
// GET /api/directory
func (h *DirectoryHandler) GetColumns(c *gin.Context) {
	userID := c.GetString("userID")

	columns, err := h.directoryUsecase.GetColumns(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"columns": columns, "order": domain.Columns})
}

// CreateLink adds a link to the end of a column
// POST /api/directory
func (h *DirectoryHandler) CreateLink(c *gin.Context) {
	userID := c.GetString("userID")

	var req createLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "column, name and url are required"})
		return
	}

	column, err := domain.ParseColumn(req.Column)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	link, err := h.directoryUsecase.CreateLink(userID, column, req.Name, req.URL, req.Description)
	if err != nil {
		respondDirectoryError(c, err)
		return
	}
	c.JSON(http.StatusCreated, link)
}

// UpdateLink replaces a link's name, url and description
// PUT /api/directory/:id
func (h *DirectoryHandler) UpdateLink(c *gin.Context) {
	userID := c.GetString("userID")

	var req updateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and url are required"})
		return
	}

	link, err := h.directoryUsecase.UpdateLink(userID, c.Param("id"), req.Name, req.URL, req.Description)
	if err != nil {
		respondDirectoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, link)
}

// DeleteLink deletes a link
// DELETE /api/directory/:id
func (h *DirectoryHandler) DeleteLink(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.directoryUsecase.DeleteLink(userID, c.Param("id")); err != nil {
		respondDirectoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Link deleted"})
}

func respondDirectoryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrLinkNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrInvalidLink):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
