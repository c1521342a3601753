package delivery

import (
	"errors"
	"net/http"

	authdomain "planner-backend/internal/auth/domain"
	authdto "planner-backend/internal/auth/dto"
	"planner-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Login signs a user in with email and password
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter email and password"})
		return
	}

	resp, err := h.authUsecase.Login(&req)
	if err != nil {
		respondAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Register creates a new account
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in all fields"})
		return
	}

	resp, err := h.authUsecase.Register(&req)
	if err != nil {
		respondAuthError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// RefreshToken exchanges a refresh token for fresh tokens
// POST /api/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req authdto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "refresh_token is required"})
		return
	}

	resp, err := h.authUsecase.RefreshToken(req.RefreshToken)
	if err != nil {
		respondAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Logout invalidates a refresh token
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	var req authdto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "refresh_token is required"})
		return
	}

	if err := h.authUsecase.Logout(req.RefreshToken); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me returns the authenticated user
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := c.Get("user")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	c.JSON(http.StatusOK, user.(*authdomain.User))
}

// RegisterDevice stores an FCM token for due-today reminders
// POST /api/devices
func (h *AuthHandler) RegisterDevice(c *gin.Context) {
	userID := c.GetString("userID")

	var req authdto.RegisterDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token is required"})
		return
	}

	if err := h.authUsecase.RegisterDevice(userID, req.Token, req.DeviceInfo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Device registered"})
}

// UnregisterDevice removes an FCM token
// DELETE /api/devices/:token
func (h *AuthHandler) UnregisterDevice(c *gin.Context) {
	if err := h.authUsecase.UnregisterDevice(c.Param("token")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Device unregistered"})
}

// respondAuthError maps a classified auth failure to its user-facing
// sentence and status code.
func respondAuthError(c *gin.Context, err error) {
	var authError *usecase.AuthError
	if !errors.As(err, &authError) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	status := http.StatusUnauthorized
	switch authError.Code {
	case usecase.CodeInvalidEmail, usecase.CodeWeakPassword:
		status = http.StatusBadRequest
	case usecase.CodeEmailAlreadyInUse:
		status = http.StatusConflict
	case usecase.CodeNetworkFailure:
		status = http.StatusBadGateway
	}

	c.JSON(status, gin.H{
		"error": authError.Message(),
		"code":  string(authError.Code),
	})
}
