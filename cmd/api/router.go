package api

import (
	"net/http"

	"planner-backend/internal/auth/delivery"
	taskdomain "planner-backend/internal/task/domain"

	"github.com/gin-gonic/gin"
)

type switchListRequest struct {
	ClientID string `json:"client_id" binding:"required"`
	List     string `json:"list" binding:"required"`
}

func SetupRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// SSE endpoint. The stream opens with a "hello" event carrying the
		// client_id used to switch task lists below.
		api.GET("/events", delivery.AuthMiddleware(h.authUsecase), func(c *gin.Context) {
			userID := c.GetString("userID")
			h.sseManager.ServeHTTP(c, userID)
		})

		// Re-point a connection's task subscription at another list
		api.POST("/events/list", delivery.AuthMiddleware(h.authUsecase), func(c *gin.Context) {
			userID := c.GetString("userID")

			var req switchListRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "client_id and list are required"})
				return
			}

			list, err := taskdomain.ParseList(req.List)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}

			h.hub.SwitchList(req.ClientID, userID, list)
			c.JSON(http.StatusOK, gin.H{"client_id": req.ClientID, "list": list})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", h.authHandler.Login)
			auth.POST("/register", h.authHandler.Register)
			auth.POST("/refresh", h.authHandler.RefreshToken)
			auth.POST("/logout", h.authHandler.Logout)
			auth.GET("/me", delivery.AuthMiddleware(h.authUsecase), h.authHandler.Me)
		}

		// Device routes for push reminders (protected)
		devices := api.Group("/devices")
		devices.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			devices.POST("", h.authHandler.RegisterDevice)
			devices.DELETE("/:token", h.authHandler.UnregisterDevice)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			tasks.GET("", h.taskHandler.GetTasks)
			tasks.POST("", h.taskHandler.CreateTask)
			tasks.PUT("/:id", h.taskHandler.UpdateTask)
			tasks.PATCH("/:id/important", h.taskHandler.ToggleImportant)
			tasks.DELETE("/:id", h.taskHandler.DeleteTask)
		}

		// Calendar note routes (protected)
		notes := api.Group("/notes")
		notes.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			notes.GET("/:date", h.noteHandler.GetNote)
			notes.PUT("/:date", h.noteHandler.SaveNote)
		}
		api.GET("/calendar", delivery.AuthMiddleware(h.authUsecase), h.noteHandler.GetCalendar)

		// Voice memo routes (protected)
		memos := api.Group("/memos")
		memos.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			memos.GET("", h.memoHandler.GetMemos)
			memos.POST("", h.memoHandler.CreateMemo)
			memos.PUT("/:id", h.memoHandler.UpdateMemo)
			memos.DELETE("/:id", h.memoHandler.DeleteMemo)
			memos.POST("/:id/task", h.memoHandler.AddAsTask)
		}

		// Housing directory routes (protected)
		directory := api.Group("/directory")
		directory.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			directory.GET("", h.directoryHandler.GetColumns)
			directory.POST("", h.directoryHandler.CreateLink)
			directory.PUT("/:id", h.directoryHandler.UpdateLink)
			directory.DELETE("/:id", h.directoryHandler.DeleteLink)
		}
	}
}
