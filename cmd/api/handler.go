package api

import (
	authDelivery "planner-backend/internal/auth/delivery"
	authUsecasePkg "planner-backend/internal/auth/usecase"
	directoryDelivery "planner-backend/internal/directory/delivery"
	directoryUsecasePkg "planner-backend/internal/directory/usecase"
	memoDelivery "planner-backend/internal/memo/delivery"
	memoUsecasePkg "planner-backend/internal/memo/usecase"
	noteDelivery "planner-backend/internal/note/delivery"
	noteUsecasePkg "planner-backend/internal/note/usecase"
	"planner-backend/internal/realtime"
	taskDelivery "planner-backend/internal/task/delivery"
	taskUsecasePkg "planner-backend/internal/task/usecase"
	"planner-backend/pkg/config"
	"planner-backend/pkg/sse"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase      authUsecasePkg.AuthUsecase
	sseManager       *sse.Manager
	hub              *realtime.Hub
	config           *config.Config
	authHandler      *authDelivery.AuthHandler
	taskHandler      *taskDelivery.TaskHandler
	noteHandler      *noteDelivery.NoteHandler
	memoHandler      *memoDelivery.MemoHandler
	directoryHandler *directoryDelivery.DirectoryHandler
}

func NewHandler(
	authUc authUsecasePkg.AuthUsecase,
	taskUc taskUsecasePkg.TaskUsecase,
	noteUc noteUsecasePkg.NoteUsecase,
	memoUc memoUsecasePkg.MemoUsecase,
	directoryUc directoryUsecasePkg.DirectoryUsecase,
	sseManager *sse.Manager,
	hub *realtime.Hub,
	cfg *config.Config,
) *Handler {
	return &Handler{
		authUsecase:      authUc,
		sseManager:       sseManager,
		hub:              hub,
		config:           cfg,
		authHandler:      authDelivery.NewAuthHandler(authUc),
		taskHandler:      taskDelivery.NewTaskHandler(taskUc),
		noteHandler:      noteDelivery.NewNoteHandler(noteUc),
		memoHandler:      memoDelivery.NewMemoHandler(memoUc),
		directoryHandler: directoryDelivery.NewDirectoryHandler(directoryUc),
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h)

	return r.Run(addr)
}
