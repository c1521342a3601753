package main

import (
	"log"

	api "planner-backend/cmd/api"
	authdomain "planner-backend/internal/auth/domain"
	authRepo "planner-backend/internal/auth/repository"
	authUsecase "planner-backend/internal/auth/usecase"
	directorydomain "planner-backend/internal/directory/domain"
	directoryRepo "planner-backend/internal/directory/repository"
	directoryUsecase "planner-backend/internal/directory/usecase"
	memodomain "planner-backend/internal/memo/domain"
	memoRepo "planner-backend/internal/memo/repository"
	memoUsecase "planner-backend/internal/memo/usecase"
	notedomain "planner-backend/internal/note/domain"
	noteRepo "planner-backend/internal/note/repository"
	noteUsecase "planner-backend/internal/note/usecase"
	"planner-backend/internal/realtime"
	taskdomain "planner-backend/internal/task/domain"
	taskRepo "planner-backend/internal/task/repository"
	"planner-backend/internal/task/scheduler"
	taskUsecase "planner-backend/internal/task/usecase"
	"planner-backend/pkg/config"
	"planner-backend/pkg/database"
	"planner-backend/pkg/fcm"
	"planner-backend/pkg/sse"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&authdomain.User{},
		&authdomain.RefreshToken{},
		&authdomain.DeviceToken{},
		&taskdomain.Task{},
		&notedomain.CalendarNote{},
		&memodomain.Memo{},
		&directorydomain.Link{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	deviceTokenRepository := authRepo.NewDeviceTokenRepository(db)
	taskRepository := taskRepo.NewGormTaskRepository(db)
	noteRepository := noteRepo.NewGormNoteRepository(db)
	memoRepository := memoRepo.NewGormMemoRepository(db)
	linkRepository := directoryRepo.NewGormLinkRepository(db)

	// Initialize SSE Manager
	sseManager := sse.NewManager()

	// Initialize use cases (dependency injection)
	authUc := authUsecase.NewAuthUsecase(userRepository, deviceTokenRepository, cfg)
	taskUc := taskUsecase.NewTaskUsecase(taskRepository)
	noteUc := noteUsecase.NewNoteUsecase(noteRepository)
	memoUc := memoUsecase.NewMemoUsecase(memoRepository)
	directoryUc := directoryUsecase.NewDirectoryUsecase(linkRepository)

	// Wire cross-usecase dependencies
	taskUc.SetMirror(noteUc)
	memoUc.SetTaskCreator(taskUc)

	// Live snapshot hub: connected clients get a fresh snapshot after
	// every write
	hub := realtime.NewHub(sseManager, taskUc, noteUc, memoUc)
	sseManager.OnConnect = hub.ClientConnected
	sseManager.OnDisconnect = hub.ClientDisconnected
	taskUc.SetNotifier(hub)
	noteUc.SetNotifier(hub)
	memoUc.SetNotifier(hub)

	go sseManager.Run()

	// Initialize FCM client for due-date reminders (optional)
	var fcmClient *fcm.Client
	if cfg.FirebaseCredentials != "" {
		fcmClient, err = fcm.NewClient(cfg.FirebaseCredentials)
		if err != nil {
			log.Printf("[WARN] Failed to initialize FCM client (push reminders disabled): %v", err)
		}
	} else {
		log.Println("[WARN] No Firebase credentials configured, push reminders disabled")
	}

	reminderScheduler := scheduler.NewTaskReminderScheduler(taskRepository, deviceTokenRepository, fcmClient)
	reminderScheduler.Start()
	defer reminderScheduler.Stop()

	// Initialize HTTP handler
	handler := api.NewHandler(authUc, taskUc, noteUc, memoUc, directoryUc, sseManager, hub, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
