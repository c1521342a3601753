package scheduler

import (
	"context"
	"log"
	"time"

	authrepo "planner-backend/internal/auth/repository"
	"planner-backend/internal/task/repository"
	"planner-backend/pkg/datekey"
	"planner-backend/pkg/fcm"
)

// TaskReminderScheduler sends an FCM reminder for each task on the morning
// its due date arrives
type TaskReminderScheduler struct {
	taskRepo   repository.TaskRepository
	deviceRepo authrepo.DeviceTokenRepository
	fcmClient  *fcm.Client
	interval   time.Duration
	stopChan   chan struct{}
}

// NewTaskReminderScheduler creates a new scheduler
func NewTaskReminderScheduler(
	taskRepo repository.TaskRepository,
	deviceRepo authrepo.DeviceTokenRepository,
	fcmClient *fcm.Client,
) *TaskReminderScheduler {
	return &TaskReminderScheduler{
		taskRepo:   taskRepo,
		deviceRepo: deviceRepo,
		fcmClient:  fcmClient,
		interval:   15 * time.Minute,
		stopChan:   make(chan struct{}),
	}
}

// Start begins the scheduler loop
func (s *TaskReminderScheduler) Start() {
	if s.fcmClient == nil {
		log.Println("[TaskScheduler] FCM client not available, scheduler disabled")
		return
	}

	log.Printf("[TaskScheduler] Starting due-date reminder scheduler (interval: %s)", s.interval)

	go func() {
		// Run immediately on start
		s.checkAndSendReminders()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.checkAndSendReminders()
			case <-s.stopChan:
				log.Println("[TaskScheduler] Scheduler stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the scheduler
func (s *TaskReminderScheduler) Stop() {
	close(s.stopChan)
}

// checkAndSendReminders finds tasks due today and notifies their owners
func (s *TaskReminderScheduler) checkAndSendReminders() {
	today := datekey.FromTime(time.Now())

	tasks, err := s.taskRepo.FindDueReminders(today)
	if err != nil {
		log.Printf("[TaskScheduler] Error finding due tasks: %v", err)
		return
	}

	if len(tasks) == 0 {
		return
	}

	log.Printf("[TaskScheduler] Found %d tasks due today", len(tasks))

	for _, task := range tasks {
		tokens, err := s.deviceRepo.GetTokensByUserID(task.UserID)
		if err != nil {
			log.Printf("[TaskScheduler] Error getting device tokens for user %s: %v", task.UserID, err)
			continue
		}

		if len(tokens) == 0 {
			log.Printf("[TaskScheduler] No device tokens for user %s, marking reminder as sent", task.UserID)
			s.taskRepo.MarkReminderSent(task.ID)
			continue
		}

		var tokenStrings []string
		for _, t := range tokens {
			tokenStrings = append(tokenStrings, t.Token)
		}

		notification := fcm.NotificationData{
			Title: "Due today: " + task.Text,
			Body:  "This task is due today (" + string(task.List) + " list)",
			Data: map[string]string{
				"type":    "task_reminder",
				"task_id": task.ID,
				"list":    string(task.List),
			},
		}

		failedTokens, err := s.fcmClient.SendToDevices(context.Background(), tokenStrings, notification)
		if err != nil {
			log.Printf("[TaskScheduler] Error sending reminder for task %s: %v", task.ID, err)
		} else {
			log.Printf("[TaskScheduler] Sent reminder for task %s to %d devices", task.ID, len(tokenStrings)-len(failedTokens))
		}

		// Cleanup failed tokens
		for _, token := range failedTokens {
			s.deviceRepo.DeleteToken(token)
		}

		// Mark reminder as sent regardless of success (to avoid spamming)
		if err := s.taskRepo.MarkReminderSent(task.ID); err != nil {
			log.Printf("[TaskScheduler] Error marking reminder as sent for task %s: %v", task.ID, err)
		}
	}
}
