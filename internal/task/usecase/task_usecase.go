package usecase

import (
	"errors"
	"log"
	"strings"

	"planner-backend/internal/task/domain"
	"planner-backend/internal/task/repository"
	"planner-backend/pkg/datekey"
)

var (
	ErrTaskNotFound   = errors.New("task not found")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrEmptyText      = errors.New("task text must not be empty")
	ErrInvalidDueDate = errors.New("due date must be YYYY-MM-DD")
)

// taskUsecase implements TaskUsecase interface
type taskUsecase struct {
	taskRepo repository.TaskRepository
	mirror   CalendarMirror
	notifier Notifier
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository) TaskUsecase {
	return &taskUsecase{
		taskRepo: taskRepo,
	}
}

func (u *taskUsecase) SetMirror(m CalendarMirror) {
	u.mirror = m
}

func (u *taskUsecase) SetNotifier(n Notifier) {
	u.notifier = n
}

func (u *taskUsecase) CreateTask(userID string, list domain.List, text string) (*domain.Task, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	display, due := ExtractDueDate(text)
	task := &domain.Task{
		UserID:  userID,
		List:    list,
		Text:    display,
		DueDate: due,
	}

	if err := u.taskRepo.Create(task); err != nil {
		return nil, err
	}

	if due != nil {
		u.mirrorToCalendar(task)
	}
	u.tasksChanged(userID, list)

	return task, nil
}

func (u *taskUsecase) GetUserTasks(userID string, list domain.List) ([]*domain.Task, error) {
	tasks, err := u.taskRepo.FindByList(userID, list)
	if err != nil {
		return nil, err
	}
	domain.OrderForDisplay(tasks)
	return tasks, nil
}

func (u *taskUsecase) UpdateTask(userID, taskID string, updates TaskUpdateRequest) (*domain.Task, error) {
	task, err := u.getOwnedTask(userID, taskID)
	if err != nil {
		return nil, err
	}

	previousDue := task.DueDate

	if updates.Text != nil {
		if strings.TrimSpace(*updates.Text) == "" {
			return nil, ErrEmptyText
		}
		display, due := ExtractDueDate(*updates.Text)
		task.Text = display
		task.DueDate = due
	}

	// A manually entered date overrides whatever the text carried.
	if updates.DueDate != nil {
		if *updates.DueDate == "" {
			task.DueDate = nil
		} else {
			key, err := datekey.Parse(*updates.DueDate)
			if err != nil {
				return nil, ErrInvalidDueDate
			}
			task.DueDate = &key
		}
	}

	if dueChanged(previousDue, task.DueDate) {
		task.ReminderSent = false
	}

	if err := u.taskRepo.Update(task); err != nil {
		return nil, err
	}

	// Mirror only when a date was newly set or moved. The line appended
	// to the previous day's note is never retracted.
	if task.DueDate != nil && dueChanged(previousDue, task.DueDate) {
		u.mirrorToCalendar(task)
	}
	u.tasksChanged(userID, task.List)

	return task, nil
}

func (u *taskUsecase) ToggleImportant(userID, taskID string) (*domain.Task, error) {
	task, err := u.getOwnedTask(userID, taskID)
	if err != nil {
		return nil, err
	}

	task.Important = !task.Important
	if err := u.taskRepo.Update(task); err != nil {
		return nil, err
	}
	u.tasksChanged(userID, task.List)

	return task, nil
}

func (u *taskUsecase) DeleteTask(userID, taskID string) error {
	task, err := u.getOwnedTask(userID, taskID)
	if err != nil {
		return err
	}

	// Deleting a task leaves any mirrored note line in place.
	if err := u.taskRepo.Delete(task.ID); err != nil {
		return err
	}
	u.tasksChanged(userID, task.List)

	return nil
}

func (u *taskUsecase) getOwnedTask(userID, taskID string) (*domain.Task, error) {
	task, err := u.taskRepo.FindByID(taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	if task.UserID != userID {
		return nil, ErrUnauthorized
	}
	return task, nil
}

// mirrorToCalendar is a best-effort second write: when it fails the task
// stays persisted without its note line and nothing reconciles the two.
func (u *taskUsecase) mirrorToCalendar(task *domain.Task) {
	if u.mirror == nil || task.DueDate == nil {
		return
	}
	if err := u.mirror.AppendTaskLine(task.UserID, *task.DueDate, task.Text); err != nil {
		log.Printf("[TaskUsecase] Failed to mirror task %s to calendar day %s: %v", task.ID, *task.DueDate, err)
	}
}

func (u *taskUsecase) tasksChanged(userID string, list domain.List) {
	if u.notifier != nil {
		u.notifier.TasksChanged(userID, list)
	}
}

func dueChanged(before, after *datekey.Key) bool {
	switch {
	case before == nil && after == nil:
		return false
	case before == nil || after == nil:
		return true
	default:
		return *before != *after
	}
}
