package repository

import (
	"errors"
	"time"

	"planner-backend/internal/task/domain"
	"planner-backend/pkg/datekey"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormTaskRepository implements TaskRepository using GORM
type gormTaskRepository struct {
	db *gorm.DB
}

// NewGormTaskRepository creates a new GORM-based TaskRepository
func NewGormTaskRepository(db *gorm.DB) TaskRepository {
	return &gormTaskRepository{db: db}
}

func (r *gormTaskRepository) Create(task *domain.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()
	return r.db.Create(task).Error
}

func (r *gormTaskRepository) FindByID(id string) (*domain.Task, error) {
	var task domain.Task
	err := r.db.Where("id = ?", id).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *gormTaskRepository) FindByList(userID string, list domain.List) ([]*domain.Task, error) {
	var tasks []*domain.Task
	// Display order is applied in memory by domain.OrderForDisplay; the
	// query only fixes a deterministic base order for the stable sort.
	err := r.db.Where("user_id = ? AND list = ?", userID, list).
		Order("created_at ASC").Find(&tasks).Error
	return tasks, err
}

func (r *gormTaskRepository) Update(task *domain.Task) error {
	task.UpdatedAt = time.Now()
	return r.db.Save(task).Error
}

func (r *gormTaskRepository) Delete(id string) error {
	return r.db.Delete(&domain.Task{}, "id = ?", id).Error
}

func (r *gormTaskRepository) FindDueReminders(day datekey.Key) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := r.db.Where("due_date = ? AND reminder_sent = ?", day, false).Find(&tasks).Error
	return tasks, err
}

func (r *gormTaskRepository) MarkReminderSent(id string) error {
	return r.db.Model(&domain.Task{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"reminder_sent": true,
			"updated_at":    time.Now(),
		}).Error
}
