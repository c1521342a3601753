package repository

import (
	"errors"
	"time"

	"planner-backend/internal/memo/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormMemoRepository implements MemoRepository using GORM
type gormMemoRepository struct {
	db *gorm.DB
}

// NewGormMemoRepository creates a new GORM-based MemoRepository
func NewGormMemoRepository(db *gorm.DB) MemoRepository {
	return &gormMemoRepository{db: db}
}

func (r *gormMemoRepository) Create(memo *domain.Memo) error {
	if memo.ID == "" {
		memo.ID = uuid.New().String()
	}
	memo.CreatedAt = time.Now()
	memo.UpdatedAt = time.Now()
	return r.db.Create(memo).Error
}

func (r *gormMemoRepository) FindByID(id string) (*domain.Memo, error) {
	var memo domain.Memo
	err := r.db.Where("id = ?", id).First(&memo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &memo, nil
}

func (r *gormMemoRepository) FindByUser(userID string) ([]*domain.Memo, error) {
	var memos []*domain.Memo
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&memos).Error
	return memos, err
}

func (r *gormMemoRepository) Update(memo *domain.Memo) error {
	memo.UpdatedAt = time.Now()
	return r.db.Save(memo).Error
}

func (r *gormMemoRepository) Delete(id string) error {
	return r.db.Delete(&domain.Memo{}, "id = ?", id).Error
}
