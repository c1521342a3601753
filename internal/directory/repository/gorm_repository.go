package repository

import (
	"errors"
	"time"

	"planner-backend/internal/directory/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormLinkRepository implements LinkRepository using GORM
type gormLinkRepository struct {
	db *gorm.DB
}

// NewGormLinkRepository creates a new GORM-based LinkRepository
func NewGormLinkRepository(db *gorm.DB) LinkRepository {
	return &gormLinkRepository{db: db}
}

func (r *gormLinkRepository) CreateAll(links []*domain.Link) error {
	for _, link := range links {
		stamp(link)
	}
	return r.db.Create(links).Error
}

func (r *gormLinkRepository) Create(link *domain.Link) error {
	stamp(link)
	return r.db.Create(link).Error
}

func (r *gormLinkRepository) FindByID(id string) (*domain.Link, error) {
	var link domain.Link
	err := r.db.Where("id = ?", id).First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &link, nil
}

func (r *gormLinkRepository) FindByUser(userID string) ([]*domain.Link, error) {
	var links []*domain.Link
	err := r.db.Where("user_id = ?", userID).Order("col, position ASC").Find(&links).Error
	return links, err
}

func (r *gormLinkRepository) CountByUser(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Link{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *gormLinkRepository) Update(link *domain.Link) error {
	link.UpdatedAt = time.Now()
	return r.db.Save(link).Error
}

func (r *gormLinkRepository) Delete(id string) error {
	return r.db.Delete(&domain.Link{}, "id = ?", id).Error
}

func stamp(link *domain.Link) {
	if link.ID == "" {
		link.ID = uuid.New().String()
	}
	link.CreatedAt = time.Now()
	link.UpdatedAt = time.Now()
}
