package repository

import (
	"errors"
	"time"

	"planner-backend/internal/note/domain"
	"planner-backend/pkg/datekey"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormNoteRepository implements NoteRepository using GORM
type gormNoteRepository struct {
	db *gorm.DB
}

// NewGormNoteRepository creates a new GORM-based NoteRepository
func NewGormNoteRepository(db *gorm.DB) NoteRepository {
	return &gormNoteRepository{db: db}
}

func (r *gormNoteRepository) FindByDay(userID string, day datekey.Key) (*domain.CalendarNote, error) {
	var note domain.CalendarNote
	err := r.db.Where("user_id = ? AND day = ?", userID, day).First(&note).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &note, nil
}

func (r *gormNoteRepository) FindByUser(userID string) ([]*domain.CalendarNote, error) {
	var notes []*domain.CalendarNote
	err := r.db.Where("user_id = ?", userID).Order("day ASC").Find(&notes).Error
	return notes, err
}

func (r *gormNoteRepository) Upsert(note *domain.CalendarNote) error {
	note.UpdatedAt = time.Now()
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "day"}},
		DoUpdates: clause.AssignmentColumns([]string{"note", "updated_at"}),
	}).Create(note).Error
}

func (r *gormNoteRepository) Delete(userID string, day datekey.Key) error {
	return r.db.Where("user_id = ? AND day = ?", userID, day).Delete(&domain.CalendarNote{}).Error
}
