package repository

import (
	"gorm.io/gorm"
)

// JudgingCategory is one weighted criterion judges score teams against.
type JudgingCategory struct {
	Id            int      `gorm:"primaryKey"`
	EventId       int      `gorm:"not null;index;references:events(id)"`
	Name          string   `gorm:"not null"`
	Weight        *float64 `gorm:"null"`
	OptOutAllowed bool     `gorm:"not null"`
	Position      int      `gorm:"not null"`
}

type JudgingCategoryRepository struct {
	DB *gorm.DB
}

func NewJudgingCategoryRepository(db *gorm.DB) *JudgingCategoryRepository {
	return &JudgingCategoryRepository{DB: db}
}

func (r *JudgingCategoryRepository) GetCategoriesForEvent(eventId int) ([]*JudgingCategory, error) {
	categories := make([]*JudgingCategory, 0)
	result := r.DB.Order("position ASC, id ASC").Find(&categories, "event_id = ?", eventId)
	if result.Error != nil {
		return nil, result.Error
	}
	return categories, nil
}
