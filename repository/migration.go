package repository

import (
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Event{},
		&JudgingCategory{},
		&Team{},
		&Judge{},
		&Assignment{},
		&Score{},
		&Prize{},
		&PrizeSubmission{},
		&PrizeWinner{},
	)
}
