package repository

import (
	"time"

	"gorm.io/gorm"
)

type PrizeWinner struct {
	Id        int       `gorm:"primaryKey"`
	EventId   int       `gorm:"not null;index;references:events(id)"`
	PrizeId   int       `gorm:"not null;uniqueIndex:idx_prize_winner_prize_team;references:prizes(id)"`
	TeamId    int       `gorm:"not null;uniqueIndex:idx_prize_winner_prize_team;references:teams(id)"`
	Placement *int      `gorm:"null"`
	Notes     *string   `gorm:"null"`
	SetBy     int       `gorm:"not null"`
	SetAt     time.Time `gorm:"not null"`
}

type WinnerRepository struct {
	DB *gorm.DB
}

func NewWinnerRepository(db *gorm.DB) *WinnerRepository {
	return &WinnerRepository{DB: db}
}

func (r *WinnerRepository) GetWinnersForEvent(eventId int) ([]*PrizeWinner, error) {
	winners := make([]*PrizeWinner, 0)
	result := r.DB.Order("prize_id ASC, placement ASC NULLS LAST, id ASC").Find(&winners, "event_id = ?", eventId)
	if result.Error != nil {
		return nil, result.Error
	}
	return winners, nil
}

func (r *WinnerRepository) CreateWinners(winners []*PrizeWinner) error {
	if len(winners) == 0 {
		return nil
	}
	return r.DB.Create(&winners).Error
}

func (r *WinnerRepository) UpdateWinner(winner *PrizeWinner) error {
	return r.DB.Model(winner).Select("placement", "notes", "set_by", "set_at").Updates(winner).Error
}

func (r *WinnerRepository) DeleteWinners(winnerIds []int) error {
	if len(winnerIds) == 0 {
		return nil
	}
	return r.DB.Where("id IN ?", winnerIds).Delete(&PrizeWinner{}).Error
}
