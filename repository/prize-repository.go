package repository

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type PrizeType string

const (
	PrizeTypeGeneral      PrizeType = "general"
	PrizeTypeTrack        PrizeType = "track"
	PrizeTypeSponsor      PrizeType = "sponsor"
	PrizeTypeTrackSponsor PrizeType = "track_sponsor"
)

func (t PrizeType) IsValid() bool {
	switch t {
	case PrizeTypeGeneral, PrizeTypeTrack, PrizeTypeSponsor, PrizeTypeTrackSponsor:
		return true
	}
	return false
}

func (t PrizeType) NeedsTrack() bool {
	return t == PrizeTypeTrack || t == PrizeTypeTrackSponsor
}

func (t PrizeType) NeedsSponsor() bool {
	return t == PrizeTypeSponsor || t == PrizeTypeTrackSponsor
}

type ScoreBasis string

const (
	ScoreBasisOverall    ScoreBasis = "overall"
	ScoreBasisCategories ScoreBasis = "categories"
	ScoreBasisNone       ScoreBasis = "none"
)

func (b ScoreBasis) IsValid() bool {
	switch b {
	case ScoreBasisOverall, ScoreBasisCategories, ScoreBasisNone:
		return true
	}
	return false
}

type Prize struct {
	Id          int            `gorm:"primaryKey"`
	EventId     int            `gorm:"not null;index;references:events(id)"`
	Name        string         `gorm:"not null"`
	Description string         `gorm:"not null"`
	Type        PrizeType      `gorm:"not null;type:demoday.prize_type"`
	Track       string         `gorm:"not null"`
	SponsorName string         `gorm:"not null"`
	ScoreBasis  ScoreBasis     `gorm:"not null;type:demoday.score_basis"`
	Categories  pq.StringArray `gorm:"type:text[]"`
	Active      bool           `gorm:"not null"`
	SortOrder   int            `gorm:"not null"`
}

type PrizeRepository struct {
	DB *gorm.DB
}

func NewPrizeRepository(db *gorm.DB) *PrizeRepository {
	return &PrizeRepository{DB: db}
}

func (r *PrizeRepository) GetPrizesForEvent(eventId int) ([]*Prize, error) {
	prizes := make([]*Prize, 0)
	result := r.DB.Order("sort_order ASC, name ASC, id ASC").Find(&prizes, "event_id = ?", eventId)
	if result.Error != nil {
		return nil, result.Error
	}
	return prizes, nil
}

func (r *PrizeRepository) SavePrize(prize *Prize) (*Prize, error) {
	result := r.DB.Save(prize)
	if result.Error != nil {
		return nil, result.Error
	}
	return prize, nil
}

// DeletePrizes removes the prizes after their submissions and winner rows.
func (r *PrizeRepository) DeletePrizes(prizeIds []int) error {
	if len(prizeIds) == 0 {
		return nil
	}
	if err := r.DB.Where("prize_id IN ?", prizeIds).Delete(&PrizeWinner{}).Error; err != nil {
		return err
	}
	if err := r.DB.Where("prize_id IN ?", prizeIds).Delete(&PrizeSubmission{}).Error; err != nil {
		return err
	}
	return r.DB.Where("id IN ?", prizeIds).Delete(&Prize{}).Error
}
