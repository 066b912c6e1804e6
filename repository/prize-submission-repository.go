package repository

import (
	"time"

	"gorm.io/gorm"
)

// PrizeSubmission records that a team opted into a prize.
type PrizeSubmission struct {
	Id          int       `gorm:"primaryKey"`
	EventId     int       `gorm:"not null;index;references:events(id)"`
	TeamId      int       `gorm:"not null;uniqueIndex:idx_prize_submission_team_prize;references:teams(id)"`
	PrizeId     int       `gorm:"not null;uniqueIndex:idx_prize_submission_team_prize;index;references:prizes(id)"`
	SubmittedBy int       `gorm:"not null"`
	SubmittedAt time.Time `gorm:"not null"`
}

type PrizeSubmissionRepository struct {
	DB *gorm.DB
}

func NewPrizeSubmissionRepository(db *gorm.DB) *PrizeSubmissionRepository {
	return &PrizeSubmissionRepository{DB: db}
}

func (r *PrizeSubmissionRepository) GetSubmissionsForTeam(eventId int, teamId int) ([]*PrizeSubmission, error) {
	submissions := make([]*PrizeSubmission, 0)
	result := r.DB.Order("prize_id ASC").Find(&submissions, "event_id = ? AND team_id = ?", eventId, teamId)
	if result.Error != nil {
		return nil, result.Error
	}
	return submissions, nil
}

func (r *PrizeSubmissionRepository) GetSubmissionsForEvent(eventId int) ([]*PrizeSubmission, error) {
	submissions := make([]*PrizeSubmission, 0)
	result := r.DB.Order("submitted_at ASC, id ASC").Find(&submissions, "event_id = ?", eventId)
	if result.Error != nil {
		return nil, result.Error
	}
	return submissions, nil
}

func (r *PrizeSubmissionRepository) CreateSubmissions(submissions []*PrizeSubmission) error {
	if len(submissions) == 0 {
		return nil
	}
	return r.DB.Create(&submissions).Error
}

func (r *PrizeSubmissionRepository) DeleteSubmissions(submissionIds []int) error {
	if len(submissionIds) == 0 {
		return nil
	}
	return r.DB.Where("id IN ?", submissionIds).Delete(&PrizeSubmission{}).Error
}
