package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Judge is a user's membership as a judge of one event.
type Judge struct {
	Id        int       `gorm:"primaryKey"`
	EventId   int       `gorm:"not null;uniqueIndex:idx_judge_event_user;references:events(id)"`
	UserId    int       `gorm:"not null;uniqueIndex:idx_judge_event_user"`
	CreatedAt time.Time `gorm:"not null"`
}

type JudgeRepository struct {
	DB *gorm.DB
}

func NewJudgeRepository(db *gorm.DB) *JudgeRepository {
	return &JudgeRepository{DB: db}
}

func (r *JudgeRepository) GetJudgeForUser(eventId int, userId int) (*Judge, error) {
	var judge Judge
	result := r.DB.First(&judge, "event_id = ? AND user_id = ?", eventId, userId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &judge, nil
}

func (r *JudgeRepository) GetJudgeForEvent(eventId int, judgeId int) (*Judge, error) {
	var judge Judge
	result := r.DB.First(&judge, "id = ? AND event_id = ?", judgeId, eventId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &judge, nil
}

// EnsureJudges creates missing memberships and returns how many were created.
func (r *JudgeRepository) EnsureJudges(eventId int, userIds []int) (int, error) {
	if len(userIds) == 0 {
		return 0, nil
	}
	now := time.Now()
	judges := make([]*Judge, 0, len(userIds))
	for _, userId := range userIds {
		judges = append(judges, &Judge{EventId: eventId, UserId: userId, CreatedAt: now})
	}
	result := r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&judges)
	if result.Error != nil {
		return 0, result.Error
	}
	return int(result.RowsAffected), nil
}
