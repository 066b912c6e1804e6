package repository

import (
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Team struct {
	Id          int            `gorm:"primaryKey"`
	EventId     int            `gorm:"not null;index;references:events(id)"`
	Name        string         `gorm:"not null"`
	Description string         `gorm:"not null"`
	Members     pq.StringArray `gorm:"type:text[]"`
	Track       string         `gorm:"not null"`
	LogoRef     *string        `gorm:"null"`
	OwnerId     int            `gorm:"not null"`
}

func (t *Team) HasTrack() bool {
	return strings.TrimSpace(t.Track) != ""
}

type TeamRepository struct {
	DB *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{DB: db}
}

// GetTeamForEvent returns gorm.ErrRecordNotFound when the team does not
// belong to the event.
func (r *TeamRepository) GetTeamForEvent(eventId int, teamId int) (*Team, error) {
	var team Team
	result := r.DB.First(&team, "id = ? AND event_id = ?", teamId, eventId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &team, nil
}

func (r *TeamRepository) GetTeamsForEvent(eventId int) ([]*Team, error) {
	teams := make([]*Team, 0)
	result := r.DB.Order("id ASC").Find(&teams, "event_id = ?", eventId)
	if result.Error != nil {
		return nil, result.Error
	}
	return teams, nil
}

func (r *TeamRepository) GetTeamsByIds(eventId int, teamIds []int) ([]*Team, error) {
	teams := make([]*Team, 0)
	if len(teamIds) == 0 {
		return teams, nil
	}
	result := r.DB.Find(&teams, "event_id = ? AND id IN ?", eventId, teamIds)
	if result.Error != nil {
		return nil, result.Error
	}
	return teams, nil
}

// Delete removes the team together with its scores, assignments, prize
// submissions and winner rows. Must be called inside a transaction.
func (r *TeamRepository) Delete(teamId int) error {
	for _, model := range []interface{}{
		&PrizeWinner{},
		&PrizeSubmission{},
		&Score{},
		&Assignment{},
	} {
		if err := r.DB.Where("team_id = ?", teamId).Delete(model).Error; err != nil {
			return err
		}
	}
	result := r.DB.Delete(&Team{}, teamId)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
