package repository

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Assignment records that a judge intends to score a team.
type Assignment struct {
	Id        int       `gorm:"primaryKey"`
	EventId   int       `gorm:"not null;index;references:events(id)"`
	JudgeId   int       `gorm:"not null;uniqueIndex:idx_assignment_judge_team;references:judges(id)"`
	TeamId    int       `gorm:"not null;uniqueIndex:idx_assignment_judge_team;references:teams(id)"`
	CreatedAt time.Time `gorm:"not null"`
}

type AssignmentRepository struct {
	DB *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{DB: db}
}

// InsertIgnoringDuplicates inserts the assignments that do not exist yet and
// returns how many rows were actually created.
func (r *AssignmentRepository) InsertIgnoringDuplicates(assignments []*Assignment) (int, error) {
	if len(assignments) == 0 {
		return 0, nil
	}
	result := r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&assignments)
	if result.Error != nil {
		return 0, result.Error
	}
	return int(result.RowsAffected), nil
}

func (r *AssignmentRepository) GetAssignment(judgeId int, teamId int) (*Assignment, error) {
	var assignment Assignment
	result := r.DB.First(&assignment, "judge_id = ? AND team_id = ?", judgeId, teamId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &assignment, nil
}

func (r *AssignmentRepository) GetAssignedTeamIds(eventId int, judgeId int) ([]int, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("GetAssignedTeamIds"))
	defer timer.ObserveDuration()
	teamIds := make([]int, 0)
	result := r.DB.Model(&Assignment{}).
		Where("event_id = ? AND judge_id = ?", eventId, judgeId).
		Order("team_id ASC").
		Pluck("team_id", &teamIds)
	if result.Error != nil {
		return nil, result.Error
	}
	return teamIds, nil
}

func (r *AssignmentRepository) Delete(judgeId int, teamId int) (int, error) {
	result := r.DB.Where("judge_id = ? AND team_id = ?", judgeId, teamId).Delete(&Assignment{})
	return int(result.RowsAffected), result.Error
}
