package repository

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoryScore struct {
	Category string   `json:"category"`
	RawScore *float64 `json:"raw_score"`
	OptedOut bool     `json:"opted_out"`
}

type CategoryScores []CategoryScore

func (c *CategoryScores) Scan(value interface{}) error {
	if value == nil {
		*c = CategoryScores{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("unsupported type for CategoryScores: %T", value)
	}
	scores := CategoryScores{}
	if err := json.Unmarshal(data, &scores); err != nil {
		return err
	}
	*c = scores
	return nil
}

func (c CategoryScores) Value() (driver.Value, error) {
	if c == nil {
		return "[]", nil
	}
	data, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Score is the one evaluation a judge gives a team.
type Score struct {
	Id          int            `gorm:"primaryKey"`
	EventId     int            `gorm:"not null;index;references:events(id)"`
	JudgeId     int            `gorm:"not null;uniqueIndex:idx_score_judge_team;references:judges(id)"`
	TeamId      int            `gorm:"not null;uniqueIndex:idx_score_judge_team;index;references:teams(id)"`
	Categories  CategoryScores `gorm:"type:jsonb;not null"`
	TotalScore  float64        `gorm:"not null"`
	SubmittedAt time.Time      `gorm:"not null"`
}

type ScoreRepository struct {
	DB *gorm.DB
}

func NewScoreRepository(db *gorm.DB) *ScoreRepository {
	return &ScoreRepository{DB: db}
}

// Upsert replaces the content of the existing (judge, team) score in place or
// inserts a new one. The identity of an existing score is kept.
func (r *ScoreRepository) Upsert(score *Score) (*Score, error) {
	result := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "judge_id"}, {Name: "team_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"categories", "total_score", "submitted_at"}),
	}).Create(score)
	if result.Error != nil {
		return nil, result.Error
	}
	return score, nil
}

func (r *ScoreRepository) GetScoresForJudge(eventId int, judgeId int) ([]*Score, error) {
	scores := make([]*Score, 0)
	result := r.DB.Order("team_id ASC").Find(&scores, "event_id = ? AND judge_id = ?", eventId, judgeId)
	if result.Error != nil {
		return nil, result.Error
	}
	return scores, nil
}

func (r *ScoreRepository) GetScoresForTeam(teamId int) ([]*Score, error) {
	scores := make([]*Score, 0)
	result := r.DB.Order("judge_id ASC").Find(&scores, "team_id = ?", teamId)
	if result.Error != nil {
		return nil, result.Error
	}
	return scores, nil
}

func (r *ScoreRepository) GetScoresForEvent(eventId int) ([]*Score, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("GetScoresForEvent"))
	defer timer.ObserveDuration()
	scores := make([]*Score, 0)
	result := r.DB.Find(&scores, "event_id = ?", eventId)
	if result.Error != nil {
		return nil, result.Error
	}
	return scores, nil
}

func (r *ScoreRepository) Delete(judgeId int, teamId int) (int, error) {
	result := r.DB.Where("judge_id = ? AND team_id = ?", judgeId, teamId).Delete(&Score{})
	return int(result.RowsAffected), result.Error
}
