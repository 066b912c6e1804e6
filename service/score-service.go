package service

import (
	"fmt"
	"time"

	"demoday/app_error"
	"demoday/client"
	"demoday/metrics"
	"demoday/repository"
	"demoday/scoring"
	"demoday/utils"

	"gorm.io/gorm"
)

type ScoreService struct {
	db       *gorm.DB
	notifier *Notifier
}

func NewScoreService(db *gorm.DB, notifier *Notifier) *ScoreService {
	return &ScoreService{db: db, notifier: notifier}
}

type BatchScoreEntry struct {
	TeamId     int
	Categories []repository.CategoryScore
}

type scoreSubmitted struct {
	JudgeId    int     `json:"judge_id"`
	TeamId     int     `json:"team_id"`
	TotalScore float64 `json:"total_score"`
}

func (s *ScoreService) SubmitScore(eventId int, judgeId int, teamId int, categories []repository.CategoryScore) (*repository.Score, error) {
	var score *repository.Score
	err := s.db.Transaction(func(tx *gorm.DB) error {
		event, err := s.prepare(tx, eventId, judgeId)
		if err != nil {
			return err
		}
		if _, err := getTeamForEvent(tx, eventId, teamId); err != nil {
			return err
		}
		score, err = upsertScore(tx, event, judgeId, teamId, categories, time.Now())
		return err
	})
	if err != nil {
		return nil, err
	}
	metrics.ScoresSubmittedCounter.WithLabelValues("single").Inc()
	s.scoresSubmitted(eventId, score)
	return score, nil
}

// SubmitBatch applies several scores of one judge. No score is written unless
// every team in the batch belongs to the event.
func (s *ScoreService) SubmitBatch(eventId int, judgeId int, entries []BatchScoreEntry) ([]*repository.Score, error) {
	scores := make([]*repository.Score, 0, len(entries))
	err := s.db.Transaction(func(tx *gorm.DB) error {
		event, err := s.prepare(tx, eventId, judgeId)
		if err != nil {
			return err
		}
		teamIds := utils.Uniques(utils.Map(entries, func(e BatchScoreEntry) int { return e.TeamId }))
		teams, err := repository.NewTeamRepository(tx).GetTeamsByIds(eventId, teamIds)
		if err != nil {
			return err
		}
		known := utils.KeyBy(teams, func(t *repository.Team) int { return t.Id })
		for _, teamId := range teamIds {
			if _, ok := known[teamId]; !ok {
				return fmt.Errorf("%w: team %d does not belong to event %d", app_error.ErrInvalidReference, teamId, eventId)
			}
		}
		now := time.Now()
		for _, entry := range entries {
			score, err := upsertScore(tx, event, judgeId, entry.TeamId, entry.Categories, now)
			if err != nil {
				return err
			}
			scores = append(scores, score)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.ScoresSubmittedCounter.WithLabelValues("batch").Add(float64(len(scores)))
	for _, score := range scores {
		s.scoresSubmitted(eventId, score)
	}
	return scores, nil
}

func (s *ScoreService) GetForJudge(eventId int, judgeId int) ([]*repository.Score, error) {
	return repository.NewScoreRepository(s.db).GetScoresForJudge(eventId, judgeId)
}

func (s *ScoreService) GetForTeam(eventId int, teamId int) ([]*repository.Score, error) {
	if _, err := getTeamForEvent(s.db, eventId, teamId); err != nil {
		return nil, err
	}
	return repository.NewScoreRepository(s.db).GetScoresForTeam(teamId)
}

func (s *ScoreService) prepare(tx *gorm.DB, eventId int, judgeId int) (*repository.Event, error) {
	event, err := getEventForWrite(tx, eventId, false)
	if err != nil {
		return nil, err
	}
	event.Categories, err = repository.NewJudgingCategoryRepository(tx).GetCategoriesForEvent(eventId)
	if err != nil {
		return nil, err
	}
	if _, err := getJudgeForEvent(tx, eventId, judgeId); err != nil {
		return nil, err
	}
	if err := requireUnlocked(event); err != nil {
		return nil, err
	}
	return event, nil
}

func upsertScore(tx *gorm.DB, event *repository.Event, judgeId int, teamId int, categories []repository.CategoryScore, now time.Time) (*repository.Score, error) {
	normalized, total, err := ComputeScore(categories, event.Categories)
	if err != nil {
		return nil, err
	}
	return repository.NewScoreRepository(tx).Upsert(&repository.Score{
		EventId:     event.Id,
		JudgeId:     judgeId,
		TeamId:      teamId,
		Categories:  normalized,
		TotalScore:  total,
		SubmittedAt: now,
	})
}

// ComputeScore normalizes the submitted category values against the event's
// categories and returns them with the weighted total. An opt-out on a
// category that does not allow one must still carry a score.
func ComputeScore(submitted []repository.CategoryScore, categories []*repository.JudgingCategory) (repository.CategoryScores, float64, error) {
	scoringCategories := toScoringCategories(categories)
	byName := utils.KeyBy(categories, func(c *repository.JudgingCategory) string { return c.Name })
	for _, entry := range submitted {
		category, ok := byName[entry.Category]
		if ok && entry.OptedOut && !category.OptOutAllowed && entry.RawScore == nil {
			return nil, 0, fmt.Errorf("%w: category %s cannot be opted out of", app_error.ErrInvalidInput, entry.Category)
		}
	}
	entries := scoring.Normalize(utils.Map(submitted, func(c repository.CategoryScore) scoring.Entry {
		return scoring.Entry{Category: c.Category, Score: c.RawScore, OptedOut: c.OptedOut}
	}), scoringCategories)
	normalized := utils.Map(entries, func(e scoring.Entry) repository.CategoryScore {
		return repository.CategoryScore{Category: e.Category, RawScore: e.Score, OptedOut: e.OptedOut}
	})
	return normalized, scoring.CalculateTotal(entries, scoringCategories), nil
}

func (s *ScoreService) scoresSubmitted(eventId int, score *repository.Score) {
	s.notifier.Publish(client.JudgingEvent{
		Type:    client.ScoreSubmitted,
		EventId: eventId,
		Payload: scoreSubmitted{JudgeId: score.JudgeId, TeamId: score.TeamId, TotalScore: score.TotalScore},
	})
}
