package service

import (
	"errors"
	"fmt"

	"demoday/app_error"
	"demoday/repository"
	"demoday/scoring"
	"demoday/utils"

	"gorm.io/gorm"
)

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func getEvent(db *gorm.DB, eventId int, preloads ...string) (*repository.Event, error) {
	event, err := repository.NewEventRepository(db).GetEventById(eventId, preloads...)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: event %d", app_error.ErrNotFound, eventId)
		}
		return nil, err
	}
	return event, nil
}

// getEventForWrite loads the event inside a transaction with a row lock.
// Lock transitions pass exclusive, everything gated by the lock does not.
func getEventForWrite(tx *gorm.DB, eventId int, exclusive bool, preloads ...string) (*repository.Event, error) {
	event, err := repository.NewEventRepository(tx).GetEventForWrite(eventId, exclusive, preloads...)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: event %d", app_error.ErrNotFound, eventId)
		}
		return nil, err
	}
	return event, nil
}

func requireJudgingMode(event *repository.Event) error {
	if event.IsAppreciationOnly() {
		return fmt.Errorf("%w: event %d", app_error.ErrUnsupportedForMode, event.Id)
	}
	return nil
}

// requireUnlocked gates score and assignment mutations.
func requireUnlocked(event *repository.Event) error {
	if err := requireJudgingMode(event); err != nil {
		return err
	}
	if event.IsLocked() {
		return fmt.Errorf("%w: event %d", app_error.ErrLocked, event.Id)
	}
	return nil
}

func getJudgeForEvent(tx *gorm.DB, eventId int, judgeId int) (*repository.Judge, error) {
	judge, err := repository.NewJudgeRepository(tx).GetJudgeForEvent(eventId, judgeId)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: judge %d is not registered for event %d", app_error.ErrInvalidReference, judgeId, eventId)
		}
		return nil, err
	}
	return judge, nil
}

func getTeamForEvent(tx *gorm.DB, eventId int, teamId int) (*repository.Team, error) {
	team, err := repository.NewTeamRepository(tx).GetTeamForEvent(eventId, teamId)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: team %d does not belong to event %d", app_error.ErrInvalidReference, teamId, eventId)
		}
		return nil, err
	}
	return team, nil
}

func toScoringCategories(categories []*repository.JudgingCategory) []scoring.Category {
	return utils.Map(categories, func(c *repository.JudgingCategory) scoring.Category {
		return scoring.Category{Name: c.Name, Weight: c.Weight, OptOutAllowed: c.OptOutAllowed}
	})
}
