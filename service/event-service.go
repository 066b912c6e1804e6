package service

import (
	"fmt"

	"demoday/app_error"
	"demoday/auth"
	"demoday/repository"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type EventService struct {
	db *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{db: db}
}

func (e *EventService) GetEventById(eventId int, preloads ...string) (*repository.Event, error) {
	return getEvent(e.db, eventId, preloads...)
}

// DeleteEvent removes the event with all teams, judges, assignments, scores,
// prizes, submissions and winners.
func (e *EventService) DeleteEvent(caller *auth.Caller, eventId int) error {
	adminId, err := caller.RequireAdmin()
	if err != nil {
		return err
	}
	err = e.db.Transaction(func(tx *gorm.DB) error {
		if _, err := getEventForWrite(tx, eventId, true); err != nil {
			return err
		}
		return repository.NewEventRepository(tx).Delete(eventId)
	})
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"event_id": eventId, "user_id": adminId}).Info("deleted event")
	return nil
}

type TeamService struct {
	db *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{db: db}
}

// DeleteTeam removes the team with its scores, assignments, submissions and
// winner rows. Only the owner or an admin may delete a team.
func (e *TeamService) DeleteTeam(caller *auth.Caller, eventId int, teamId int) error {
	if caller == nil {
		return app_error.ErrNotAuthorized
	}
	err := e.db.Transaction(func(tx *gorm.DB) error {
		if _, err := getEventForWrite(tx, eventId, false); err != nil {
			return err
		}
		team, err := getTeamForEvent(tx, eventId, teamId)
		if err != nil {
			return err
		}
		if team.OwnerId != caller.UserId && !caller.IsAdmin() {
			return fmt.Errorf("%w: user %d does not own team %d", app_error.ErrNotAuthorized, caller.UserId, teamId)
		}
		return repository.NewTeamRepository(tx).Delete(teamId)
	})
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"event_id": eventId, "team_id": teamId, "user_id": caller.UserId}).Info("deleted team")
	return nil
}
