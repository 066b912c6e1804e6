package service

import (
	"fmt"
	"time"

	"demoday/app_error"
	"demoday/auth"
	"demoday/client"
	"demoday/metrics"
	"demoday/repository"
	"demoday/utils"

	"gorm.io/gorm"
)

type PrizeSubmissionService struct {
	db       *gorm.DB
	notifier *Notifier
	now      func() time.Time
}

func NewPrizeSubmissionService(db *gorm.DB, notifier *Notifier) *PrizeSubmissionService {
	return &PrizeSubmissionService{db: db, notifier: notifier, now: time.Now}
}

type submissionsSet struct {
	TeamId   int   `json:"team_id"`
	PrizeIds []int `json:"prize_ids"`
}

// SetForTeam replaces the team's prize submissions on behalf of its owner.
// Admins may use it as well, but only AdminSetForTeam ignores the window.
func (s *PrizeSubmissionService) SetForTeam(caller *auth.Caller, eventId int, teamId int, prizeIds []int) ([]*repository.PrizeSubmission, error) {
	if caller == nil {
		return nil, app_error.ErrNotAuthorized
	}
	return s.setForTeam(caller, eventId, teamId, prizeIds, false)
}

// AdminSetForTeam replaces the team's prize submissions regardless of the
// submission window.
func (s *PrizeSubmissionService) AdminSetForTeam(caller *auth.Caller, eventId int, teamId int, prizeIds []int) ([]*repository.PrizeSubmission, error) {
	if _, err := caller.RequireAdmin(); err != nil {
		return nil, err
	}
	return s.setForTeam(caller, eventId, teamId, prizeIds, true)
}

func (s *PrizeSubmissionService) setForTeam(caller *auth.Caller, eventId int, teamId int, prizeIds []int, adminDirect bool) ([]*repository.PrizeSubmission, error) {
	var submissions []*repository.PrizeSubmission
	var wanted []int
	err := s.db.Transaction(func(tx *gorm.DB) error {
		event, err := getEventForWrite(tx, eventId, false)
		if err != nil {
			return err
		}
		if err := requireJudgingMode(event); err != nil {
			return err
		}
		team, err := getTeamForEvent(tx, eventId, teamId)
		if err != nil {
			return err
		}
		if !adminDirect {
			if team.OwnerId != caller.UserId && !caller.IsAdmin() {
				return fmt.Errorf("%w: user %d does not own team %d", app_error.ErrNotAuthorized, caller.UserId, teamId)
			}
			if event.IsPast(s.now()) {
				return fmt.Errorf("%w: event %d ended at %s", app_error.ErrSubmissionClosed, eventId, event.EndTime.Format(time.RFC3339))
			}
		}

		prizes, err := repository.NewPrizeRepository(tx).GetPrizesForEvent(eventId)
		if err != nil {
			return err
		}
		prizeById := utils.KeyBy(prizes, func(p *repository.Prize) int { return p.Id })
		wanted = utils.Uniques(prizeIds)
		for _, prizeId := range wanted {
			prize, ok := prizeById[prizeId]
			if !ok {
				return fmt.Errorf("%w: prize %d does not belong to event %d", app_error.ErrIneligibleSelection, prizeId, eventId)
			}
			if !IsEligible(team, prize) {
				return fmt.Errorf("%w: team %q cannot receive prize %q", app_error.ErrIneligibleSelection, team.Name, prize.Name)
			}
		}

		repo := repository.NewPrizeSubmissionRepository(tx)
		existing, err := repo.GetSubmissionsForTeam(eventId, teamId)
		if err != nil {
			return err
		}
		now := s.now()
		incoming := utils.Map(wanted, func(prizeId int) *repository.PrizeSubmission {
			return &repository.PrizeSubmission{EventId: eventId, TeamId: teamId, PrizeId: prizeId, SubmittedBy: caller.UserId, SubmittedAt: now}
		})
		diff := utils.Reconcile(existing, incoming, func(p *repository.PrizeSubmission) int { return p.PrizeId })
		if err := repo.DeleteSubmissions(utils.Map(diff.Removed, func(p *repository.PrizeSubmission) int { return p.Id })); err != nil {
			return err
		}
		if err := repo.CreateSubmissions(diff.Added); err != nil {
			return err
		}
		submissions, err = repo.GetSubmissionsForTeam(eventId, teamId)
		return err
	})
	if err != nil {
		return nil, err
	}
	metrics.PrizeSubmissionsSetCounter.Inc()
	s.notifier.Publish(client.JudgingEvent{
		Type:    client.SubmissionsSet,
		EventId: eventId,
		ActorId: caller.UserId,
		Payload: submissionsSet{TeamId: teamId, PrizeIds: wanted},
	})
	return submissions, nil
}

func (s *PrizeSubmissionService) GetForTeam(eventId int, teamId int) ([]*repository.PrizeSubmission, error) {
	if _, err := getTeamForEvent(s.db, eventId, teamId); err != nil {
		return nil, err
	}
	return repository.NewPrizeSubmissionRepository(s.db).GetSubmissionsForTeam(eventId, teamId)
}

func (s *PrizeSubmissionService) GetForEvent(eventId int) ([]*repository.PrizeSubmission, error) {
	return repository.NewPrizeSubmissionRepository(s.db).GetSubmissionsForEvent(eventId)
}
