package service

import (
	"fmt"
	"strings"
	"time"

	"demoday/app_error"
	"demoday/auth"
	"demoday/client"
	"demoday/metrics"
	"demoday/repository"
	"demoday/utils"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type WinnerInput struct {
	PrizeId   int
	TeamId    int
	Placement *int
	Notes     *string
}

type prizeTeam struct {
	prizeId int
	teamId  int
}

func winnerKey(w *repository.PrizeWinner) prizeTeam {
	return prizeTeam{prizeId: w.PrizeId, teamId: w.TeamId}
}

type WinnerService struct {
	db       *gorm.DB
	notifier *Notifier
}

func NewWinnerService(db *gorm.DB, notifier *Notifier) *WinnerService {
	return &WinnerService{db: db, notifier: notifier}
}

func (s *WinnerService) GetWinners(eventId int) ([]*repository.PrizeWinner, error) {
	if _, err := getEvent(s.db, eventId); err != nil {
		return nil, err
	}
	return repository.NewWinnerRepository(s.db).GetWinnersForEvent(eventId)
}

// SetWinners replaces the event's winner set. Scoring has to be locked and
// every winner must have submitted for the prize it wins.
func (s *WinnerService) SetWinners(caller *auth.Caller, eventId int, inputs []WinnerInput) ([]*repository.PrizeWinner, error) {
	adminId, err := caller.RequireAdmin()
	if err != nil {
		return nil, err
	}
	var winners []*repository.PrizeWinner
	var announcement client.WinnerAnnouncement
	err = s.db.Transaction(func(tx *gorm.DB) error {
		event, err := getEventForWrite(tx, eventId, false)
		if err != nil {
			return err
		}
		if err := requireJudgingMode(event); err != nil {
			return err
		}
		if !event.IsLocked() {
			return fmt.Errorf("%w: event %d", app_error.ErrScoringNotLocked, eventId)
		}

		prizes, err := repository.NewPrizeRepository(tx).GetPrizesForEvent(eventId)
		if err != nil {
			return err
		}
		teams, err := repository.NewTeamRepository(tx).GetTeamsForEvent(eventId)
		if err != nil {
			return err
		}
		submissions, err := repository.NewPrizeSubmissionRepository(tx).GetSubmissionsForEvent(eventId)
		if err != nil {
			return err
		}
		prizeById := utils.KeyBy(prizes, func(p *repository.Prize) int { return p.Id })
		teamById := utils.KeyBy(teams, func(t *repository.Team) int { return t.Id })
		submitted := make(map[prizeTeam]bool, len(submissions))
		for _, submission := range submissions {
			submitted[prizeTeam{prizeId: submission.PrizeId, teamId: submission.TeamId}] = true
		}

		now := time.Now()
		incoming := make([]*repository.PrizeWinner, 0, len(inputs))
		for _, input := range inputs {
			prize, ok := prizeById[input.PrizeId]
			if !ok {
				return fmt.Errorf("%w: prize %d does not belong to event %d", app_error.ErrInvalidReference, input.PrizeId, eventId)
			}
			team, ok := teamById[input.TeamId]
			if !ok {
				return fmt.Errorf("%w: team %d does not belong to event %d", app_error.ErrInvalidReference, input.TeamId, eventId)
			}
			if !submitted[prizeTeam{prizeId: prize.Id, teamId: team.Id}] {
				return fmt.Errorf("%w: team %q for prize %q", app_error.ErrNotASubmittedCandidate, team.Name, prize.Name)
			}
			if input.Placement != nil && *input.Placement < 1 {
				return fmt.Errorf("%w: placement must be positive", app_error.ErrInvalidInput)
			}
			incoming = append(incoming, &repository.PrizeWinner{
				EventId:   eventId,
				PrizeId:   prize.Id,
				TeamId:    team.Id,
				Placement: input.Placement,
				Notes:     trimmedOrNil(input.Notes),
				SetBy:     adminId,
				SetAt:     now,
			})
		}

		repo := repository.NewWinnerRepository(tx)
		existing, err := repo.GetWinnersForEvent(eventId)
		if err != nil {
			return err
		}
		diff := utils.Reconcile(existing, incoming, winnerKey)
		if err := repo.DeleteWinners(utils.Map(diff.Removed, func(w *repository.PrizeWinner) int { return w.Id })); err != nil {
			return err
		}
		for _, retained := range diff.Retained {
			retained.Incoming.Id = retained.Existing.Id
			if err := repo.UpdateWinner(retained.Incoming); err != nil {
				return err
			}
		}
		if err := repo.CreateWinners(diff.Added); err != nil {
			return err
		}
		winners, err = repo.GetWinnersForEvent(eventId)
		if err != nil {
			return err
		}
		announcement = client.WinnerAnnouncement{
			EventName: event.Name,
			Winners: utils.Map(winners, func(w *repository.PrizeWinner) client.AnnouncedWinner {
				return client.AnnouncedWinner{
					PrizeName: prizeById[w.PrizeId].Name,
					TeamName:  teamById[w.TeamId].Name,
					Placement: w.Placement,
				}
			}),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.WinnersSetCounter.Inc()
	log.WithFields(log.Fields{"event_id": eventId, "user_id": adminId, "winners": len(winners)}).Info("set prize winners")
	s.notifier.PublishWinners(client.JudgingEvent{
		Type:    client.WinnersSet,
		EventId: eventId,
		ActorId: adminId,
		Payload: utils.Map(winners, func(w *repository.PrizeWinner) [2]int { return [2]int{w.PrizeId, w.TeamId} }),
	}, announcement)
	return winners, nil
}

func trimmedOrNil(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
