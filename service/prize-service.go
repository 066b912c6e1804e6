package service

import (
	"fmt"
	"strings"

	"demoday/app_error"
	"demoday/auth"
	"demoday/client"
	"demoday/metrics"
	"demoday/repository"
	"demoday/utils"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PrizeInput struct {
	Id          *int
	Name        string
	Description string
	Type        repository.PrizeType
	Track       string
	SponsorName string
	ScoreBasis  repository.ScoreBasis
	Categories  []string
	Active      bool
	SortOrder   int
}

type PrizeService struct {
	db       *gorm.DB
	notifier *Notifier
}

func NewPrizeService(db *gorm.DB, notifier *Notifier) *PrizeService {
	return &PrizeService{db: db, notifier: notifier}
}

func invalidPrize(name string, format string, args ...interface{}) error {
	return fmt.Errorf("%w: prize %q: %s", app_error.ErrInvalidPrizeConfig, name, fmt.Sprintf(format, args...))
}

// ValidatePrize checks a prize definition against the event and returns the
// cleaned-up prize. Fields that do not apply to the prize type are cleared.
func ValidatePrize(input PrizeInput, event *repository.Event) (*repository.Prize, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, invalidPrize(input.Name, "name is required")
	}
	prizeType := input.Type
	if prizeType == "" {
		prizeType = repository.PrizeTypeGeneral
	}
	if !prizeType.IsValid() {
		return nil, invalidPrize(name, "unknown type %q", input.Type)
	}
	basis := input.ScoreBasis
	if basis == "" {
		basis = repository.ScoreBasisOverall
	}
	if !basis.IsValid() {
		return nil, invalidPrize(name, "unknown score basis %q", input.ScoreBasis)
	}

	prize := &repository.Prize{
		EventId:     event.Id,
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Type:        prizeType,
		ScoreBasis:  basis,
		Categories:  []string{},
		Active:      input.Active,
		SortOrder:   input.SortOrder,
	}
	if input.Id != nil {
		prize.Id = *input.Id
	}

	if prizeType.NeedsTrack() {
		track := strings.TrimSpace(input.Track)
		if track == "" {
			return nil, invalidPrize(name, "track is required for %s prizes", prizeType)
		}
		if event.HasTracks() && !event.HasTrack(track) {
			return nil, invalidPrize(name, "track %q is not a track of this event", track)
		}
		prize.Track = track
	}
	if prizeType.NeedsSponsor() {
		sponsor := strings.TrimSpace(input.SponsorName)
		if sponsor == "" {
			return nil, invalidPrize(name, "sponsor name is required for %s prizes", prizeType)
		}
		prize.SponsorName = sponsor
	}
	if basis == repository.ScoreBasisCategories {
		selected := utils.Uniques(utils.Filter(utils.Map(input.Categories, strings.TrimSpace), func(c string) bool { return c != "" }))
		if len(selected) == 0 {
			return nil, invalidPrize(name, "at least one category is required for category based prizes")
		}
		known := event.CategoryNames()
		for _, category := range selected {
			if !utils.Contains(known, category) {
				return nil, invalidPrize(name, "category %q is not a category of this event", category)
			}
		}
		prize.Categories = selected
	}
	return prize, nil
}

// IsEligible reports whether the team can receive the prize.
func IsEligible(team *repository.Team, prize *repository.Prize) bool {
	if !prize.Active {
		return false
	}
	if prize.Type.NeedsTrack() {
		return team.HasTrack() && prize.Track != "" && strings.TrimSpace(team.Track) == prize.Track
	}
	return true
}

func (s *PrizeService) GetPrizes(eventId int) ([]*repository.Prize, error) {
	if _, err := getEvent(s.db, eventId); err != nil {
		return nil, err
	}
	return repository.NewPrizeRepository(s.db).GetPrizesForEvent(eventId)
}

// SavePrizes replaces the event's prize list with inputs. Prizes missing
// from inputs are deleted together with their submissions and winners.
func (s *PrizeService) SavePrizes(caller *auth.Caller, eventId int, inputs []PrizeInput) ([]*repository.Prize, error) {
	adminId, err := caller.RequireAdmin()
	if err != nil {
		return nil, err
	}
	var saved []*repository.Prize
	var diff utils.Diff[*repository.Prize]
	err = s.db.Transaction(func(tx *gorm.DB) error {
		event, err := getEventForWrite(tx, eventId, false, "Categories")
		if err != nil {
			return err
		}
		if err := requireJudgingMode(event); err != nil {
			return err
		}
		incoming := make([]*repository.Prize, 0, len(inputs))
		for _, input := range inputs {
			prize, err := ValidatePrize(input, event)
			if err != nil {
				return err
			}
			incoming = append(incoming, prize)
		}

		prizes := repository.NewPrizeRepository(tx)
		existing, err := prizes.GetPrizesForEvent(eventId)
		if err != nil {
			return err
		}
		existingIds := utils.Map(existing, func(p *repository.Prize) int { return p.Id })
		for _, prize := range incoming {
			if prize.Id != 0 && !utils.Contains(existingIds, prize.Id) {
				return fmt.Errorf("%w: prize %d does not belong to event %d", app_error.ErrInvalidReference, prize.Id, eventId)
			}
		}

		// new prizes have no id yet, key them by position so they never collide
		newKey := 0
		diff = utils.Reconcile(existing, incoming, func(p *repository.Prize) int {
			if p.Id != 0 {
				return p.Id
			}
			newKey--
			return newKey
		})

		if err := prizes.DeletePrizes(utils.Map(diff.Removed, func(p *repository.Prize) int { return p.Id })); err != nil {
			return err
		}
		toSave := append(utils.Map(diff.Retained, func(r utils.Retained[*repository.Prize]) *repository.Prize { return r.Incoming }), diff.Added...)
		for _, prize := range toSave {
			if _, err := prizes.SavePrize(prize); err != nil {
				return err
			}
		}
		saved, err = prizes.GetPrizesForEvent(eventId)
		return err
	})
	if err != nil {
		return nil, err
	}
	metrics.PrizeReconciliationCounter.WithLabelValues("added").Add(float64(len(diff.Added)))
	metrics.PrizeReconciliationCounter.WithLabelValues("updated").Add(float64(len(diff.Retained)))
	metrics.PrizeReconciliationCounter.WithLabelValues("removed").Add(float64(len(diff.Removed)))
	log.WithFields(log.Fields{
		"event_id": eventId,
		"user_id":  adminId,
		"added":    len(diff.Added),
		"updated":  len(diff.Retained),
		"removed":  len(diff.Removed),
	}).Info("saved prize list")
	s.notifier.Publish(client.JudgingEvent{
		Type:    client.PrizesSaved,
		EventId: eventId,
		ActorId: adminId,
		Payload: utils.Map(saved, func(p *repository.Prize) int { return p.Id }),
	})
	return saved, nil
}
