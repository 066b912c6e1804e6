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

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ScoringLock struct {
	EventId  int
	Locked   bool
	LockedAt *time.Time
	LockedBy *int
	Reason   *string
}

func toScoringLock(event *repository.Event) *ScoringLock {
	return &ScoringLock{
		EventId:  event.Id,
		Locked:   event.IsLocked(),
		LockedAt: event.LockedAt,
		LockedBy: event.LockedBy,
		Reason:   event.LockReason,
	}
}

type LockService struct {
	db       *gorm.DB
	notifier *Notifier
}

func NewLockService(db *gorm.DB, notifier *Notifier) *LockService {
	return &LockService{db: db, notifier: notifier}
}

func (s *LockService) GetLock(eventId int) (*ScoringLock, error) {
	event, err := getEvent(s.db, eventId)
	if err != nil {
		return nil, err
	}
	return toScoringLock(event), nil
}

// Lock freezes score and assignment mutations for the event. Locking an
// already locked event keeps the original lock record.
func (s *LockService) Lock(caller *auth.Caller, eventId int, reason string) (*ScoringLock, error) {
	adminId, err := caller.RequireAdmin()
	if err != nil {
		return nil, err
	}
	return s.transition(eventId, adminId, func(events *repository.EventRepository, event *repository.Event) error {
		if event.IsLocked() {
			return nil
		}
		now := time.Now()
		trimmed := strings.TrimSpace(reason)
		var lockReason *string
		if trimmed != "" {
			lockReason = &trimmed
		}
		event.LockedAt, event.LockedBy, event.LockReason = &now, &adminId, lockReason
		return events.SetLock(event.Id, event.LockedAt, event.LockedBy, event.LockReason)
	})
}

// Unlock lifts the scoring lock. Unlocking an unlocked event is a no-op.
func (s *LockService) Unlock(caller *auth.Caller, eventId int) (*ScoringLock, error) {
	adminId, err := caller.RequireAdmin()
	if err != nil {
		return nil, err
	}
	return s.transition(eventId, adminId, func(events *repository.EventRepository, event *repository.Event) error {
		if !event.IsLocked() {
			return nil
		}
		event.LockedAt, event.LockedBy, event.LockReason = nil, nil, nil
		return events.SetLock(event.Id, nil, nil, nil)
	})
}

func (s *LockService) transition(eventId int, adminId int, apply func(*repository.EventRepository, *repository.Event) error) (*ScoringLock, error) {
	var lock *ScoringLock
	changed := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		event, err := getEventForWrite(tx, eventId, true)
		if err != nil {
			return err
		}
		if event.IsAppreciationOnly() {
			return fmt.Errorf("%w: scoring lock on event %d", app_error.ErrUnsupportedForMode, eventId)
		}
		wasLocked := event.IsLocked()
		if err := apply(repository.NewEventRepository(tx), event); err != nil {
			return err
		}
		changed = wasLocked != event.IsLocked()
		lock = toScoringLock(event)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if changed {
		state := "unlocked"
		if lock.Locked {
			state = "locked"
		}
		metrics.LockTransitionsCounter.WithLabelValues(state).Inc()
		log.WithFields(log.Fields{"event_id": eventId, "user_id": adminId, "state": state}).Info("scoring lock changed")
		s.notifier.Publish(client.JudgingEvent{Type: client.LockChanged, EventId: eventId, ActorId: adminId, Payload: lock})
	}
	return lock, nil
}
