package repository

import (
	"fmt"
	"strings"
	"time"

	"demoday/utils"

	"github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventMode string

const (
	EventModeStandardJudging  EventMode = "standard_judging"
	EventModeAppreciationOnly EventMode = "appreciation_only"
)

type Event struct {
	Id         int            `gorm:"primaryKey"`
	Name       string         `gorm:"not null"`
	StartTime  time.Time      `gorm:"not null"`
	EndTime    time.Time      `gorm:"not null"`
	Mode       EventMode      `gorm:"not null;type:demoday.event_mode"`
	CohortMode bool           `gorm:"not null"`
	Tracks     pq.StringArray `gorm:"type:text[]"`

	// scoring lock, only ever set for standard judging events
	LockedAt   *time.Time `gorm:"null"`
	LockedBy   *int       `gorm:"null"`
	LockReason *string    `gorm:"null"`

	Categories []*JudgingCategory `gorm:"foreignKey:EventId;constraint:OnDelete:CASCADE"`
	Teams      []*Team            `gorm:"foreignKey:EventId;constraint:OnDelete:CASCADE"`
}

func (e *Event) IsAppreciationOnly() bool {
	return e.Mode == EventModeAppreciationOnly
}

func (e *Event) IsLocked() bool {
	return e.LockedAt != nil
}

func (e *Event) IsPast(now time.Time) bool {
	return !e.EndTime.IsZero() && now.After(e.EndTime)
}

func (e *Event) HasTracks() bool {
	return len(e.Tracks) > 0
}

func (e *Event) HasTrack(track string) bool {
	return utils.Contains(e.Tracks, strings.TrimSpace(track))
}

func (e *Event) CategoryNames() []string {
	return utils.Map(e.Categories, func(c *JudgingCategory) string { return c.Name })
}

type EventRepository struct {
	DB *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{DB: db}
}

func (r *EventRepository) GetEventById(eventId int, preloads ...string) (*Event, error) {
	return r.getEvent(r.DB, eventId, preloads...)
}

// GetEventForWrite loads the event with a row lock. Writers gated by the
// scoring lock take a shared lock so they serialize against lock transitions,
// which take an exclusive one.
func (r *EventRepository) GetEventForWrite(eventId int, exclusive bool, preloads ...string) (*Event, error) {
	strength := "SHARE"
	if exclusive {
		strength = "UPDATE"
	}
	return r.getEvent(r.DB.Clauses(clause.Locking{Strength: strength}), eventId, preloads...)
}

func (r *EventRepository) getEvent(query *gorm.DB, eventId int, preloads ...string) (*Event, error) {
	var event Event
	for _, preload := range preloads {
		if preload == "Categories" {
			query = query.Preload("Categories", func(db *gorm.DB) *gorm.DB {
				return db.Order("position ASC, id ASC")
			})
			continue
		}
		query = query.Preload(preload)
	}
	result := query.First(&event, eventId)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find event %d: %w", eventId, result.Error)
	}
	return &event, nil
}

func (r *EventRepository) SetLock(eventId int, lockedAt *time.Time, lockedBy *int, reason *string) error {
	result := r.DB.Model(&Event{}).Where("id = ?", eventId).Updates(map[string]interface{}{
		"locked_at":   lockedAt,
		"locked_by":   lockedBy,
		"lock_reason": reason,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update scoring lock: %w", result.Error)
	}
	return nil
}

// Delete removes the event and every record that depends on it. Must be
// called inside a transaction.
func (r *EventRepository) Delete(eventId int) error {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("DeleteEvent"))
	defer timer.ObserveDuration()
	for _, model := range []interface{}{
		&PrizeWinner{},
		&PrizeSubmission{},
		&Prize{},
		&Score{},
		&Assignment{},
		&Judge{},
		&Team{},
		&JudgingCategory{},
	} {
		if err := r.DB.Where("event_id = ?", eventId).Delete(model).Error; err != nil {
			return err
		}
	}
	result := r.DB.Delete(&Event{}, eventId)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
