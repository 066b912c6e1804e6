package client

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"demoday/config"

	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
)

type JudgingEventType string

const (
	ScoreSubmitted     JudgingEventType = "score.submitted"
	AssignmentsChanged JudgingEventType = "assignments.changed"
	LockChanged        JudgingEventType = "lock.changed"
	PrizesSaved        JudgingEventType = "prizes.saved"
	SubmissionsSet     JudgingEventType = "prize_submissions.set"
	WinnersSet         JudgingEventType = "winners.set"
)

// JudgingEvent is a notification about a committed change to an event's
// judging data.
type JudgingEvent struct {
	Type      JudgingEventType `json:"type"`
	EventId   int              `json:"event_id"`
	ActorId   int              `json:"actor_id"`
	Payload   interface{}      `json:"payload,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}

type Publisher interface {
	Publish(ctx context.Context, event JudgingEvent) error
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, event JudgingEvent) error {
	return nil
}

// KafkaPublisher writes judging events to one single-partition topic per
// event. Messages land in the order Publish is called for that event.
type KafkaPublisher struct {
	mu      sync.Mutex
	writers map[int]*kafka.Writer
}

// NewPublisher returns a kafka backed publisher when a broker is configured.
func NewPublisher() Publisher {
	if config.Env().KafkaBroker == "" {
		log.Info("KAFKA_BROKER not set, judging events will not be published")
		return NoopPublisher{}
	}
	return &KafkaPublisher{writers: make(map[int]*kafka.Writer)}
}

// writer dials the broker outside the lock. Callers publish one event id
// from a single goroutine, so a writer is never created twice for it.
func (p *KafkaPublisher) writer(eventId int) (*kafka.Writer, error) {
	p.mu.Lock()
	writer, ok := p.writers[eventId]
	p.mu.Unlock()
	if ok {
		return writer, nil
	}
	writer, err := config.GetWriter(eventId)
	if err != nil {
		return nil, err
	}
	p.mu.Lock()
	p.writers[eventId] = writer
	p.mu.Unlock()
	return writer, nil
}

func (p *KafkaPublisher) Publish(ctx context.Context, event JudgingEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	writer, err := p.writer(event.EventId)
	if err != nil {
		return err
	}
	return writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(event.EventId)),
		Value: data,
	})
}

func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for eventId, writer := range p.writers {
		if err := writer.Close(); err != nil {
			return err
		}
		delete(p.writers, eventId)
	}
	return nil
}
