package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"demoday/client"

	"github.com/stretchr/testify/assert"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []client.JudgingEvent
}

func (p *recordingPublisher) Publish(ctx context.Context, event client.JudgingEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) published() []client.JudgingEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]client.JudgingEvent(nil), p.events...)
}

func TestNotifierKeepsOrderPerEvent(t *testing.T) {
	publisher := &recordingPublisher{}
	notifier := NewNotifier(publisher, nil)

	for i := 0; i < 50; i++ {
		notifier.Publish(client.JudgingEvent{Type: client.ScoreSubmitted, EventId: 1, ActorId: i})
		notifier.Publish(client.JudgingEvent{Type: client.ScoreSubmitted, EventId: 2, ActorId: i})
	}
	notifier.PublishWinners(client.JudgingEvent{Type: client.WinnersSet, EventId: 1, ActorId: 50}, client.WinnerAnnouncement{})

	assert.Eventually(t, func() bool { return len(publisher.published()) == 101 }, 5*time.Second, 10*time.Millisecond)

	next := map[int]int{}
	for _, event := range publisher.published() {
		assert.Equal(t, next[event.EventId], event.ActorId, "event %d delivered out of order", event.EventId)
		assert.False(t, event.Timestamp.IsZero())
		next[event.EventId]++
	}
}
