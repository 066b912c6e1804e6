package service

import (
	"context"
	"sync"
	"time"

	"demoday/client"
	"demoday/metrics"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	notifyTimeout = 10 * time.Second
	queueSize     = 256
)

// Notifier fans committed changes out to the configured sinks. Delivery is
// best effort and never blocks or fails the originating operation. Changes of
// one event are delivered in commit order by a single worker per event.
type Notifier struct {
	publisher client.Publisher
	announcer client.Announcer

	mu     sync.Mutex
	queues map[int]chan func(context.Context)
}

func NewNotifier(publisher client.Publisher, announcer client.Announcer) *Notifier {
	if publisher == nil {
		publisher = client.NoopPublisher{}
	}
	if announcer == nil {
		announcer = client.NoopAnnouncer{}
	}
	return &Notifier{
		publisher: publisher,
		announcer: announcer,
		queues:    make(map[int]chan func(context.Context)),
	}
}

func NewNoopNotifier() *Notifier {
	return NewNotifier(nil, nil)
}

// stamp records the commit time before the event is queued.
func stamp(event client.JudgingEvent) client.JudgingEvent {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	return event
}

func (n *Notifier) Publish(event client.JudgingEvent) {
	event = stamp(event)
	n.enqueue(event, func(ctx context.Context) {
		n.publish(ctx, event)
	})
}

func (n *Notifier) PublishWinners(event client.JudgingEvent, announcement client.WinnerAnnouncement) {
	event = stamp(event)
	n.enqueue(event, func(ctx context.Context) {
		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			n.publish(ctx, event)
			return nil
		})
		g.Go(func() error {
			if err := n.announcer.AnnounceWinners(ctx, announcement); err != nil {
				metrics.PublishErrorCounter.WithLabelValues("discord").Inc()
				log.WithError(err).WithField("event_id", event.EventId).Warn("failed to announce winners")
			}
			return nil
		})
		_ = g.Wait()
	})
}

func (n *Notifier) enqueue(event client.JudgingEvent, deliver func(context.Context)) {
	select {
	case n.queue(event.EventId) <- deliver:
	default:
		metrics.PublishErrorCounter.WithLabelValues("queue").Inc()
		log.WithFields(log.Fields{
			"event_id": event.EventId,
			"type":     event.Type,
		}).Warn("notification queue full, dropping judging event")
	}
}

func (n *Notifier) queue(eventId int) chan func(context.Context) {
	n.mu.Lock()
	defer n.mu.Unlock()
	queue, ok := n.queues[eventId]
	if !ok {
		queue = make(chan func(context.Context), queueSize)
		n.queues[eventId] = queue
		go func() {
			for deliver := range queue {
				ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
				deliver(ctx)
				cancel()
			}
		}()
	}
	return queue
}

func (n *Notifier) publish(ctx context.Context, event client.JudgingEvent) {
	if err := n.publisher.Publish(ctx, event); err != nil {
		metrics.PublishErrorCounter.WithLabelValues("kafka").Inc()
		log.WithError(err).WithFields(log.Fields{
			"event_id": event.EventId,
			"type":     event.Type,
		}).Warn("failed to publish judging event")
	}
}
