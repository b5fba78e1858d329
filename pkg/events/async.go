package events

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	ErrQueueFull       = errors.New("events: dispatch queue full")
	ErrPublisherClosed = errors.New("events: publisher closed")
)

const closeDrainTimeout = 10 * time.Second

type asyncPublisher struct {
	next    Publisher
	events  chan CustomerEvent
	timeout time.Duration
	log     *zap.Logger
	done    chan struct{}

	mu     sync.RWMutex
	closed bool
}

// NewAsyncPublisher hands events to next from a single background goroutine.
// Publish only enqueues; it never waits on the broker. Events are dropped
// with ErrQueueFull once buffer events are pending.
func NewAsyncPublisher(next Publisher, buffer int, timeout time.Duration, log *zap.Logger) Publisher {
	p := &asyncPublisher{
		next:    next,
		events:  make(chan CustomerEvent, buffer),
		timeout: timeout,
		log:     log.With(zap.String("component", "events")),
		done:    make(chan struct{}),
	}
	go p.run()
	return p
}

func (p *asyncPublisher) run() {
	defer close(p.done)
	for event := range p.events {
		ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
		if err := p.next.Publish(ctx, event); err != nil {
			p.log.Warn("Dropped customer event",
				zap.Error(err),
				zap.String("type", event.Type),
				zap.Int64("customer_id", event.CustomerID))
		}
		cancel()
	}
}

func (p *asyncPublisher) Publish(_ context.Context, event CustomerEvent) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrPublisherClosed
	}

	select {
	case p.events <- event:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops accepting events, waits a bounded time for the backlog to drain,
// then closes next.
func (p *asyncPublisher) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.events)
	p.mu.Unlock()

	select {
	case <-p.done:
	case <-time.After(closeDrainTimeout):
		p.log.Warn("Event backlog not drained before close", zap.Int("pending", len(p.events)))
	}
	return p.next.Close()
}
