package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// maxDialTimeout caps the TCP connect plus AMQP handshake. A tighter ctx
// deadline wins.
const maxDialTimeout = 5 * time.Second

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type amqpSession struct {
	*amqp.Channel
	conn *amqp.Connection
}

func (s *amqpSession) Close() error {
	_ = s.Channel.Close()
	return s.conn.Close()
}

type rabbitPublisher struct {
	queue   string
	connect func(ctx context.Context) (channel, error)
	log     *zap.Logger

	mu sync.Mutex
	ch channel
}

// NewRabbitPublisher publishes persistent JSON messages to a durable queue on
// the default exchange. The connection is opened lazily and re-opened after a
// failed publish.
func NewRabbitPublisher(url, queue string, log *zap.Logger) Publisher {
	return &rabbitPublisher{
		queue:   queue,
		connect: func(ctx context.Context) (channel, error) { return dial(ctx, url, queue) },
		log:     log.With(zap.String("component", "rabbitmq"), zap.String("queue", queue)),
	}
}

func dialTimeout(ctx context.Context) time.Duration {
	timeout := maxDialTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}
	return timeout
}

func dial(ctx context.Context, url, queue string) (channel, error) {
	timeout := dialTimeout(ctx)
	if timeout <= 0 {
		return nil, fmt.Errorf("dial broker: %w", context.DeadlineExceeded)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("dial broker: %w", err)
	}

	// DefaultDial's deadline covers the handshake as well as the connect
	conn, err := amqp.DialConfig(url, amqp.Config{Dial: amqp.DefaultDial(timeout)})
	if err != nil {
		return nil, fmt.Errorf("dial broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}

	return &amqpSession{Channel: ch, conn: conn}, nil
}

// channel returns the open channel, dialing without the lock held so one slow
// broker handshake does not queue every other publisher behind it.
func (p *rabbitPublisher) channel(ctx context.Context) (channel, error) {
	p.mu.Lock()
	ch := p.ch
	p.mu.Unlock()
	if ch != nil {
		return ch, nil
	}

	fresh, err := p.connect(ctx)
	if err != nil {
		p.log.Warn("Broker unavailable", zap.Error(err))
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch != nil {
		// lost the race to another dial
		_ = fresh.Close()
		return p.ch, nil
	}
	p.ch = fresh
	return fresh, nil
}

// drop closes ch unless it has already been replaced.
func (p *rabbitPublisher) drop(ch channel) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch == ch {
		_ = p.ch.Close()
		p.ch = nil
	}
}

func (p *rabbitPublisher) Publish(ctx context.Context, event CustomerEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event.Type, err)
	}

	ch, err := p.channel(ctx)
	if err != nil {
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         event.Type,
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		p.log.Warn("Publish failed, dropping channel", zap.Error(err), zap.String("type", event.Type))
		p.drop(ch)
		return fmt.Errorf("publish %s event: %w", event.Type, err)
	}

	return nil
}

func (p *rabbitPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil {
		return nil
	}
	err := p.ch.Close()
	p.ch = nil
	return err
}
