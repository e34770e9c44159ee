// Package rabbitmq publishes committed domain events to a RabbitMQ topic
// exchange. The routing key of every message is the event name.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	DefaultExchange = "freight.events"
	source          = "freight"
	publishTimeout  = 5 * time.Second
	confirmBuffer   = 64
)

// channel is the subset of *amqp.Channel the publisher needs.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	GetNextPublishSeqNo() uint64
}

type Publisher struct {
	conn     *amqp.Connection
	ch       channel
	acks     <-chan amqp.Confirmation
	exchange string
	timeout  time.Duration
	logger   *slog.Logger

	// delivery tags are assigned in publish order, so publishing is serialized.
	mu sync.Mutex
}

// Dial connects to url, declares the durable topic exchange and enables
// publisher confirms.
func Dial(url, exchange string, logger *slog.Logger) (*Publisher, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err = ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	if err = ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("enable confirms: %w", err)
	}
	acks := ch.NotifyPublish(make(chan amqp.Confirmation, confirmBuffer))

	p := newConfirmingPublisher(ch, acks, exchange, logger)
	p.conn = conn
	return p, nil
}

// NewPublisher wraps an open channel without waiting for confirms.
func NewPublisher(ch channel, exchange string, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{ch: ch, exchange: exchange, timeout: publishTimeout, logger: logger}
}

// newConfirmingPublisher waits for the broker confirm of every message on acks.
func newConfirmingPublisher(ch channel, acks <-chan amqp.Confirmation, exchange string, logger *slog.Logger) *Publisher {
	p := NewPublisher(ch, exchange, logger)
	p.acks = acks
	return p
}

// Publish sends each event as its own message. Every event is attempted; the
// failures are joined.
func (p *Publisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	for _, event := range events {
		if err := p.publishOne(ctx, event); err != nil {
			errs = append(errs, fmt.Errorf("publish %s: %w", event.EventName(), err))
			continue
		}
		p.logger.DebugContext(ctx, "event published",
			slog.String("event", event.EventName()),
			slog.String("aggregateId", event.AggregateID().String()),
		)
	}
	return errors.Join(errs...)
}

func (p *Publisher) publishOne(ctx context.Context, event kernel.DomainEvent) error {
	msg, err := Encode(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	tag := p.ch.GetNextPublishSeqNo()
	if err = p.ch.PublishWithContext(ctx, p.exchange, event.EventName(), false, false, msg); err != nil {
		return err
	}

	if p.acks == nil {
		return nil
	}
	return p.awaitConfirm(ctx, tag)
}

// awaitConfirm reads confirms until the one for tag arrives. Confirms with a
// lower tag belong to messages whose wait already timed out and are dropped.
func (p *Publisher) awaitConfirm(ctx context.Context, tag uint64) error {
	for {
		select {
		case conf, ok := <-p.acks:
			if !ok {
				return amqp.ErrClosed
			}
			switch {
			case conf.DeliveryTag < tag:
				p.logger.WarnContext(ctx, "late broker confirm dropped",
					slog.Uint64("deliveryTag", conf.DeliveryTag),
					slog.Bool("ack", conf.Ack),
				)
				continue
			case conf.DeliveryTag > tag:
				return fmt.Errorf("confirm for delivery tag %d never arrived, got %d", tag, conf.DeliveryTag)
			case !conf.Ack:
				return errors.New("broker nacked the message")
			default:
				return nil
			}
		case <-ctx.Done():
			return fmt.Errorf("waiting for confirm of delivery tag %d: %w", tag, ctx.Err())
		}
	}
}

// Encode builds the persistent JSON message of an event.
func Encode(event kernel.DomainEvent) (amqp.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("marshal %s: %w", event.EventName(), err)
	}

	return amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		MessageId:    uuid.NewString(),
		Type:         event.EventName(),
		Timestamp:    event.OccurredAt().UTC(),
		Headers: amqp.Table{
			"x-source":       source,
			"x-aggregate-id": event.AggregateID().String(),
		},
		Body: body,
	}, nil
}

func (p *Publisher) Close() error {
	if p.conn == nil {
		return nil
	}
	return p.conn.Close()
}

// LogPublisher only logs events. Used when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	for _, event := range events {
		p.logger.InfoContext(ctx, "domain event",
			slog.String("event", event.EventName()),
			slog.String("aggregateId", event.AggregateID().String()),
			slog.Time("occurredAt", event.OccurredAt()),
		)
	}
	return nil
}
