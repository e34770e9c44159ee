package rabbitmq

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"freight/internal/core/domain/model/delivery"
	"freight/internal/core/domain/model/kernel"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockChannel struct {
	mock.Mock
	published uint64
}

// GetNextPublishSeqNo numbers messages from 1, like a channel in confirm mode.
func (m *mockChannel) GetNextPublishSeqNo() uint64 {
	return m.published + 1
}

func (m *mockChannel) PublishWithContext(
	ctx context.Context,
	exchange, key string,
	mandatory, immediate bool,
	msg amqp.Publishing,
) error {
	m.published++
	args := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

// brokerChannel confirms each message through answer, or not at all when
// answer reports false.
type brokerChannel struct {
	next   uint64
	acks   chan amqp.Confirmation
	answer func(tag uint64) (bool, bool)
}

func newBrokerChannel(answer func(tag uint64) (ack, confirmed bool)) *brokerChannel {
	return &brokerChannel{next: 1, acks: make(chan amqp.Confirmation, confirmBuffer), answer: answer}
}

func (b *brokerChannel) GetNextPublishSeqNo() uint64 {
	return b.next
}

func (b *brokerChannel) PublishWithContext(context.Context, string, string, bool, bool, amqp.Publishing) error {
	tag := b.next
	b.next++
	if ack, confirmed := b.answer(tag); confirmed {
		b.acks <- amqp.Confirmation{DeliveryTag: tag, Ack: ack}
	}
	return nil
}

func calculatedEvent() delivery.CalculatedEvent {
	return delivery.CalculatedEvent{
		DeliveryID:     kernel.NewUUID(),
		OrderID:        kernel.NewUUID(),
		DeliveryTypeID: 2,
		FinalCost:      decimal.RequireFromString("387.00"),
		At:             time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestEncode(t *testing.T) {
	event := calculatedEvent()

	msg, err := Encode(event)

	require.NoError(t, err)
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, delivery.CalculatedEventName, msg.Type)
	assert.Equal(t, event.At, msg.Timestamp)
	assert.NotEmpty(t, msg.MessageId)
	assert.Equal(t, event.DeliveryID.String(), msg.Headers["x-aggregate-id"])

	var body map[string]any
	require.NoError(t, json.Unmarshal(msg.Body, &body))
	assert.Equal(t, event.DeliveryID.String(), body["deliveryId"])
	assert.Equal(t, event.OrderID.String(), body["orderId"])
	assert.Equal(t, "387", body["finalCost"])
}

func TestPublish_RoutesByEventName(t *testing.T) {
	ch := new(mockChannel)
	created := calculatedEvent()
	changed := delivery.StatusChangedEvent{
		DeliveryID: created.DeliveryID,
		OrderID:    created.OrderID,
		From:       delivery.Calculated,
		To:         delivery.InTransit,
		At:         time.Now().UTC(),
	}

	mock.InOrder(
		ch.On("PublishWithContext", mock.Anything, "freight.events", delivery.CalculatedEventName, false, false, mock.Anything).
			Return(nil).Once(),
		ch.On("PublishWithContext", mock.Anything, "freight.events", delivery.StatusChangedEventName, false, false,
			mock.MatchedBy(func(msg amqp.Publishing) bool {
				return bytes.Contains(msg.Body, []byte(`"to":"InTransit"`))
			})).
			Return(nil).Once(),
	)

	p := NewPublisher(ch, DefaultExchange, nil)
	require.NoError(t, p.Publish(context.Background(), created, changed))

	ch.AssertExpectations(t)
}

func TestPublish_AttemptsEveryEventAndJoinsFailures(t *testing.T) {
	ch := new(mockChannel)
	ch.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, false, false, mock.Anything).
		Return(errors.New("channel closed")).Twice()

	p := NewPublisher(ch, DefaultExchange, nil)
	err := p.Publish(context.Background(), calculatedEvent(), calculatedEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "publish delivery.calculated: channel closed")
	ch.AssertNumberOfCalls(t, "PublishWithContext", 2)
}

func TestPublish_WaitsForConfirm(t *testing.T) {
	ch := new(mockChannel)
	ch.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, false, false, mock.Anything).Return(nil)

	acks := make(chan amqp.Confirmation, 2)
	p := newConfirmingPublisher(ch, acks, DefaultExchange, nil)

	acks <- amqp.Confirmation{DeliveryTag: 1, Ack: true}
	require.NoError(t, p.Publish(context.Background(), calculatedEvent()))

	acks <- amqp.Confirmation{DeliveryTag: 2, Ack: false}
	assert.ErrorContains(t, p.Publish(context.Background(), calculatedEvent()), "nacked")
}

func TestPublish_LateConfirmIsNotTakenForTheNextMessage(t *testing.T) {
	ch := newBrokerChannel(func(tag uint64) (bool, bool) {
		switch tag {
		case 1:
			return false, false
		case 2:
			return false, true
		default:
			return true, true
		}
	})
	p := newConfirmingPublisher(ch, ch.acks, DefaultExchange, nil)
	p.timeout = 50 * time.Millisecond

	err := p.Publish(context.Background(), calculatedEvent())
	require.ErrorIs(t, err, context.DeadlineExceeded)

	// The ack for message 1 shows up only after its wait gave up.
	ch.acks <- amqp.Confirmation{DeliveryTag: 1, Ack: true}

	err = p.Publish(context.Background(), calculatedEvent())
	require.ErrorContains(t, err, "nacked", "message 2 must get its own nack, not the stale ack")

	require.NoError(t, p.Publish(context.Background(), calculatedEvent()))
	assert.Empty(t, ch.acks)
}

func TestPublish_MissingConfirmIsReported(t *testing.T) {
	acks := make(chan amqp.Confirmation, 1)
	ch := new(mockChannel)
	ch.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, false, false, mock.Anything).Return(nil)
	p := newConfirmingPublisher(ch, acks, DefaultExchange, nil)

	acks <- amqp.Confirmation{DeliveryTag: 2, Ack: true}

	assert.ErrorContains(t, p.Publish(context.Background(), calculatedEvent()), "delivery tag 1")
}

func TestLogPublisher(t *testing.T) {
	var buf bytes.Buffer
	p := NewLogPublisher(slog.New(slog.NewJSONHandler(&buf, nil)))

	require.NoError(t, p.Publish(context.Background(), calculatedEvent()))

	assert.Contains(t, buf.String(), `"event":"delivery.calculated"`)
}
