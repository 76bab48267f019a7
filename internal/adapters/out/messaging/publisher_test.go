package messaging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"fastfood/internal/adapters/out/messaging"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockChannel struct {
	mock.Mock
}

func (m *MockChannel) PublishWithContext(
	ctx context.Context,
	exchange, key string,
	mandatory, immediate bool,
	msg amqp.Publishing,
) error {
	args := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func newOrderEvents(t *testing.T) []kernel.DomainEvent {
	t.Helper()

	destination, err := kernel.NewLocation(40.84411221242592, 72.33245510501874)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), destination, 2, 10,
		time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, o.Accept(kernel.NewUUID()))
	return o.DomainEvents()
}

func TestAMQPPublisher_Publish_RoutesByEventName(t *testing.T) {
	ch := new(MockChannel)
	events := newOrderEvents(t)
	var sent []amqp.Publishing

	ch.On("PublishWithContext", mock.Anything, "fastfood.events", mock.Anything, false, false, mock.Anything).
		Run(func(args mock.Arguments) {
			sent = append(sent, args.Get(5).(amqp.Publishing))
		}).
		Return(nil)

	messaging.NewAMQPPublisher(ch, "fastfood.events", slog.New(slog.DiscardHandler)).
		Publish(context.Background(), events...)

	ch.AssertNumberOfCalls(t, "PublishWithContext", 2)
	ch.AssertCalled(t, "PublishWithContext", mock.Anything, "fastfood.events", order.EventCreated,
		false, false, mock.Anything)
	ch.AssertCalled(t, "PublishWithContext", mock.Anything, "fastfood.events", order.EventAccepted,
		false, false, mock.Anything)

	require.Len(t, sent, 2)
	assert.Equal(t, amqp.Persistent, sent[0].DeliveryMode)
	assert.Equal(t, "application/json", sent[0].ContentType)
	assert.NotEmpty(t, sent[0].MessageId)

	var msg messaging.Message
	require.NoError(t, json.Unmarshal(sent[0].Body, &msg))
	assert.Equal(t, order.EventCreated, msg.Event)
	assert.Equal(t, events[0].AggregateID().String(), msg.AggregateID)
	assert.Equal(t, events[0].AggregateID().String(), sent[0].CorrelationId)
	assert.EqualValues(t, 2, msg.Payload["quantity"])
}

func TestAMQPPublisher_Publish_ContinuesAfterFailure(t *testing.T) {
	ch := new(MockChannel)
	buf := &bytes.Buffer{}
	events := newOrderEvents(t)

	ch.On("PublishWithContext", mock.Anything, "ex", order.EventCreated, false, false, mock.Anything).
		Return(errors.New("channel closed"))
	ch.On("PublishWithContext", mock.Anything, "ex", order.EventAccepted, false, false, mock.Anything).
		Return(nil)

	messaging.NewAMQPPublisher(ch, "ex", slog.New(slog.NewJSONHandler(buf, nil))).
		Publish(context.Background(), events...)

	ch.AssertNumberOfCalls(t, "PublishWithContext", 2)
	assert.Contains(t, buf.String(), "Failed to publish domain event")
	assert.Contains(t, buf.String(), "channel closed")
}

func TestLogPublisher_Publish(t *testing.T) {
	buf := &bytes.Buffer{}
	events := newOrderEvents(t)

	messaging.NewLogPublisher(slog.New(slog.NewJSONHandler(buf, nil))).
		Publish(context.Background(), events...)

	out := buf.String()
	assert.Contains(t, out, `"event":"order.created"`)
	assert.Contains(t, out, `"event":"order.accepted"`)
	assert.Contains(t, out, events[0].AggregateID().String())
}
