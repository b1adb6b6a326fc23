package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"agency-service/internal/contextkeys"
	"agency-service/internal/core/domain"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
)

type capturedPublish struct {
	routingKey string
	msg        amqp.Publishing
	deadline   bool
}

type fakeProducer struct {
	calls []capturedPublish
	err   error
}

func (f *fakeProducer) Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error {
	_, hasDeadline := ctx.Deadline()
	f.calls = append(f.calls, capturedPublish{routingKey: routingKey, msg: msg, deadline: hasDeadline})
	return f.err
}

func TestEntityEventPublisher_PublishesJSONWithTrace(t *testing.T) {
	producer := &fakeProducer{}
	publisher, err := NewEntityEventPublisher(producer)
	require.NoError(t, err)

	occurred := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
	ctx := contextkeys.ContextWithTraceID(context.Background(), "trace-1")
	err = publisher.PublishEntityChanged(ctx, domain.EntityChangedEvent{
		Entity:     domain.EntityRequest,
		Action:     domain.ActionDeleted,
		EntityID:   12,
		OccurredAt: occurred,
	})
	require.NoError(t, err)
	require.Len(t, producer.calls, 1)

	call := producer.calls[0]
	require.Equal(t, "request.deleted", call.routingKey)
	require.True(t, call.deadline)
	require.Equal(t, "application/json", call.msg.ContentType)
	require.Equal(t, amqp.Persistent, call.msg.DeliveryMode)
	require.Equal(t, "trace-1", call.msg.Headers["x-trace-id"])
	require.NotEmpty(t, call.msg.MessageId)

	var dto EntityChangedDTO
	require.NoError(t, json.Unmarshal(call.msg.Body, &dto))
	require.Equal(t, EntityChangedDTO{
		Entity:     "request",
		Action:     "deleted",
		ID:         12,
		OccurredAt: occurred,
		TraceID:    "trace-1",
	}, dto)
}

func TestEntityEventPublisher_WrapsProducerError(t *testing.T) {
	producer := &fakeProducer{err: errors.New("channel closed")}
	publisher, err := NewEntityEventPublisher(producer)
	require.NoError(t, err)

	err = publisher.PublishEntityChanged(context.Background(), domain.EntityChangedEvent{
		Entity: domain.EntityClient,
		Action: domain.ActionCreated,
	})
	require.ErrorContains(t, err, "client.created")
	require.ErrorIs(t, err, producer.err)
}

func TestNewEntityEventPublisher_NilProducer(t *testing.T) {
	_, err := NewEntityEventPublisher(nil)
	require.Error(t, err)
}

func TestToFields_SkipsBrokenPairs(t *testing.T) {
	fields := toFields("exchange", "agency_exchange", 42, "ignored", "dangling")
	require.Len(t, fields, 1)
	require.Equal(t, "agency_exchange", fields["exchange"])
}
