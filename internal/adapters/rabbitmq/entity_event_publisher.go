package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"agency-service/internal/contextkeys"
	"agency-service/internal/contracts"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 10 * time.Second

// messagePublisher - часть *rabbitmq_producer.Publisher, нужная адаптеру.
type messagePublisher interface {
	Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error
}

// EntityChangedDTO - тело сообщения об изменении сущности.
type EntityChangedDTO struct {
	Entity     string    `json:"entity"`
	Action     string    `json:"action"`
	ID         int       `json:"id"`
	OccurredAt time.Time `json:"occurred_at"`
	TraceID    string    `json:"trace_id,omitempty"`
}

// EntityEventPublisher пишет события в topic-обменник с ключом "<entity>.<action>".
type EntityEventPublisher struct {
	producer messagePublisher
}

func NewEntityEventPublisher(producer messagePublisher) (*EntityEventPublisher, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	return &EntityEventPublisher{producer: producer}, nil
}

func (a *EntityEventPublisher) PublishEntityChanged(ctx context.Context, event domain.EntityChangedEvent) error {
	routingKey := event.RoutingKey()
	adapterLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "EntityEventPublisher",
		"routing_key": routingKey,
		"entity_id":   event.EntityID,
	})

	traceID := contextkeys.TraceIDFromContext(ctx)
	body, err := json.Marshal(EntityChangedDTO{
		Entity:     string(event.Entity),
		Action:     string(event.Action),
		ID:         event.EntityID,
		OccurredAt: event.OccurredAt,
		TraceID:    traceID,
	})
	if err != nil {
		return fmt.Errorf("rabbitmq adapter: failed to marshal event: %w", err)
	}
	if err := contracts.Validate(contracts.EntityChangedV1, body); err != nil {
		adapterLogger.Error("Event does not match its contract", err, nil)
		return fmt.Errorf("rabbitmq adapter: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    event.OccurredAt,
		Headers:      amqp.Table{},
	}
	if traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := a.producer.Publish(publishCtx, routingKey, msg); err != nil {
		adapterLogger.Error("Failed to publish entity change", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish %s: %w", routingKey, err)
	}

	adapterLogger.Debug("Entity change published", nil)
	return nil
}

// NoopEventPublisher используется, когда RabbitMQ выключен.
type NoopEventPublisher struct{}

func (NoopEventPublisher) PublishEntityChanged(context.Context, domain.EntityChangedEvent) error {
	return nil
}
