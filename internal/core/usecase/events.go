package usecase

import (
	"context"
	"time"

	"agency-service/internal/contextkeys"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
)

// publishChange отправляет событие об изменении. Запись в хранилище уже
// состоялась, поэтому ошибка публикации только логируется.
func publishChange(ctx context.Context, publisher port.EntityEventPublisherPort, entity domain.EntityKind, action domain.ChangeAction, id int) {
	if publisher == nil {
		return
	}
	event := domain.EntityChangedEvent{
		Entity:     entity,
		Action:     action,
		EntityID:   id,
		OccurredAt: time.Now().UTC(),
	}
	if err := publisher.PublishEntityChanged(ctx, event); err != nil {
		contextkeys.LoggerFromContext(ctx).Warn("Failed to publish entity change event", port.Fields{
			"routing_key": event.RoutingKey(),
			"entity_id":   id,
			"error":       err.Error(),
		})
	}
}
