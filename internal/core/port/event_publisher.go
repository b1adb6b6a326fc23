package port

import (
	"context"

	"agency-service/internal/core/domain"
)

// EntityEventPublisherPort сообщает внешним подписчикам об изменении сущностей.
type EntityEventPublisherPort interface {
	PublishEntityChanged(ctx context.Context, event domain.EntityChangedEvent) error
}
