package usecase

import (
	"context"

	"agency-service/internal/contextkeys"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
)

type UpdatePropertyUseCase struct {
	properties port.PropertyRepositoryPort
	publisher  port.EntityEventPublisherPort
}

func NewUpdatePropertyUseCase(properties port.PropertyRepositoryPort, publisher port.EntityEventPublisherPort) *UpdatePropertyUseCase {
	return &UpdatePropertyUseCase{properties: properties, publisher: publisher}
}

func (uc *UpdatePropertyUseCase) Execute(ctx context.Context, id int, property domain.Property) (*domain.Property, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "UpdateProperty",
		"property_id": id,
	})
	ucLogger.Info("Use case started", nil)

	if err := property.Validate(); err != nil {
		ucLogger.Warn("Property validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	if _, err := uc.properties.Get(ctx, id); err != nil {
		ucLogger.Warn("Property to update was not found", port.Fields{"error": err.Error()})
		return nil, err
	}

	property.ID = id
	updated, err := uc.properties.Update(ctx, property)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	publishChange(ctx, uc.publisher, domain.EntityProperty, domain.ActionUpdated, id)
	ucLogger.Info("Use case finished successfully", nil)
	return updated, nil
}
