package usecase

import (
	"context"

	"agency-service/internal/contextkeys"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
)

type CreatePropertyUseCase struct {
	properties port.PropertyRepositoryPort
	publisher  port.EntityEventPublisherPort
}

func NewCreatePropertyUseCase(properties port.PropertyRepositoryPort, publisher port.EntityEventPublisherPort) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{properties: properties, publisher: publisher}
}

func (uc *CreatePropertyUseCase) Execute(ctx context.Context, property domain.Property) (*domain.Property, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":         "CreateProperty",
		"cadastral_number": property.CadastralNumber,
	})
	ucLogger.Info("Use case started", nil)

	if err := property.Validate(); err != nil {
		ucLogger.Warn("Property validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	property.ID = 0
	created, err := uc.properties.Create(ctx, property)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	publishChange(ctx, uc.publisher, domain.EntityProperty, domain.ActionCreated, created.ID)
	ucLogger.Info("Use case finished successfully", port.Fields{"property_id": created.ID})
	return created, nil
}
