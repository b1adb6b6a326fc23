package usecase

import (
	"context"

	"agency-service/internal/contextkeys"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
)

type DeletePropertyUseCase struct {
	properties port.PropertyRepositoryPort
	publisher  port.EntityEventPublisherPort
}

func NewDeletePropertyUseCase(properties port.PropertyRepositoryPort, publisher port.EntityEventPublisherPort) *DeletePropertyUseCase {
	return &DeletePropertyUseCase{properties: properties, publisher: publisher}
}

func (uc *DeletePropertyUseCase) Execute(ctx context.Context, id int) error {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "DeleteProperty",
		"property_id": id,
	})
	ucLogger.Info("Use case started", nil)

	deleted, err := uc.properties.Delete(ctx, id)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	if !deleted {
		ucLogger.Warn("Property to delete was not found", nil)
		return domain.ErrPropertyNotFound
	}

	publishChange(ctx, uc.publisher, domain.EntityProperty, domain.ActionDeleted, id)
	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
