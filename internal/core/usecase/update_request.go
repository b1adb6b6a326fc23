package usecase

import (
	"context"

	"agency-service/internal/contextkeys"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
)

type UpdateRequestUseCase struct {
	requests   port.RequestRepositoryPort
	clients    port.ClientRepositoryPort
	properties port.PropertyRepositoryPort
	publisher  port.EntityEventPublisherPort
}

func NewUpdateRequestUseCase(storage port.StoragePort, publisher port.EntityEventPublisherPort) *UpdateRequestUseCase {
	return &UpdateRequestUseCase{
		requests:   storage.Requests(),
		clients:    storage.Clients(),
		properties: storage.Properties(),
		publisher:  publisher,
	}
}

func (uc *UpdateRequestUseCase) Execute(ctx context.Context, id int, input domain.RequestInput) (*domain.Request, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "UpdateRequest",
		"request_id": id,
	})
	ucLogger.Info("Use case started", nil)

	if err := input.Validate(); err != nil {
		ucLogger.Warn("Request validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}
	if _, err := uc.requests.Get(ctx, id); err != nil {
		ucLogger.Warn("Request to update was not found", port.Fields{"error": err.Error()})
		return nil, err
	}
	if err := checkReferences(ctx, uc.clients, uc.properties, input); err != nil {
		ucLogger.Warn("Referenced entity is missing", port.Fields{"error": err.Error()})
		return nil, err
	}

	updated, err := uc.requests.Update(ctx, id, input)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	publishChange(ctx, uc.publisher, domain.EntityRequest, domain.ActionUpdated, id)
	ucLogger.Info("Use case finished successfully", nil)
	return updated, nil
}
