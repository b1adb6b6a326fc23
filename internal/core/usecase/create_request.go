package usecase

import (
	"context"

	"agency-service/internal/contextkeys"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
)

type CreateRequestUseCase struct {
	requests   port.RequestRepositoryPort
	clients    port.ClientRepositoryPort
	properties port.PropertyRepositoryPort
	publisher  port.EntityEventPublisherPort
}

func NewCreateRequestUseCase(storage port.StoragePort, publisher port.EntityEventPublisherPort) *CreateRequestUseCase {
	return &CreateRequestUseCase{
		requests:   storage.Requests(),
		clients:    storage.Clients(),
		properties: storage.Properties(),
		publisher:  publisher,
	}
}

func (uc *CreateRequestUseCase) Execute(ctx context.Context, input domain.RequestInput) (*domain.Request, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "CreateRequest",
		"client_id":   input.ClientID,
		"property_id": input.PropertyID,
	})
	ucLogger.Info("Use case started", nil)

	if err := input.Validate(); err != nil {
		ucLogger.Warn("Request validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}
	if err := checkReferences(ctx, uc.clients, uc.properties, input); err != nil {
		ucLogger.Warn("Referenced entity is missing", port.Fields{"error": err.Error()})
		return nil, err
	}

	created, err := uc.requests.Create(ctx, input)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	publishChange(ctx, uc.publisher, domain.EntityRequest, domain.ActionCreated, created.ID)
	ucLogger.Info("Use case finished successfully", port.Fields{"request_id": created.ID})
	return created, nil
}
