package usecase

import (
	"context"

	"agency-service/internal/contextkeys"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
)

type UpdateClientUseCase struct {
	clients   port.ClientRepositoryPort
	publisher port.EntityEventPublisherPort
}

func NewUpdateClientUseCase(clients port.ClientRepositoryPort, publisher port.EntityEventPublisherPort) *UpdateClientUseCase {
	return &UpdateClientUseCase{clients: clients, publisher: publisher}
}

func (uc *UpdateClientUseCase) Execute(ctx context.Context, id int, client domain.Client) (*domain.Client, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":  "UpdateClient",
		"client_id": id,
	})
	ucLogger.Info("Use case started", nil)

	if err := client.Validate(); err != nil {
		ucLogger.Warn("Client validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	if _, err := uc.clients.Get(ctx, id); err != nil {
		ucLogger.Warn("Client to update was not found", port.Fields{"error": err.Error()})
		return nil, err
	}

	client.ID = id
	updated, err := uc.clients.Update(ctx, client)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	publishChange(ctx, uc.publisher, domain.EntityClient, domain.ActionUpdated, id)
	ucLogger.Info("Use case finished successfully", nil)
	return updated, nil
}
