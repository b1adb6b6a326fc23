package usecase

import (
	"context"

	"agency-service/internal/contextkeys"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
)

type CreateClientUseCase struct {
	clients   port.ClientRepositoryPort
	publisher port.EntityEventPublisherPort
}

func NewCreateClientUseCase(clients port.ClientRepositoryPort, publisher port.EntityEventPublisherPort) *CreateClientUseCase {
	return &CreateClientUseCase{clients: clients, publisher: publisher}
}

func (uc *CreateClientUseCase) Execute(ctx context.Context, client domain.Client) (*domain.Client, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":        "CreateClient",
		"passport_number": client.PassportNumber,
	})
	ucLogger.Info("Use case started", nil)

	if err := client.Validate(); err != nil {
		ucLogger.Warn("Client validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	client.ID = 0 // ID выдает хранилище
	created, err := uc.clients.Create(ctx, client)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	publishChange(ctx, uc.publisher, domain.EntityClient, domain.ActionCreated, created.ID)
	ucLogger.Info("Use case finished successfully", port.Fields{"client_id": created.ID})
	return created, nil
}
