package usecase

import (
	"context"

	"agency-service/internal/contextkeys"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
)

type DeleteClientUseCase struct {
	clients   port.ClientRepositoryPort
	publisher port.EntityEventPublisherPort
}

func NewDeleteClientUseCase(clients port.ClientRepositoryPort, publisher port.EntityEventPublisherPort) *DeleteClientUseCase {
	return &DeleteClientUseCase{clients: clients, publisher: publisher}
}

func (uc *DeleteClientUseCase) Execute(ctx context.Context, id int) error {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":  "DeleteClient",
		"client_id": id,
	})
	ucLogger.Info("Use case started", nil)

	deleted, err := uc.clients.Delete(ctx, id)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	if !deleted {
		ucLogger.Warn("Client to delete was not found", nil)
		return domain.ErrClientNotFound
	}

	publishChange(ctx, uc.publisher, domain.EntityClient, domain.ActionDeleted, id)
	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
