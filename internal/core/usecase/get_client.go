package usecase

import (
	"context"

	"agency-service/internal/contextkeys"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
)

type GetClientUseCase struct {
	clients port.ClientRepositoryPort
}

func NewGetClientUseCase(clients port.ClientRepositoryPort) *GetClientUseCase {
	return &GetClientUseCase{clients: clients}
}

func (uc *GetClientUseCase) Execute(ctx context.Context, id int) (*domain.Client, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":  "GetClient",
		"client_id": id,
	})
	ucLogger.Debug("Use case started", nil)

	client, err := uc.clients.Get(ctx, id)
	if err != nil {
		ucLogger.Warn("Repository returned an error", port.Fields{"error": err.Error()})
		return nil, err
	}
	return client, nil
}
