package usecase

import (
	"context"

	"agency-service/internal/contextkeys"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
)

type ListClientsUseCase struct {
	clients port.ClientRepositoryPort
}

func NewListClientsUseCase(clients port.ClientRepositoryPort) *ListClientsUseCase {
	return &ListClientsUseCase{clients: clients}
}

func (uc *ListClientsUseCase) Execute(ctx context.Context) ([]domain.Client, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "ListClients"})

	clients, err := uc.clients.GetAll(ctx)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Debug("Use case finished successfully", port.Fields{"total_found": len(clients)})
	return clients, nil
}
