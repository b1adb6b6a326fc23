package usecase

import (
	"context"

	"agency-service/internal/core/analytics"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
)

type ClientsWithMinAmountUseCase struct {
	requests port.RequestRepositoryPort
}

func NewClientsWithMinAmountUseCase(requests port.RequestRepositoryPort) *ClientsWithMinAmountUseCase {
	return &ClientsWithMinAmountUseCase{requests: requests}
}

func (uc *ClientsWithMinAmountUseCase) Execute(ctx context.Context) ([]domain.Client, error) {
	all, ucLogger, err := loadRequests(ctx, uc.requests, "ClientsWithMinAmount")
	if err != nil {
		return nil, err
	}

	clients, err := analytics.ClientsWithMinRequestAmount(all)
	if err != nil {
		ucLogger.Warn("Minimum amount is undefined", port.Fields{"error": err.Error()})
		return nil, err
	}
	ucLogger.Info("Use case finished successfully", port.Fields{"total_found": len(clients)})
	return clients, nil
}
