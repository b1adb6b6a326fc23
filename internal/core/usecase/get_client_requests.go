package usecase

import (
	"context"

	"agency-service/internal/core/analytics"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
)

// GetClientRequestsUseCase возвращает заявки одного клиента.
type GetClientRequestsUseCase struct {
	clients  port.ClientRepositoryPort
	requests port.RequestRepositoryPort
}

func NewGetClientRequestsUseCase(clients port.ClientRepositoryPort, requests port.RequestRepositoryPort) *GetClientRequestsUseCase {
	return &GetClientRequestsUseCase{clients: clients, requests: requests}
}

func (uc *GetClientRequestsUseCase) Execute(ctx context.Context, clientID int) ([]domain.Request, error) {
	if _, err := uc.clients.Get(ctx, clientID); err != nil {
		return nil, err
	}

	all, ucLogger, err := loadRequests(ctx, uc.requests, "GetClientRequests")
	if err != nil {
		return nil, err
	}

	own := analytics.RequestsByClient(all, clientID)
	ucLogger.Info("Use case finished successfully", port.Fields{
		"client_id":   clientID,
		"total_found": len(own),
	})
	return own, nil
}
