package usecase

import (
	"context"

	"agency-service/internal/contextkeys"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
)

type ListRequestsUseCase struct {
	requests port.RequestRepositoryPort
}

func NewListRequestsUseCase(requests port.RequestRepositoryPort) *ListRequestsUseCase {
	return &ListRequestsUseCase{requests: requests}
}

func (uc *ListRequestsUseCase) Execute(ctx context.Context) ([]domain.Request, error) {
	requests, err := uc.requests.GetRequests(ctx)
	if err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Repository returned an error", err, port.Fields{"use_case": "ListRequests"})
		return nil, err
	}
	return requests, nil
}
