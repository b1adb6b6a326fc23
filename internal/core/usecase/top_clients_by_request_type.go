package usecase

import (
	"context"

	"agency-service/internal/core/analytics"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
)

type TopClientsByRequestTypeUseCase struct {
	requests port.RequestRepositoryPort
}

func NewTopClientsByRequestTypeUseCase(requests port.RequestRepositoryPort) *TopClientsByRequestTypeUseCase {
	return &TopClientsByRequestTypeUseCase{requests: requests}
}

func (uc *TopClientsByRequestTypeUseCase) Execute(ctx context.Context) (map[domain.RequestType][]domain.Client, error) {
	all, ucLogger, err := loadRequests(ctx, uc.requests, "TopClientsByRequestType")
	if err != nil {
		return nil, err
	}

	top := analytics.Top5ClientsByRequestType(all)
	ucLogger.Info("Use case finished successfully", port.Fields{"request_types": len(top)})
	return top, nil
}
