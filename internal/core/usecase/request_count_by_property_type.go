package usecase

import (
	"context"

	"agency-service/internal/core/analytics"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
)

type RequestCountByPropertyTypeUseCase struct {
	requests port.RequestRepositoryPort
}

func NewRequestCountByPropertyTypeUseCase(requests port.RequestRepositoryPort) *RequestCountByPropertyTypeUseCase {
	return &RequestCountByPropertyTypeUseCase{requests: requests}
}

func (uc *RequestCountByPropertyTypeUseCase) Execute(ctx context.Context) (map[domain.PropertyType]int, error) {
	all, ucLogger, err := loadRequests(ctx, uc.requests, "RequestCountByPropertyType")
	if err != nil {
		return nil, err
	}

	counts := analytics.RequestCountByPropertyType(all)
	ucLogger.Info("Use case finished successfully", port.Fields{"property_types": len(counts)})
	return counts, nil
}
