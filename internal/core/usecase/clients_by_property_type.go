package usecase

import (
	"context"

	"agency-service/internal/core/analytics"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
)

type ClientsByPropertyTypeUseCase struct {
	requests port.RequestRepositoryPort
}

func NewClientsByPropertyTypeUseCase(requests port.RequestRepositoryPort) *ClientsByPropertyTypeUseCase {
	return &ClientsByPropertyTypeUseCase{requests: requests}
}

func (uc *ClientsByPropertyTypeUseCase) Execute(ctx context.Context, propertyType domain.PropertyType) ([]domain.Client, error) {
	all, ucLogger, err := loadRequests(ctx, uc.requests, "ClientsByPropertyType")
	if err != nil {
		return nil, err
	}

	clients := analytics.ClientsByPropertyType(all, propertyType)
	ucLogger.Info("Use case finished successfully", port.Fields{
		"property_type": propertyType,
		"total_found":   len(clients),
	})
	return clients, nil
}
