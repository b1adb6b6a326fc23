package usecase

import (
	"context"

	"agency-service/internal/contextkeys"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
)

type ListPropertiesUseCase struct {
	properties port.PropertyRepositoryPort
}

func NewListPropertiesUseCase(properties port.PropertyRepositoryPort) *ListPropertiesUseCase {
	return &ListPropertiesUseCase{properties: properties}
}

func (uc *ListPropertiesUseCase) Execute(ctx context.Context) ([]domain.Property, error) {
	properties, err := uc.properties.GetAll(ctx)
	if err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Repository returned an error", err, port.Fields{"use_case": "ListProperties"})
		return nil, err
	}
	return properties, nil
}
