package usecase

import (
	"context"

	"agency-service/internal/contextkeys"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
)

type GetPropertyUseCase struct {
	properties port.PropertyRepositoryPort
}

func NewGetPropertyUseCase(properties port.PropertyRepositoryPort) *GetPropertyUseCase {
	return &GetPropertyUseCase{properties: properties}
}

func (uc *GetPropertyUseCase) Execute(ctx context.Context, id int) (*domain.Property, error) {
	property, err := uc.properties.Get(ctx, id)
	if err != nil {
		contextkeys.LoggerFromContext(ctx).Warn("Repository returned an error", port.Fields{
			"use_case":    "GetProperty",
			"property_id": id,
			"error":       err.Error(),
		})
		return nil, err
	}
	return property, nil
}
