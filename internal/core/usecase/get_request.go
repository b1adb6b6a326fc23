package usecase

import (
	"context"

	"agency-service/internal/contextkeys"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
)

type GetRequestUseCase struct {
	requests port.RequestRepositoryPort
}

func NewGetRequestUseCase(requests port.RequestRepositoryPort) *GetRequestUseCase {
	return &GetRequestUseCase{requests: requests}
}

func (uc *GetRequestUseCase) Execute(ctx context.Context, id int) (*domain.Request, error) {
	request, err := uc.requests.Get(ctx, id)
	if err != nil {
		contextkeys.LoggerFromContext(ctx).Warn("Repository returned an error", port.Fields{
			"use_case":   "GetRequest",
			"request_id": id,
			"error":      err.Error(),
		})
		return nil, err
	}
	return request, nil
}
