package usecase

import (
	"context"

	"agency-service/internal/contextkeys"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
)

// GetRequestPropertyUseCase возвращает объект заявки.
type GetRequestPropertyUseCase struct {
	requests port.RequestRepositoryPort
}

func NewGetRequestPropertyUseCase(requests port.RequestRepositoryPort) *GetRequestPropertyUseCase {
	return &GetRequestPropertyUseCase{requests: requests}
}

func (uc *GetRequestPropertyUseCase) Execute(ctx context.Context, requestID int) (*domain.Property, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "GetRequestProperty",
		"request_id": requestID,
	})

	request, err := uc.requests.Get(ctx, requestID)
	if err != nil {
		ucLogger.Warn("Repository returned an error", port.Fields{"error": err.Error()})
		return nil, err
	}
	if request.Property == nil {
		ucLogger.Warn("Request has no resolved property", nil)
		return nil, domain.ErrPropertyNotFound
	}
	return request.Property, nil
}
