package usecase

import (
	"context"

	"agency-service/internal/contextkeys"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
)

// GetRequestClientUseCase возвращает клиента заявки.
type GetRequestClientUseCase struct {
	requests port.RequestRepositoryPort
}

func NewGetRequestClientUseCase(requests port.RequestRepositoryPort) *GetRequestClientUseCase {
	return &GetRequestClientUseCase{requests: requests}
}

func (uc *GetRequestClientUseCase) Execute(ctx context.Context, requestID int) (*domain.Client, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "GetRequestClient",
		"request_id": requestID,
	})

	request, err := uc.requests.Get(ctx, requestID)
	if err != nil {
		ucLogger.Warn("Repository returned an error", port.Fields{"error": err.Error()})
		return nil, err
	}
	if request.Client == nil {
		ucLogger.Warn("Request has no resolved client", nil)
		return nil, domain.ErrClientNotFound
	}
	return request.Client, nil
}
