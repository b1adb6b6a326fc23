package usecase

import (
	"context"

	"agency-service/internal/contextkeys"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
)

type DeleteRequestUseCase struct {
	requests  port.RequestRepositoryPort
	publisher port.EntityEventPublisherPort
}

func NewDeleteRequestUseCase(requests port.RequestRepositoryPort, publisher port.EntityEventPublisherPort) *DeleteRequestUseCase {
	return &DeleteRequestUseCase{requests: requests, publisher: publisher}
}

func (uc *DeleteRequestUseCase) Execute(ctx context.Context, id int) error {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "DeleteRequest",
		"request_id": id,
	})
	ucLogger.Info("Use case started", nil)

	deleted, err := uc.requests.Delete(ctx, id)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	if !deleted {
		ucLogger.Warn("Request to delete was not found", nil)
		return domain.ErrRequestNotFound
	}

	publishChange(ctx, uc.publisher, domain.EntityRequest, domain.ActionDeleted, id)
	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
