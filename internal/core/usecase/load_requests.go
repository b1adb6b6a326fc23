package usecase

import (
	"context"

	"agency-service/internal/contextkeys"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
)

// loadRequests - общий шаг всех отчетов: одна полная выгрузка заявок.
func loadRequests(ctx context.Context, requests port.RequestRepositoryPort, useCase string) ([]domain.Request, port.LoggerPort, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": useCase})
	ucLogger.Info("Use case started", nil)

	all, err := requests.GetRequests(ctx)
	if err != nil {
		ucLogger.Error("Failed to load requests", err, nil)
		return nil, ucLogger, err
	}
	ucLogger.Debug("Requests loaded", port.Fields{"requests_total": len(all)})
	return all, ucLogger, nil
}
