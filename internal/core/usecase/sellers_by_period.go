package usecase

import (
	"context"

	"agency-service/internal/core/analytics"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
)

type SellersByPeriodUseCase struct {
	requests port.RequestRepositoryPort
}

func NewSellersByPeriodUseCase(requests port.RequestRepositoryPort) *SellersByPeriodUseCase {
	return &SellersByPeriodUseCase{requests: requests}
}

func (uc *SellersByPeriodUseCase) Execute(ctx context.Context, from, to domain.Date) ([]domain.Client, error) {
	all, ucLogger, err := loadRequests(ctx, uc.requests, "SellersByPeriod")
	if err != nil {
		return nil, err
	}

	sellers := analytics.SellersByPeriod(all, from, to)
	ucLogger.Info("Use case finished successfully", port.Fields{
		"from":        from.String(),
		"to":          to.String(),
		"total_found": len(sellers),
	})
	return sellers, nil
}
