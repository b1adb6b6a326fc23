package usecases_port

import (
	"agency-service/internal/core/domain"
	"context"
)

type SellersByPeriodUseCase interface {
	Execute(ctx context.Context, from, to domain.Date) ([]domain.Client, error)
}

type TopClientsByRequestTypeUseCase interface {
	Execute(ctx context.Context) (map[domain.RequestType][]domain.Client, error)
}

type ClientsWithMinAmountUseCase interface {
	Execute(ctx context.Context) ([]domain.Client, error)
}

type ClientsByPropertyTypeUseCase interface {
	Execute(ctx context.Context, propertyType domain.PropertyType) ([]domain.Client, error)
}

type RequestCountByPropertyTypeUseCase interface {
	Execute(ctx context.Context) (map[domain.PropertyType]int, error)
}

type SeedDataUseCase interface {
	Execute(ctx context.Context, dataset domain.SeedDataset) (bool, error)
}
