package usecases_port

import (
	"agency-service/internal/core/domain"
	"context"
)

type CreateRequestUseCase interface {
	Execute(ctx context.Context, input domain.RequestInput) (*domain.Request, error)
}

type UpdateRequestUseCase interface {
	Execute(ctx context.Context, id int, input domain.RequestInput) (*domain.Request, error)
}

type DeleteRequestUseCase interface {
	Execute(ctx context.Context, id int) error
}

type GetRequestUseCase interface {
	Execute(ctx context.Context, id int) (*domain.Request, error)
}

type ListRequestsUseCase interface {
	Execute(ctx context.Context) ([]domain.Request, error)
}

type GetRequestClientUseCase interface {
	Execute(ctx context.Context, requestID int) (*domain.Client, error)
}

type GetRequestPropertyUseCase interface {
	Execute(ctx context.Context, requestID int) (*domain.Property, error)
}
