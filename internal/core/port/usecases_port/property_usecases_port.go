package usecases_port

import (
	"agency-service/internal/core/domain"
	"context"
)

type CreatePropertyUseCase interface {
	Execute(ctx context.Context, property domain.Property) (*domain.Property, error)
}

type UpdatePropertyUseCase interface {
	Execute(ctx context.Context, id int, property domain.Property) (*domain.Property, error)
}

type DeletePropertyUseCase interface {
	Execute(ctx context.Context, id int) error
}

type GetPropertyUseCase interface {
	Execute(ctx context.Context, id int) (*domain.Property, error)
}

type ListPropertiesUseCase interface {
	Execute(ctx context.Context) ([]domain.Property, error)
}
