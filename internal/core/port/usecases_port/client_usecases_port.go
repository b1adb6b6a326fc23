package usecases_port

import (
	"agency-service/internal/core/domain"
	"context"
)

type CreateClientUseCase interface {
	Execute(ctx context.Context, client domain.Client) (*domain.Client, error)
}

type UpdateClientUseCase interface {
	Execute(ctx context.Context, id int, client domain.Client) (*domain.Client, error)
}

type DeleteClientUseCase interface {
	Execute(ctx context.Context, id int) error
}

type GetClientUseCase interface {
	Execute(ctx context.Context, id int) (*domain.Client, error)
}

type ListClientsUseCase interface {
	Execute(ctx context.Context) ([]domain.Client, error)
}

type GetClientRequestsUseCase interface {
	Execute(ctx context.Context, clientID int) ([]domain.Request, error)
}
