package port

import (
	"context"

	"agency-service/internal/core/domain"
)

// ClientRepositoryPort - хранилище клиентов.
// Create присваивает ID и возвращает сохраненную запись.
// Get возвращает domain.ErrClientNotFound, если записи нет.
// Delete возвращает false, если удалять было нечего; заявки клиента удаляются каскадно.
type ClientRepositoryPort interface {
	Create(ctx context.Context, client domain.Client) (*domain.Client, error)
	Get(ctx context.Context, id int) (*domain.Client, error)
	GetAll(ctx context.Context) ([]domain.Client, error)
	Update(ctx context.Context, client domain.Client) (*domain.Client, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// PropertyRepositoryPort - хранилище объектов недвижимости.
type PropertyRepositoryPort interface {
	Create(ctx context.Context, property domain.Property) (*domain.Property, error)
	Get(ctx context.Context, id int) (*domain.Property, error)
	GetAll(ctx context.Context) ([]domain.Property, error)
	Update(ctx context.Context, property domain.Property) (*domain.Property, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// RequestRepositoryPort - хранилище заявок. Все методы чтения возвращают
// заявки с уже подгруженными клиентом и объектом.
type RequestRepositoryPort interface {
	Create(ctx context.Context, input domain.RequestInput) (*domain.Request, error)
	Get(ctx context.Context, id int) (*domain.Request, error)
	Update(ctx context.Context, id int, input domain.RequestInput) (*domain.Request, error)
	Delete(ctx context.Context, id int) (bool, error)

	// GetRequests загружает всю коллекцию целиком, без пагинации.
	GetRequests(ctx context.Context) ([]domain.Request, error)
}

// StoragePort объединяет репозитории одного бэкенда.
type StoragePort interface {
	Clients() ClientRepositoryPort
	Properties() PropertyRepositoryPort
	Requests() RequestRepositoryPort

	// IsEmpty - во всех трех коллекциях нет ни одной записи.
	IsEmpty(ctx context.Context) (bool, error)
	Close(ctx context.Context) error
}
