package usecase

import (
	"context"

	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
)

// checkReferences проверяет, что клиент и объект заявки существуют.
func checkReferences(ctx context.Context, clients port.ClientRepositoryPort, properties port.PropertyRepositoryPort, input domain.RequestInput) error {
	if _, err := clients.Get(ctx, input.ClientID); err != nil {
		return err
	}
	if _, err := properties.Get(ctx, input.PropertyID); err != nil {
		return err
	}
	return nil
}
