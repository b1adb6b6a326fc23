package usecase

import (
	"context"
	"fmt"

	"agency-service/internal/contextkeys"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
)

// SeedDataUseCase заполняет пустое хранилище начальным набором.
// Если в хранилище есть хоть одна запись, ничего не делает.
type SeedDataUseCase struct {
	storage port.StoragePort
}

func NewSeedDataUseCase(storage port.StoragePort) *SeedDataUseCase {
	return &SeedDataUseCase{storage: storage}
}

// Execute возвращает true, если данные были записаны.
func (uc *SeedDataUseCase) Execute(ctx context.Context, dataset domain.SeedDataset) (bool, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "SeedData"})

	empty, err := uc.storage.IsEmpty(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check storage state: %w", err)
	}
	if !empty {
		ucLogger.Info("Storage already has data, seeding skipped", nil)
		return false, nil
	}

	// Сначала клиенты и объекты, затем заявки со ссылками на выданные ID
	clientIDs := make([]int, len(dataset.Clients))
	for i, c := range dataset.Clients {
		created, err := uc.storage.Clients().Create(ctx, c)
		if err != nil {
			return false, fmt.Errorf("failed to seed client %q: %w", c.PassportNumber, err)
		}
		clientIDs[i] = created.ID
	}

	propertyIDs := make([]int, len(dataset.Properties))
	for i, p := range dataset.Properties {
		created, err := uc.storage.Properties().Create(ctx, p)
		if err != nil {
			return false, fmt.Errorf("failed to seed property %q: %w", p.CadastralNumber, err)
		}
		propertyIDs[i] = created.ID
	}

	for i, sr := range dataset.Requests {
		if sr.ClientIndex >= len(clientIDs) || sr.PropertyIndex >= len(propertyIDs) {
			return false, fmt.Errorf("%w: seed request %d references unknown entity", domain.ErrInvalidInput, i)
		}
		reqType, amount, date := sr.Type, sr.Amount, sr.DateCreated
		input := domain.RequestInput{
			ClientID:    clientIDs[sr.ClientIndex],
			PropertyID:  propertyIDs[sr.PropertyIndex],
			Type:        &reqType,
			Amount:      &amount,
			DateCreated: &date,
		}
		if _, err := uc.storage.Requests().Create(ctx, input); err != nil {
			return false, fmt.Errorf("failed to seed request %d: %w", i, err)
		}
	}

	ucLogger.Info("Storage seeded", port.Fields{
		"clients":    len(dataset.Clients),
		"properties": len(dataset.Properties),
		"requests":   len(dataset.Requests),
	})
	return true, nil
}
