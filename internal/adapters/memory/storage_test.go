package memory_test

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"agency-service/internal/adapters/memory"
	"agency-service/internal/core/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func seedPair(t *testing.T, s *memory.Storage) (*domain.Client, *domain.Property) {
	t.Helper()
	ctx := context.Background()

	c, err := s.Clients().Create(ctx, domain.Client{FullName: "Иванов Иван", PassportNumber: "4000 000001"})
	require.NoError(t, err)
	p, err := s.Properties().Create(ctx, domain.Property{
		CadastralNumber: "77:01:0000001:1",
		Address:         "ул. Ленина, 1",
		Type:            domain.PropertyTypeApartment,
		Purpose:         domain.PropertyPurposeResidential,
	})
	require.NoError(t, err)
	return c, p
}

func TestStorage_AssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStorage()

	first, err := s.Clients().Create(ctx, domain.Client{ID: 42, FullName: "A", PassportNumber: "1"})
	require.NoError(t, err)
	second, err := s.Clients().Create(ctx, domain.Client{FullName: "B", PassportNumber: "2"})
	require.NoError(t, err)

	require.Equal(t, 1, first.ID)
	require.Equal(t, 2, second.ID)
}

func TestStorage_UniquePassportAndCadastral(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStorage()
	c, p := seedPair(t, s)

	_, err := s.Clients().Create(ctx, domain.Client{FullName: "Другой", PassportNumber: c.PassportNumber})
	require.ErrorIs(t, err, domain.ErrConflict)

	_, err = s.Properties().Create(ctx, domain.Property{CadastralNumber: p.CadastralNumber, Address: "x"})
	require.ErrorIs(t, err, domain.ErrConflict)

	// замена самого себя - не конфликт
	c.Phone = "79990000000"
	_, err = s.Clients().Update(ctx, *c)
	require.NoError(t, err)
}

func TestStorage_RequestsResolveRelations(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStorage()
	c, p := seedPair(t, s)

	sell := domain.RequestTypeSell
	amount := decimal.RequireFromString("1500000.50")
	created, err := s.Requests().Create(ctx, domain.RequestInput{
		ClientID:   c.ID,
		PropertyID: p.ID,
		Type:       &sell,
		Amount:     &amount,
	})
	require.NoError(t, err)
	require.Equal(t, c.FullName, created.Client.FullName)
	require.Equal(t, p.CadastralNumber, created.Property.CadastralNumber)
	require.Nil(t, created.DateCreated)

	// изменения клиента видны в заявке
	c.FullName = "Иванов Иван Петрович"
	_, err = s.Clients().Update(ctx, *c)
	require.NoError(t, err)

	all, err := s.Requests().GetRequests(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, "Иванов Иван Петрович", all[0].Client.FullName)
	require.True(t, all[0].Amount.Equal(amount))
}

func TestStorage_RequestValuesAreCopied(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStorage()
	c, p := seedPair(t, s)

	buy := domain.RequestTypeBuy
	amount := decimal.NewFromInt(900)
	date := domain.NewDate(2025, time.September, 20)
	created, err := s.Requests().Create(ctx, domain.RequestInput{
		ClientID:    c.ID,
		PropertyID:  p.ID,
		Type:        &buy,
		Amount:      &amount,
		DateCreated: &date,
	})
	require.NoError(t, err)

	// ни вход, ни результат не связаны с сохраненной строкой
	amount = decimal.NewFromInt(1)
	buy = domain.RequestTypeSell
	*created.Amount = decimal.NewFromInt(2)
	*created.DateCreated = domain.NewDate(2000, time.January, 1)

	stored, err := s.Requests().Get(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, stored.Amount.Equal(decimal.NewFromInt(900)))
	require.Equal(t, domain.RequestTypeBuy, *stored.Type)
	require.Equal(t, domain.NewDate(2025, time.September, 20), *stored.DateCreated)

	*stored.Amount = decimal.NewFromInt(3)
	again, err := s.Requests().Get(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, again.Amount.Equal(decimal.NewFromInt(900)))
}

func TestStorage_RequestWithUnknownReference(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStorage()
	c, p := seedPair(t, s)

	_, err := s.Requests().Create(ctx, domain.RequestInput{ClientID: c.ID + 100, PropertyID: p.ID})
	require.ErrorIs(t, err, domain.ErrClientNotFound)

	_, err = s.Requests().Create(ctx, domain.RequestInput{ClientID: c.ID, PropertyID: p.ID + 100})
	require.ErrorIs(t, err, domain.ErrPropertyNotFound)
}

func TestStorage_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStorage()
	c, p := seedPair(t, s)

	other, err := s.Clients().Create(ctx, domain.Client{FullName: "Петров", PassportNumber: "4000 000002"})
	require.NoError(t, err)

	_, err = s.Requests().Create(ctx, domain.RequestInput{ClientID: c.ID, PropertyID: p.ID})
	require.NoError(t, err)
	kept, err := s.Requests().Create(ctx, domain.RequestInput{ClientID: other.ID, PropertyID: p.ID})
	require.NoError(t, err)

	deleted, err := s.Clients().Delete(ctx, c.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	all, err := s.Requests().GetRequests(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, kept.ID, all[0].ID)

	deleted, err = s.Properties().Delete(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	all, err = s.Requests().GetRequests(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestStorage_DeleteMissing(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStorage()

	deleted, err := s.Clients().Delete(ctx, 7)
	require.NoError(t, err)
	require.False(t, deleted)

	_, err = s.Requests().Get(ctx, 7)
	require.ErrorIs(t, err, domain.ErrRequestNotFound)
}

func TestStorage_IsEmpty(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStorage()

	empty, err := s.IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)

	seedPair(t, s)

	empty, err = s.IsEmpty(ctx)
	require.NoError(t, err)
	require.False(t, empty)
}

func TestStorage_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStorage()

	const n = 50
	var wg sync.WaitGroup
	ids := make(chan int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := s.Clients().Create(ctx, domain.Client{
				FullName:       "Клиент",
				PassportNumber: strconv.Itoa(i),
			})
			if err == nil {
				ids <- c.ID
			}
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool)
	for id := range ids {
		require.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	require.Len(t, seen, n)
}
