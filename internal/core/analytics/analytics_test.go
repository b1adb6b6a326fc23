package analytics_test

import (
	"sort"
	"testing"
	"time"

	"agency-service/internal/core/analytics"
	"agency-service/internal/core/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var (
	clientA = &domain.Client{ID: 1, FullName: "Alice Smith", PassportNumber: "P1"}
	clientB = &domain.Client{ID: 2, FullName: "Bob Brown", PassportNumber: "P2"}
	clientC = &domain.Client{ID: 3, FullName: "alice lower", PassportNumber: "P3"}

	apartment = &domain.Property{ID: 10, CadastralNumber: "C10", Type: domain.PropertyTypeApartment}
	house     = &domain.Property{ID: 11, CadastralNumber: "C11", Type: domain.PropertyTypeHouse}
	office    = &domain.Property{ID: 12, CadastralNumber: "C12", Type: domain.PropertyTypeOffice}
)

func reqType(t domain.RequestType) *domain.RequestType { return &t }

func amount(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func date(y int, m time.Month, d int) *domain.Date {
	dt := domain.NewDate(y, m, d)
	return &dt
}

func ids(clients []domain.Client) []int {
	out := make([]int, len(clients))
	for i, c := range clients {
		out[i] = c.ID
	}
	return out
}

func TestSellersByPeriod_DeduplicatesClients(t *testing.T) {
	requests := []domain.Request{
		{ID: 1, Client: clientA, Property: apartment, Type: reqType(domain.RequestTypeSell), DateCreated: date(2025, 9, 18)},
		{ID: 2, Client: clientB, Property: house, Type: reqType(domain.RequestTypeBuy), DateCreated: date(2025, 9, 20)},
		{ID: 3, Client: clientA, Property: office, Type: reqType(domain.RequestTypeSell), DateCreated: date(2025, 9, 25)},
	}

	sellers := analytics.SellersByPeriod(requests, domain.NewDate(2025, 9, 17), domain.NewDate(2025, 9, 26))
	require.Equal(t, []int{1}, ids(sellers))
}

func TestSellersByPeriod_BoundsAreInclusive(t *testing.T) {
	requests := []domain.Request{
		{ID: 1, Client: clientB, Property: apartment, Type: reqType(domain.RequestTypeSell), DateCreated: date(2025, 9, 1)},
		{ID: 2, Client: clientA, Property: house, Type: reqType(domain.RequestTypeSell), DateCreated: date(2025, 9, 30)},
		{ID: 3, Client: clientC, Property: house, Type: reqType(domain.RequestTypeSell), DateCreated: date(2025, 10, 1)},
	}

	sellers := analytics.SellersByPeriod(requests, domain.NewDate(2025, 9, 1), domain.NewDate(2025, 9, 30))
	require.Equal(t, []int{1, 2}, ids(sellers))
}

func TestSellersByPeriod_ExcludesMissingDateAndType(t *testing.T) {
	requests := []domain.Request{
		{ID: 1, Client: clientA, Property: apartment, Type: reqType(domain.RequestTypeSell)},
		{ID: 2, Client: clientB, Property: apartment, DateCreated: date(2025, 9, 10)},
		{ID: 3, Client: clientC, Property: nil, Type: reqType(domain.RequestTypeSell), DateCreated: date(2025, 9, 10)},
	}

	sellers := analytics.SellersByPeriod(requests, domain.NewDate(2025, 1, 1), domain.NewDate(2025, 12, 31))
	require.Empty(t, sellers)
}

func TestSellersByPeriod_ReversedRangeIsEmpty(t *testing.T) {
	requests := []domain.Request{
		{ID: 1, Client: clientA, Property: apartment, Type: reqType(domain.RequestTypeSell), DateCreated: date(2025, 9, 18)},
	}

	sellers := analytics.SellersByPeriod(requests, domain.NewDate(2025, 9, 30), domain.NewDate(2025, 9, 1))
	require.NotNil(t, sellers)
	require.Empty(t, sellers)
}

func TestTop5ClientsByRequestType_RanksByCount(t *testing.T) {
	var requests []domain.Request
	id := 0
	add := func(c *domain.Client, rt domain.RequestType, n int) {
		for i := 0; i < n; i++ {
			id++
			requests = append(requests, domain.Request{ID: id, Client: c, Property: apartment, Type: reqType(rt)})
		}
	}

	clients := make([]*domain.Client, 7)
	for i := range clients {
		clients[i] = &domain.Client{ID: 100 + i, FullName: "Buyer", PassportNumber: "X"}
	}
	add(clients[0], domain.RequestTypeBuy, 1)
	add(clients[1], domain.RequestTypeBuy, 4)
	add(clients[2], domain.RequestTypeBuy, 2)
	add(clients[3], domain.RequestTypeBuy, 2)
	add(clients[4], domain.RequestTypeBuy, 3)
	add(clients[5], domain.RequestTypeBuy, 1)
	add(clients[6], domain.RequestTypeBuy, 5)
	// без типа - не учитывается
	requests = append(requests, domain.Request{ID: 999, Client: clientA, Property: apartment})

	top := analytics.Top5ClientsByRequestType(requests)

	require.Len(t, top, 1)
	_, hasSell := top[domain.RequestTypeSell]
	require.False(t, hasSell)
	require.Equal(t, []int{106, 101, 104, 102, 103}, ids(top[domain.RequestTypeBuy]))
}

func TestTop5ClientsByRequestType_SeparatesTypes(t *testing.T) {
	requests := []domain.Request{
		{ID: 1, Client: clientA, Property: apartment, Type: reqType(domain.RequestTypeBuy)},
		{ID: 2, Client: clientB, Property: apartment, Type: reqType(domain.RequestTypeSell)},
		{ID: 3, Client: clientB, Property: house, Type: reqType(domain.RequestTypeSell)},
		{ID: 4, Client: clientC, Property: house, Type: reqType(domain.RequestTypeSell)},
		{ID: 5, Client: nil, Property: house, Type: reqType(domain.RequestTypeSell)},
	}

	top := analytics.Top5ClientsByRequestType(requests)

	require.Equal(t, []int{1}, ids(top[domain.RequestTypeBuy]))
	require.Equal(t, []int{2, 3}, ids(top[domain.RequestTypeSell]))
	for _, clients := range top {
		require.LessOrEqual(t, len(clients), analytics.TopClientsLimit)
	}
}

func TestClientsWithMinRequestAmount(t *testing.T) {
	requests := []domain.Request{
		{ID: 1, Client: clientA, Property: apartment, Amount: amount(12_500_000)},
		{ID: 2, Client: clientB, Property: house, Amount: amount(25_000_000)},
		{ID: 3, Client: clientC, Property: office, Amount: amount(9_500_000)},
		{ID: 4, Client: clientA, Property: office},
	}

	clients, err := analytics.ClientsWithMinRequestAmount(requests)
	require.NoError(t, err)
	require.Equal(t, []int{3}, ids(clients))
}

func TestClientsWithMinRequestAmount_ExactDecimalEquality(t *testing.T) {
	fractional := decimal.RequireFromString("100.10")
	sameValue := decimal.RequireFromString("100.1")
	slightlyMore := decimal.RequireFromString("100.1000001")
	requests := []domain.Request{
		{ID: 1, Client: clientB, Property: apartment, Amount: &fractional},
		{ID: 2, Client: clientA, Property: house, Amount: &sameValue},
		{ID: 3, Client: clientC, Property: house, Amount: &slightlyMore},
		{ID: 4, Client: clientA, Property: office, Amount: &sameValue},
	}

	clients, err := analytics.ClientsWithMinRequestAmount(requests)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, ids(clients))
}

func TestClientsWithMinRequestAmount_ZeroIsARealMinimum(t *testing.T) {
	requests := []domain.Request{
		{ID: 1, Client: clientA, Property: apartment, Amount: amount(0)},
		{ID: 2, Client: clientB, Property: apartment, Amount: amount(5)},
	}

	clients, err := analytics.ClientsWithMinRequestAmount(requests)
	require.NoError(t, err)
	require.Equal(t, []int{1}, ids(clients))
}

func TestClientsWithMinRequestAmount_NoAmounts(t *testing.T) {
	requests := []domain.Request{
		{ID: 1, Client: clientA, Property: apartment},
		{ID: 2, Client: clientB, Property: house},
	}

	_, err := analytics.ClientsWithMinRequestAmount(requests)
	require.ErrorIs(t, err, domain.ErrEmptyAggregationDomain)

	_, err = analytics.ClientsWithMinRequestAmount(nil)
	require.ErrorIs(t, err, domain.ErrEmptyAggregationDomain)
}

func TestClientsWithMinRequestAmount_MinimumWithoutClient(t *testing.T) {
	requests := []domain.Request{
		{ID: 1, Client: nil, Property: apartment, Amount: amount(1)},
		{ID: 2, Client: clientB, Property: apartment, Amount: amount(5)},
	}

	// минимум 1 принадлежит заявке без клиента, клиент с суммой 5 не подходит
	clients, err := analytics.ClientsWithMinRequestAmount(requests)
	require.NoError(t, err)
	require.Empty(t, clients)
}

func TestClientsWithMinRequestAmount_OnlyBrokenRequestsHaveAmounts(t *testing.T) {
	requests := []domain.Request{
		{ID: 1, Client: clientA, Property: apartment},
		{ID: 2, Client: nil, Property: apartment, Amount: amount(3)},
	}

	clients, err := analytics.ClientsWithMinRequestAmount(requests)
	require.NoError(t, err)
	require.Empty(t, clients)
}

func TestClientsWithMinRequestAmount_MissingPropertyStillCounts(t *testing.T) {
	requests := []domain.Request{
		{ID: 1, Client: clientA, Property: nil, Amount: amount(2)},
		{ID: 2, Client: clientB, Property: apartment, Amount: amount(7)},
	}

	clients, err := analytics.ClientsWithMinRequestAmount(requests)
	require.NoError(t, err)
	require.Equal(t, []int{1}, ids(clients))
}

func TestClientsByPropertyType_SortedOrdinally(t *testing.T) {
	requests := []domain.Request{
		{ID: 1, Client: clientC, Property: apartment, Type: reqType(domain.RequestTypeBuy)},
		{ID: 2, Client: clientB, Property: apartment, Type: reqType(domain.RequestTypeBuy)},
		{ID: 3, Client: clientA, Property: apartment, Type: reqType(domain.RequestTypeBuy)},
		{ID: 4, Client: clientA, Property: apartment, Type: reqType(domain.RequestTypeBuy)},
		{ID: 5, Client: clientB, Property: house, Type: reqType(domain.RequestTypeBuy)},
		{ID: 6, Client: clientB, Property: apartment, Type: reqType(domain.RequestTypeSell)},
		{ID: 7, Client: clientA, Property: nil, Type: reqType(domain.RequestTypeBuy)},
	}

	clients := analytics.ClientsByPropertyType(requests, domain.PropertyTypeApartment)

	// заглавные буквы идут раньше строчных
	require.Equal(t, []int{1, 2, 3}, ids(clients))
	names := make([]string, len(clients))
	for i, c := range clients {
		names[i] = c.FullName
	}
	require.True(t, sort.StringsAreSorted(names))
}

func TestClientsByPropertyType_OnlyBuyers(t *testing.T) {
	requests := []domain.Request{
		{ID: 1, Client: clientA, Property: house, Type: reqType(domain.RequestTypeSell)},
		{ID: 2, Client: clientB, Property: house},
	}

	require.Empty(t, analytics.ClientsByPropertyType(requests, domain.PropertyTypeHouse))
}

func TestRequestCountByPropertyType(t *testing.T) {
	requests := []domain.Request{
		{ID: 1, Client: clientA, Property: apartment, Type: reqType(domain.RequestTypeBuy)},
		{ID: 2, Client: clientB, Property: apartment},
		{ID: 3, Client: clientC, Property: house, Type: reqType(domain.RequestTypeSell)},
	}

	counts := analytics.RequestCountByPropertyType(requests)

	require.Equal(t, map[domain.PropertyType]int{
		domain.PropertyTypeApartment: 2,
		domain.PropertyTypeHouse:     1,
	}, counts)

	total := 0
	for _, n := range counts {
		require.Positive(t, n)
		total += n
	}
	require.Equal(t, len(requests), total)
}

func TestRequestsByClient(t *testing.T) {
	requests := []domain.Request{
		{ID: 7, Client: clientA, Property: apartment},
		{ID: 2, Client: clientB, Property: apartment},
		{ID: 3, Client: clientA, Property: house},
	}

	got := analytics.RequestsByClient(requests, clientA.ID)
	require.Len(t, got, 2)
	require.Equal(t, 3, got[0].ID)
	require.Equal(t, 7, got[1].ID)

	require.Empty(t, analytics.RequestsByClient(requests, 42))
}

func TestDefaultSeedReports(t *testing.T) {
	seed := domain.DefaultSeed()
	clients := make([]domain.Client, len(seed.Clients))
	for i, c := range seed.Clients {
		c.ID = i + 1
		clients[i] = c
	}
	properties := make([]domain.Property, len(seed.Properties))
	for i, p := range seed.Properties {
		p.ID = i + 1
		properties[i] = p
	}
	requests := make([]domain.Request, len(seed.Requests))
	for i, sr := range seed.Requests {
		rt := sr.Type
		amt := sr.Amount
		dt := sr.DateCreated
		requests[i] = domain.Request{
			ID:          i + 1,
			Client:      &clients[sr.ClientIndex],
			Property:    &properties[sr.PropertyIndex],
			Type:        &rt,
			Amount:      &amt,
			DateCreated: &dt,
		}
	}

	minClients, err := analytics.ClientsWithMinRequestAmount(requests)
	require.NoError(t, err)
	require.Len(t, minClients, 1)
	require.Equal(t, "Васильев Николай Петрович", minClients[0].FullName)

	sellers := analytics.SellersByPeriod(requests, domain.NewDate(2025, 9, 15), domain.NewDate(2025, 9, 30))
	require.NotEmpty(t, sellers)

	top := analytics.Top5ClientsByRequestType(requests)
	require.NotEmpty(t, top[domain.RequestTypeBuy])
	require.NotEmpty(t, top[domain.RequestTypeSell])
}
