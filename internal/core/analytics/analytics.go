// Package analytics строит отчеты по заявкам, уже загруженным в память.
// Функции чистые: без I/O, без общего состояния, входной срез не меняется.
// Заявки без клиента или объекта отбрасываются каждой функцией.
package analytics

import (
	"sort"
	"strings"

	"agency-service/internal/core/domain"

	"github.com/shopspring/decimal"
)

// TopClientsLimit - сколько клиентов попадает в топ по каждому типу заявки.
const TopClientsLimit = 5

// SellersByPeriod возвращает клиентов с заявками на продажу, созданными
// в интервале [from, to] включительно. Порядок - по возрастанию ID клиента.
func SellersByPeriod(requests []domain.Request, from, to domain.Date) []domain.Client {
	if from.After(to) {
		return []domain.Client{}
	}

	var picked []*domain.Client
	for _, r := range wellFormed(requests) {
		if !r.HasType(domain.RequestTypeSell) || r.DateCreated == nil {
			continue
		}
		if r.DateCreated.Between(from, to) {
			picked = append(picked, r.Client)
		}
	}
	return sortedByID(distinct(picked))
}

// Top5ClientsByRequestType группирует заявки по типу и в каждой группе
// выбирает до пяти клиентов с наибольшим числом заявок. При равенстве
// выше идет клиент с меньшим ID. Типов без заявок в результате нет.
func Top5ClientsByRequestType(requests []domain.Request) map[domain.RequestType][]domain.Client {
	type clientCount struct {
		client *domain.Client
		count  int
	}

	counts := make(map[domain.RequestType]map[int]*clientCount)
	for _, r := range wellFormed(requests) {
		if r.Type == nil {
			continue
		}
		byClient, ok := counts[*r.Type]
		if !ok {
			byClient = make(map[int]*clientCount)
			counts[*r.Type] = byClient
		}
		if cc, ok := byClient[r.Client.ID]; ok {
			cc.count++
		} else {
			byClient[r.Client.ID] = &clientCount{client: r.Client, count: 1}
		}
	}

	result := make(map[domain.RequestType][]domain.Client, len(counts))
	for reqType, byClient := range counts {
		ranked := make([]*clientCount, 0, len(byClient))
		for _, cc := range byClient {
			ranked = append(ranked, cc)
		}
		sort.Slice(ranked, func(i, j int) bool {
			if ranked[i].count != ranked[j].count {
				return ranked[i].count > ranked[j].count
			}
			return ranked[i].client.ID < ranked[j].client.ID
		})
		if len(ranked) > TopClientsLimit {
			ranked = ranked[:TopClientsLimit]
		}

		top := make([]domain.Client, len(ranked))
		for i, cc := range ranked {
			top[i] = *cc.client
		}
		result[reqType] = top
	}
	return result
}

// ClientsWithMinRequestAmount возвращает клиентов, у которых сумма заявки
// точно равна минимальной среди всех заявок с суммой. Если сумм нет вовсе,
// возвращается domain.ErrEmptyAggregationDomain. Заявки без клиента участвуют
// в поиске минимума, но не попадают в результат, поэтому он может быть пустым.
func ClientsWithMinRequestAmount(requests []domain.Request) ([]domain.Client, error) {
	var minAmount *decimal.Decimal
	for _, r := range requests {
		if r.Amount == nil {
			continue
		}
		if minAmount == nil || r.Amount.LessThan(*minAmount) {
			minAmount = r.Amount
		}
	}
	if minAmount == nil {
		return nil, domain.ErrEmptyAggregationDomain
	}

	var picked []*domain.Client
	for _, r := range requests {
		if r.Client == nil || r.Amount == nil {
			continue
		}
		if r.Amount.Equal(*minAmount) {
			picked = append(picked, r.Client)
		}
	}
	return sortedByID(distinct(picked)), nil
}

// ClientsByPropertyType возвращает покупателей объектов заданного типа,
// отсортированных по ФИО побайтно (без учета локали).
func ClientsByPropertyType(requests []domain.Request, propertyType domain.PropertyType) []domain.Client {
	var picked []*domain.Client
	for _, r := range wellFormed(requests) {
		if r.HasType(domain.RequestTypeBuy) && r.Property.Type == propertyType {
			picked = append(picked, r.Client)
		}
	}

	clients := distinct(picked)
	sort.SliceStable(clients, func(i, j int) bool {
		if c := strings.Compare(clients[i].FullName, clients[j].FullName); c != 0 {
			return c < 0
		}
		return clients[i].ID < clients[j].ID
	})
	return clients
}

// RequestCountByPropertyType считает все заявки по типу объекта,
// независимо от типа заявки. Нулевых записей нет.
func RequestCountByPropertyType(requests []domain.Request) map[domain.PropertyType]int {
	counts := make(map[domain.PropertyType]int)
	for _, r := range wellFormed(requests) {
		counts[r.Property.Type]++
	}
	return counts
}

// RequestsByClient возвращает заявки клиента по возрастанию ID заявки.
func RequestsByClient(requests []domain.Request, clientID int) []domain.Request {
	out := make([]domain.Request, 0)
	for _, r := range wellFormed(requests) {
		if r.Client.ID == clientID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func wellFormed(requests []domain.Request) []domain.Request {
	out := make([]domain.Request, 0, len(requests))
	for _, r := range requests {
		if r.IsWellFormed() {
			out = append(out, r)
		}
	}
	return out
}

// distinct убирает повторы по ID, сохраняя порядок первого появления.
func distinct(clients []*domain.Client) []domain.Client {
	seen := make(map[int]struct{}, len(clients))
	out := make([]domain.Client, 0, len(clients))
	for _, c := range clients {
		if _, ok := seen[c.ID]; ok {
			continue
		}
		seen[c.ID] = struct{}{}
		out = append(out, *c)
	}
	return out
}

func sortedByID(clients []domain.Client) []domain.Client {
	sort.Slice(clients, func(i, j int) bool { return clients[i].ID < clients[j].ID })
	return clients
}
