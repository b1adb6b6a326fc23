// Package memory - хранилище в памяти процесса. Используется в тестах
// и при STORAGE_BACKEND=memory.
package memory

import (
	"context"
	"sort"
	"sync"

	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"

	"github.com/shopspring/decimal"
)

type requestRow struct {
	id          int
	clientID    int
	propertyID  int
	reqType     *domain.RequestType
	amount      *decimal.Decimal
	dateCreated *domain.Date
}

// Storage хранит три коллекции под одним RWMutex. Счетчики ID растут
// только под блокировкой записи.
type Storage struct {
	mu sync.RWMutex

	clients    map[int]domain.Client
	properties map[int]domain.Property
	requests   map[int]requestRow

	nextClientID   int
	nextPropertyID int
	nextRequestID  int
}

func NewStorage() *Storage {
	return &Storage{
		clients:    make(map[int]domain.Client),
		properties: make(map[int]domain.Property),
		requests:   make(map[int]requestRow),
	}
}

func (s *Storage) Clients() port.ClientRepositoryPort       { return &clientRepository{s: s} }
func (s *Storage) Properties() port.PropertyRepositoryPort { return &propertyRepository{s: s} }
func (s *Storage) Requests() port.RequestRepositoryPort     { return &requestRepository{s: s} }

func (s *Storage) IsEmpty(ctx context.Context) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients) == 0 && len(s.properties) == 0 && len(s.requests) == 0, nil
}

func (s *Storage) Close(ctx context.Context) error { return nil }

// --- clients ---

type clientRepository struct{ s *Storage }

func (r *clientRepository) passportTaken(passport string, exceptID int) bool {
	for id, c := range r.s.clients {
		if id != exceptID && c.PassportNumber == passport {
			return true
		}
	}
	return false
}

func (r *clientRepository) Create(ctx context.Context, client domain.Client) (*domain.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.passportTaken(client.PassportNumber, 0) {
		return nil, domain.ErrConflict
	}
	r.s.nextClientID++
	client.ID = r.s.nextClientID
	r.s.clients[client.ID] = client
	return &client, nil
}

func (r *clientRepository) Get(ctx context.Context, id int) (*domain.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.clients[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	return &c, nil
}

func (r *clientRepository) GetAll(ctx context.Context) ([]domain.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Client, 0, len(r.s.clients))
	for _, c := range r.s.clients {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *clientRepository) Update(ctx context.Context, client domain.Client) (*domain.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.clients[client.ID]; !ok {
		return nil, domain.ErrClientNotFound
	}
	if r.passportTaken(client.PassportNumber, client.ID) {
		return nil, domain.ErrConflict
	}
	r.s.clients[client.ID] = client
	return &client, nil
}

func (r *clientRepository) Delete(ctx context.Context, id int) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.clients[id]; !ok {
		return false, nil
	}
	delete(r.s.clients, id)
	for reqID, row := range r.s.requests {
		if row.clientID == id {
			delete(r.s.requests, reqID)
		}
	}
	return true, nil
}

// --- properties ---

type propertyRepository struct{ s *Storage }

func (r *propertyRepository) cadastralTaken(number string, exceptID int) bool {
	for id, p := range r.s.properties {
		if id != exceptID && p.CadastralNumber == number {
			return true
		}
	}
	return false
}

func (r *propertyRepository) Create(ctx context.Context, property domain.Property) (*domain.Property, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.cadastralTaken(property.CadastralNumber, 0) {
		return nil, domain.ErrConflict
	}
	r.s.nextPropertyID++
	property.ID = r.s.nextPropertyID
	r.s.properties[property.ID] = property
	return &property, nil
}

func (r *propertyRepository) Get(ctx context.Context, id int) (*domain.Property, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.properties[id]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	return &p, nil
}

func (r *propertyRepository) GetAll(ctx context.Context) ([]domain.Property, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Property, 0, len(r.s.properties))
	for _, p := range r.s.properties {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *propertyRepository) Update(ctx context.Context, property domain.Property) (*domain.Property, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.properties[property.ID]; !ok {
		return nil, domain.ErrPropertyNotFound
	}
	if r.cadastralTaken(property.CadastralNumber, property.ID) {
		return nil, domain.ErrConflict
	}
	r.s.properties[property.ID] = property
	return &property, nil
}

func (r *propertyRepository) Delete(ctx context.Context, id int) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.properties[id]; !ok {
		return false, nil
	}
	delete(r.s.properties, id)
	for reqID, row := range r.s.requests {
		if row.propertyID == id {
			delete(r.s.requests, reqID)
		}
	}
	return true, nil
}

// --- requests ---

type requestRepository struct{ s *Storage }

// resolve разыменовывает ссылки. Вызывать под блокировкой.
func (r *requestRepository) resolve(row requestRow) domain.Request {
	req := domain.Request{
		ID:          row.id,
		Type:        clonePtr(row.reqType),
		Amount:      clonePtr(row.amount),
		DateCreated: clonePtr(row.dateCreated),
	}
	if c, ok := r.s.clients[row.clientID]; ok {
		req.Client = &c
	}
	if p, ok := r.s.properties[row.propertyID]; ok {
		req.Property = &p
	}
	return req
}

func (r *requestRepository) checkRefs(input domain.RequestInput) error {
	if _, ok := r.s.clients[input.ClientID]; !ok {
		return domain.ErrClientNotFound
	}
	if _, ok := r.s.properties[input.PropertyID]; !ok {
		return domain.ErrPropertyNotFound
	}
	return nil
}

func rowFromInput(id int, input domain.RequestInput) requestRow {
	return requestRow{
		id:          id,
		clientID:    input.ClientID,
		propertyID:  input.PropertyID,
		reqType:     clonePtr(input.Type),
		amount:      clonePtr(input.Amount),
		dateCreated: clonePtr(input.DateCreated),
	}
}

// clonePtr копирует значение, чтобы строки не делили память с вызывающим.
func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func (r *requestRepository) Create(ctx context.Context, input domain.RequestInput) (*domain.Request, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.checkRefs(input); err != nil {
		return nil, err
	}
	r.s.nextRequestID++
	row := rowFromInput(r.s.nextRequestID, input)
	r.s.requests[row.id] = row

	req := r.resolve(row)
	return &req, nil
}

func (r *requestRepository) Get(ctx context.Context, id int) (*domain.Request, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	row, ok := r.s.requests[id]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	req := r.resolve(row)
	return &req, nil
}

func (r *requestRepository) Update(ctx context.Context, id int, input domain.RequestInput) (*domain.Request, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.requests[id]; !ok {
		return nil, domain.ErrRequestNotFound
	}
	if err := r.checkRefs(input); err != nil {
		return nil, err
	}
	row := rowFromInput(id, input)
	r.s.requests[id] = row

	req := r.resolve(row)
	return &req, nil
}

func (r *requestRepository) Delete(ctx context.Context, id int) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.requests[id]; !ok {
		return false, nil
	}
	delete(r.s.requests, id)
	return true, nil
}

func (r *requestRepository) GetRequests(ctx context.Context) ([]domain.Request, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Request, 0, len(r.s.requests))
	for _, row := range r.s.requests {
		out = append(out, r.resolve(row))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
