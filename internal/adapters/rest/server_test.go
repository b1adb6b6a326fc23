package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"agency-service/internal/adapters/memory"
	rabbitmq_adapter "agency-service/internal/adapters/rabbitmq"
	"agency-service/internal/adapters/rest"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
	"agency-service/internal/core/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, port.Fields)                 {}
func (nopLogger) Warn(string, port.Fields)                 {}
func (nopLogger) Error(string, error, port.Fields)         {}
func (nopLogger) Debug(string, port.Fields)                {}
func (l nopLogger) WithFields(port.Fields) port.LoggerPort { return l }

func newTestServer(t *testing.T, seed bool) http.Handler {
	t.Helper()

	storage := memory.NewStorage()
	if seed {
		seeded, err := usecase.NewSeedDataUseCase(storage).Execute(context.Background(), domain.DefaultSeed())
		require.NoError(t, err)
		require.True(t, seeded)
	}

	publisher := rabbitmq_adapter.NoopEventPublisher{}
	clients, properties, requests := storage.Clients(), storage.Properties(), storage.Requests()

	handlers := rest.Handlers{
		Clients: rest.NewClientHandler(
			usecase.NewCreateClientUseCase(clients, publisher),
			usecase.NewUpdateClientUseCase(clients, publisher),
			usecase.NewDeleteClientUseCase(clients, publisher),
			usecase.NewGetClientUseCase(clients),
			usecase.NewListClientsUseCase(clients),
			usecase.NewGetClientRequestsUseCase(clients, requests),
		),
		Properties: rest.NewPropertyHandler(
			usecase.NewCreatePropertyUseCase(properties, publisher),
			usecase.NewUpdatePropertyUseCase(properties, publisher),
			usecase.NewDeletePropertyUseCase(properties, publisher),
			usecase.NewGetPropertyUseCase(properties),
			usecase.NewListPropertiesUseCase(properties),
		),
		Requests: rest.NewRequestHandler(
			usecase.NewCreateRequestUseCase(storage, publisher),
			usecase.NewUpdateRequestUseCase(storage, publisher),
			usecase.NewDeleteRequestUseCase(requests, publisher),
			usecase.NewGetRequestUseCase(requests),
			usecase.NewListRequestsUseCase(requests),
			usecase.NewGetRequestClientUseCase(requests),
			usecase.NewGetRequestPropertyUseCase(requests),
		),
		Reports: rest.NewReportHandler(
			usecase.NewSellersByPeriodUseCase(requests),
			usecase.NewTopClientsByRequestTypeUseCase(requests),
			usecase.NewClientsWithMinAmountUseCase(requests),
			usecase.NewClientsByPropertyTypeUseCase(requests),
			usecase.NewRequestCountByPropertyTypeUseCase(requests),
		),
	}

	server := rest.NewServer(rest.ServerConfig{Port: "0"}, handlers, nopLogger{})
	return server.Handler()
}

func do(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	switch b := body.(type) {
	case nil:
	case string:
		payload = []byte(b)
	default:
		var err error
		payload, err = json.Marshal(b)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func clientIDs(clients []rest.ClientDTO) []int {
	ids := make([]int, len(clients))
	for i, c := range clients {
		ids[i] = c.ID
	}
	return ids
}

var apartment = map[string]interface{}{
	"cadastral_number": "77:01:0000001:1",
	"address":          "ул. Ленина, 1",
	"floors":           9,
	"total_area":       54.2,
	"rooms":            2,
	"ceiling_height":   2.7,
	"floor_number":     4,
	"has_encumbrance":  false,
	"type":             "apartment",
	"purpose":          "Residential",
}

func TestHealth(t *testing.T) {
	h := newTestServer(t, false)

	for _, path := range []string{"/health", "/api/v1/health"} {
		rec := do(t, h, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "ok", decode[map[string]string](t, rec)["status"])
	}
}

func TestTraceIDHeader(t *testing.T) {
	h := newTestServer(t, false)

	rec := do(t, h, http.MethodGet, "/health", nil)
	_, err := uuid.Parse(rec.Header().Get("X-Trace-ID"))
	require.NoError(t, err)

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Trace-ID", incoming)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, incoming, rec.Header().Get("X-Trace-ID"))
}

func TestClientLifecycle(t *testing.T) {
	h := newTestServer(t, false)

	rec := do(t, h, http.MethodPost, "/api/v1/clients", map[string]string{
		"full_name":       "Иванов Иван",
		"passport_number": "4000 000001",
		"phone":           "79000000001",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[rest.ClientDTO](t, rec)
	require.Equal(t, 1, created.ID)

	rec = do(t, h, http.MethodGet, "/api/v1/clients/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, created, decode[rest.ClientDTO](t, rec))

	rec = do(t, h, http.MethodPut, "/api/v1/clients/1", map[string]string{
		"full_name":       "Иванов Иван Иванович",
		"passport_number": "4000 000001",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, "Иванов Иван Иванович", decode[rest.ClientDTO](t, rec).FullName)

	rec = do(t, h, http.MethodGet, "/api/v1/clients", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decode[[]rest.ClientDTO](t, rec), 1)

	rec = do(t, h, http.MethodDelete, "/api/v1/clients/1", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/clients/1", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodDelete, "/api/v1/clients/1", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestErrorStatuses(t *testing.T) {
	h := newTestServer(t, false)

	client := map[string]string{"full_name": "Петрова Анна", "passport_number": "4001 000002"}
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/api/v1/clients", client).Code)

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
		want   int
	}{
		{"duplicate passport", http.MethodPost, "/api/v1/clients", client, http.StatusConflict},
		{"missing required field", http.MethodPost, "/api/v1/clients", map[string]string{"full_name": "Без паспорта"}, http.StatusBadRequest},
		{"unknown field", http.MethodPost, "/api/v1/clients", map[string]string{"full_name": "А", "passport_number": "1", "email": "a@b"}, http.StatusBadRequest},
		{"malformed json", http.MethodPost, "/api/v1/clients", "{", http.StatusBadRequest},
		{"non-numeric id", http.MethodGet, "/api/v1/clients/abc", nil, http.StatusBadRequest},
		{"zero id", http.MethodGet, "/api/v1/properties/0", nil, http.StatusBadRequest},
		{"missing property", http.MethodGet, "/api/v1/properties/42", nil, http.StatusNotFound},
		{"missing request", http.MethodDelete, "/api/v1/requests/42", nil, http.StatusNotFound},
		{"unknown property type", http.MethodPost, "/api/v1/properties", map[string]interface{}{
			"cadastral_number": "1", "address": "a", "type": "Castle", "purpose": "Residential",
		}, http.StatusBadRequest},
		{"request for unknown property", http.MethodPost, "/api/v1/requests", map[string]interface{}{
			"client_id": 1, "property_id": 99,
		}, http.StatusNotFound},
		{"negative amount", http.MethodPost, "/api/v1/requests", map[string]interface{}{
			"client_id": 1, "property_id": 1, "amount": -5,
		}, http.StatusBadRequest},
		{"min amount without requests", http.MethodGet, "/api/v1/clients/min-request-amount", nil, http.StatusNotFound},
		{"sellers without dates", http.MethodGet, "/api/v1/clients/sellers", nil, http.StatusBadRequest},
		{"sellers with bad date", http.MethodGet, "/api/v1/clients/sellers?from=2025-13-01&to=2025-12-31", nil, http.StatusBadRequest},
		{"by property type without type", http.MethodGet, "/api/v1/clients/by-property-type", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.path, tt.body)
			require.Equal(t, tt.want, rec.Code, rec.Body.String())
			require.NotEmpty(t, decode[map[string]string](t, rec)["error"])
		})
	}
}

func TestRequestLifecycle(t *testing.T) {
	h := newTestServer(t, false)

	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/api/v1/clients",
		map[string]string{"full_name": "Сидоров Павел", "passport_number": "4002 000003"}).Code)

	rec := do(t, h, http.MethodPost, "/api/v1/properties", apartment)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	property := decode[rest.PropertyDTO](t, rec)
	require.Equal(t, "Apartment", property.Type)

	rec = do(t, h, http.MethodPost, "/api/v1/requests", map[string]interface{}{
		"client_id":    1,
		"property_id":  property.ID,
		"type":         "sell",
		"amount":       "15000000.50",
		"date_created": "2025-09-18",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[map[string]interface{}](t, rec)
	require.Equal(t, "Sell", created["type"])
	require.Equal(t, "15000000.5", created["amount"])
	require.Equal(t, "2025-09-18", created["date_created"])
	require.Equal(t, "Сидоров Павел", created["client"].(map[string]interface{})["full_name"])

	// необязательные поля можно не передавать
	rec = do(t, h, http.MethodPut, "/api/v1/requests/1", map[string]interface{}{
		"client_id":   1,
		"property_id": property.ID,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[map[string]interface{}](t, rec)
	require.Nil(t, updated["type"])
	require.Nil(t, updated["amount"])
	require.Nil(t, updated["date_created"])

	rec = do(t, h, http.MethodGet, "/api/v1/requests/1/client", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, decode[rest.ClientDTO](t, rec).ID)

	rec = do(t, h, http.MethodGet, "/api/v1/requests/1/property", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, property, decode[rest.PropertyDTO](t, rec))

	rec = do(t, h, http.MethodGet, "/api/v1/clients/1/requests", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decode[[]rest.RequestDTO](t, rec), 1)

	// удаление объекта удаляет и его заявки
	require.Equal(t, http.StatusNoContent, do(t, h, http.MethodDelete, "/api/v1/properties/1", nil).Code)
	require.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/api/v1/requests/1", nil).Code)

	rec = do(t, h, http.MethodGet, "/api/v1/requests", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, decode[[]rest.RequestDTO](t, rec))
}

func TestReportsOnSeedData(t *testing.T) {
	h := newTestServer(t, true)

	t.Run("sellers by period", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/v1/clients/sellers?from=2025-09-01&to=2025-09-30", nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		require.Equal(t, []int{2, 4, 5, 7, 9}, clientIDs(decode[[]rest.ClientDTO](t, rec)))
	})

	t.Run("sellers in empty period", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/v1/clients/sellers?from=2024-01-01&to=2024-12-31", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Empty(t, decode[[]rest.ClientDTO](t, rec))
	})

	t.Run("top clients by request type", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/v1/clients/top-by-request-type", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		top := decode[map[string][]rest.ClientDTO](t, rec)
		require.Equal(t, []int{1, 3, 6, 8, 10}, clientIDs(top["Buy"]))
		require.Equal(t, []int{2, 4, 5, 7, 9}, clientIDs(top["Sell"]))
	})

	t.Run("min request amount", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/v1/clients/min-request-amount", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, []int{6}, clientIDs(decode[[]rest.ClientDTO](t, rec)))
	})

	t.Run("clients by property type", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/v1/clients/by-property-type?type=house", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, []int{8}, clientIDs(decode[[]rest.ClientDTO](t, rec)))
	})

	t.Run("request count by property type", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/v1/requests/count-by-property-type", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, map[string]int{
			"Apartment": 5,
			"Office":    3,
			"House":     2,
			"Warehouse": 2,
		}, decode[map[string]int](t, rec))
	})

	t.Run("requests of a client", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/v1/clients/1/requests", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		requests := decode[[]rest.RequestDTO](t, rec)
		require.Len(t, requests, 2)
		require.Equal(t, 1, requests[0].ID)
		require.Equal(t, 11, requests[1].ID)
	})
}

func TestCORSPreflight(t *testing.T) {
	h := newTestServer(t, false)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/clients", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
