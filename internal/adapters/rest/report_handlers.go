package rest

import (
	"fmt"
	"net/http"

	"agency-service/internal/contextkeys"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
	"agency-service/internal/core/port/usecases_port"
)

// ReportHandler отдает аналитические отчеты по заявкам.
type ReportHandler struct {
	sellersUC        usecases_port.SellersByPeriodUseCase
	topClientsUC     usecases_port.TopClientsByRequestTypeUseCase
	minAmountUC      usecases_port.ClientsWithMinAmountUseCase
	byPropertyTypeUC usecases_port.ClientsByPropertyTypeUseCase
	countUC          usecases_port.RequestCountByPropertyTypeUseCase
}

func NewReportHandler(
	sellersUC usecases_port.SellersByPeriodUseCase,
	topClientsUC usecases_port.TopClientsByRequestTypeUseCase,
	minAmountUC usecases_port.ClientsWithMinAmountUseCase,
	byPropertyTypeUC usecases_port.ClientsByPropertyTypeUseCase,
	countUC usecases_port.RequestCountByPropertyTypeUseCase,
) *ReportHandler {
	return &ReportHandler{
		sellersUC:        sellersUC,
		topClientsUC:     topClientsUC,
		minAmountUC:      minAmountUC,
		byPropertyTypeUC: byPropertyTypeUC,
		countUC:          countUC,
	}
}

func requiredQueryDate(r *http.Request, name string) (domain.Date, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return domain.Date{}, fmt.Errorf("%w: query parameter %q is required", domain.ErrInvalidInput, name)
	}
	return domain.ParseDate(raw)
}

// SellersByPeriod обрабатывает GET /api/v1/clients/sellers?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *ReportHandler) SellersByPeriod(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "SellersByPeriod"})

	from, err := requiredQueryDate(r, "from")
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	to, err := requiredQueryDate(r, "to")
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	sellers, err := h.sellersUC.Execute(r.Context(), from, to)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toClientDTOs(sellers))
}

// TopClientsByRequestType обрабатывает GET /api/v1/clients/top-by-request-type.
// Ответ - объект {"Buy": [...], "Sell": [...]}; типа без заявок в нем нет.
func (h *ReportHandler) TopClientsByRequestType(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "TopClientsByRequestType"})

	top, err := h.topClientsUC.Execute(r.Context())
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	response := make(map[string][]ClientDTO, len(top))
	for reqType, clients := range top {
		response[string(reqType)] = toClientDTOs(clients)
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// ClientsWithMinAmount обрабатывает GET /api/v1/clients/min-request-amount
func (h *ReportHandler) ClientsWithMinAmount(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ClientsWithMinAmount"})

	clients, err := h.minAmountUC.Execute(r.Context())
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toClientDTOs(clients))
}

// ClientsByPropertyType обрабатывает GET /api/v1/clients/by-property-type?type=Apartment
func (h *ReportHandler) ClientsByPropertyType(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ClientsByPropertyType"})

	propertyType, err := domain.ParsePropertyType(r.URL.Query().Get("type"))
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	clients, err := h.byPropertyTypeUC.Execute(r.Context(), propertyType)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toClientDTOs(clients))
}

// RequestCountByPropertyType обрабатывает GET /api/v1/requests/count-by-property-type
func (h *ReportHandler) RequestCountByPropertyType(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "RequestCountByPropertyType"})

	counts, err := h.countUC.Execute(r.Context())
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	response := make(map[string]int, len(counts))
	for propertyType, n := range counts {
		response[string(propertyType)] = n
	}
	RespondWithJSON(w, http.StatusOK, response)
}
