package rest

import (
	"net/http"

	"agency-service/internal/contextkeys"
	"agency-service/internal/contracts"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
	"agency-service/internal/core/port/usecases_port"
)

type RequestHandler struct {
	createUC      usecases_port.CreateRequestUseCase
	updateUC      usecases_port.UpdateRequestUseCase
	deleteUC      usecases_port.DeleteRequestUseCase
	getUC         usecases_port.GetRequestUseCase
	listUC        usecases_port.ListRequestsUseCase
	getClientUC   usecases_port.GetRequestClientUseCase
	getPropertyUC usecases_port.GetRequestPropertyUseCase
}

func NewRequestHandler(
	createUC usecases_port.CreateRequestUseCase,
	updateUC usecases_port.UpdateRequestUseCase,
	deleteUC usecases_port.DeleteRequestUseCase,
	getUC usecases_port.GetRequestUseCase,
	listUC usecases_port.ListRequestsUseCase,
	getClientUC usecases_port.GetRequestClientUseCase,
	getPropertyUC usecases_port.GetRequestPropertyUseCase,
) *RequestHandler {
	return &RequestHandler{
		createUC:      createUC,
		updateUC:      updateUC,
		deleteUC:      deleteUC,
		getUC:         getUC,
		listUC:        listUC,
		getClientUC:   getClientUC,
		getPropertyUC: getPropertyUC,
	}
}

func (h *RequestHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListRequests"})

	requests, err := h.listUC.Execute(r.Context())
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toRequestDTOs(requests))
}

func (h *RequestHandler) GetRequest(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetRequest"})

	id, err := parseIDParam(r, "requestID")
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	request, err := h.getUC.Execute(r.Context(), id)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toRequestDTO(*request))
}

func readRequestInput(r *http.Request) (domain.RequestInput, error) {
	var body RequestInputDTO
	if err := decodeBody(r, contracts.RequestBodyV1, &body); err != nil {
		return domain.RequestInput{}, err
	}
	return body.toDomain()
}

func (h *RequestHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateRequest"})

	input, err := readRequestInput(r)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	created, err := h.createUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, toRequestDTO(*created))
}

func (h *RequestHandler) UpdateRequest(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateRequest"})

	id, err := parseIDParam(r, "requestID")
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	input, err := readRequestInput(r)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	updated, err := h.updateUC.Execute(r.Context(), id, input)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toRequestDTO(*updated))
}

func (h *RequestHandler) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteRequest"})

	id, err := parseIDParam(r, "requestID")
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	if err := h.deleteUC.Execute(r.Context(), id); err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetRequestClient обрабатывает GET /api/v1/requests/{requestID}/client
func (h *RequestHandler) GetRequestClient(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetRequestClient"})

	id, err := parseIDParam(r, "requestID")
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	client, err := h.getClientUC.Execute(r.Context(), id)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toClientDTO(*client))
}

// GetRequestProperty обрабатывает GET /api/v1/requests/{requestID}/property
func (h *RequestHandler) GetRequestProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetRequestProperty"})

	id, err := parseIDParam(r, "requestID")
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	property, err := h.getPropertyUC.Execute(r.Context(), id)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toPropertyDTO(*property))
}
