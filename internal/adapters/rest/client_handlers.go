package rest

import (
	"net/http"

	"agency-service/internal/contextkeys"
	"agency-service/internal/contracts"
	"agency-service/internal/core/port"
	"agency-service/internal/core/port/usecases_port"
)

type ClientHandler struct {
	createUC   usecases_port.CreateClientUseCase
	updateUC   usecases_port.UpdateClientUseCase
	deleteUC   usecases_port.DeleteClientUseCase
	getUC      usecases_port.GetClientUseCase
	listUC     usecases_port.ListClientsUseCase
	requestsUC usecases_port.GetClientRequestsUseCase
}

func NewClientHandler(
	createUC usecases_port.CreateClientUseCase,
	updateUC usecases_port.UpdateClientUseCase,
	deleteUC usecases_port.DeleteClientUseCase,
	getUC usecases_port.GetClientUseCase,
	listUC usecases_port.ListClientsUseCase,
	requestsUC usecases_port.GetClientRequestsUseCase,
) *ClientHandler {
	return &ClientHandler{
		createUC:   createUC,
		updateUC:   updateUC,
		deleteUC:   deleteUC,
		getUC:      getUC,
		listUC:     listUC,
		requestsUC: requestsUC,
	}
}

// ListClients обрабатывает GET /api/v1/clients
func (h *ClientHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListClients"})

	clients, err := h.listUC.Execute(r.Context())
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toClientDTOs(clients))
}

// GetClient обрабатывает GET /api/v1/clients/{clientID}
func (h *ClientHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetClient"})

	id, err := parseIDParam(r, "clientID")
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	client, err := h.getUC.Execute(r.Context(), id)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toClientDTO(*client))
}

// CreateClient обрабатывает POST /api/v1/clients
func (h *ClientHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateClient"})

	var body ClientDTO
	if err := decodeBody(r, contracts.ClientBodyV1, &body); err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	created, err := h.createUC.Execute(r.Context(), body.toDomain())
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, toClientDTO(*created))
}

// UpdateClient обрабатывает PUT /api/v1/clients/{clientID}
func (h *ClientHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateClient"})

	id, err := parseIDParam(r, "clientID")
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	var body ClientDTO
	if err := decodeBody(r, contracts.ClientBodyV1, &body); err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	updated, err := h.updateUC.Execute(r.Context(), id, body.toDomain())
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toClientDTO(*updated))
}

// DeleteClient обрабатывает DELETE /api/v1/clients/{clientID}
func (h *ClientHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteClient"})

	id, err := parseIDParam(r, "clientID")
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

// GetClientRequests обрабатывает GET /api/v1/clients/{clientID}/requests
func (h *ClientHandler) GetClientRequests(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetClientRequests"})

	id, err := parseIDParam(r, "clientID")
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	requests, err := h.requestsUC.Execute(r.Context(), id)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toRequestDTOs(requests))
}
