package rest

import (
	"net/http"

	"agency-service/internal/contextkeys"
	"agency-service/internal/contracts"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
	"agency-service/internal/core/port/usecases_port"
)

type PropertyHandler struct {
	createUC usecases_port.CreatePropertyUseCase
	updateUC usecases_port.UpdatePropertyUseCase
	deleteUC usecases_port.DeletePropertyUseCase
	getUC    usecases_port.GetPropertyUseCase
	listUC   usecases_port.ListPropertiesUseCase
}

func NewPropertyHandler(
	createUC usecases_port.CreatePropertyUseCase,
	updateUC usecases_port.UpdatePropertyUseCase,
	deleteUC usecases_port.DeletePropertyUseCase,
	getUC usecases_port.GetPropertyUseCase,
	listUC usecases_port.ListPropertiesUseCase,
) *PropertyHandler {
	return &PropertyHandler{createUC: createUC, updateUC: updateUC, deleteUC: deleteUC, getUC: getUC, listUC: listUC}
}

func (h *PropertyHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListProperties"})

	properties, err := h.listUC.Execute(r.Context())
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	out := make([]PropertyDTO, len(properties))
	for i, p := range properties {
		out[i] = toPropertyDTO(p)
	}
	RespondWithJSON(w, http.StatusOK, out)
}

func (h *PropertyHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetProperty"})

	id, err := parseIDParam(r, "propertyID")
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	property, err := h.getUC.Execute(r.Context(), id)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toPropertyDTO(*property))
}

// readProperty - общий разбор тела для POST и PUT.
func readProperty(r *http.Request) (domain.Property, error) {
	var body PropertyDTO
	if err := decodeBody(r, contracts.PropertyBodyV1, &body); err != nil {
		return domain.Property{}, err
	}
	return body.toDomain()
}

func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateProperty"})

	property, err := readProperty(r)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	created, err := h.createUC.Execute(r.Context(), property)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, toPropertyDTO(*created))
}

func (h *PropertyHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateProperty"})

	id, err := parseIDParam(r, "propertyID")
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	property, err := readProperty(r)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	updated, err := h.updateUC.Execute(r.Context(), id, property)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toPropertyDTO(*updated))
}

func (h *PropertyHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteProperty"})

	id, err := parseIDParam(r, "propertyID")
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
