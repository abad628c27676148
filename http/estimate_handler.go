package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"savings-site/domain"
	"savings-site/service"
)

type Estimator interface {
	Estimate(ctx context.Context, req domain.EstimateRequest) (domain.EstimateResult, error)
}

type EstimateHandler struct {
	service Estimator
}

func NewEstimateHandler(service Estimator) *EstimateHandler {
	return &EstimateHandler{service: service}
}

func (h *EstimateHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	if !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var input domain.EstimateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&input); err != nil {
		log.Ctx(r.Context()).Debug().Err(err).Msg("error decoding estimate request")
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.Estimate(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownCurrency),
			errors.Is(err, service.ErrInvalidComplexity),
			errors.Is(err, service.ErrInvalidInput),
			errors.Is(err, service.ErrCalculationOverflow):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			log.Ctx(r.Context()).Error().Err(err).Msg("error computing estimate")
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *EstimateHandler) Currencies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.Currencies())
}
