package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"savings-site/domain"
	"savings-site/service"
)

const maxBodyBytes = 16 << 10

type Waitlist interface {
	Join(ctx context.Context, req domain.JoinRequest) (domain.Subscriber, error)
}

type WaitlistHandler struct {
	service Waitlist
}

func NewWaitlistHandler(service Waitlist) *WaitlistHandler {
	return &WaitlistHandler{service: service}
}

type joinResponse struct {
	Message    string            `json:"message"`
	Subscriber domain.Subscriber `json:"subscriber"`
}

func (h *WaitlistHandler) Join(w http.ResponseWriter, r *http.Request) {
	var input domain.JoinRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sub, err := h.service.Join(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSignup):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrAlreadySubscribed):
			writeError(w, http.StatusConflict, err.Error())
		default:
			log.Ctx(r.Context()).Error().Err(err).Msg("error joining waitlist")
			writeError(w, http.StatusInternalServerError, "could not join the waitlist, please try again")
		}
		return
	}

	writeJSON(w, http.StatusCreated, joinResponse{
		Message:    "You're on the list! Check your inbox for a confirmation.",
		Subscriber: sub,
	})
}
