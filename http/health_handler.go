package http

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"
)

// SubscriberCounter reports how many addresses are on the waitlist.
type SubscriberCounter interface {
	Count(ctx context.Context) (int64, error)
}

type HealthHandler struct {
	subscribers SubscriberCounter
}

func NewHealthHandler(subscribers SubscriberCounter) *HealthHandler {
	return &HealthHandler{subscribers: subscribers}
}

type healthResponse struct {
	Status       string `json:"status"`
	WaitlistSize int64  `json:"waitlistSize"`
}

// Health doubles as a readiness check for the subscriber store.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	n, err := h.subscribers.Count(r.Context())
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("error counting subscribers")
		writeError(w, http.StatusServiceUnavailable, "subscriber store unavailable")
		return
	}

	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", WaitlistSize: n})
}
