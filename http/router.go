package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"savings-site/view"
)

type RouterDeps struct {
	Logger      zerolog.Logger
	Estimator   Estimator
	Waitlist    Waitlist
	Subscribers SubscriberCounter
	RateLimiter *RateLimiter
}

func NewRouter(deps RouterDeps) http.Handler {
	estimateHandler := NewEstimateHandler(deps.Estimator)
	waitlistHandler := NewWaitlistHandler(deps.Waitlist)
	pageHandler := NewPageHandler(deps.Estimator)
	healthHandler := NewHealthHandler(deps.Subscribers)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(deps.Logger))
	r.Use(middleware.Recoverer)

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(view.Static()))))

	r.Get("/", pageHandler.Landing)
	r.Get("/health", healthHandler.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/currencies", estimateHandler.Currencies)
		r.Post("/estimate", estimateHandler.Estimate)

		r.With(RateLimitMiddleware(deps.RateLimiter)).
			Post("/waitlist", waitlistHandler.Join)
	})

	return r
}
