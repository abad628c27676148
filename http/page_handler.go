package http

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog/log"

	"savings-site/domain"
	"savings-site/view"
)

// Calculator defaults shown before the visitor changes anything.
const (
	defaultAnnualEnergyCost = 500_000
	defaultFacilitySizeSqFt = 50_000
	defaultComplexity       = domain.Complexity(3)
)

type PageHandler struct {
	estimator Estimator
}

func NewPageHandler(estimator Estimator) *PageHandler {
	return &PageHandler{estimator: estimator}
}

// Landing renders the landing page. Calculator inputs come from the query
// string; anything missing or unusable falls back to the defaults.
func (h *PageHandler) Landing(w http.ResponseWriter, r *http.Request) {
	req := calculatorRequest(r.URL.Query())

	result, err := h.estimator.Estimate(r.Context(), req)
	if err != nil {
		log.Ctx(r.Context()).Debug().Err(err).Msg("calculator input rejected, using defaults")
		req = defaultCalculatorRequest()
		if result, err = h.estimator.Estimate(r.Context(), req); err != nil {
			log.Ctx(r.Context()).Error().Err(err).Msg("error computing default estimate")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
	}

	page := view.LandingPage(view.CalculatorState{Request: req, Result: result})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(w); err != nil {
		log.Ctx(r.Context()).Warn().Err(err).Msg("error rendering landing page")
	}
}

func defaultCalculatorRequest() domain.EstimateRequest {
	return domain.EstimateRequest{
		AnnualEnergyCost: defaultAnnualEnergyCost,
		FacilitySizeSqFt: defaultFacilitySizeSqFt,
		SystemComplexity: defaultComplexity,
		Currency:         domain.DefaultCurrency().Code,
	}
}

func calculatorRequest(q url.Values) domain.EstimateRequest {
	req := defaultCalculatorRequest()

	if v, err := strconv.ParseFloat(q.Get("cost"), 64); err == nil {
		req.AnnualEnergyCost = v
	}
	if v, err := strconv.ParseFloat(q.Get("size"), 64); err == nil {
		req.FacilitySizeSqFt = v
	}
	if v, err := strconv.Atoi(q.Get("complexity")); err == nil {
		req.SystemComplexity = domain.Complexity(v)
	}
	if c := q.Get("currency"); c != "" {
		req.Currency = c
	}
	return req
}
