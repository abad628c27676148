package service

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"savings-site/domain"
	"savings-site/metrics"
)

// SavingsService validates calculator input and runs ComputeSavingsEstimate.
type SavingsService struct{}

func NewSavingsService() *SavingsService {
	return &SavingsService{}
}

// Estimate resolves the currency, rejects unusable input and returns the
// estimate along with any out-of-range warnings.
func (s *SavingsService) Estimate(
	ctx context.Context,
	req domain.EstimateRequest,
) (domain.EstimateResult, error) {

	if !isFinite(req.AnnualEnergyCost) || !isFinite(req.FacilitySizeSqFt) {
		return domain.EstimateResult{}, ErrInvalidInput
	}
	if !req.SystemComplexity.Valid() {
		return domain.EstimateResult{}, fmt.Errorf("%w: got %d", ErrInvalidComplexity, req.SystemComplexity)
	}

	currency := domain.DefaultCurrency()
	if req.Currency != "" {
		c, ok := domain.LookupCurrency(req.Currency)
		if !ok {
			return domain.EstimateResult{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, req.Currency)
		}
		currency = c
	}

	if EstimateOverflows(req.AnnualEnergyCost, req.FacilitySizeSqFt, req.SystemComplexity, currency) {
		return domain.EstimateResult{}, fmt.Errorf("%w: annual energy cost %g, facility size %g in %s",
			ErrCalculationOverflow, req.AnnualEnergyCost, req.FacilitySizeSqFt, currency.Code)
	}

	estimate := ComputeSavingsEstimate(
		req.AnnualEnergyCost,
		req.FacilitySizeSqFt,
		req.SystemComplexity,
		currency,
	)

	warnings := RangeWarnings(req.Profile())
	if !estimate.HasPayback() {
		warnings = append(warnings, domain.EstimateWarning{
			Field:   "paybackMonths",
			Message: noPaybackMessage(estimate.AnnualSavings),
		})
	}

	metrics.EstimatesTotal.WithLabelValues(currency.Code).Inc()
	for _, w := range warnings {
		metrics.EstimateWarningsTotal.WithLabelValues(w.Field).Inc()
	}

	log.Ctx(ctx).Debug().
		Float64("annual_energy_cost", req.AnnualEnergyCost).
		Float64("facility_size_sqft", req.FacilitySizeSqFt).
		Int("complexity", int(req.SystemComplexity)).
		Str("currency", currency.Code).
		Int64("annual_savings", estimate.AnnualSavings).
		Int("warnings", len(warnings)).
		Msg("estimate computed")

	return domain.EstimateResult{
		Estimate:              estimate,
		Currency:              currency,
		ImplementationCostUSD: int64(roundHalfUp(ImplementationCostUSD(req.FacilitySizeSqFt, req.SystemComplexity))),
		Warnings:              warnings,
	}, nil
}

// RangeWarnings lists the inputs that fall outside the documented domain.
func RangeWarnings(p domain.FacilityProfile) []domain.EstimateWarning {
	var warnings []domain.EstimateWarning
	if p.AnnualEnergyCost < MinAnnualEnergyCost || p.AnnualEnergyCost > MaxAnnualEnergyCost {
		warnings = append(warnings, domain.EstimateWarning{
			Field: "annualEnergyCost",
			Message: fmt.Sprintf("annual energy cost outside %.0f-%.0f, estimate is extrapolated",
				MinAnnualEnergyCost, MaxAnnualEnergyCost),
		})
	}
	if p.FacilitySizeSqFt < MinFacilitySizeSqFt || p.FacilitySizeSqFt > MaxFacilitySizeSqFt {
		warnings = append(warnings, domain.EstimateWarning{
			Field: "facilitySizeSqFt",
			Message: fmt.Sprintf("facility size outside %.0f-%.0f sq ft, estimate is extrapolated",
				MinFacilitySizeSqFt, MaxFacilitySizeSqFt),
		})
	}
	return warnings
}

func noPaybackMessage(annualSavings int64) string {
	if annualSavings < 0 {
		return "annual savings are negative, payback period is unavailable"
	}
	return "annual savings are zero, payback period is unavailable"
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
