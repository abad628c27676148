package service

import (
	"math"

	"savings-site/domain"
)

// roundHalfUp rounds like the browser's Math.round: ties go towards +Inf.
func roundHalfUp(value float64) float64 {
	floor := math.Floor(value)
	if value-floor >= 0.5 {
		return floor + 1
	}
	return floor
}

func clamp(value, lo, hi float64) float64 {
	return math.Min(math.Max(value, lo), hi)
}

// BaseSavingsRate is the fractional cost reduction for a complexity tier.
func BaseSavingsRate(complexity domain.Complexity) float64 {
	return baseSavingsRateOffset + savingsRatePerTier*float64(complexity)
}

// SizeFactor approximates scale economies, bounded to [0.9, 1.3].
func SizeFactor(facilitySizeSqFt float64) float64 {
	return clamp(facilitySizeSqFt/sizeFactorDivisor+sizeFactorOffset, minSizeFactor, maxSizeFactor)
}

// ImplementationCostUSD estimates the up-front project cost in USD.
func ImplementationCostUSD(facilitySizeSqFt float64, complexity domain.Complexity) float64 {
	return facilitySizeSqFt*implementationCostPerSq + float64(complexity)*implementationPerTier + implementationBaseCost
}

// maxProjectedAmount bounds every integer figure of an estimate so that the
// five-year projection still fits an int64.
const maxProjectedAmount = 1e18

type projection struct {
	annualSavings      float64
	implementationCost float64
	co2Tons            float64
}

func project(
	annualEnergyCost float64,
	facilitySizeSqFt float64,
	complexity domain.Complexity,
	currency domain.Currency,
) projection {
	rate := BaseSavingsRate(complexity)
	annualSavingsUSD := annualEnergyCost * rate * SizeFactor(facilitySizeSqFt)

	// NOTE: implementation cost stays in USD while annualSavings is in the
	// selected currency, so payback for non-USD currencies mixes units.
	// Displayed payback periods depend on this; left as is until confirmed.
	return projection{
		annualSavings:      annualSavingsUSD * currency.ConversionRate,
		implementationCost: ImplementationCostUSD(facilitySizeSqFt, complexity),
		co2Tons:            co2KgPerSqMeter * (facilitySizeSqFt / sqFtPerSqMeter) * rate * kgToTons,
	}
}

func (p projection) fits() bool {
	return math.Abs(p.annualSavings) <= maxProjectedAmount &&
		math.Abs(p.co2Tons) <= maxProjectedAmount
}

// EstimateOverflows reports whether the figures for these inputs fall outside
// the range a SavingsEstimate can hold. ComputeSavingsEstimate saturates them.
func EstimateOverflows(
	annualEnergyCost float64,
	facilitySizeSqFt float64,
	complexity domain.Complexity,
	currency domain.Currency,
) bool {
	return !project(annualEnergyCost, facilitySizeSqFt, complexity, currency).fits()
}

// ComputeSavingsEstimate projects savings for a facility in the given currency.
// It never fails: out-of-range inputs are extrapolated, figures beyond
// ±1e18 saturate, and when annual savings are not positive PaybackMonths is
// domain.PaybackUnavailable.
func ComputeSavingsEstimate(
	annualEnergyCost float64,
	facilitySizeSqFt float64,
	complexity domain.Complexity,
	currency domain.Currency,
) domain.SavingsEstimate {
	p := project(annualEnergyCost, facilitySizeSqFt, complexity, currency)

	rounded := toAmount(p.annualSavings)
	return domain.SavingsEstimate{
		AnnualSavings:          rounded,
		FiveYearSavings:        rounded * projectionYears,
		PaybackMonths:          paybackMonths(p.implementationCost, p.annualSavings),
		CO2ReductionAnnualTons: toAmount(p.co2Tons),
	}
}

// toAmount rounds v and saturates it to ±maxProjectedAmount. NaN maps to 0.
func toAmount(v float64) int64 {
	if math.IsNaN(v) {
		return 0
	}
	return int64(roundHalfUp(clamp(v, -maxProjectedAmount, maxProjectedAmount)))
}

func paybackMonths(implementationCost, annualSavings float64) int64 {
	// Zero or negative savings never pay anything back.
	if annualSavings <= 0 || math.IsNaN(annualSavings) {
		return domain.PaybackUnavailable
	}
	months := roundHalfUp(implementationCost / annualSavings * monthsPerYear)
	if math.IsNaN(months) || math.IsInf(months, 0) ||
		months > maxProjectedAmount || months < -maxProjectedAmount {
		return domain.PaybackUnavailable
	}
	return int64(months)
}
