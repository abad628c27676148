package domain

// Complexity is the declared system complexity tier of a facility (1-5).
type Complexity int

const (
	MinComplexity Complexity = 1
	MaxComplexity Complexity = 5
)

// Valid reports whether c is one of the five defined tiers.
func (c Complexity) Valid() bool {
	return c >= MinComplexity && c <= MaxComplexity
}

// PaybackUnavailable marks a payback period that cannot be computed because
// the projected annual savings are zero or negative.
const PaybackUnavailable = -1

type FacilityProfile struct {
	AnnualEnergyCost float64    `json:"annualEnergyCost"`
	FacilitySizeSqFt float64    `json:"facilitySizeSqFt"`
	SystemComplexity Complexity `json:"systemComplexity"`
}

type SavingsEstimate struct {
	AnnualSavings          int64 `json:"annualSavings"`
	FiveYearSavings        int64 `json:"fiveYearSavings"`
	PaybackMonths          int64 `json:"paybackMonths"`
	CO2ReductionAnnualTons int64 `json:"co2ReductionAnnualTons"`
}

// HasPayback reports whether PaybackMonths holds a real value.
func (e SavingsEstimate) HasPayback() bool {
	return e.PaybackMonths != PaybackUnavailable
}

type EstimateRequest struct {
	AnnualEnergyCost float64    `json:"annualEnergyCost"`
	FacilitySizeSqFt float64    `json:"facilitySizeSqFt"`
	SystemComplexity Complexity `json:"systemComplexity"`
	Currency         string     `json:"currency"`
}

// Profile extracts the facility part of the request.
func (r EstimateRequest) Profile() FacilityProfile {
	return FacilityProfile{
		AnnualEnergyCost: r.AnnualEnergyCost,
		FacilitySizeSqFt: r.FacilitySizeSqFt,
		SystemComplexity: r.SystemComplexity,
	}
}

type EstimateWarning struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type EstimateResult struct {
	Estimate              SavingsEstimate   `json:"estimate"`
	Currency              Currency          `json:"currency"`
	ImplementationCostUSD int64             `json:"implementationCostUSD"`
	Warnings              []EstimateWarning `json:"warnings,omitempty"`
}
