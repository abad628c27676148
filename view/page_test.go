package view

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"savings-site/domain"
)

func TestResults_RendersWarnings(t *testing.T) {
	jpy, _ := domain.LookupCurrency("JPY")
	var buf bytes.Buffer

	err := Results(domain.EstimateResult{
		Estimate: domain.SavingsEstimate{
			AnnualSavings:          13_650_000,
			FiveYearSavings:        68_250_000,
			PaybackMonths:          domain.PaybackUnavailable,
			CO2ReductionAnnualTons: 5,
		},
		Currency: jpy,
		Warnings: []domain.EstimateWarning{{Field: "facilitySizeSqFt", Message: "facility size is extrapolated"}},
	}).Render(&buf)

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "¥13,650,000")
	assert.Contains(t, out, "¥68,250,000")
	assert.Contains(t, out, "n/a")
	assert.Contains(t, out, "facility size is extrapolated")
}

func TestCalculator_SelectsCurrentInputs(t *testing.T) {
	eur, _ := domain.LookupCurrency("EUR")
	var buf bytes.Buffer

	err := Calculator(CalculatorState{
		Request: domain.EstimateRequest{AnnualEnergyCost: 750_000, FacilitySizeSqFt: 120_000, SystemComplexity: 4, Currency: "EUR"},
		Result:  domain.EstimateResult{Currency: eur},
	}).Render(&buf)

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, `value="750000"`)
	assert.Contains(t, out, `value="120000"`)
	assert.Contains(t, out, `<option value="4" selected>`)
	assert.Contains(t, out, `<option value="EUR" selected>`)
	assert.NotContains(t, out, "warnings")
}

func TestStatic_ContainsAssets(t *testing.T) {
	for _, name := range []string{"styles.css", "js/waitlist.js"} {
		f, err := Static().Open(name)
		require.NoError(t, err, name)
		_ = f.Close()
	}
}
