package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"savings-site/domain"
)

func usd(t *testing.T) domain.Currency {
	t.Helper()
	c, ok := domain.LookupCurrency("USD")
	require.True(t, ok)
	return c
}

func TestComputeSavingsEstimate_Scenarios(t *testing.T) {
	tests := []struct {
		name       string
		cost       float64
		size       float64
		complexity domain.Complexity
		want       domain.SavingsEstimate
	}{
		{
			// rate 0.14, size factor clamps to 1.3, implementation cost 125,000
			name:       "mid-size facility, tier 3",
			cost:       500_000,
			size:       50_000,
			complexity: 3,
			want: domain.SavingsEstimate{
				AnnualSavings:          91_000,
				FiveYearSavings:        455_000,
				PaybackMonths:          16,
				CO2ReductionAnnualTons: 5,
			},
		},
		{
			// rate 0.12, size factor clamps to 0.9, implementation cost 35,000
			name:       "smallest documented facility, tier 1",
			cost:       50_000,
			size:       10_000,
			complexity: 1,
			want: domain.SavingsEstimate{
				AnnualSavings:          5_400,
				FiveYearSavings:        27_000,
				PaybackMonths:          78,
				CO2ReductionAnnualTons: 1,
			},
		},
		{
			// rate 0.16, size factor clamps to 1.3, implementation cost 435,000
			name:       "large facility, tier 5",
			cost:       1_000_000,
			size:       200_000,
			complexity: 5,
			want: domain.SavingsEstimate{
				AnnualSavings:          208_000,
				FiveYearSavings:        1_040_000,
				PaybackMonths:          25,
				CO2ReductionAnnualTons: 22,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeSavingsEstimate(tt.cost, tt.size, tt.complexity, usd(t))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBaseSavingsRate_IncreasesWithComplexity(t *testing.T) {
	assert.InDelta(t, 0.12, BaseSavingsRate(1), 1e-12)
	assert.InDelta(t, 0.16, BaseSavingsRate(5), 1e-12)

	for c := domain.MinComplexity; c < domain.MaxComplexity; c++ {
		assert.Less(t, BaseSavingsRate(c), BaseSavingsRate(c+1), "tier %d", c)
	}
}

func TestSizeFactor_Clamped(t *testing.T) {
	tests := []struct {
		size float64
		want float64
	}{
		{size: 0, want: 0.9},
		{size: 5_000, want: 0.9},
		{size: 10_000, want: 0.9},
		{size: 30_000, want: 1.1},
		{size: 50_000, want: 1.3},
		{size: 1_000_000, want: 1.3},
		{size: 5_000_000, want: 1.3},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, SizeFactor(tt.size), 1e-12, "size %.0f", tt.size)
	}
}

func TestComputeSavingsEstimate_AnnualSavingsIncreaseWithComplexity(t *testing.T) {
	low := ComputeSavingsEstimate(500_000, 50_000, 1, usd(t))
	high := ComputeSavingsEstimate(500_000, 50_000, 5, usd(t))

	assert.Greater(t, high.AnnualSavings, low.AnnualSavings)

	prev := int64(math.MinInt64)
	for c := domain.MinComplexity; c <= domain.MaxComplexity; c++ {
		got := ComputeSavingsEstimate(500_000, 50_000, c, usd(t)).AnnualSavings
		assert.Greater(t, got, prev, "tier %d", c)
		prev = got
	}
}

func TestComputeSavingsEstimate_CurrencyConversionIsLinear(t *testing.T) {
	base := usd(t)
	baseline := ComputeSavingsEstimate(750_000, 120_000, 4, base)

	for _, c := range domain.Currencies() {
		t.Run(c.Code, func(t *testing.T) {
			got := ComputeSavingsEstimate(750_000, 120_000, 4, c)
			tolerance := 0.5/c.ConversionRate + 0.5/base.ConversionRate
			assert.InDelta(t,
				float64(baseline.AnnualSavings)/base.ConversionRate,
				float64(got.AnnualSavings)/c.ConversionRate,
				tolerance,
			)
		})
	}
}

func TestComputeSavingsEstimate_FiveYearIsFiveTimesAnnual(t *testing.T) {
	costs := []float64{0, 1, 3.3, 50_000, 123_457, 999_999, 10_000_000}
	sizes := []float64{0, 10_000, 33_333, 250_000, 1_000_000}

	for _, cur := range domain.Currencies() {
		for _, cost := range costs {
			for _, size := range sizes {
				for c := domain.MinComplexity; c <= domain.MaxComplexity; c++ {
					got := ComputeSavingsEstimate(cost, size, c, cur)
					require.Equal(t, 5*got.AnnualSavings, got.FiveYearSavings,
						"cost=%v size=%v tier=%d currency=%s", cost, size, c, cur.Code)
				}
			}
		}
	}
}

func TestComputeSavingsEstimate_Idempotent(t *testing.T) {
	eur, ok := domain.LookupCurrency("EUR")
	require.True(t, ok)

	first := ComputeSavingsEstimate(420_000, 75_000, 2, eur)
	second := ComputeSavingsEstimate(420_000, 75_000, 2, eur)
	assert.Equal(t, first, second)
}

func TestComputeSavingsEstimate_ZeroSavingsHasNoPayback(t *testing.T) {
	t.Run("zero energy cost", func(t *testing.T) {
		got := ComputeSavingsEstimate(0, 50_000, 3, usd(t))
		assert.Equal(t, int64(0), got.AnnualSavings)
		assert.Equal(t, int64(0), got.FiveYearSavings)
		assert.Equal(t, int64(domain.PaybackUnavailable), got.PaybackMonths)
		assert.False(t, got.HasPayback())
		assert.Equal(t, int64(5), got.CO2ReductionAnnualTons)
	})

	t.Run("zero conversion rate", func(t *testing.T) {
		broken := domain.Currency{Code: "XXX", ConversionRate: 0}
		got := ComputeSavingsEstimate(500_000, 50_000, 3, broken)
		assert.Equal(t, int64(0), got.AnnualSavings)
		assert.Equal(t, int64(domain.PaybackUnavailable), got.PaybackMonths)
	})

	t.Run("payback too large to represent", func(t *testing.T) {
		got := ComputeSavingsEstimate(1e-300, 50_000, 3, usd(t))
		assert.Equal(t, int64(0), got.AnnualSavings)
		assert.Equal(t, int64(domain.PaybackUnavailable), got.PaybackMonths)
	})
}

func TestComputeSavingsEstimate_PaybackUsesUSDImplementationCost(t *testing.T) {
	jpy, ok := domain.LookupCurrency("JPY")
	require.True(t, ok)

	got := ComputeSavingsEstimate(500_000, 50_000, 3, jpy)

	// Savings are converted (91,000 x 150) but the 125,000 implementation
	// cost is not, so the payback collapses to under a month.
	assert.Equal(t, int64(13_650_000), got.AnnualSavings)
	assert.Equal(t, int64(0), got.PaybackMonths)
}

func TestComputeSavingsEstimate_ExtrapolatesOutOfRangeInputs(t *testing.T) {
	got := ComputeSavingsEstimate(20_000_000, 2_000_000, 3, usd(t))
	assert.Equal(t, int64(3_640_000), got.AnnualSavings)
	assert.True(t, got.HasPayback())
}

func TestComputeSavingsEstimate_NegativeSavingsHaveNoPayback(t *testing.T) {
	got := ComputeSavingsEstimate(-8_241_758.24, 50_000, 3, usd(t))

	assert.Equal(t, int64(-1_500_000), got.AnnualSavings)
	assert.Equal(t, int64(-7_500_000), got.FiveYearSavings)
	assert.Equal(t, int64(domain.PaybackUnavailable), got.PaybackMonths)
	assert.False(t, got.HasPayback())
}

func TestComputeSavingsEstimate_SaturatesHugeFigures(t *testing.T) {
	tests := []struct {
		name       string
		cost       float64
		size       float64
		currency   string
		wantAnnual int64
		wantCO2    int64
	}{
		{"huge cost in JPY", 1e17, 50_000, "JPY", maxProjectedAmount, 5},
		{"huge positive cost", 1e20, 50_000, "USD", maxProjectedAmount, 5},
		{"huge negative cost", -1e20, 50_000, "USD", -maxProjectedAmount, 5},
		{"huge facility", 500_000, 1e30, "USD", 91_000, maxProjectedAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			currency, ok := domain.LookupCurrency(tt.currency)
			require.True(t, ok)

			got := ComputeSavingsEstimate(tt.cost, tt.size, 3, currency)

			assert.Equal(t, tt.wantAnnual, got.AnnualSavings)
			assert.Equal(t, tt.wantAnnual*5, got.FiveYearSavings)
			assert.Equal(t, tt.wantCO2, got.CO2ReductionAnnualTons)
			assert.Equal(t, tt.cost < 0, got.FiveYearSavings < 0, "five-year projection keeps its sign")
			assert.True(t, EstimateOverflows(tt.cost, tt.size, 3, currency))
		})
	}
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{2.5, 3},
		{2.49, 2},
		{-2.5, -2},
		{-2.51, -3},
		{-0.5, 0},
		{16.48, 16},
		{0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, roundHalfUp(tt.in), "round(%v)", tt.in)
	}
}
