package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencies_ReferenceSet(t *testing.T) {
	got := Currencies()

	codes := make([]string, 0, len(got))
	for _, c := range got {
		codes = append(codes, c.Code)
		assert.Positive(t, c.ConversionRate, c.Code)
		assert.NotEmpty(t, c.Symbol, c.Code)
		assert.NotEmpty(t, c.Name, c.Code)
	}
	assert.Equal(t, []string{"USD", "EUR", "ZAR", "JPY", "GBP", "AUD", "CAD", "INR"}, codes)
}

func TestCurrencies_ReturnsCopy(t *testing.T) {
	got := Currencies()
	got[0].ConversionRate = 42

	usd, ok := LookupCurrency("USD")
	require.True(t, ok)
	assert.Equal(t, 1.0, usd.ConversionRate)
}

func TestLookupCurrency(t *testing.T) {
	c, ok := LookupCurrency(" eur ")
	require.True(t, ok)
	assert.Equal(t, "EUR", c.Code)

	_, ok = LookupCurrency("BTC")
	assert.False(t, ok)

	assert.Equal(t, "USD", DefaultCurrency().Code)
}

func TestComplexity_Valid(t *testing.T) {
	for c := Complexity(-1); c <= 7; c++ {
		assert.Equal(t, c >= 1 && c <= 5, c.Valid(), "tier %d", c)
	}
}
