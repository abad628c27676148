package domain

import "strings"

type Currency struct {
	Code           string  `json:"code"`
	Symbol         string  `json:"symbol"`
	Name           string  `json:"name"`
	ConversionRate float64 `json:"conversionRate"`
}

// Static snapshot of rates against USD. Not refreshed at runtime.
var currencyTable = [...]Currency{
	{Code: "USD", Symbol: "$", Name: "US Dollar", ConversionRate: 1},
	{Code: "EUR", Symbol: "€", Name: "Euro", ConversionRate: 0.92},
	{Code: "ZAR", Symbol: "R", Name: "South African Rand", ConversionRate: 18.5},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen", ConversionRate: 150},
	{Code: "GBP", Symbol: "£", Name: "British Pound", ConversionRate: 0.79},
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar", ConversionRate: 1.52},
	{Code: "CAD", Symbol: "C$", Name: "Canadian Dollar", ConversionRate: 1.36},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee", ConversionRate: 83},
}

var currencyIndex = func() map[string]int {
	idx := make(map[string]int, len(currencyTable))
	for i, c := range currencyTable {
		idx[c.Code] = i
	}
	return idx
}()

// Currencies returns a copy of the reference table in display order.
func Currencies() []Currency {
	out := make([]Currency, len(currencyTable))
	copy(out, currencyTable[:])
	return out
}

// LookupCurrency finds a currency by its ISO code, ignoring case.
func LookupCurrency(code string) (Currency, bool) {
	i, ok := currencyIndex[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return Currency{}, false
	}
	return currencyTable[i], true
}

func DefaultCurrency() Currency {
	return currencyTable[0]
}
