package service

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"savings-site/domain"
)

// English locale keeps thousand separators stable regardless of host settings.
var printer = message.NewPrinter(language.English)

// FormatAmount renders a whole currency amount, e.g. "$91,000".
func FormatAmount(currency domain.Currency, amount int64) string {
	if amount < 0 {
		return "-" + currency.Symbol + printer.Sprintf("%d", -amount)
	}
	return currency.Symbol + printer.Sprintf("%d", amount)
}

// FormatPayback renders a payback period in months, or "n/a" when unavailable.
func FormatPayback(months int64) string {
	if months == domain.PaybackUnavailable {
		return "n/a"
	}
	if months == 1 {
		return "1 month"
	}
	return printer.Sprintf("%d months", months)
}

// FormatNumber renders an integer with thousand separators.
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}
