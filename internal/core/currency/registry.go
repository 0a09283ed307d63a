// Package currency holds the static ISO-4217 reference table. The table is
// built once at init, is read-only afterwards, and is therefore safe for
// concurrent use without locking. Lookups never touch the network or the
// database.
package currency

import (
	"strings"

	"github.com/vendornet/vendor_management_app/internal/core/domain"
)

var currencies = []domain.Currency{
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "GBP", Symbol: "£", Name: "British Pound Sterling"},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	{Code: "CHF", Symbol: "CHF", Name: "Swiss Franc"},
	{Code: "CAD", Symbol: "C$", Name: "Canadian Dollar"},
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar"},
	{Code: "NZD", Symbol: "NZ$", Name: "New Zealand Dollar"},
	{Code: "CNY", Symbol: "¥", Name: "Chinese Yuan"},
	{Code: "HKD", Symbol: "HK$", Name: "Hong Kong Dollar"},
	{Code: "SGD", Symbol: "S$", Name: "Singapore Dollar"},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
	{Code: "KRW", Symbol: "₩", Name: "South Korean Won"},
	{Code: "SEK", Symbol: "kr", Name: "Swedish Krona"},
	{Code: "NOK", Symbol: "kr", Name: "Norwegian Krone"},
	{Code: "DKK", Symbol: "kr", Name: "Danish Krone"},
	{Code: "PLN", Symbol: "zł", Name: "Polish Zloty"},
	{Code: "CZK", Symbol: "Kč", Name: "Czech Koruna"},
	{Code: "HUF", Symbol: "Ft", Name: "Hungarian Forint"},
	{Code: "RON", Symbol: "lei", Name: "Romanian Leu"},
	{Code: "BGN", Symbol: "лв", Name: "Bulgarian Lev"},
	{Code: "TRY", Symbol: "₺", Name: "Turkish Lira"},
	{Code: "RUB", Symbol: "₽", Name: "Russian Ruble"},
	{Code: "UAH", Symbol: "₴", Name: "Ukrainian Hryvnia"},
	{Code: "ILS", Symbol: "₪", Name: "Israeli New Shekel"},
	{Code: "AED", Symbol: "د.إ", Name: "UAE Dirham"},
	{Code: "SAR", Symbol: "﷼", Name: "Saudi Riyal"},
	{Code: "ZAR", Symbol: "R", Name: "South African Rand"},
	{Code: "NGN", Symbol: "₦", Name: "Nigerian Naira"},
	{Code: "KES", Symbol: "KSh", Name: "Kenyan Shilling"},
	{Code: "EGP", Symbol: "E£", Name: "Egyptian Pound"},
	{Code: "BRL", Symbol: "R$", Name: "Brazilian Real"},
	{Code: "MXN", Symbol: "$", Name: "Mexican Peso"},
	{Code: "ARS", Symbol: "$", Name: "Argentine Peso"},
	{Code: "CLP", Symbol: "$", Name: "Chilean Peso"},
	{Code: "COP", Symbol: "$", Name: "Colombian Peso"},
	{Code: "THB", Symbol: "฿", Name: "Thai Baht"},
	{Code: "MYR", Symbol: "RM", Name: "Malaysian Ringgit"},
	{Code: "IDR", Symbol: "Rp", Name: "Indonesian Rupiah"},
	{Code: "PHP", Symbol: "₱", Name: "Philippine Peso"},
	{Code: "VND", Symbol: "₫", Name: "Vietnamese Dong"},
	{Code: "PKR", Symbol: "₨", Name: "Pakistani Rupee"},
	{Code: "BDT", Symbol: "৳", Name: "Bangladeshi Taka"},
	{Code: "LKR", Symbol: "Rs", Name: "Sri Lankan Rupee"},
}

var byCode = make(map[string]domain.Currency, len(currencies))

func init() {
	for _, c := range currencies {
		byCode[c.Code] = c
	}
}

// GetCurrencyByCode returns the currency for a code. Lookup is
// case-insensitive: codes are uppercased before comparison.
func GetCurrencyByCode(code string) (domain.Currency, bool) {
	c, ok := byCode[strings.ToUpper(strings.TrimSpace(code))]
	return c, ok
}

// IsValidCurrencyCode reports whether code names a known currency.
func IsValidCurrencyCode(code string) bool {
	_, ok := GetCurrencyByCode(code)
	return ok
}

// GetCurrencySymbol returns the display symbol for a code, falling back to the
// uppercased code itself when the currency is unknown. It never fails; display
// code must not break on bad data.
func GetCurrencySymbol(code string) string {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if c, ok := byCode[normalized]; ok {
		return c.Symbol
	}
	return normalized
}

// SearchCurrencies returns every currency whose code, name, or symbol contains
// the query, case-insensitively. An empty query matches everything.
func SearchCurrencies(query string) []domain.Currency {
	q := strings.ToLower(strings.TrimSpace(query))
	matches := make([]domain.Currency, 0)
	for _, c := range currencies {
		if strings.Contains(strings.ToLower(c.Code), q) ||
			strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Symbol), q) {
			matches = append(matches, c)
		}
	}
	return matches
}

// ListCurrencies returns a copy of the full reference table.
func ListCurrencies() []domain.Currency {
	out := make([]domain.Currency, len(currencies))
	copy(out, currencies)
	return out
}
