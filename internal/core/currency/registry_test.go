package currency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vendornet/vendor_management_app/internal/core/currency"
)

func TestGetCurrencyByCode(t *testing.T) {
	usd, ok := currency.GetCurrencyByCode("USD")
	require.True(t, ok)
	assert.Equal(t, "USD", usd.Code)
	assert.Equal(t, "$", usd.Symbol)
	assert.Equal(t, "US Dollar", usd.Name)
}

func TestGetCurrencyByCode_CaseAndWhitespaceInsensitive(t *testing.T) {
	for _, input := range []string{"usd", "Usd", " USD ", "usd "} {
		c, ok := currency.GetCurrencyByCode(input)
		require.True(t, ok, "input %q", input)
		assert.Equal(t, "USD", c.Code)
	}
}

func TestGetCurrencyByCode_Unknown(t *testing.T) {
	_, ok := currency.GetCurrencyByCode("XYZ")
	assert.False(t, ok)

	_, ok = currency.GetCurrencyByCode("")
	assert.False(t, ok)
}

func TestIsValidCurrencyCode(t *testing.T) {
	assert.True(t, currency.IsValidCurrencyCode("EUR"))
	assert.True(t, currency.IsValidCurrencyCode("gbp"))
	assert.False(t, currency.IsValidCurrencyCode("ZZZ"))
}

func TestGetCurrencySymbol_NeverFails(t *testing.T) {
	assert.Equal(t, "€", currency.GetCurrencySymbol("EUR"))
	assert.Equal(t, "£", currency.GetCurrencySymbol("gbp"))
	// Unknown codes fall back to the uppercased code itself.
	assert.Equal(t, "XYZ", currency.GetCurrencySymbol("xyz"))
}

func TestSearchCurrencies(t *testing.T) {
	byName := currency.SearchCurrencies("dollar")
	require.NotEmpty(t, byName)
	codes := make(map[string]bool, len(byName))
	for _, c := range byName {
		codes[c.Code] = true
	}
	assert.True(t, codes["USD"])
	assert.True(t, codes["AUD"])
	assert.True(t, codes["CAD"])
	assert.False(t, codes["EUR"])

	byCode := currency.SearchCurrencies("EUR")
	require.Len(t, byCode, 1)
	assert.Equal(t, "EUR", byCode[0].Code)

	assert.Empty(t, currency.SearchCurrencies("no-such-currency"))
}

func TestListCurrencies_ReturnsCopy(t *testing.T) {
	first := currency.ListCurrencies()
	require.NotEmpty(t, first)

	first[0].Code = "MUT"

	second := currency.ListCurrencies()
	assert.NotEqual(t, "MUT", second[0].Code)
}
