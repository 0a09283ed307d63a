package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vendornet/vendor_management_app/internal/core/currency"
	"github.com/vendornet/vendor_management_app/internal/dto"
)

// currencyHandler serves the static currency registry. The registry is
// compiled in, so these endpoints never touch the database.
type currencyHandler struct{}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup) {
	h := &currencyHandler{}

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:code", h.getCurrencyByCode)
	}
}

// listCurrencies godoc
// @Summary List currencies
// @Description Retrieves all registry currencies, optionally filtered by a search query
// @Tags currencies
// @Produce  json
// @Param   q query string false "Case-insensitive match against code, name or symbol"
// @Success 200 {array} dto.CurrencyResponse
// @Security BearerAuth
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query != "" {
		c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currency.SearchCurrencies(query)))
		return
	}
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currency.ListCurrencies()))
}

// getCurrencyByCode godoc
// @Summary Get a currency
// @Description Retrieves a single registry currency by its 3-letter code
// @Tags currencies
// @Produce  json
// @Param   code path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.CurrencyResponse
// @Failure 404 {object} map[string]string "Currency not found"
// @Security BearerAuth
// @Router /currencies/{code} [get]
func (h *currencyHandler) getCurrencyByCode(c *gin.Context) {
	code := c.Param("code")

	curr, ok := currency.GetCurrencyByCode(code)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(curr))
}
