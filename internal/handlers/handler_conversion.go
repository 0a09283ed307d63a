package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vendornet/vendor_management_app/internal/apperrors"
	portssvc "github.com/vendornet/vendor_management_app/internal/core/ports/services"
	"github.com/vendornet/vendor_management_app/internal/dto"
	"github.com/vendornet/vendor_management_app/internal/middleware"
)

// conversionHandler handles HTTP requests for the currency conversion engine.
type conversionHandler struct {
	conversionService portssvc.ConversionSvcFacade
}

// newConversionHandler creates a new conversionHandler.
func newConversionHandler(cs portssvc.ConversionSvcFacade) *conversionHandler {
	return &conversionHandler{
		conversionService: cs,
	}
}

// RegisterConversionRoutes registers routes related to currency conversion.
func RegisterConversionRoutes(rg *gin.RouterGroup, conversionService portssvc.ConversionSvcFacade) {
	h := newConversionHandler(conversionService)

	convert := rg.Group("/convert")
	{
		convert.POST("", h.convert)
		convert.POST("/batch", h.batchConvert)
		convert.POST("/total", h.calculateTotal)
	}
}

// conversionErrorStatus maps engine error codes to HTTP response classes.
// A missing rate is a lookup miss, not a malformed request.
func conversionErrorStatus(err error) int {
	code, ok := apperrors.ConversionCode(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch code {
	case apperrors.CodeRateNotFound:
		return http.StatusNotFound
	case apperrors.CodeInvalidCurrency, apperrors.CodeInvalidAmount:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// convert godoc
// @Summary Convert an amount between currencies
// @Description Converts a decimal amount using the stored rate, falling back to the reciprocal of the inverse pair when no direct rate exists
// @Tags conversion
// @Accept  json
// @Produce  json
// @Param   conversion body dto.ConvertRequest true "Conversion details"
// @Success 200 {object} domain.ConversionResult
// @Failure 400 {object} map[string]string "Invalid currency code or amount"
// @Failure 404 {object} map[string]string "No exchange rate found for the pair"
// @Failure 500 {object} map[string]string "Conversion failed"
// @Security BearerAuth
// @Router /convert [post]
func (h *conversionHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(
		slog.String("from_currency", req.FromCurrency),
		slog.String("to_currency", req.ToCurrency),
	)

	result, err := h.conversionService.ConvertWithFallback(c.Request.Context(), req.Amount, req.FromCurrency, req.ToCurrency, req.Options())
	if err != nil {
		status := conversionErrorStatus(err)
		if status == http.StatusInternalServerError {
			logger.Error("Conversion failed", slog.String("error", err.Error()))
			c.JSON(status, gin.H{"error": "Conversion failed"})
			return
		}
		logger.Warn("Conversion rejected", slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// batchConvert godoc
// @Summary Convert several amounts into one target currency
// @Description Converts each item sequentially, returning one result per item in input order; the first failing item aborts the batch
// @Tags conversion
// @Accept  json
// @Produce  json
// @Param   batch body dto.BatchConvertRequest true "Batch conversion details"
// @Success 200 {array} domain.ConversionResult
// @Failure 400 {object} map[string]string "Invalid currency code or amount"
// @Failure 404 {object} map[string]string "No exchange rate found for a pair"
// @Failure 500 {object} map[string]string "Batch conversion failed"
// @Security BearerAuth
// @Router /convert/batch [post]
func (h *conversionHandler) batchConvert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BatchConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for BatchConvert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(
		slog.String("target_currency", req.TargetCurrency),
		slog.Int("item_count", len(req.Items)),
	)

	results, err := h.conversionService.BatchConvert(c.Request.Context(), req.Domain(), req.TargetCurrency, req.Options())
	if err != nil {
		status := conversionErrorStatus(err)
		if status == http.StatusInternalServerError {
			logger.Error("Batch conversion failed", slog.String("error", err.Error()))
			c.JSON(status, gin.H{"error": "Batch conversion failed"})
			return
		}
		logger.Warn("Batch conversion rejected", slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, results)
}

// calculateTotal godoc
// @Summary Convert and total several amounts
// @Description Converts each item into the target currency and sums the converted amounts with exact decimal addition, rounding once at the end
// @Tags conversion
// @Accept  json
// @Produce  json
// @Param   batch body dto.BatchConvertRequest true "Batch conversion details"
// @Success 200 {object} domain.ConversionTotal
// @Failure 400 {object} map[string]string "Invalid currency code or amount"
// @Failure 404 {object} map[string]string "No exchange rate found for a pair"
// @Failure 500 {object} map[string]string "Total calculation failed"
// @Security BearerAuth
// @Router /convert/total [post]
func (h *conversionHandler) calculateTotal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BatchConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CalculateTotal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	total, err := h.conversionService.CalculateTotal(c.Request.Context(), req.Domain(), req.TargetCurrency, req.Options())
	if err != nil {
		status := conversionErrorStatus(err)
		if status == http.StatusInternalServerError {
			logger.Error("Total calculation failed", slog.String("error", err.Error()))
			c.JSON(status, gin.H{"error": "Total calculation failed"})
			return
		}
		logger.Warn("Total calculation rejected", slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, total)
}
