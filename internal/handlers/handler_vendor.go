package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vendornet/vendor_management_app/internal/apperrors"
	portssvc "github.com/vendornet/vendor_management_app/internal/core/ports/services"
	"github.com/vendornet/vendor_management_app/internal/dto"
	"github.com/vendornet/vendor_management_app/internal/middleware"
)

// vendorHandler handles HTTP requests related to vendors and their
// vendor-scoped subresources.
type vendorHandler struct {
	vendorService     portssvc.VendorSvcFacade
	teamMemberService portssvc.TeamMemberSvcFacade
	invoiceService    portssvc.InvoiceSvcFacade
}

// newVendorHandler creates a new vendorHandler.
func newVendorHandler(vs portssvc.VendorSvcFacade, tms portssvc.TeamMemberSvcFacade, is portssvc.InvoiceSvcFacade) *vendorHandler {
	return &vendorHandler{
		vendorService:     vs,
		teamMemberService: tms,
		invoiceService:    is,
	}
}

// registerVendorRoutes registers routes related to vendors.
func registerVendorRoutes(rg *gin.RouterGroup, vendorService portssvc.VendorSvcFacade, teamMemberService portssvc.TeamMemberSvcFacade, invoiceService portssvc.InvoiceSvcFacade) {
	h := newVendorHandler(vendorService, teamMemberService, invoiceService)

	vendors := rg.Group("/vendors")
	{
		vendors.POST("", h.createVendor)
		vendors.GET("", h.listVendors)
		vendors.GET("/:vendorID", h.getVendor)
		vendors.PUT("/:vendorID", h.updateVendor)
		vendors.DELETE("/:vendorID", h.deactivateVendor)

		vendors.POST("/:vendorID/team-members", h.createTeamMember)
		vendors.GET("/:vendorID/team-members", h.listTeamMembers)
		vendors.GET("/:vendorID/invoices", h.listInvoices)
		vendors.GET("/:vendorID/expected-spend", h.getExpectedSpend)
	}
}

// parsePagination reads limit/offset query params with sane defaults.
func parsePagination(c *gin.Context) (int, int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 || limit > 500 {
		limit = 50
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}

// createVendor godoc
// @Summary Create a new vendor
// @Description Registers a new supplier organization
// @Tags vendors
// @Accept  json
// @Produce  json
// @Param   vendor body dto.CreateVendorRequest true "Vendor details"
// @Success 201 {object} dto.VendorResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create vendor"
// @Security BearerAuth
// @Router /vendors [post]
func (h *vendorHandler) createVendor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateVendor", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	vendor, err := h.vendorService.CreateVendor(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating vendor", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create vendor in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vendor"})
		}
		return
	}

	logger.Info("Vendor created successfully", slog.String("vendor_id", vendor.VendorID))
	c.JSON(http.StatusCreated, dto.ToVendorResponse(vendor))
}

// listVendors godoc
// @Summary List vendors
// @Description Retrieves vendors with limit/offset pagination
// @Tags vendors
// @Produce  json
// @Param   limit  query int false "Page size (default 50)"
// @Param   offset query int false "Page offset (default 0)"
// @Success 200 {array} dto.VendorResponse
// @Failure 500 {object} map[string]string "Failed to list vendors"
// @Security BearerAuth
// @Router /vendors [get]
func (h *vendorHandler) listVendors(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	limit, offset := parsePagination(c)

	vendors, err := h.vendorService.ListVendors(c.Request.Context(), limit, offset)
	if err != nil {
		logger.Error("Failed to list vendors", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list vendors"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListVendorResponse(vendors))
}

// getVendor godoc
// @Summary Get a vendor
// @Description Retrieves a vendor by its ID
// @Tags vendors
// @Produce  json
// @Param   vendorID path string true "Vendor ID"
// @Success 200 {object} dto.VendorResponse
// @Failure 404 {object} map[string]string "Vendor not found"
// @Failure 500 {object} map[string]string "Failed to retrieve vendor"
// @Security BearerAuth
// @Router /vendors/{vendorID} [get]
func (h *vendorHandler) getVendor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vendorID := c.Param("vendorID")

	vendor, err := h.vendorService.GetVendorByID(c.Request.Context(), vendorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		} else {
			logger.Error("Failed to get vendor", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve vendor"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToVendorResponse(vendor))
}

// updateVendor godoc
// @Summary Update a vendor
// @Description Applies partial updates to a vendor
// @Tags vendors
// @Accept  json
// @Produce  json
// @Param   vendorID path string true "Vendor ID"
// @Param   vendor body dto.UpdateVendorRequest true "Fields to update"
// @Success 200 {object} dto.VendorResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Vendor not found"
// @Failure 500 {object} map[string]string "Failed to update vendor"
// @Security BearerAuth
// @Router /vendors/{vendorID} [put]
func (h *vendorHandler) updateVendor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vendorID := c.Param("vendorID")

	var req dto.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateVendor", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	vendor, err := h.vendorService.UpdateVendor(c.Request.Context(), vendorID, req, updaterUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error updating vendor", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update vendor", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vendor"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToVendorResponse(vendor))
}

// deactivateVendor godoc
// @Summary Deactivate a vendor
// @Description Marks a vendor INACTIVE; its team members stop contributing to expected spend
// @Tags vendors
// @Produce  json
// @Param   vendorID path string true "Vendor ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Vendor not found"
// @Failure 500 {object} map[string]string "Failed to deactivate vendor"
// @Security BearerAuth
// @Router /vendors/{vendorID} [delete]
func (h *vendorHandler) deactivateVendor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vendorID := c.Param("vendorID")

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.vendorService.DeactivateVendor(c.Request.Context(), vendorID, updaterUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		} else {
			logger.Error("Failed to deactivate vendor", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate vendor"})
		}
		return
	}

	logger.Info("Vendor deactivated", slog.String("vendor_id", vendorID))
	c.Status(http.StatusNoContent)
}

// createTeamMember godoc
// @Summary Add a team member to a vendor
// @Description Registers a new billable team member under the vendor
// @Tags team members
// @Accept  json
// @Produce  json
// @Param   vendorID path string true "Vendor ID"
// @Param   member body dto.CreateTeamMemberRequest true "Team member details"
// @Success 201 {object} dto.TeamMemberResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Vendor not found"
// @Failure 500 {object} map[string]string "Failed to create team member"
// @Security BearerAuth
// @Router /vendors/{vendorID}/team-members [post]
func (h *vendorHandler) createTeamMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vendorID := c.Param("vendorID")

	var req dto.CreateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTeamMember", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	member, err := h.teamMemberService.CreateTeamMember(c.Request.Context(), vendorID, req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error creating team member", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create team member", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create team member"})
		}
		return
	}

	logger.Info("Team member created", slog.String("team_member_id", member.TeamMemberID))
	c.JSON(http.StatusCreated, dto.ToTeamMemberResponse(member))
}

// listTeamMembers godoc
// @Summary List a vendor's team members
// @Description Retrieves all team members for a vendor regardless of status
// @Tags team members
// @Produce  json
// @Param   vendorID path string true "Vendor ID"
// @Success 200 {array} dto.TeamMemberResponse
// @Failure 500 {object} map[string]string "Failed to list team members"
// @Security BearerAuth
// @Router /vendors/{vendorID}/team-members [get]
func (h *vendorHandler) listTeamMembers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vendorID := c.Param("vendorID")

	members, err := h.teamMemberService.ListTeamMembersByVendor(c.Request.Context(), vendorID)
	if err != nil {
		logger.Error("Failed to list team members", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list team members"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTeamMemberResponse(members))
}

// listInvoices godoc
// @Summary List a vendor's invoices
// @Description Retrieves a vendor's invoices with limit/offset pagination
// @Tags invoices
// @Produce  json
// @Param   vendorID path string true "Vendor ID"
// @Param   limit  query int false "Page size (default 50)"
// @Param   offset query int false "Page offset (default 0)"
// @Success 200 {array} dto.InvoiceResponse
// @Failure 500 {object} map[string]string "Failed to list invoices"
// @Security BearerAuth
// @Router /vendors/{vendorID}/invoices [get]
func (h *vendorHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vendorID := c.Param("vendorID")
	limit, offset := parsePagination(c)

	invoices, err := h.invoiceService.ListInvoicesByVendor(c.Request.Context(), vendorID, limit, offset)
	if err != nil {
		logger.Error("Failed to list invoices", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list invoices"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListInvoiceResponse(invoices))
}

// getExpectedSpend godoc
// @Summary Calculate a vendor's expected spend
// @Description Sums active team members' billable hours over the period into an expected spend with per-member breakdown
// @Tags invoices
// @Produce  json
// @Param   vendorID path string true "Vendor ID"
// @Param   periodStart query string true "Period start (YYYY-MM-DD)"
// @Param   periodEnd   query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} domain.ExpectedSpend
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 500 {object} map[string]string "Failed to calculate expected spend"
// @Security BearerAuth
// @Router /vendors/{vendorID}/expected-spend [get]
func (h *vendorHandler) getExpectedSpend(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vendorID := c.Param("vendorID")

	periodStart, err := time.Parse(time.DateOnly, c.Query("periodStart"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "periodStart must be a YYYY-MM-DD date"})
		return
	}
	periodEnd, err := time.Parse(time.DateOnly, c.Query("periodEnd"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "periodEnd must be a YYYY-MM-DD date"})
		return
	}
	if periodEnd.Before(periodStart) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "periodEnd must not be before periodStart"})
		return
	}

	spend, err := h.invoiceService.CalculateExpectedSpend(c.Request.Context(), vendorID, periodStart, periodEnd)
	if err != nil {
		logger.Error("Failed to calculate expected spend", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate expected spend"})
		return
	}

	c.JSON(http.StatusOK, spend)
}
