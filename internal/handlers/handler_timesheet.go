package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vendornet/vendor_management_app/internal/apperrors"
	portssvc "github.com/vendornet/vendor_management_app/internal/core/ports/services"
	"github.com/vendornet/vendor_management_app/internal/dto"
	"github.com/vendornet/vendor_management_app/internal/middleware"
)

// timesheetHandler handles HTTP requests related to timesheet entries.
type timesheetHandler struct {
	timesheetService portssvc.TimesheetSvcFacade
}

// newTimesheetHandler creates a new timesheetHandler.
func newTimesheetHandler(ts portssvc.TimesheetSvcFacade) *timesheetHandler {
	return &timesheetHandler{
		timesheetService: ts,
	}
}

// registerTimesheetRoutes registers routes related to timesheet entries.
func registerTimesheetRoutes(rg *gin.RouterGroup, timesheetService portssvc.TimesheetSvcFacade) {
	h := newTimesheetHandler(timesheetService)

	entries := rg.Group("/timesheet-entries")
	{
		entries.POST("", h.recordEntry)
	}
}

// recordEntry godoc
// @Summary Record a timesheet entry
// @Description Records one day of work or absence for a team member; exactly one of hours / timeOffCode must be set
// @Tags timesheets
// @Accept  json
// @Produce  json
// @Param   entry body dto.RecordTimesheetEntryRequest true "Timesheet entry details"
// @Success 201 {object} dto.TimesheetEntryResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Team member not found"
// @Failure 500 {object} map[string]string "Failed to record timesheet entry"
// @Security BearerAuth
// @Router /timesheet-entries [post]
func (h *timesheetHandler) recordEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordTimesheetEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.timesheetService.RecordEntry(c.Request.Context(), req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Team member not found"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error recording timesheet entry", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to record timesheet entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record timesheet entry"})
		}
		return
	}

	logger.Info("Timesheet entry recorded",
		slog.String("entry_id", entry.EntryID),
		slog.String("team_member_id", entry.TeamMemberID),
	)
	c.JSON(http.StatusCreated, dto.ToTimesheetEntryResponse(entry))
}
