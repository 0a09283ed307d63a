package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vendornet/vendor_management_app/internal/apperrors"
	portssvc "github.com/vendornet/vendor_management_app/internal/core/ports/services"
	"github.com/vendornet/vendor_management_app/internal/dto"
	"github.com/vendornet/vendor_management_app/internal/middleware"
)

// teamMemberHandler handles HTTP requests addressed to a single team member.
type teamMemberHandler struct {
	teamMemberService portssvc.TeamMemberSvcFacade
	timesheetService  portssvc.TimesheetSvcFacade
}

// newTeamMemberHandler creates a new teamMemberHandler.
func newTeamMemberHandler(tms portssvc.TeamMemberSvcFacade, ts portssvc.TimesheetSvcFacade) *teamMemberHandler {
	return &teamMemberHandler{
		teamMemberService: tms,
		timesheetService:  ts,
	}
}

// registerTeamMemberRoutes registers routes related to team members.
func registerTeamMemberRoutes(rg *gin.RouterGroup, teamMemberService portssvc.TeamMemberSvcFacade, timesheetService portssvc.TimesheetSvcFacade) {
	h := newTeamMemberHandler(teamMemberService, timesheetService)

	members := rg.Group("/team-members")
	{
		members.GET("/:teamMemberID", h.getTeamMember)
		members.PUT("/:teamMemberID", h.updateTeamMember)
		members.DELETE("/:teamMemberID", h.deactivateTeamMember)
		members.GET("/:teamMemberID/timesheet", h.listTimesheetEntries)
	}
}

// getTeamMember godoc
// @Summary Get a team member
// @Description Retrieves a team member by its ID
// @Tags team members
// @Produce  json
// @Param   teamMemberID path string true "Team Member ID"
// @Success 200 {object} dto.TeamMemberResponse
// @Failure 404 {object} map[string]string "Team member not found"
// @Failure 500 {object} map[string]string "Failed to retrieve team member"
// @Security BearerAuth
// @Router /team-members/{teamMemberID} [get]
func (h *teamMemberHandler) getTeamMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	teamMemberID := c.Param("teamMemberID")

	member, err := h.teamMemberService.GetTeamMemberByID(c.Request.Context(), teamMemberID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Team member not found"})
		} else {
			logger.Error("Failed to get team member", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve team member"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamMemberResponse(member))
}

// updateTeamMember godoc
// @Summary Update a team member
// @Description Applies partial updates to a team member
// @Tags team members
// @Accept  json
// @Produce  json
// @Param   teamMemberID path string true "Team Member ID"
// @Param   member body dto.UpdateTeamMemberRequest true "Fields to update"
// @Success 200 {object} dto.TeamMemberResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Team member not found"
// @Failure 500 {object} map[string]string "Failed to update team member"
// @Security BearerAuth
// @Router /team-members/{teamMemberID} [put]
func (h *teamMemberHandler) updateTeamMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	teamMemberID := c.Param("teamMemberID")

	var req dto.UpdateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTeamMember", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	member, err := h.teamMemberService.UpdateTeamMember(c.Request.Context(), teamMemberID, req, updaterUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Team member not found"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error updating team member", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update team member", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update team member"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamMemberResponse(member))
}

// deactivateTeamMember godoc
// @Summary Deactivate a team member
// @Description Marks a team member INACTIVE so they stop contributing to expected spend
// @Tags team members
// @Produce  json
// @Param   teamMemberID path string true "Team Member ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Team member not found"
// @Failure 500 {object} map[string]string "Failed to deactivate team member"
// @Security BearerAuth
// @Router /team-members/{teamMemberID} [delete]
func (h *teamMemberHandler) deactivateTeamMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	teamMemberID := c.Param("teamMemberID")

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.teamMemberService.DeactivateTeamMember(c.Request.Context(), teamMemberID, updaterUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Team member not found"})
		} else {
			logger.Error("Failed to deactivate team member", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate team member"})
		}
		return
	}

	logger.Info("Team member deactivated", slog.String("team_member_id", teamMemberID))
	c.Status(http.StatusNoContent)
}

// listTimesheetEntries godoc
// @Summary List a team member's timesheet entries
// @Description Retrieves the member's entries whose date falls within [start, end] inclusive
// @Tags timesheets
// @Produce  json
// @Param   teamMemberID path string true "Team Member ID"
// @Param   start query string true "Range start (YYYY-MM-DD)"
// @Param   end   query string true "Range end (YYYY-MM-DD)"
// @Success 200 {array} dto.TimesheetEntryResponse
// @Failure 400 {object} map[string]string "Invalid date range"
// @Failure 500 {object} map[string]string "Failed to list timesheet entries"
// @Security BearerAuth
// @Router /team-members/{teamMemberID}/timesheet [get]
func (h *teamMemberHandler) listTimesheetEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	teamMemberID := c.Param("teamMemberID")

	start, err := time.Parse(time.DateOnly, c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start must be a YYYY-MM-DD date"})
		return
	}
	end, err := time.Parse(time.DateOnly, c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end must be a YYYY-MM-DD date"})
		return
	}
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end must not be before start"})
		return
	}

	entries, err := h.timesheetService.ListEntriesForMember(c.Request.Context(), teamMemberID, start, end)
	if err != nil {
		logger.Error("Failed to list timesheet entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list timesheet entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTimesheetEntryResponse(entries))
}
