package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wkalungi/sponsorbase/internal/app/models"
	"github.com/wkalungi/sponsorbase/internal/app/models/dto"
	"github.com/wkalungi/sponsorbase/internal/app/services"
	"github.com/wkalungi/sponsorbase/internal/middleware"
)

// SponsorshipController handles sponsorship relationship operations
type SponsorshipController struct {
	sponsorshipService services.SponsorshipService
}

// NewSponsorshipController creates a new SponsorshipController
func NewSponsorshipController(sponsorshipService services.SponsorshipService) *SponsorshipController {
	return &SponsorshipController{sponsorshipService: sponsorshipService}
}

// parseRequestDate parses a required YYYY-MM-DD date from a request body.
func parseRequestDate(ctx *gin.Context, value, field string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid date").
			WithField(field).
			WithDetails("Date must be in YYYY-MM-DD format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return time.Time{}, false
	}
	return date, true
}

// BeginChildSponsorship starts a child sponsorship
// @Summary Begin a child sponsorship
// @Description Starts an active sponsorship between a sponsor and a child. Each sponsor-child pair can hold at most one sponsorship row.
// @Tags sponsorships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BeginChildSponsorshipRequest true "Sponsorship information"
// @Success 201 {object} dto.APIResponse{data=models.ChildSponsorship} "Sponsorship started successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Sponsor or child not found"
// @Failure 409 {object} dto.ErrorResponse "Sponsorship already exists for this pair"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sponsorships/children [post]
func (c *SponsorshipController) BeginChildSponsorship(ctx *gin.Context) {
	var req dto.BeginChildSponsorshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid sponsorship data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	startDate, ok := parseRequestDate(ctx, req.StartDate, "startDate")
	if !ok {
		return
	}

	sponsorship, err := c.sponsorshipService.BeginChildSponsorship(ctx, req.SponsorID, req.ChildID, models.SponsorshipType(req.Type), startDate)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      sponsorship,
		Timestamp: time.Now(),
	})
}

// BeginStaffSponsorship starts a staff sponsorship
// @Summary Begin a staff sponsorship
// @Description Starts an active sponsorship between a sponsor and a staff member. Each sponsor-staff pair can hold at most one sponsorship row.
// @Tags sponsorships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BeginStaffSponsorshipRequest true "Sponsorship information"
// @Success 201 {object} dto.APIResponse{data=models.StaffSponsorship} "Sponsorship started successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Sponsor or staff member not found"
// @Failure 409 {object} dto.ErrorResponse "Sponsorship already exists for this pair"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sponsorships/staff [post]
func (c *SponsorshipController) BeginStaffSponsorship(ctx *gin.Context) {
	var req dto.BeginStaffSponsorshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid sponsorship data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	startDate, ok := parseRequestDate(ctx, req.StartDate, "startDate")
	if !ok {
		return
	}

	sponsorship, err := c.sponsorshipService.BeginStaffSponsorship(ctx, req.SponsorID, req.StaffID, models.SponsorshipType(req.Type), startDate)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      sponsorship,
		Timestamp: time.Now(),
	})
}

// EndChildSponsorship ends a child sponsorship
// @Summary End a child sponsorship
// @Description Ends the active sponsorship between a sponsor and a child. Ending an already-ended sponsorship is rejected.
// @Tags sponsorships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.EndChildSponsorshipRequest true "End information"
// @Success 200 {object} dto.APIResponse{data=models.ChildSponsorship} "Sponsorship ended successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Sponsorship not found"
// @Failure 409 {object} dto.ErrorResponse "Sponsorship has already ended"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sponsorships/children/end [post]
func (c *SponsorshipController) EndChildSponsorship(ctx *gin.Context) {
	var req dto.EndChildSponsorshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	endDate, ok := parseRequestDate(ctx, req.EndDate, "endDate")
	if !ok {
		return
	}

	sponsorship, err := c.sponsorshipService.EndChildSponsorship(ctx, req.SponsorID, req.ChildID, endDate)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      sponsorship,
		Timestamp: time.Now(),
	})
}

// EndStaffSponsorship ends a staff sponsorship
// @Summary End a staff sponsorship
// @Description Ends the active sponsorship between a sponsor and a staff member. Ending an already-ended sponsorship is rejected.
// @Tags sponsorships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.EndStaffSponsorshipRequest true "End information"
// @Success 200 {object} dto.APIResponse{data=models.StaffSponsorship} "Sponsorship ended successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Sponsorship not found"
// @Failure 409 {object} dto.ErrorResponse "Sponsorship has already ended"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sponsorships/staff/end [post]
func (c *SponsorshipController) EndStaffSponsorship(ctx *gin.Context) {
	var req dto.EndStaffSponsorshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	endDate, ok := parseRequestDate(ctx, req.EndDate, "endDate")
	if !ok {
		return
	}

	sponsorship, err := c.sponsorshipService.EndStaffSponsorship(ctx, req.SponsorID, req.StaffID, endDate)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      sponsorship,
		Timestamp: time.Now(),
	})
}

// UpdateChildSponsorship rewrites a child sponsorship row
// @Summary Update a child sponsorship
// @Description Updates the type, dates and active flag of an existing child sponsorship. Setting isActive with a fresh start date re-activates an ended sponsorship.
// @Tags sponsorships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Sponsorship ID" Format(int64) minimum(1)
// @Param request body dto.UpdateSponsorshipRequest true "Updated sponsorship information"
// @Success 200 {object} dto.APIResponse{data=models.ChildSponsorship} "Sponsorship updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Sponsorship not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sponsorships/children/{id} [put]
func (c *SponsorshipController) UpdateChildSponsorship(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Sponsorship ID")
	if !ok {
		return
	}

	var req dto.UpdateSponsorshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid sponsorship data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	sponsorship, err := c.sponsorshipService.GetChildSponsorshipByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if !c.applyUpdate(ctx, &req, &sponsorship.Type, &sponsorship.StartDate, &sponsorship.EndDate, &sponsorship.IsActive) {
		return
	}

	if err := c.sponsorshipService.UpdateChildSponsorship(ctx, sponsorship); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      sponsorship,
		Timestamp: time.Now(),
	})
}

// UpdateStaffSponsorship rewrites a staff sponsorship row
// @Summary Update a staff sponsorship
// @Description Updates the type, dates and active flag of an existing staff sponsorship. Setting isActive with a fresh start date re-activates an ended sponsorship.
// @Tags sponsorships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Sponsorship ID" Format(int64) minimum(1)
// @Param request body dto.UpdateSponsorshipRequest true "Updated sponsorship information"
// @Success 200 {object} dto.APIResponse{data=models.StaffSponsorship} "Sponsorship updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Sponsorship not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sponsorships/staff/{id} [put]
func (c *SponsorshipController) UpdateStaffSponsorship(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Sponsorship ID")
	if !ok {
		return
	}

	var req dto.UpdateSponsorshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid sponsorship data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	sponsorship, err := c.sponsorshipService.GetStaffSponsorshipByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if !c.applyUpdate(ctx, &req, &sponsorship.Type, &sponsorship.StartDate, &sponsorship.EndDate, &sponsorship.IsActive) {
		return
	}

	if err := c.sponsorshipService.UpdateStaffSponsorship(ctx, sponsorship); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      sponsorship,
		Timestamp: time.Now(),
	})
}

// applyUpdate copies a validated update request onto a sponsorship row's
// fields. An empty endDate clears the stored end date.
func (c *SponsorshipController) applyUpdate(ctx *gin.Context, req *dto.UpdateSponsorshipRequest, sType *models.SponsorshipType, startDate, endDate **time.Time, isActive *bool) bool {
	*sType = models.SponsorshipType(req.Type)
	*isActive = req.IsActive

	if req.StartDate != "" {
		date, ok := parseRequestDate(ctx, req.StartDate, "startDate")
		if !ok {
			return false
		}
		*startDate = &date
	}

	if req.EndDate == "" {
		*endDate = nil
	} else {
		date, ok := parseRequestDate(ctx, req.EndDate, "endDate")
		if !ok {
			return false
		}
		*endDate = &date
	}
	return true
}

// ListActiveBySponsor lists a sponsor's active sponsorships
// @Summary List a sponsor's active sponsorships
// @Description Retrieves the sponsor's active child and staff sponsorships, ordered by start date
// @Tags sponsorships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Sponsor ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.ActiveSponsorshipsResponse} "Sponsorships retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid sponsor ID format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sponsors/{id}/sponsorships [get]
func (c *SponsorshipController) ListActiveBySponsor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Sponsor ID")
	if !ok {
		return
	}

	children, staff, err := c.sponsorshipService.ListActiveBySponsor(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.ActiveSponsorshipsResponse{
			Children: children,
			Staff:    staff,
		},
		Timestamp: time.Now(),
	})
}

// ListActiveByChild lists a child's active sponsorships
// @Summary List a child's active sponsorships
// @Description Retrieves the child's active sponsorships, ordered by start date
// @Tags sponsorships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Child ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.ChildSponsorship} "Sponsorships retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid child ID format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /children/{id}/sponsorships [get]
func (c *SponsorshipController) ListActiveByChild(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Child ID")
	if !ok {
		return
	}

	sponsorships, err := c.sponsorshipService.ListActiveByChild(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      sponsorships,
		Timestamp: time.Now(),
	})
}

// ListActiveByStaff lists a staff member's active sponsorships
// @Summary List a staff member's active sponsorships
// @Description Retrieves the staff member's active sponsorships, ordered by start date
// @Tags sponsorships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Staff ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.StaffSponsorship} "Sponsorships retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid staff ID format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /staff/{id}/sponsorships [get]
func (c *SponsorshipController) ListActiveByStaff(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Staff ID")
	if !ok {
		return
	}

	sponsorships, err := c.sponsorshipService.ListActiveByStaff(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      sponsorships,
		Timestamp: time.Now(),
	})
}

// DeleteChildSponsorship deletes a child sponsorship row
// @Summary Delete a child sponsorship
// @Description Removes a child sponsorship row entirely
// @Tags sponsorships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Sponsorship ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Sponsorship deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid sponsorship ID format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Sponsorship not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sponsorships/children/{id} [delete]
func (c *SponsorshipController) DeleteChildSponsorship(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Sponsorship ID")
	if !ok {
		return
	}

	if err := c.sponsorshipService.DeleteChildSponsorship(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Sponsorship deleted successfully"},
		Timestamp: time.Now(),
	})
}

// DeleteStaffSponsorship deletes a staff sponsorship row
// @Summary Delete a staff sponsorship
// @Description Removes a staff sponsorship row entirely
// @Tags sponsorships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Sponsorship ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Sponsorship deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid sponsorship ID format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Sponsorship not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sponsorships/staff/{id} [delete]
func (c *SponsorshipController) DeleteStaffSponsorship(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Sponsorship ID")
	if !ok {
		return
	}

	if err := c.sponsorshipService.DeleteStaffSponsorship(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Sponsorship deleted successfully"},
		Timestamp: time.Now(),
	})
}
