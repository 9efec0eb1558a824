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

// StaffController handles staff member operations
type StaffController struct {
	staffService services.StaffService
}

// NewStaffController creates a new StaffController
func NewStaffController(staffService services.StaffService) *StaffController {
	return &StaffController{staffService: staffService}
}

// CreateStaff handles staff registration
// @Summary Register a staff member
// @Description Registers a new staff member
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Staff true "Staff information"
// @Success 201 {object} dto.APIResponse{data=models.Staff} "Staff member registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /staff [post]
func (c *StaffController) CreateStaff(ctx *gin.Context) {
	var staff models.Staff
	if err := ctx.ShouldBindJSON(&staff); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid staff data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	created, err := c.staffService.CreateStaff(ctx, &staff)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      created,
		Timestamp: time.Now(),
	})
}

// GetStaffByID retrieves a staff member by ID
// @Summary Get staff member details
// @Description Retrieves a staff member by their ID
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Staff ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Staff} "Staff member retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid staff ID format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Staff member not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /staff/{id} [get]
func (c *StaffController) GetStaffByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Staff ID")
	if !ok {
		return
	}

	staff, err := c.staffService.GetStaffByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      staff,
		Timestamp: time.Now(),
	})
}

// ListStaff retrieves all staff members
// @Summary List staff members
// @Description Retrieves all staff members ordered by name
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Staff} "Staff members retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /staff [get]
func (c *StaffController) ListStaff(ctx *gin.Context) {
	staff, err := c.staffService.ListStaff(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      staff,
		Timestamp: time.Now(),
	})
}

// UpdateStaff updates an existing staff member
// @Summary Update a staff member
// @Description Updates an existing staff member with new information
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Staff ID" Format(int64) minimum(1)
// @Param request body models.Staff true "Updated staff information"
// @Success 200 {object} dto.APIResponse{data=models.Staff} "Staff member updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Staff member not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /staff/{id} [put]
func (c *StaffController) UpdateStaff(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Staff ID")
	if !ok {
		return
	}

	var staff models.Staff
	if err := ctx.ShouldBindJSON(&staff); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid staff data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	staff.ID = id

	if err := c.staffService.UpdateStaff(ctx, &staff); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      staff,
		Timestamp: time.Now(),
	})
}

// DeleteStaff deletes a staff member
// @Summary Delete a staff member
// @Description Deletes a staff member. Related sponsorships are removed as well.
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Staff ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Staff member deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid staff ID format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Staff member not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /staff/{id} [delete]
func (c *StaffController) DeleteStaff(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Staff ID")
	if !ok {
		return
	}

	if err := c.staffService.DeleteStaff(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Staff member deleted successfully"},
		Timestamp: time.Now(),
	})
}
