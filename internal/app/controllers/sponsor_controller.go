package controllers

import (
	"net/http"
	"time"

	"github.com/wkalungi/sponsorbase/internal/app/models"
	"github.com/wkalungi/sponsorbase/internal/app/models/dto"
	"github.com/wkalungi/sponsorbase/internal/app/services"
	"github.com/wkalungi/sponsorbase/internal/middleware"
	"github.com/wkalungi/sponsorbase/internal/pkg/helpers"

	"github.com/gin-gonic/gin"
)

// SponsorController handles sponsor-related operations
type SponsorController struct {
	sponsorService services.SponsorService
}

// NewSponsorController creates a new SponsorController
func NewSponsorController(sponsorService services.SponsorService) *SponsorController {
	return &SponsorController{sponsorService: sponsorService}
}

// CreateSponsor handles sponsor registration
// @Summary Register a sponsor
// @Description Registers a new sponsor
// @Tags sponsors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Sponsor true "Sponsor information"
// @Success 201 {object} dto.APIResponse{data=dto.SponsorResponse} "Sponsor registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sponsors [post]
func (c *SponsorController) CreateSponsor(ctx *gin.Context) {
	var sponsor models.Sponsor
	if err := ctx.ShouldBindJSON(&sponsor); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid sponsor data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	created, err := c.sponsorService.CreateSponsor(ctx, &sponsor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.FromSponsor(created),
		Timestamp: time.Now(),
	})
}

// GetSponsorByID retrieves a sponsor by ID
// @Summary Get sponsor details
// @Description Retrieves a sponsor by its ID
// @Tags sponsors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Sponsor ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SponsorResponse} "Sponsor retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid sponsor ID format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Sponsor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sponsors/{id} [get]
func (c *SponsorController) GetSponsorByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Sponsor ID")
	if !ok {
		return
	}

	sponsor, err := c.sponsorService.GetSponsorByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromSponsor(sponsor),
		Timestamp: time.Now(),
	})
}

// ListSponsors retrieves a paginated list of sponsors
// @Summary List sponsors
// @Description Retrieves sponsors with optional name search and pagination
// @Tags sponsors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param search query string false "Name substring to search for"
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.SponsorListResponse} "Sponsors retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sponsors [get]
func (c *SponsorController) ListSponsors(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	search := ctx.Query("search")

	sponsors, total, err := c.sponsorService.ListSponsors(ctx, search, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SponsorListResponse{
			Sponsors:   dto.FromSponsors(sponsors),
			Pagination: helpers.NewPaginationInfo(total, page, size),
		},
		Timestamp: time.Now(),
	})
}

// UpdateSponsor updates an existing sponsor
// @Summary Update a sponsor
// @Description Updates an existing sponsor with new information
// @Tags sponsors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Sponsor ID" Format(int64) minimum(1)
// @Param request body models.Sponsor true "Updated sponsor information"
// @Success 200 {object} dto.APIResponse{data=dto.SponsorResponse} "Sponsor updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Sponsor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sponsors/{id} [put]
func (c *SponsorController) UpdateSponsor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Sponsor ID")
	if !ok {
		return
	}

	var sponsor models.Sponsor
	if err := ctx.ShouldBindJSON(&sponsor); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid sponsor data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	sponsor.ID = id

	if err := c.sponsorService.UpdateSponsor(ctx, &sponsor); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromSponsor(&sponsor),
		Timestamp: time.Now(),
	})
}

// DeleteSponsor deletes a sponsor
// @Summary Delete a sponsor
// @Description Deletes a sponsor. Related sponsorships and departure records are removed as well.
// @Tags sponsors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Sponsor ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Sponsor deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid sponsor ID format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Sponsor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sponsors/{id} [delete]
func (c *SponsorController) DeleteSponsor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Sponsor ID")
	if !ok {
		return
	}

	if err := c.sponsorService.DeleteSponsor(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Sponsor deleted successfully"},
		Timestamp: time.Now(),
	})
}

// DepartSponsor records a sponsor's departure
// @Summary Record sponsor departure
// @Description Marks the sponsor departed and records the reason and date
// @Tags sponsors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Sponsor ID" Format(int64) minimum(1)
// @Param request body dto.DepartSponsorRequest true "Departure information"
// @Success 200 {object} dto.APIResponse{data=models.SponsorDeparture} "Departure recorded successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Sponsor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sponsors/{id}/departure [post]
func (c *SponsorController) DepartSponsor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Sponsor ID")
	if !ok {
		return
	}

	var req dto.DepartSponsorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid departure data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	departure := &models.SponsorDeparture{
		SponsorID:       id,
		DepartureReason: req.DepartureReason,
	}
	if req.DepartureDate != "" {
		date, err := time.Parse("2006-01-02", req.DepartureDate)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid departure date").
				WithField("departureDate").
				WithDetails("Date must be in YYYY-MM-DD format")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		departure.DepartureDate = &date
	}

	recorded, err := c.sponsorService.DepartSponsor(ctx, departure)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      recorded,
		Timestamp: time.Now(),
	})
}

// ListDepartures retrieves a sponsor's departure history
// @Summary List sponsor departures
// @Description Retrieves a sponsor's departure records, newest first
// @Tags sponsors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Sponsor ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.SponsorDeparture} "Departures retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid sponsor ID format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Sponsor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sponsors/{id}/departures [get]
func (c *SponsorController) ListDepartures(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Sponsor ID")
	if !ok {
		return
	}

	departures, err := c.sponsorService.ListDepartures(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      departures,
		Timestamp: time.Now(),
	})
}
