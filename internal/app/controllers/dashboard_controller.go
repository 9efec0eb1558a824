package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wkalungi/sponsorbase/internal/app/models/dto"
	"github.com/wkalungi/sponsorbase/internal/app/services"
	"github.com/wkalungi/sponsorbase/internal/middleware"
)

// DashboardController serves the headline counts
type DashboardController struct {
	dashboardService services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// GetSummary retrieves dashboard counts
// @Summary Get dashboard summary
// @Description Retrieves the headline counts: children, sponsors, staff and active sponsorships
// @Tags dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardResponse} "Summary retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /dashboard [get]
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	summary, err := c.dashboardService.GetSummary(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      summary,
		Timestamp: time.Now(),
	})
}
