package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/placement-portal/internal/app/models/dto"
	"github.com/campushq/placement-portal/internal/app/services"
	"github.com/campushq/placement-portal/internal/middleware"
)

// DashboardController handles dashboard endpoints
type DashboardController struct {
	dashboardService *services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetStats returns portal-wide counters
// @Summary Dashboard statistics
// @Description Returns aggregate counts of students, companies, drives and applications
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.DashboardStats} "Statistics retrieved"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /dashboard/stats [get]
func (c *DashboardController) GetStats(ctx *gin.Context) {
	stats, err := c.dashboardService.GetStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats, ""))
}
