package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fergood-2703/SIA-FCP/internal/app/models/dto"
	"github.com/fergood-2703/SIA-FCP/internal/app/services"
	"github.com/fergood-2703/SIA-FCP/internal/middleware"
)

// DashboardController handles the dashboard aggregation endpoints
type DashboardController struct {
	dashboardService services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetMetrics retrieves the headline entity counts
func (c *DashboardController) GetMetrics(ctx *gin.Context) {
	metrics, err := c.dashboardService.GetMetrics(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(metrics))
}

// GetRecentCourses retrieves the latest registered courses
func (c *DashboardController) GetRecentCourses(ctx *gin.Context) {
	recent, err := c.dashboardService.GetRecentCourses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(recent))
}

// GetCharts retrieves the student distributions and the top-courses ranking
func (c *DashboardController) GetCharts(ctx *gin.Context) {
	charts, err := c.dashboardService.GetCharts(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(charts))
}
