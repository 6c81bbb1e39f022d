package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/longvh/admissions/internal/app/services"
	"github.com/longvh/admissions/internal/middleware"
)

// StatisticsController handles admin statistics operations
type StatisticsController struct {
	statisticsService services.StatisticsService
}

// NewStatisticsController creates a new StatisticsController
func NewStatisticsController(statisticsService services.StatisticsService) *StatisticsController {
	return &StatisticsController{statisticsService: statisticsService}
}

// GetOverview handles the statistics overview
// @Summary Get statistics overview
// @Description Computes application counts in total and grouped by status, school, major (top 10) and subject group, over an optional creation-date range
// @Tags admin
// @Produce json
// @Param dateFrom query string false "Inclusive lower bound on creation date (YYYY-MM-DD)"
// @Param dateTo query string false "Inclusive upper bound on creation date (YYYY-MM-DD)"
// @Success 200 {object} dto.OverviewStatisticsResponse "Statistics computed"
// @Failure 400 {object} dto.ErrorResponse "Invalid date"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/statistics/overview [get]
func (c *StatisticsController) GetOverview(ctx *gin.Context) {
	resp, err := c.statisticsService.GetOverview(ctx, ctx.Query("dateFrom"), ctx.Query("dateTo"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
