package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quillacademy/api/internal/app/services"
	"github.com/quillacademy/api/internal/middleware"
)

// StatsController handles the aggregate dashboard counts
type StatsController struct {
	statsService services.StatsService
}

// NewStatsController creates a new StatsController
func NewStatsController(statsService services.StatsService) *StatsController {
	return &StatsController{
		statsService: statsService,
	}
}

// GetStats returns the user, class, enrollment and assignment counts
// @Summary Aggregate counts
// @Tags stats
// @Produce json
// @Success 200 {object} dto.StatsResponse "Aggregate counts"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /stats [get]
func (c *StatsController) GetStats(ctx *gin.Context) {
	stats, err := c.statsService.GetStats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}
