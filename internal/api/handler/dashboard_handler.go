package handler

import (
	"github.com/gin-gonic/gin"

	"sensor-ops/internal/dto"
	"sensor-ops/internal/service"
	"sensor-ops/pkg/responses"
	"sensor-ops/pkg/utils"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Overview
// @Summary Landing view: KPIs, PM status board, site map pins
// @Description Sections degrade independently; failed tab fetches come back as warnings
// @Tags dashboard
// @Produce json
// @Security ApiKeyAuth
// @Param filter query string false "tier filter" Enums(all, overdue, due_this_month, due_next_month, ok)
// @Success 200 {object} dto.DashboardResponse
// @Router /api/v1/dashboard [get]
func (h *DashboardHandler) Overview(c *gin.Context) {
	var query dto.DashboardQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "invalid query", utils.FormatValidationError(err))
		return
	}

	resp, err := h.dashboardService.Overview(c.Request.Context(), query.Filter)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, resp)
}
