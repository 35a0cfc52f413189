package handler

import (
	"github.com/gin-gonic/gin"

	"sensor-ops/internal/dto"
	"sensor-ops/internal/service"
	"sensor-ops/pkg/responses"
	"sensor-ops/pkg/utils"
)

type SiteHandler struct {
	siteService service.SiteService
}

func NewSiteHandler(siteService service.SiteService) *SiteHandler {
	return &SiteHandler{
		siteService: siteService,
	}
}

// ListNames
// @Summary Site name list from Master_Site
// @Tags sites
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} string
// @Router /api/v1/sites [get]
func (h *SiteHandler) ListNames(c *gin.Context) {
	names, err := h.siteService.ListNames(c.Request.Context())
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, names)
}

// Detail
// @Summary Per-site drill-down: schedule, SIM expiry, assets, issue log
// @Tags sites
// @Produce json
// @Security ApiKeyAuth
// @Param name query string true "site name"
// @Success 200 {object} dto.SiteDetailResponse
// @Router /api/v1/sites/detail [get]
func (h *SiteHandler) Detail(c *gin.Context) {
	var query dto.SiteDetailQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "invalid query", utils.FormatValidationError(err))
		return
	}

	resp, err := h.siteService.Detail(c.Request.Context(), query.Name)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, resp)
}

// PMPlanBoard
// @Summary All-sites PM plan with classification
// @Tags sites
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.PMPlanBoardResponse
// @Router /api/v1/sites/pm-plan [get]
func (h *SiteHandler) PMPlanBoard(c *gin.Context) {
	resp, err := h.siteService.PMPlanBoard(c.Request.Context())
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, resp)
}

// SetPMStatus
// @Summary Toggle a site's PM completion marker
// @Description Writes through the Apps Script endpoint and invalidates the cache
// @Tags sites
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.PMStatusUpdateRequest true "pm status update"
// @Success 200 {object} responses.Response
// @Router /api/v1/sites/pm-status [post]
func (h *SiteHandler) SetPMStatus(c *gin.Context) {
	var req dto.PMStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "invalid request", utils.FormatValidationError(err))
		return
	}

	if err := h.siteService.SetPMStatus(c.Request.Context(), &req); err != nil {
		responses.Error(c, err)
		return
	}

	responses.SuccessWithMessage(c, "pm status updated", nil)
}
