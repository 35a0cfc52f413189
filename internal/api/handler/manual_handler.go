package handler

import (
	"github.com/gin-gonic/gin"

	"sensor-ops/internal/service"
	"sensor-ops/pkg/responses"
)

type ManualHandler struct {
	manualService service.ManualService
}

func NewManualHandler(manualService service.ManualService) *ManualHandler {
	return &ManualHandler{
		manualService: manualService,
	}
}

// List
// @Summary Document folders from Manual_Docs
// @Tags manuals
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.ManualsResponse
// @Router /api/v1/manuals [get]
func (h *ManualHandler) List(c *gin.Context) {
	resp, err := h.manualService.List(c.Request.Context())
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, resp)
}
