package handler

import (
	"github.com/gin-gonic/gin"

	"sensor-ops/internal/dto"
	"sensor-ops/internal/service"
	"sensor-ops/pkg/responses"
	"sensor-ops/pkg/utils"
)

type ToolsHandler struct {
	toolsService service.ToolsService
}

func NewToolsHandler(toolsService service.ToolsService) *ToolsHandler {
	return &ToolsHandler{
		toolsService: toolsService,
	}
}

// Stock
// @Summary Equipment stock: total, borrowed, remaining per item
// @Tags tools
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.StockResponse
// @Router /api/v1/tools/stock [get]
func (h *ToolsHandler) Stock(c *gin.Context) {
	resp, err := h.toolsService.Stock(c.Request.Context())
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, resp)
}

// History
// @Summary Borrow/return log, newest first
// @Tags tools
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.ToolHistoryResponse
// @Router /api/v1/tools/history [get]
func (h *ToolsHandler) History(c *gin.Context) {
	resp, err := h.toolsService.History(c.Request.Context())
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, resp)
}

// RecordTransaction
// @Summary Record a borrow or return, one appended row per item
// @Tags tools
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.ToolTransactionRequest true "transaction"
// @Success 200 {object} dto.ToolTransactionResponse
// @Router /api/v1/tools/transactions [post]
func (h *ToolsHandler) RecordTransaction(c *gin.Context) {
	var req dto.ToolTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "invalid request", utils.FormatValidationError(err))
		return
	}

	resp, err := h.toolsService.RecordTransaction(c.Request.Context(), &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, resp)
}
