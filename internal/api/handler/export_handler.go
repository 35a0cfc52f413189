package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sensor-ops/internal/service"
	"sensor-ops/pkg/responses"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	exportService service.ExportService
}

func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

// PMStatus
// @Summary Download the classified PM board as xlsx
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security ApiKeyAuth
// @Success 200 {file} binary
// @Router /api/v1/export/pm-status.xlsx [get]
func (h *ExportHandler) PMStatus(c *gin.Context) {
	buf, err := h.exportService.PMStatusWorkbook(c.Request.Context())
	if err != nil {
		responses.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="pm-status.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// Stock
// @Summary Download the equipment stock table as xlsx
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security ApiKeyAuth
// @Success 200 {file} binary
// @Router /api/v1/export/stock.xlsx [get]
func (h *ExportHandler) Stock(c *gin.Context) {
	buf, err := h.exportService.StockWorkbook(c.Request.Context())
	if err != nil {
		responses.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="stock.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
