package service

import (
	"bytes"
	"context"

	"github.com/xuri/excelize/v2"

	pkgErrors "sensor-ops/pkg/responses"
)

type ExportService interface {
	PMStatusWorkbook(ctx context.Context) (*bytes.Buffer, error)
	StockWorkbook(ctx context.Context) (*bytes.Buffer, error)
}

type exportService struct {
	siteService  SiteService
	toolsService ToolsService
}

func NewExportService(siteService SiteService, toolsService ToolsService) ExportService {
	return &exportService{
		siteService:  siteService,
		toolsService: toolsService,
	}
}

// PMStatusWorkbook renders the classified PM board as an xlsx sheet.
func (s *exportService) PMStatusWorkbook(ctx context.Context) (*bytes.Buffer, error) {
	board, err := s.siteService.PMPlanBoard(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([][]interface{}, 0, len(board.Rows)+1)
	rows = append(rows, []interface{}{"Site", "Status", "Due", "Completed"})
	for _, row := range board.Rows {
		completed := ""
		if row.Completed {
			completed = "yes"
		}
		rows = append(rows, []interface{}{row.SiteName, row.Status, row.DueDate, completed})
	}
	return writeWorkbook("PM Status", rows)
}

// StockWorkbook renders the equipment stock table as an xlsx sheet.
func (s *exportService) StockWorkbook(ctx context.Context) (*bytes.Buffer, error) {
	stock, err := s.toolsService.Stock(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([][]interface{}, 0, len(stock.Items)+1)
	rows = append(rows, []interface{}{"Equipment", "Total", "Borrowed", "Remaining"})
	for _, item := range stock.Items {
		rows = append(rows, []interface{}{item.Name, item.Total, item.Borrowed, item.Remaining})
	}
	return writeWorkbook("Stock", rows)
}

func writeWorkbook(sheet string, rows [][]interface{}) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "failed to create sheet", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "failed to drop default sheet", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "failed to address cell", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "failed to write row", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "failed to encode workbook", err)
	}
	return buf, nil
}
