package service

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"sensor-ops/internal/core/inventory"
	"sensor-ops/internal/dto"
	"sensor-ops/internal/pkg/logger"
	"sensor-ops/internal/pkg/sheets"
	"sensor-ops/internal/repository"
	"sensor-ops/pkg/constants"
	pkgErrors "sensor-ops/pkg/responses"
)

type ToolsService interface {
	Stock(ctx context.Context) (*dto.StockResponse, error)
	History(ctx context.Context) (*dto.ToolHistoryResponse, error)
	RecordTransaction(ctx context.Context, req *dto.ToolTransactionRequest) (*dto.ToolTransactionResponse, error)
}

type toolsService struct {
	equipmentRepo repository.EquipmentRepository
	writer        *sheets.Writer
	now           func() time.Time
}

func NewToolsService(equipmentRepo repository.EquipmentRepository, writer *sheets.Writer) ToolsService {
	return &toolsService{
		equipmentRepo: equipmentRepo,
		writer:        writer,
		now:           sheetNow,
	}
}

// Stock replays the Team_Tools log over the Master_Equipment catalog.
func (s *toolsService) Stock(ctx context.Context) (*dto.StockResponse, error) {
	catalog, err := s.equipmentRepo.ListCatalog(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.StockResponse{Items: []dto.StockItem{}}
	transactions, err := s.equipmentRepo.ListTransactions(ctx)
	if err != nil {
		logger.Warn("tools: transaction log unavailable, stock shows catalog totals", zap.Error(err))
		resp.Warnings = append(resp.Warnings, "transaction log unavailable: "+err.Error())
		transactions = nil
	}

	entries := make([]inventory.CatalogEntry, 0, len(catalog))
	for _, item := range catalog {
		entries = append(entries, inventory.CatalogEntry{Name: item.Name, Total: item.Total})
	}
	log := make([]inventory.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		log = append(log, inventory.Transaction{
			Equipment:   tx.Equipment,
			Action:      tx.Action,
			Quantity:    tx.Quantity,
			HasQuantity: tx.HasQuantity,
		})
	}

	for _, stock := range inventory.Reduce(entries, log, inventory.DefaultMarkers) {
		resp.Items = append(resp.Items, dto.StockItem{
			Name:      stock.Name,
			Total:     stock.Total,
			Borrowed:  stock.Borrowed,
			Remaining: stock.Remaining,
		})
	}
	return resp, nil
}

// History returns the raw Team_Tools log, newest first.
func (s *toolsService) History(ctx context.Context) (*dto.ToolHistoryResponse, error) {
	transactions, err := s.equipmentRepo.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.ToolHistoryResponse{Entries: make([]dto.ToolHistoryEntry, 0, len(transactions))}
	for i := len(transactions) - 1; i >= 0; i-- {
		tx := transactions[i]
		resp.Entries = append(resp.Entries, dto.ToolHistoryEntry{
			Timestamp: tx.Timestamp,
			Borrower:  tx.Borrower,
			Equipment: tx.Equipment,
			SiteUsed:  tx.SiteUsed,
			Action:    tx.Action,
			Quantity:  tx.Quantity,
		})
	}
	return resp, nil
}

// RecordTransaction appends one Team_Tools row per item. A mid-batch
// write failure stops the loop; the response reports how many rows the
// endpoint accepted so the caller can retry the rest.
func (s *toolsService) RecordTransaction(ctx context.Context, req *dto.ToolTransactionRequest) (*dto.ToolTransactionResponse, error) {
	timestamp := s.now().Format(constants.SheetTimestampLayout)
	resp := &dto.ToolTransactionResponse{Requested: len(req.Items)}

	for _, item := range req.Items {
		row := []string{
			timestamp,
			req.Borrower,
			item.Equipment,
			req.SiteUsed,
			req.Action,
			strconv.FormatFloat(item.Quantity, 'f', -1, 64),
		}
		if err := s.writer.Append(ctx, constants.SheetTeamTools, row); err != nil {
			if resp.Accepted == 0 {
				return nil, pkgErrors.Wrap(pkgErrors.CodeWriteError, "failed to record transaction", err)
			}
			logger.Warn("tools: partial transaction batch",
				zap.Int("accepted", resp.Accepted),
				zap.Int("requested", resp.Requested),
				zap.Error(err))
			return resp, nil
		}
		resp.Accepted++
	}
	return resp, nil
}
