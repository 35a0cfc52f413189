package repository

import (
	"context"
	"strconv"

	"sensor-ops/internal/model"
	"sensor-ops/pkg/constants"
)

// EquipmentRepository reads the Master_Equipment catalog and the
// Team_Tools borrow/return log.
type EquipmentRepository interface {
	ListCatalog(ctx context.Context) ([]model.EquipmentItem, error)
	ListTransactions(ctx context.Context) ([]model.ToolTransaction, error)
}

type equipmentRepository struct {
	loader TableLoader
}

func NewEquipmentRepository(loader TableLoader) EquipmentRepository {
	return &equipmentRepository{loader: loader}
}

func (r *equipmentRepository) ListCatalog(ctx context.Context) ([]model.EquipmentItem, error) {
	table, err := loadNormalized(ctx, r.loader, constants.SheetMasterEquipment, 0)
	if err != nil {
		return nil, err
	}

	if missing := table.MissingColumns(constants.ColEquipment, constants.ColVolume); len(missing) > 0 {
		return nil, schemaError(constants.SheetMasterEquipment, missing, table)
	}

	items := make([]model.EquipmentItem, 0, len(table.Rows))
	for _, row := range table.Rows {
		name, ok := row.Get(constants.ColEquipment)
		if !ok {
			continue
		}
		volume, err := strconv.ParseFloat(row.GetOr(constants.ColVolume, ""), 64)
		if err != nil || volume <= 0 {
			// Non-numeric or non-positive totals never enter the catalog.
			continue
		}
		items = append(items, model.EquipmentItem{Name: name, Total: int(volume)})
	}
	return items, nil
}

func (r *equipmentRepository) ListTransactions(ctx context.Context) ([]model.ToolTransaction, error) {
	table, err := loadNormalized(ctx, r.loader, constants.SheetTeamTools, 0)
	if err != nil {
		return nil, err
	}

	// The log predates its own quantity column: equipment and action
	// are addressed positionally, quantity by name when present.
	hasQty := table.HasColumn(constants.ColQuantity)

	txns := make([]model.ToolTransaction, 0, len(table.Rows))
	for _, row := range table.Rows {
		txn := model.ToolTransaction{
			Timestamp: row.Index(constants.ToolsIdxTimestamp),
			Borrower:  row.Index(constants.ToolsIdxBorrower),
			Equipment: row.Index(constants.ToolsIdxEquipment),
			SiteUsed:  row.Index(constants.ToolsIdxSite),
			Action:    row.Index(constants.ToolsIdxAction),
		}
		if hasQty {
			if qty, err := strconv.ParseFloat(row.GetOr(constants.ColQuantity, ""), 64); err == nil {
				txn.Quantity = qty
				txn.HasQuantity = true
			}
		}
		txns = append(txns, txn)
	}
	return txns, nil
}
