package repository

import (
	"context"

	"sensor-ops/internal/model"
	"sensor-ops/internal/pkg/sheets"
	"sensor-ops/pkg/constants"
	"sensor-ops/pkg/responses"
)

// PMRepository reads the PM_Plan tab.
type PMRepository interface {
	ListEntries(ctx context.Context) ([]model.PMPlanEntry, error)
	GetEntry(ctx context.Context, siteName string) (*model.PMPlanEntry, error)
	// RawTable returns the whole tab for the all-sites plan screen.
	RawTable(ctx context.Context) (*sheets.Table, error)
}

type pmRepository struct {
	loader TableLoader
}

func NewPMRepository(loader TableLoader) PMRepository {
	return &pmRepository{loader: loader}
}

var pmSlotColumns = []string{
	constants.ColPMMajor,
	constants.ColPMMinor1,
	constants.ColPMMinor2,
	constants.ColPMMinor3,
}

func (r *pmRepository) ListEntries(ctx context.Context) ([]model.PMPlanEntry, error) {
	table, err := loadNormalized(ctx, r.loader, constants.SheetPMPlan, 0)
	if err != nil {
		return nil, err
	}

	if missing := table.MissingColumns(constants.ColSiteName); len(missing) > 0 {
		return nil, schemaError(constants.SheetPMPlan, missing, table)
	}

	entries := make([]model.PMPlanEntry, 0, len(table.Rows))
	for _, row := range table.Rows {
		name, ok := row.Get(constants.ColSiteName)
		if !ok {
			continue
		}
		entries = append(entries, entryFromRow(name, row))
	}
	return entries, nil
}

func (r *pmRepository) GetEntry(ctx context.Context, siteName string) (*model.PMPlanEntry, error) {
	entries, err := r.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].SiteName == siteName {
			return &entries[i], nil
		}
	}
	return nil, responses.ErrSiteNotFound
}

func (r *pmRepository) RawTable(ctx context.Context) (*sheets.Table, error) {
	return loadNormalized(ctx, r.loader, constants.SheetPMPlan, 0)
}

func entryFromRow(name string, row sheets.Row) model.PMPlanEntry {
	entry := model.PMPlanEntry{
		SiteName:   name,
		Completion: row.GetOr(constants.ColPMStatus, ""),
		SIMExpiry:  row.GetOr(constants.ColSIMExpiry, constants.AbsentValue),
		Note:       row.GetOr(constants.ColPMNote, constants.AbsentValue),
	}
	for i, col := range pmSlotColumns {
		entry.Slots[i] = model.ScheduleSlot{
			Label: col,
			Value: row.GetOr(col, ""),
		}
	}
	return entry
}
