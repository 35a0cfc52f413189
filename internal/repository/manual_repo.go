package repository

import (
	"context"

	"sensor-ops/internal/model"
	"sensor-ops/pkg/constants"
)

// ManualRepository reads the Manual_Docs tab.
type ManualRepository interface {
	ListDocs(ctx context.Context) ([]model.ManualDoc, error)
}

type manualRepository struct {
	loader TableLoader
}

func NewManualRepository(loader TableLoader) ManualRepository {
	return &manualRepository{loader: loader}
}

func (r *manualRepository) ListDocs(ctx context.Context) ([]model.ManualDoc, error) {
	table, err := loadNormalized(ctx, r.loader, constants.SheetManualDocs, 0)
	if err != nil {
		return nil, err
	}

	if missing := table.MissingColumns(constants.ColDocCategory); len(missing) > 0 {
		return nil, schemaError(constants.SheetManualDocs, missing, table)
	}

	docs := make([]model.ManualDoc, 0, len(table.Rows))
	for _, row := range table.Rows {
		category, ok := row.Get(constants.ColDocCategory)
		if !ok {
			continue
		}
		link := row.GetOr(constants.ColDocFolderLink, "")
		if link == "" {
			link = row.GetOr(constants.ColDocFileLink, "")
		}
		docs = append(docs, model.ManualDoc{
			Category: category,
			Detail:   row.GetOr(constants.ColDocDetail, ""),
			Link:     link,
		})
	}
	return docs, nil
}
