package repository

import (
	"context"
	"strings"

	"sensor-ops/internal/pkg/sheets"
	"sensor-ops/pkg/constants"
	"sensor-ops/pkg/responses"
)

// AssetRepository reads the Asset_Sensor tab. The tab's schema is the
// loosest in the spreadsheet, so rows come back as generic maps.
type AssetRepository interface {
	// ListBySite returns each matching row as column→value, with the
	// site column itself removed.
	ListBySite(ctx context.Context, siteName string) ([]map[string]string, error)
}

type assetRepository struct {
	loader TableLoader
}

func NewAssetRepository(loader TableLoader) AssetRepository {
	return &assetRepository{loader: loader}
}

func (r *assetRepository) ListBySite(ctx context.Context, siteName string) ([]map[string]string, error) {
	table, err := loadNormalized(ctx, r.loader, constants.SheetAssetSensor, 0)
	if err != nil {
		return nil, err
	}

	siteCol := findSiteColumn(table)
	if siteCol == "" {
		return nil, responses.New(responses.CodeSchemaError,
			"sheet \"Asset_Sensor\" has no site column (header containing \"ไซต์\" or \"Site\")")
	}

	var assets []map[string]string
	for _, row := range table.Rows {
		if row.GetOr(siteCol, "") != siteName {
			continue
		}
		asset := make(map[string]string, len(table.Headers))
		for _, h := range table.Headers {
			if h == siteCol {
				continue
			}
			asset[h] = row.GetOr(h, constants.AbsentValue)
		}
		assets = append(assets, asset)
	}
	return assets, nil
}

// findSiteColumn discovers the site column flexibly, matching the way
// the sheet has been read since before its headers settled.
func findSiteColumn(table *sheets.Table) string {
	for _, h := range table.Headers {
		if strings.Contains(h, "ไซต์") || strings.Contains(h, "Site") {
			return h
		}
	}
	return ""
}
