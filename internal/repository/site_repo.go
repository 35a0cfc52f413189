package repository

import (
	"context"
	"strconv"

	"github.com/samber/lo"

	"sensor-ops/internal/model"
	"sensor-ops/internal/pkg/sheets"
	"sensor-ops/pkg/constants"
)

// SiteRepository reads the Master_Site tab.
type SiteRepository interface {
	ListSites(ctx context.Context) ([]model.Site, error)
	ListSiteNames(ctx context.Context) ([]string, error)
}

type siteRepository struct {
	loader TableLoader
}

func NewSiteRepository(loader TableLoader) SiteRepository {
	return &siteRepository{loader: loader}
}

func (r *siteRepository) ListSites(ctx context.Context) ([]model.Site, error) {
	table, err := loadNormalized(ctx, r.loader, constants.SheetMasterSite, 0)
	if err != nil {
		return nil, err
	}

	if missing := table.MissingColumns(constants.ColMasterSiteName); len(missing) > 0 {
		return nil, schemaError(constants.SheetMasterSite, missing, table)
	}

	sites := make([]model.Site, 0, len(table.Rows))
	for _, row := range table.Rows {
		name, ok := row.Get(constants.ColMasterSiteName)
		if !ok {
			continue
		}
		sites = append(sites, model.Site{
			Name:      name,
			Latitude:  parseCoord(row, constants.ColLatitude),
			Longitude: parseCoord(row, constants.ColLongitude),
		})
	}
	return sites, nil
}

func (r *siteRepository) ListSiteNames(ctx context.Context) ([]string, error) {
	sites, err := r.ListSites(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Uniq(lo.Map(sites, func(s model.Site, _ int) string { return s.Name })), nil
}

func parseCoord(row sheets.Row, col string) *float64 {
	v, ok := row.Get(col)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}
