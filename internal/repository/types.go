package repository

import (
	"context"
	"fmt"
	"time"

	"sensor-ops/internal/pkg/sheets"
	"sensor-ops/pkg/responses"
)

// TableLoader is the read side of the sheets client. Repositories
// depend on this interface so tests can substitute fixture tables.
type TableLoader interface {
	Load(ctx context.Context, tab string, ttl time.Duration) (*sheets.Table, error)
	Refresh(ctx context.Context, tab string) (*sheets.Table, error)
	InvalidateAll()
}

// loadNormalized fetches a tab and applies the header normalization
// every consumer owes the loader (trim, strip embedded newlines).
func loadNormalized(ctx context.Context, loader TableLoader, tab string, ttl time.Duration) (*sheets.Table, error) {
	table, err := loader.Load(ctx, tab, ttl)
	if err != nil {
		return nil, responses.Wrap(responses.CodeSheetError,
			fmt.Sprintf("load sheet %q", tab), err)
	}
	table.NormalizeHeaders()
	return table, nil
}

// schemaError reports missing expected columns together with the
// columns actually present, to aid diagnosis of upstream sheet edits.
func schemaError(tab string, missing []string, table *sheets.Table) error {
	return responses.New(responses.CodeSchemaError,
		fmt.Sprintf("sheet %q is missing columns %v; columns present: %v",
			tab, missing, table.Headers))
}
