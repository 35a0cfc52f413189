// Package inventory reduces the borrow/return transaction log against
// the equipment catalog into per-item stock levels. The reduction is
// pure and idempotent; it is recomputed on every read.
package inventory

import (
	"strings"
)

// CatalogEntry is one Master_Equipment row after filtering.
type CatalogEntry struct {
	Name  string
	Total int
}

// Transaction is one Team_Tools log row as seen by the reducer. A row
// without a declared quantity moves one unit; a declared quantity is
// used as-is, so an explicit 0 moves nothing.
type Transaction struct {
	Equipment   string
	Action      string // free text containing a borrow or return marker
	Quantity    float64
	HasQuantity bool
}

// Stock is the reduced state of one catalog item.
type Stock struct {
	Name      string  `json:"name"`
	Total     int     `json:"total"`
	Borrowed  float64 `json:"borrowed"`  // signed running total, may be negative
	Remaining int     `json:"remaining"` // clamped at zero for display
}

// Markers configures the substring matching for transaction actions.
// Both the English and the local-language markers are checked.
type Markers struct {
	Borrow []string
	Return []string
}

// DefaultMarkers matches the vocabulary the log is written with.
var DefaultMarkers = Markers{
	Borrow: []string{"ยืม", "Borrow"},
	Return: []string{"คืน", "Return"},
}

// Reduce folds the transaction log over the catalog. Transactions for
// equipment not in the catalog are inert. The borrowed running total is
// exact signed arithmetic; only Remaining is clamped.
func Reduce(catalog []CatalogEntry, log []Transaction, markers Markers) []Stock {
	borrowed := make(map[string]float64, len(catalog))
	for _, entry := range catalog {
		borrowed[entry.Name] = 0
	}

	for _, txn := range log {
		if _, ok := borrowed[txn.Equipment]; !ok {
			continue
		}

		qty := 1.0
		if txn.HasQuantity {
			qty = txn.Quantity
		}

		switch {
		case containsAny(txn.Action, markers.Borrow):
			borrowed[txn.Equipment] += qty
		case containsAny(txn.Action, markers.Return):
			borrowed[txn.Equipment] -= qty
		}
	}

	stocks := make([]Stock, 0, len(catalog))
	for _, entry := range catalog {
		b := borrowed[entry.Name]
		remaining := int(float64(entry.Total) - b)
		if remaining < 0 {
			remaining = 0
		}
		stocks = append(stocks, Stock{
			Name:      entry.Name,
			Total:     entry.Total,
			Borrowed:  b,
			Remaining: remaining,
		})
	}
	return stocks
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
