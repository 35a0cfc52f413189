// Package pmstatus classifies preventive-maintenance schedules into
// due-ness tiers. The input is one PM_Plan row's four schedule slots
// plus the current calendar month; the output drives both the status
// board and the map pin colors.
package pmstatus

import (
	"strings"
)

// Tier is a due-ness classification. Lower value means higher
// precedence: once a higher-precedence tier is found for a site, lower
// ones never overwrite it.
type Tier int

const (
	TierOverdue Tier = iota + 1
	TierDueThisMonth
	TierDueNextMonth
	TierOkOrDone
)

// String returns the tier's English label.
func (t Tier) String() string {
	switch t {
	case TierOverdue:
		return "Overdue"
	case TierDueThisMonth:
		return "DueThisMonth"
	case TierDueNextMonth:
		return "DueNextMonth"
	default:
		return "OkOrDone"
	}
}

// Color returns the map pin color for the tier.
func (t Tier) Color() string {
	switch t {
	case TierOverdue:
		return "red"
	case TierDueThisMonth:
		return "orange"
	case TierDueNextMonth:
		return "beige"
	default:
		return "green"
	}
}

// Result is the classification of one site.
type Result struct {
	Tier    Tier
	Color   string
	DueDate string // representative slot string, "Completed" or "-"
}

// Classifier evaluates schedule slots against a fixed ordered month
// vocabulary. Index i in the vocabulary is calendar month i+1.
type Classifier struct {
	months     []string
	doneMarker string
}

// NewClassifier builds a classifier over the given vocabulary and
// completion marker substring.
func NewClassifier(months []string, doneMarker string) *Classifier {
	return &Classifier{months: months, doneMarker: doneMarker}
}

// Classify inspects a site's completion field and schedule slots.
// currentMonth is 1-12.
//
// The completion marker short-circuits everything. Otherwise each
// non-empty, non-"-" slot contributes a candidate tier derived from its
// leading whitespace-delimited token: exact vocabulary match only,
// unmatched tokens are inert. December wraps to January for the
// next-month tier. The highest-precedence candidate wins and its
// original slot string becomes the representative due date.
func (c *Classifier) Classify(completion string, slots []string, currentMonth int) Result {
	if strings.Contains(completion, c.doneMarker) {
		return Result{Tier: TierOkOrDone, Color: TierOkOrDone.Color(), DueDate: "Completed"}
	}

	best := Result{Tier: TierOkOrDone, Color: TierOkOrDone.Color(), DueDate: "-"}

	for _, slot := range slots {
		slot = strings.TrimSpace(slot)
		if slot == "" || slot == "-" {
			continue
		}

		idx := c.monthIndex(leadingToken(slot))
		if idx == 0 {
			continue
		}

		tier := tierFor(idx, currentMonth)
		if tier < best.Tier {
			best = Result{Tier: tier, Color: tier.Color(), DueDate: slot}
		}
	}

	return best
}

// tierFor maps a slot month against the current month.
func tierFor(slotMonth, currentMonth int) Tier {
	switch {
	case slotMonth < currentMonth:
		return TierOverdue
	case slotMonth == currentMonth:
		return TierDueThisMonth
	case slotMonth == currentMonth+1 || (currentMonth == 12 && slotMonth == 1):
		return TierDueNextMonth
	default:
		return TierOkOrDone
	}
}

// monthIndex returns the 1-based calendar month for a vocabulary token,
// or 0 when the token is not in the vocabulary.
func (c *Classifier) monthIndex(token string) int {
	for i, m := range c.months {
		if m == token {
			return i + 1
		}
	}
	return 0
}

func leadingToken(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}
