package model

import "strings"

// PMPlanEntry is one PM_Plan row: up to four schedule slots, the
// completion field, the SIM expiry date and a free-text note. A site
// has at most one entry.
type PMPlanEntry struct {
	SiteName   string
	Slots      [4]ScheduleSlot // PM ใหญ่, PM ย่อย 1-3, in column order
	Completion string          // raw สถานะ PM value
	SIMExpiry  string          // "-" when absent
	Note       string          // "-" when absent
}

// ScheduleSlot is one schedule column value with its column label.
type ScheduleSlot struct {
	Label string `json:"label"`
	Value string `json:"value"` // free text, "-" or empty means unscheduled
}

// IsScheduled reports whether the slot carries a value worth showing.
func (s ScheduleSlot) IsScheduled() bool {
	v := strings.TrimSpace(s.Value)
	return v != "" && v != "-" && !strings.EqualFold(v, "nan")
}

// SlotValues returns the four raw slot strings in column order, for the
// classifier.
func (e PMPlanEntry) SlotValues() []string {
	values := make([]string, 0, len(e.Slots))
	for _, s := range e.Slots {
		values = append(values, s.Value)
	}
	return values
}

// ScheduledSlots returns only the slots that carry a schedule, for the
// site detail view.
func (e PMPlanEntry) ScheduledSlots() []ScheduleSlot {
	var out []ScheduleSlot
	for _, s := range e.Slots {
		if s.IsScheduled() {
			out = append(out, s)
		}
	}
	return out
}

// HasSIMExpiry reports whether the SIM expiry warning should show.
func (e PMPlanEntry) HasSIMExpiry() bool {
	return e.SIMExpiry != "" && e.SIMExpiry != "-" && !strings.EqualFold(e.SIMExpiry, "nan")
}

// HasNote reports whether the plan note should show in the issue log.
func (e PMPlanEntry) HasNote() bool {
	return e.Note != "" && e.Note != "-" && !strings.EqualFold(e.Note, "nan")
}
