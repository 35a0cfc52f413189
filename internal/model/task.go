package model

import "strings"

// Task is one Task & Workload row. The tab is an append-only log
// identified by row order; status changes arrive as new rows.
type Task struct {
	Scheduled string `json:"scheduled"` // วันที่เข้าทำ
	SiteName  string `json:"site_name"`
	Detail    string `json:"detail"`
	Type      string `json:"type"`
	Status    string `json:"status"` // Planning, In progress, Problem, Complete
	Assignee  string `json:"assignee"`
	Helpers   string `json:"helpers"` // comma-joined helper names
}

// IsActive reports whether the task still counts toward workload.
func (t Task) IsActive() bool {
	return t.Status != "Complete"
}

// Involves reports whether the named person owns the task or appears in
// the helper list. Helper matching is by substring, exactly as the
// sheet has always been read; "Heartbreak" does contain "Heart".
func (t Task) Involves(name string) bool {
	if name == "" {
		return false
	}
	return t.Assignee == name || strings.Contains(t.Helpers, name)
}
