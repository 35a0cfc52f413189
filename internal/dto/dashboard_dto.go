package dto

// DashboardQuery filters the PM status table by tier.
type DashboardQuery struct {
	Filter string `form:"filter" binding:"omitempty,oneof=all overdue due_this_month due_next_month ok"`
}

// DashboardResponse is the landing view payload. Each section degrades
// independently: a failed tab fetch empties the section and appends a
// warning instead of failing the whole view.
type DashboardResponse struct {
	KPI      DashboardKPI  `json:"kpi"`
	PMStatus []PMStatusRow `json:"pm_status"`
	Sites    []string      `json:"sites"`
	MapPins  []MapPin      `json:"map_pins"`
	Warnings []string      `json:"warnings,omitempty"`
}

// DashboardKPI holds the headline numbers.
type DashboardKPI struct {
	SiteCount       int    `json:"site_count"`
	ActiveTaskCount int    `json:"active_task_count"`
	CurrentMonth    string `json:"current_month"`
}

// PMStatusRow is one classified PM_Plan entry.
type PMStatusRow struct {
	SiteName string `json:"site_name"`
	Status   string `json:"status"`
	Color    string `json:"color"`
	DueDate  string `json:"due_date"`
}

// MapPin is one site marker. Color follows the site's PM status and
// falls back to gray when the site has no PM_Plan row.
type MapPin struct {
	SiteName  string  `json:"site_name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Color     string  `json:"color"`
}
