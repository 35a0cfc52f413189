package dto

// SiteDetailQuery selects the site to inspect.
type SiteDetailQuery struct {
	Name string `form:"name" binding:"required"`
}

// SiteDetailResponse is the per-site drill-down payload.
type SiteDetailResponse struct {
	SiteName  string              `json:"site_name"`
	Completed bool                `json:"completed"`
	Schedule  []ScheduleRow       `json:"schedule"`
	SIMExpiry string              `json:"sim_expiry,omitempty"`
	Assets    []map[string]string `json:"assets"`
	IssueLog  []IssueEntry        `json:"issue_log"`
	Warnings  []string            `json:"warnings,omitempty"`
}

// ScheduleRow is one scheduled PM slot of the site.
type ScheduleRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// IssueEntry is one line of the site's issue history: the PM_Plan note
// plus past tasks recorded for the site.
type IssueEntry struct {
	Date   string `json:"date"`
	Detail string `json:"detail"`
	Status string `json:"status,omitempty"`
	Source string `json:"source"`
}

// PMPlanBoardResponse is the all-sites PM_Plan board.
type PMPlanBoardResponse struct {
	Rows     []PMPlanBoardRow `json:"rows"`
	Warnings []string         `json:"warnings,omitempty"`
}

// PMPlanBoardRow is one PM_Plan row with its classification attached.
type PMPlanBoardRow struct {
	SiteName  string        `json:"site_name"`
	Slots     []ScheduleRow `json:"slots"`
	Completed bool          `json:"completed"`
	Status    string        `json:"status"`
	Color     string        `json:"color"`
	DueDate   string        `json:"due_date"`
}

// PMStatusUpdateRequest toggles a site's completion marker.
type PMStatusUpdateRequest struct {
	SiteName string `json:"site_name" binding:"required"`
	Done     bool   `json:"done"`
}
