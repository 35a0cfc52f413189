package dto

// TaskCreateRequest appends one row to Task & Workload. The server
// stamps the creation time; dates are dd/mm/yyyy as the sheet stores
// them.
type TaskCreateRequest struct {
	SiteName  string   `json:"site_name" binding:"required"`
	Detail    string   `json:"detail" binding:"required"`
	Type      string   `json:"type" binding:"required"`
	StartDate string   `json:"start_date" binding:"required"`
	EndDate   string   `json:"end_date" binding:"required"`
	Status    string   `json:"status" binding:"required,oneof=Planning 'In progress' Problem Complete"`
	Assignee  string   `json:"assignee" binding:"required"`
	Helpers   []string `json:"helpers"`
}

// TaskRow is one Task & Workload row as the views render it.
type TaskRow struct {
	Scheduled string `json:"scheduled"`
	SiteName  string `json:"site_name"`
	Detail    string `json:"detail"`
	Type      string `json:"type"`
	Status    string `json:"status"`
	Assignee  string `json:"assignee"`
	Helpers   string `json:"helpers,omitempty"`
}

// MyWorkloadResponse lists the caller's tasks, split by activity.
type MyWorkloadResponse struct {
	Active   []TaskRow `json:"active"`
	Done     []TaskRow `json:"done"`
	Warnings []string  `json:"warnings,omitempty"`
}

// TeamWorkloadQuery filters the team view.
type TeamWorkloadQuery struct {
	Status []string `form:"status"`
	Person string   `form:"person"`
}

// TeamWorkloadResponse is the team chart plus the filtered task table.
type TeamWorkloadResponse struct {
	Counts   []PersonTaskCount `json:"counts"`
	Tasks    []TaskRow         `json:"tasks"`
	Warnings []string          `json:"warnings,omitempty"`
}

// PersonTaskCount is one bar of the active-task chart: primary
// assignees only, Complete excluded.
type PersonTaskCount struct {
	Person string `json:"person"`
	Count  int    `json:"count"`
}
