package dto

// TeamProfilesResponse lists the crew with their current load.
type TeamProfilesResponse struct {
	Members  []TeamMemberProfile `json:"members"`
	Warnings []string            `json:"warnings,omitempty"`
}

// TeamMemberProfile is one Team_Profile row joined with the member's
// active task count from Task & Workload.
type TeamMemberProfile struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Skill       string `json:"skill"`
	Phone       string `json:"phone"`
	Certificate string `json:"certificate"`
	ActiveTasks int    `json:"active_tasks"`
}
