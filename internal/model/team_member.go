package model

// TeamMember is one Team_Profile row.
type TeamMember struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Skill       string `json:"skill"`
	Phone       string `json:"phone"`
	Certificate string `json:"certificate"`
}
