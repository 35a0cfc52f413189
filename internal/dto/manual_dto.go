package dto

// ManualsResponse lists the document folders grouped by category.
type ManualsResponse struct {
	Docs     []ManualDocView `json:"docs"`
	Warnings []string        `json:"warnings,omitempty"`
}

// ManualDocView is one Manual_Docs row with its cleaned link. Rows
// whose link field holds no usable value come back with an empty link.
type ManualDocView struct {
	Category string `json:"category"`
	Detail   string `json:"detail,omitempty"`
	Link     string `json:"link,omitempty"`
}
