package model

import "strings"

// ManualDoc is one Manual_Docs row: a document folder with a category
// label and an optional link.
type ManualDoc struct {
	Category string `json:"category"`
	Detail   string `json:"detail,omitempty"`
	Link     string `json:"link,omitempty"`
}

// NormalizedLink applies the sheet's link hygiene rules: trim, treat
// anything longer than five characters as a link, and default the
// scheme to https when missing.
func (d ManualDoc) NormalizedLink() string {
	link := strings.TrimSpace(d.Link)
	if link == "" || strings.EqualFold(link, "nan") || len(link) <= 5 {
		return ""
	}
	if !strings.HasPrefix(link, "http") {
		link = "https://" + link
	}
	return link
}
