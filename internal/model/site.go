package model

// Site is one Master_Site row.
type Site struct {
	Name      string   `json:"name"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// HasCoordinates reports whether the site can be pinned on a map.
func (s Site) HasCoordinates() bool {
	return s.Latitude != nil && s.Longitude != nil
}
