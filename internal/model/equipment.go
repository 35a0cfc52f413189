package model

// EquipmentItem is one Master_Equipment row after filtering: rows with
// a non-numeric or non-positive Volume never make it into the catalog.
type EquipmentItem struct {
	Name  string `json:"name"`
	Total int    `json:"total"`
}

// ToolTransaction is one Team_Tools log row. HasQuantity distinguishes
// a declared quantity (including an explicit 0) from rows written before
// the quantity column existed.
type ToolTransaction struct {
	Timestamp   string  `json:"timestamp"`
	Borrower    string  `json:"borrower"`
	Equipment   string  `json:"equipment"`
	SiteUsed    string  `json:"site_used"`
	Action      string  `json:"action"`
	Quantity    float64 `json:"quantity"`
	HasQuantity bool    `json:"has_quantity"`
}
