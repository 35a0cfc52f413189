package dto

// StockResponse is the equipment stock table. Only catalog items with a
// positive total are listed.
type StockResponse struct {
	Items    []StockItem `json:"items"`
	Warnings []string    `json:"warnings,omitempty"`
}

// StockItem is one catalog line with its running borrow balance.
type StockItem struct {
	Name      string  `json:"name"`
	Total     int     `json:"total"`
	Borrowed  float64 `json:"borrowed"`
	Remaining int     `json:"remaining"`
}

// ToolHistoryResponse is the raw Team_Tools log, newest first.
type ToolHistoryResponse struct {
	Entries  []ToolHistoryEntry `json:"entries"`
	Warnings []string           `json:"warnings,omitempty"`
}

// ToolHistoryEntry is one borrow or return line.
type ToolHistoryEntry struct {
	Timestamp string  `json:"timestamp"`
	Borrower  string  `json:"borrower"`
	Equipment string  `json:"equipment"`
	SiteUsed  string  `json:"site_used,omitempty"`
	Action    string  `json:"action"`
	Quantity  float64 `json:"quantity"`
}

// ToolTransactionRequest records a borrow or return of one or more
// items. Each item becomes its own appended row.
type ToolTransactionRequest struct {
	Borrower string                `json:"borrower" binding:"required"`
	SiteUsed string                `json:"site_used"`
	Action   string                `json:"action" binding:"required,oneof=Borrow Return"`
	Items    []ToolTransactionItem `json:"items" binding:"required,min=1,dive"`
}

// ToolTransactionItem is one equipment line of a transaction.
type ToolTransactionItem struct {
	Equipment string  `json:"equipment" binding:"required"`
	Quantity  float64 `json:"quantity" binding:"required,gt=0"`
}

// ToolTransactionResponse reports how many item rows were accepted.
type ToolTransactionResponse struct {
	Requested int `json:"requested"`
	Accepted  int `json:"accepted"`
}
