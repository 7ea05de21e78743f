package models

// Bill is an issued bill owned by a single user.
type Bill struct {
	ID     string `json:"id"`
	UserID string `json:"-"`

	// DueDate is a calendar date in YYYY-MM-DD form.
	DueDate string `json:"dueDate"`

	// AmountPence is the amount due in minor units.
	AmountPence int64 `json:"amountPence"`

	// PDFURL points at the rendered bill document.
	PDFURL string `json:"pdfUrl"`

	// Status is "due", "paid" or "overdue".
	Status string `json:"status"`
}

// Bill statuses.
const (
	BillStatusDue     = "due"
	BillStatusPaid    = "paid"
	BillStatusOverdue = "overdue"
)
