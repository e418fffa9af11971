package view

import (
	"math"
	"time"

	"libadmin/internal/model"
)

// LoanActions lists the transitions offered for a loan in its current status.
// The server remains the judge of whether a transition is allowed.
func LoanActions(s model.LoanStatus) []model.LoanAction {
	switch s {
	case model.LoanPending:
		return []model.LoanAction{model.LoanApprove, model.LoanReject}
	case model.LoanPreApproved:
		return []model.LoanAction{model.LoanDistribute}
	case model.LoanApproved:
		return []model.LoanAction{model.LoanReturn}
	}
	return []model.LoanAction{}
}

// DaysOverdue counts whole days past the due date; zero when not overdue.
func DaysOverdue(due *string, now time.Time) int {
	if due == nil {
		return 0
	}
	t, ok := ParseTime(*due)
	if !ok {
		return 0
	}
	days := int(math.Floor(now.Sub(t).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

// LoanDays is the whole number of days between approval and return.
func LoanDays(l model.BookLoan) (int, bool) {
	if l.ApprovedAt == nil || l.ReturnedAt == nil {
		return 0, false
	}
	from, ok1 := ParseTime(*l.ApprovedAt)
	to, ok2 := ParseTime(*l.ReturnedAt)
	if !ok1 || !ok2 {
		return 0, false
	}
	return int(to.Sub(from).Hours() / 24), true
}

// LoanRow is a loan with its display fields.
type LoanRow struct {
	model.BookLoan
	Badge        Badge              `json:"badge"`
	RequestedOn  string             `json:"requested_on"`
	DueOn        string             `json:"due_on"`
	ReturnedOn   string             `json:"returned_on"`
	DaysOverdue  int                `json:"days_overdue,omitempty"`
	DurationDays *int               `json:"duration_days,omitempty"`
	Actions      []model.LoanAction `json:"actions"`
}

// NewLoanRow decorates a loan relative to now.
func NewLoanRow(l model.BookLoan, now time.Time) LoanRow {
	row := LoanRow{
		BookLoan:    l,
		Badge:       LoanBadge(l.Status),
		RequestedOn: FormatDate(l.RequestedAt),
		DueOn:       FormatDatePtr(l.DueDate),
		ReturnedOn:  FormatDatePtr(l.ReturnedAt),
		Actions:     LoanActions(l.Status),
	}
	if l.Status == model.LoanApproved {
		row.DaysOverdue = DaysOverdue(l.DueDate, now)
	}
	if days, ok := LoanDays(l); ok {
		row.DurationDays = &days
	}
	return row
}

// ExtensionRow is a due-date request with its display fields.
type ExtensionRow struct {
	model.DueDateIncreaseRequest
	CurrentDueOn string `json:"current_due_on"`
	NewDueOn     string `json:"new_due_on"`
	RequestedOn  string `json:"requested_on"`
	Decidable    bool   `json:"decidable"`
}

// NewExtensionRow decorates a due-date request.
func NewExtensionRow(r model.DueDateIncreaseRequest) ExtensionRow {
	return ExtensionRow{
		DueDateIncreaseRequest: r,
		CurrentDueOn:           FormatDatePtr(r.BookLoan.DueDate),
		NewDueOn:               FormatDate(r.NewDueDate),
		RequestedOn:            FormatDate(r.CreatedAt),
		Decidable:              r.Status == model.ExtensionPending,
	}
}

// StockRow is a book in the physical stock table.
type StockRow struct {
	model.Book
	Badge Badge `json:"badge"`
}

// NewStockRow decorates a book with its stock badge.
func NewStockRow(b model.Book) StockRow {
	return StockRow{Book: b, Badge: StockBadge(b.Stock())}
}
