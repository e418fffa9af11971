package view

import (
	"time"

	"libadmin/internal/model"
)

const displayDate = "Jan 2, 2006"

var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000000Z",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTime accepts the timestamp layouts the API emits.
func ParseTime(s string) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders s as "Jan 2, 2006", or "-" if it is empty or unparsable.
func FormatDate(s string) string {
	t, ok := ParseTime(s)
	if !ok {
		return "-"
	}
	return t.Format(displayDate)
}

// FormatDatePtr is FormatDate for nullable fields.
func FormatDatePtr(s *string) string {
	if s == nil {
		return "-"
	}
	return FormatDate(*s)
}

// Badge is a coloured status pill.
type Badge struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

var loanBadges = map[model.LoanStatus]Badge{
	model.LoanPending:     {Label: "pending", Color: "yellow"},
	model.LoanPreApproved: {Label: "pre-approved", Color: "purple"},
	model.LoanApproved:    {Label: "approved", Color: "green"},
	model.LoanRejected:    {Label: "rejected", Color: "red"},
	model.LoanReturned:    {Label: "returned", Color: "blue"},
}

// LoanBadge returns the badge for a loan status; unknown statuses are grey.
func LoanBadge(s model.LoanStatus) Badge {
	if b, ok := loanBadges[s]; ok {
		return b
	}
	return Badge{Label: string(s), Color: "gray"}
}

// StockBadge is green while copies remain.
func StockBadge(quantity int) Badge {
	if quantity > 0 {
		return Badge{Label: "In stock", Color: "green"}
	}
	return Badge{Label: "Out of stock", Color: "red"}
}
