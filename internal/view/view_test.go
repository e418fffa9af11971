package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libadmin/internal/listctl"
	"libadmin/internal/model"
)

func numbers(p Pager) []int {
	var out []int
	for _, l := range p.Links {
		if l.Ellipsis {
			out = append(out, -1)
			continue
		}
		out = append(out, l.Number)
	}
	return out
}

func TestNewPager(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		last     int
		want     []int
		wantPrev bool
		wantNext bool
	}{
		{name: "single page", current: 1, last: 1, want: []int{1}},
		{name: "no meta yet", current: 1, last: 0, want: []int{1}},
		{name: "small range", current: 2, last: 4, want: []int{1, 2, 3, 4}, wantPrev: true, wantNext: true},
		{name: "start of long range", current: 1, last: 10, want: []int{1, 2, 3, -1, 10}, wantNext: true},
		{name: "middle of long range", current: 5, last: 10, want: []int{1, -1, 3, 4, 5, 6, 7, -1, 10}, wantPrev: true, wantNext: true},
		{name: "adjacent to first page", current: 4, last: 10, want: []int{1, 2, 3, 4, 5, 6, -1, 10}, wantPrev: true, wantNext: true},
		{name: "end of long range", current: 10, last: 10, want: []int{1, -1, 8, 9, 10}, wantPrev: true},
		{name: "current beyond last clamps", current: 12, last: 3, want: []int{1, 2, 3}, wantPrev: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPager(tt.current, tt.last)
			assert.Equal(t, tt.want, numbers(p))
			assert.Equal(t, tt.wantPrev, p.HasPrev)
			assert.Equal(t, tt.wantNext, p.HasNext)
		})
	}
}

func TestNewPager_MarksCurrent(t *testing.T) {
	p := NewPager(3, 5)
	for _, l := range p.Links {
		assert.Equal(t, l.Number == 3, l.Current, "page %d", l.Number)
	}
}

func TestShowing(t *testing.T) {
	meta := model.PaginationMeta{CurrentPage: 2, From: 11, To: 20, Total: 42}
	assert.Equal(t, "Showing 11 to 20 of 42 books", Showing(meta, 10, "book"))
	assert.Equal(t, "Showing 1 to 1 of 1 user", Showing(model.PaginationMeta{From: 1, Total: 1}, 1, "user"))
	assert.Equal(t, "", Showing(model.PaginationMeta{}, 0, "user"))
}

func TestNewList(t *testing.T) {
	s := listctl.State[string, listctl.NoFilter]{
		Items:           []string{},
		Page:            1,
		DebouncedSearch: "dune",
		Loaded:          true,
	}

	l := NewList(s, "book")
	assert.Equal(t, `No books found matching "dune"`, l.Empty)
	assert.Equal(t, "", l.Showing)

	s.Items = []string{"a", "b"}
	s.Meta = model.PaginationMeta{From: 1, To: 2, Total: 2, LastPage: 1}
	l = NewList(s, "book")
	assert.Empty(t, l.Empty)
	assert.Equal(t, "Showing 1 to 2 of 2 books", l.Showing)

	rows := Rows(l, func(s string) int { return len(s) })
	assert.Equal(t, []int{1, 1}, rows.Items)
	assert.Equal(t, l.Showing, rows.Showing)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "May 1, 2024", FormatDate("2024-05-01T10:00:00.000000Z"))
	assert.Equal(t, "May 1, 2024", FormatDate("2024-05-01"))
	assert.Equal(t, "-", FormatDate(""))
	assert.Equal(t, "-", FormatDatePtr(nil))
}

func ptr(s string) *string { return &s }

func TestLoanActions(t *testing.T) {
	assert.Equal(t, []model.LoanAction{model.LoanApprove, model.LoanReject}, LoanActions(model.LoanPending))
	assert.Equal(t, []model.LoanAction{model.LoanDistribute}, LoanActions(model.LoanPreApproved))
	assert.Equal(t, []model.LoanAction{model.LoanReturn}, LoanActions(model.LoanApproved))
	assert.Empty(t, LoanActions(model.LoanReturned))
	assert.Empty(t, LoanActions(model.LoanRejected))
}

func TestNewLoanRow(t *testing.T) {
	now := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

	overdue := NewLoanRow(model.BookLoan{
		Status:      model.LoanApproved,
		RequestedAt: "2024-04-20T08:00:00Z",
		ApprovedAt:  ptr("2024-04-21T08:00:00Z"),
		DueDate:     ptr("2024-05-05"),
	}, now)
	assert.Equal(t, 5, overdue.DaysOverdue)
	assert.Equal(t, "May 5, 2024", overdue.DueOn)
	assert.Equal(t, "green", overdue.Badge.Color)
	assert.Nil(t, overdue.DurationDays)

	returned := NewLoanRow(model.BookLoan{
		Status:     model.LoanReturned,
		ApprovedAt: ptr("2024-04-01T08:00:00Z"),
		ReturnedAt: ptr("2024-04-15T09:00:00Z"),
		DueDate:    ptr("2024-04-10"),
	}, now)
	assert.Zero(t, returned.DaysOverdue)
	require.NotNil(t, returned.DurationDays)
	assert.Equal(t, 14, *returned.DurationDays)
	assert.Empty(t, returned.Actions)

	notDue := NewLoanRow(model.BookLoan{Status: model.LoanApproved, DueDate: ptr("2024-06-01")}, now)
	assert.Zero(t, notDue.DaysOverdue)
}

func TestNewExtensionRow(t *testing.T) {
	r := NewExtensionRow(model.DueDateIncreaseRequest{
		Status:     model.ExtensionPending,
		NewDueDate: "2024-06-01",
		BookLoan:   model.BookLoan{DueDate: ptr("2024-05-20")},
	})
	assert.True(t, r.Decidable)
	assert.Equal(t, "Jun 1, 2024", r.NewDueOn)
	assert.Equal(t, "May 20, 2024", r.CurrentDueOn)
}

func TestStockBadge(t *testing.T) {
	qty := 0
	row := NewStockRow(model.Book{HasPhysical: 1, Quantity: &qty})
	assert.Equal(t, "Out of stock", row.Badge.Label)
	assert.Equal(t, "In stock", StockBadge(2).Label)
}
