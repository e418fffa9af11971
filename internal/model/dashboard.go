package model

// TopBorrowedBook is one entry of the most borrowed ranking.
type TopBorrowedBook struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Author       string  `json:"author"`
	Thumbnail    *string `json:"thumbnail"`
	TotalBorrows int     `json:"totalBorrows"`
}

// TopBorrowedBooks holds the ranking and its bounds.
type TopBorrowedBooks struct {
	MinCount *int              `json:"minCount"`
	MaxCount *int              `json:"maxCount"`
	Data     []TopBorrowedBook `json:"data"`
}

// DailyLoanCount is the number of loans on one day.
type DailyLoanCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// LastSevenDaysLoans is the loan histogram for the last week.
type LastSevenDaysLoans struct {
	MinCount int              `json:"min_count"`
	MaxCount int              `json:"max_count"`
	Data     []DailyLoanCount `json:"data"`
}

// DashboardStats is the aggregate shown on the dashboard home.
type DashboardStats struct {
	TotalBooks         int                `json:"total_books"`
	PhysicalBooks      int                `json:"physical_books"`
	Ebooks             int                `json:"ebooks"`
	ActiveLoans        int                `json:"active_loans"`
	TotalUsers         int                `json:"total_users"`
	TopBorrowedBooks   TopBorrowedBooks   `json:"top_borrowed_books"`
	LastSevenDaysLoans LastSevenDaysLoans `json:"last_seven_days_loans"`
}
