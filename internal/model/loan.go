package model

// LoanStatus is the server-driven state of a book loan.
type LoanStatus string

const (
	LoanPending     LoanStatus = "pending"
	LoanPreApproved LoanStatus = "pre-approved"
	LoanApproved    LoanStatus = "approved"
	LoanRejected    LoanStatus = "rejected"
	LoanReturned    LoanStatus = "returned"
)

// Valid reports whether s is a known loan status.
func (s LoanStatus) Valid() bool {
	switch s {
	case LoanPending, LoanPreApproved, LoanApproved, LoanRejected, LoanReturned:
		return true
	}
	return false
}

// LoanAction is a transition the dashboard can request on a loan.
type LoanAction string

const (
	LoanApprove    LoanAction = "approve"
	LoanReject     LoanAction = "reject"
	LoanDistribute LoanAction = "distribute"
	LoanReturn     LoanAction = "return"
)

// Valid reports whether a is a known loan action.
func (a LoanAction) Valid() bool {
	switch a {
	case LoanApprove, LoanReject, LoanDistribute, LoanReturn:
		return true
	}
	return false
}

// Due-date buckets accepted by the loan listing.
const (
	DueOverdue = "overdue"
	DueToday   = "today"
)

// LoanBook is the partial book embedded in a loan.
type LoanBook struct {
	ID     int    `json:"id,omitempty"`
	Title  string `json:"title,omitempty"`
	Author string `json:"author,omitempty"`
}

// LoanUser is the partial user embedded in a loan.
type LoanUser struct {
	ID    int    `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// BookLoan is a borrowing record.
type BookLoan struct {
	ID          int        `json:"id"`
	BookID      int        `json:"book_id"`
	UserID      int        `json:"user_id"`
	Status      LoanStatus `json:"status"`
	RequestedAt string     `json:"requested_at"`
	ApprovedAt  *string    `json:"approved_at"`
	DueDate     *string    `json:"due_date"`
	ReturnedAt  *string    `json:"returned_at"`
	Book        LoanBook   `json:"book"`
	User        LoanUser   `json:"user"`
}

// ExtensionStatus is the state of a due-date increase request.
type ExtensionStatus string

const (
	ExtensionPending  ExtensionStatus = "pending"
	ExtensionApproved ExtensionStatus = "approved"
	ExtensionRejected ExtensionStatus = "rejected"
)

// Decidable reports whether s is a status an admin may set.
func (s ExtensionStatus) Decidable() bool {
	return s == ExtensionApproved || s == ExtensionRejected
}

// DueDateIncreaseRequest asks to extend an existing loan's due date.
type DueDateIncreaseRequest struct {
	ID         int             `json:"id"`
	NewDueDate string          `json:"newDueDate"`
	Reason     string          `json:"reason"`
	Status     ExtensionStatus `json:"status"`
	BookLoan   BookLoan        `json:"bookLoan"`
	User       User            `json:"user"`
	CreatedAt  string          `json:"createdAt"`
}
