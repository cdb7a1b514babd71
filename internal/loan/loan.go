package loan

import "errors"

var (
	// ErrNotFound is returned when a loan is not found.
	ErrNotFound = errors.New("loan not found")

	// ErrBookUnavailable is returned when the book does not exist or is
	// already on loan.
	ErrBookUnavailable = errors.New("book not available")

	// ErrMemberNotFound is returned when the borrower does not exist.
	ErrMemberNotFound = errors.New("member not found")

	// ErrAlreadyReturned is returned when closing a loan that is already
	// closed. A second close would silently overwrite the return date.
	ErrAlreadyReturned = errors.New("loan already returned")

	// ErrInvalidPeriod is returned when the due date precedes the loan date.
	ErrInvalidPeriod = errors.New("due date before loan date")
)

// Loan represents a book checked out by a member. A loan is created open
// (Returned=false), transitions once to returned, or is removed by Cancel.
// It never reopens.
type Loan struct {
	ID         int64   `json:"id"`
	BookID     int64   `json:"book_id"`
	MemberID   int64   `json:"member_id"`
	LoanDate   string  `json:"loan_date"`
	DueDate    string  `json:"due_date"`
	ReturnDate *string `json:"return_date,omitempty"`
	Returned   bool    `json:"returned"`

	// Joined display fields, populated by List.
	BookTitle  string `json:"book_title,omitempty"`
	MemberName string `json:"member_name,omitempty"`
	AuthorName string `json:"author_name,omitempty"`
}

// OpenLoanInput carries the caller-supplied fields for opening a loan.
// Dates are calendar dates in YYYY-MM-DD form.
type OpenLoanInput struct {
	BookID   int64
	MemberID int64
	LoanDate string
	DueDate  string
}
