package loan

import "context"

// BookState is the slice of a book record the loan service cares about.
type BookState struct {
	ID        int64
	Available bool
}

// Store defines the record-store operations the loan service needs. Each
// call is a single atomic read or write; the service sequences them under a
// per-book lock and compensates partial failures.
type Store interface {
	GetBook(ctx context.Context, id int64) (BookState, error)
	SetBookAvailability(ctx context.Context, id int64, available bool) error

	GetLoan(ctx context.Context, id int64) (Loan, error)
	InsertLoan(ctx context.Context, l *Loan) error
	SetLoanReturned(ctx context.Context, id int64, returned bool, returnDate *string) error
	DeleteLoan(ctx context.Context, id int64) error

	ListLoans(ctx context.Context) ([]Loan, error)
}
