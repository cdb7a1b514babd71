package loan

import (
	"context"
	"errors"
	"log"
	"time"

	"biblioapi/internal/platform/keylock"
)

// Service is the only component that creates, closes, or cancels loans, and
// the only one that flips book availability.
type Service interface {
	// Open checks the book out to a member. It fails with ErrBookUnavailable
	// when the book is absent or already on loan; no state is mutated then.
	Open(ctx context.Context, in OpenLoanInput) (Loan, error)
	// Close marks the loan returned, stamping today's date, and makes the
	// book available again.
	Close(ctx context.Context, id int64) (Loan, error)
	// Cancel removes the loan record. The book becomes available only when
	// the loan was still open; canceling a returned loan is a pure delete.
	Cancel(ctx context.Context, id int64) error
	List(ctx context.Context) ([]Loan, error)
}

type service struct {
	store Store
	locks *keylock.KeyLock
}

func NewService(store Store) Service {
	return &service{
		store: store,
		locks: keylock.New(),
	}
}

const dateLayout = "2006-01-02"

func (s *service) Open(ctx context.Context, in OpenLoanInput) (Loan, error) {
	loanDate, err := time.Parse(dateLayout, in.LoanDate)
	if err != nil {
		return Loan{}, ErrInvalidPeriod
	}
	dueDate, err := time.Parse(dateLayout, in.DueDate)
	if err != nil {
		return Loan{}, ErrInvalidPeriod
	}
	if dueDate.Before(loanDate) {
		return Loan{}, ErrInvalidPeriod
	}

	// Serialize the check-and-mutate sequence per book: of two concurrent
	// opens against the same book, exactly one may observe it available.
	s.locks.Lock(in.BookID)
	defer s.locks.Unlock(in.BookID)

	book, err := s.store.GetBook(ctx, in.BookID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Loan{}, ErrBookUnavailable
		}
		return Loan{}, err
	}
	if !book.Available {
		return Loan{}, ErrBookUnavailable
	}

	l := Loan{
		BookID:   in.BookID,
		MemberID: in.MemberID,
		LoanDate: in.LoanDate,
		DueDate:  in.DueDate,
		Returned: false,
	}
	if err := s.store.InsertLoan(ctx, &l); err != nil {
		return Loan{}, err
	}

	if err := s.store.SetBookAvailability(ctx, in.BookID, false); err != nil {
		// Compensate the half-applied open so no open loan is left behind
		// for a book still marked available.
		if cerr := s.store.DeleteLoan(ctx, l.ID); cerr != nil {
			log.Printf("loan: failed to compensate open of loan %d: %v", l.ID, cerr)
		}
		return Loan{}, err
	}

	return l, nil
}

func (s *service) Close(ctx context.Context, id int64) (Loan, error) {
	l, err := s.store.GetLoan(ctx, id)
	if err != nil {
		return Loan{}, err
	}

	s.locks.Lock(l.BookID)
	defer s.locks.Unlock(l.BookID)

	// Re-read under the lock; the loan may have been closed or canceled
	// since the first read.
	l, err = s.store.GetLoan(ctx, id)
	if err != nil {
		return Loan{}, err
	}
	if l.Returned {
		return Loan{}, ErrAlreadyReturned
	}

	returnDate := time.Now().Format(dateLayout)
	if err := s.store.SetLoanReturned(ctx, id, true, &returnDate); err != nil {
		return Loan{}, err
	}

	if err := s.store.SetBookAvailability(ctx, l.BookID, true); err != nil {
		if cerr := s.store.SetLoanReturned(ctx, id, false, nil); cerr != nil {
			log.Printf("loan: failed to compensate close of loan %d: %v", id, cerr)
		}
		return Loan{}, err
	}

	l.Returned = true
	l.ReturnDate = &returnDate
	return l, nil
}

func (s *service) Cancel(ctx context.Context, id int64) error {
	l, err := s.store.GetLoan(ctx, id)
	if err != nil {
		return err
	}

	s.locks.Lock(l.BookID)
	defer s.locks.Unlock(l.BookID)

	l, err = s.store.GetLoan(ctx, id)
	if err != nil {
		return err
	}

	if !l.Returned {
		// Release the book first: undoing a failed delete would otherwise
		// mean re-inserting the loan record.
		if err := s.store.SetBookAvailability(ctx, l.BookID, true); err != nil {
			return err
		}
		if err := s.store.DeleteLoan(ctx, id); err != nil {
			if cerr := s.store.SetBookAvailability(ctx, l.BookID, false); cerr != nil {
				log.Printf("loan: failed to compensate cancel of loan %d: %v", id, cerr)
			}
			return err
		}
		return nil
	}

	// Canceling a returned loan removes a historical record; availability
	// already reflects the prior return and must not change.
	return s.store.DeleteLoan(ctx, id)
}

func (s *service) List(ctx context.Context) ([]Loan, error) {
	return s.store.ListLoans(ctx)
}
