package loan

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) GetBook(ctx context.Context, id int64) (BookState, error) {
	var b BookState
	err := r.db.QueryRow(ctx, `SELECT id, available FROM books WHERE id = $1 LIMIT 1`, id).
		Scan(&b.ID, &b.Available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return BookState{}, ErrNotFound
		}
		return BookState{}, err
	}
	return b, nil
}

func (r *PostgresRepo) SetBookAvailability(ctx context.Context, id int64, available bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE books SET available = $1 WHERE id = $2`, available, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) GetLoan(ctx context.Context, id int64) (Loan, error) {
	const query = `
		SELECT id, book_id, member_id, loan_date, due_date, return_date, returned
		FROM loans
		WHERE id = $1
		LIMIT 1`

	var l Loan
	err := r.db.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.BookID, &l.MemberID, &l.LoanDate, &l.DueDate, &l.ReturnDate, &l.Returned,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Loan{}, ErrNotFound
		}
		return Loan{}, err
	}
	return l, nil
}

func (r *PostgresRepo) InsertLoan(ctx context.Context, l *Loan) error {
	const query = `
		INSERT INTO loans (book_id, member_id, loan_date, due_date, return_date, returned)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		l.BookID, l.MemberID, l.LoanDate, l.DueDate, l.ReturnDate, l.Returned,
	).Scan(&l.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return ErrMemberNotFound
		}
		return err
	}
	return nil
}

func (r *PostgresRepo) SetLoanReturned(ctx context.Context, id int64, returned bool, returnDate *string) error {
	const query = `
		UPDATE loans
		SET returned = $1, return_date = $2
		WHERE id = $3`

	tag, err := r.db.Exec(ctx, query, returned, returnDate, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) DeleteLoan(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM loans WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) ListLoans(ctx context.Context) ([]Loan, error) {
	const query = `
		SELECT l.id, l.book_id, l.member_id, l.loan_date, l.due_date, l.return_date, l.returned,
		       b.title AS book_title, m.name AS member_name, a.name AS author_name
		FROM loans l
		JOIN books b ON l.book_id = b.id
		JOIN members m ON l.member_id = m.id
		JOIN authors a ON b.author_id = a.id
		ORDER BY l.loan_date DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Loan
	for rows.Next() {
		var l Loan
		if err := rows.Scan(
			&l.ID, &l.BookID, &l.MemberID, &l.LoanDate, &l.DueDate, &l.ReturnDate, &l.Returned,
			&l.BookTitle, &l.MemberName, &l.AuthorName,
		); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
