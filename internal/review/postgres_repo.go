package review

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

func (r *PostgresRepo) List(ctx context.Context) ([]Review, error) {
	const query = `
		SELECT rv.id, rv.book_id, rv.member_id, rv.rating, rv.comment, rv.date,
		       b.title AS book_title, m.name AS member_name
		FROM reviews rv
		JOIN books b ON rv.book_id = b.id
		JOIN members m ON rv.member_id = m.id
		ORDER BY rv.date DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReviews(rows)
}

func (r *PostgresRepo) ListByBook(ctx context.Context, bookID int64) ([]Review, error) {
	const query = `
		SELECT rv.id, rv.book_id, rv.member_id, rv.rating, rv.comment, rv.date,
		       b.title AS book_title, m.name AS member_name
		FROM reviews rv
		JOIN books b ON rv.book_id = b.id
		JOIN members m ON rv.member_id = m.id
		WHERE rv.book_id = $1
		ORDER BY rv.date DESC`

	rows, err := r.db.Query(ctx, query, bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReviews(rows)
}

func (r *PostgresRepo) Create(ctx context.Context, rv *Review) error {
	const query = `
		INSERT INTO reviews (book_id, member_id, rating, comment, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := r.db.QueryRow(ctx, query, rv.BookID, rv.MemberID, rv.Rating, rv.Comment, rv.Date).Scan(&rv.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return ErrBadReference
		}
		return err
	}
	return nil
}

func (r *PostgresRepo) Update(ctx context.Context, rv *Review) error {
	const query = `
		UPDATE reviews
		SET book_id = $1, member_id = $2, rating = $3, comment = $4, date = $5
		WHERE id = $6`

	tag, err := r.db.Exec(ctx, query, rv.BookID, rv.MemberID, rv.Rating, rv.Comment, rv.Date, rv.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return ErrBadReference
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanReviews(rows pgx.Rows) ([]Review, error) {
	var out []Review
	for rows.Next() {
		var rv Review
		if err := rows.Scan(
			&rv.ID, &rv.BookID, &rv.MemberID, &rv.Rating, &rv.Comment, &rv.Date,
			&rv.BookTitle, &rv.MemberName,
		); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}
