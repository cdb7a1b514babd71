package stats

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) Summary(ctx context.Context) (Summary, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM books),
			(SELECT COUNT(*) FROM authors),
			(SELECT COUNT(*) FROM members),
			(SELECT COUNT(*) FROM categories),
			(SELECT COUNT(*) FROM reviews),
			(SELECT COUNT(*) FROM loans WHERE returned = false)`

	var s Summary
	err := r.db.QueryRow(ctx, query).Scan(
		&s.TotalBooks, &s.TotalAuthors, &s.TotalMembers,
		&s.TotalCategories, &s.TotalReviews, &s.ActiveLoans,
	)
	if err != nil {
		return Summary{}, err
	}
	return s, nil
}
