package book

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

func (r *PostgresRepo) List(ctx context.Context) ([]Book, error) {
	const query = `
		SELECT b.id, b.title, b.author_id, b.category_id, b.isbn,
		       b.publication_year, b.pages, b.available,
		       a.name AS author_name, c.name AS category_name
		FROM books b
		JOIN authors a ON b.author_id = a.id
		JOIN categories c ON b.category_id = c.id
		ORDER BY b.title`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(
			&b.ID, &b.Title, &b.AuthorID, &b.CategoryID, &b.ISBN,
			&b.PublicationYear, &b.Pages, &b.Available,
			&b.AuthorName, &b.CategoryName,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (Book, error) {
	const query = `
		SELECT id, title, author_id, category_id, isbn, publication_year, pages, available
		FROM books
		WHERE id = $1
		LIMIT 1`

	var b Book
	err := r.db.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Title, &b.AuthorID, &b.CategoryID, &b.ISBN,
		&b.PublicationYear, &b.Pages, &b.Available,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) Create(ctx context.Context, b *Book) error {
	const query = `
		INSERT INTO books (title, author_id, category_id, isbn, publication_year, pages, available)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		b.Title, b.AuthorID, b.CategoryID, b.ISBN, b.PublicationYear, b.Pages, b.Available,
	).Scan(&b.ID)
	if err != nil {
		return translateIntegrity(err)
	}
	return nil
}

func (r *PostgresRepo) Update(ctx context.Context, b *Book) error {
	const query = `
		UPDATE books
		SET title = $1, author_id = $2, category_id = $3, isbn = $4,
		    publication_year = $5, pages = $6, available = $7
		WHERE id = $8`

	tag, err := r.db.Exec(ctx, query,
		b.Title, b.AuthorID, b.CategoryID, b.ISBN, b.PublicationYear, b.Pages, b.Available, b.ID,
	)
	if err != nil {
		return translateIntegrity(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func translateIntegrity(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return ErrDuplicateISBN
		case "23503":
			return ErrBadReference
		}
	}
	return err
}
