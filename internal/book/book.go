package book

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// ErrDuplicateISBN is returned when another book already carries the ISBN.
var ErrDuplicateISBN = errors.New("isbn already exists")

// ErrBadReference is returned when the author or category does not exist.
var ErrBadReference = errors.New("unknown author or category")

// Book represents a catalog entry. Available is derived state: true iff no
// open loan references this book. It is mutated only by the loan service.
type Book struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	AuthorID        int64  `json:"author_id"`
	CategoryID      int64  `json:"category_id"`
	ISBN            string `json:"isbn"`
	PublicationYear int    `json:"publication_year"`
	Pages           int    `json:"pages"`
	Available       bool   `json:"available"`

	// Joined display fields, populated by List.
	AuthorName   string `json:"author_name,omitempty"`
	CategoryName string `json:"category_name,omitempty"`
}

// Repository defines the contract for book data storage.
type Repository interface {
	List(ctx context.Context) ([]Book, error)
	GetByID(ctx context.Context, id int64) (Book, error)
	Create(ctx context.Context, b *Book) error
	Update(ctx context.Context, b *Book) error
	Delete(ctx context.Context, id int64) error
}
