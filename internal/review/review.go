package review

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a review is not found.
var ErrNotFound = errors.New("review not found")

// ErrBadReference is returned when the book or member does not exist.
var ErrBadReference = errors.New("unknown book or member")

// Review represents a member's rating of a book, 1 to 5 stars.
type Review struct {
	ID       int64  `json:"id"`
	BookID   int64  `json:"book_id"`
	MemberID int64  `json:"member_id"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Date     string `json:"date"`

	// Joined display fields, populated by list queries.
	BookTitle  string `json:"book_title,omitempty"`
	MemberName string `json:"member_name,omitempty"`
}

// Repository defines the contract for review data storage.
type Repository interface {
	List(ctx context.Context) ([]Review, error)
	ListByBook(ctx context.Context, bookID int64) ([]Review, error)
	Create(ctx context.Context, rv *Review) error
	Update(ctx context.Context, rv *Review) error
	Delete(ctx context.Context, id int64) error
}
