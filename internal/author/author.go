package author

import (
	"context"
	"errors"
)

// ErrNotFound is returned when an author is not found.
var ErrNotFound = errors.New("author not found")

// Author represents a book author.
type Author struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Nationality string  `json:"nationality"`
	BirthDate   string  `json:"birth_date"`
	Bio         *string `json:"bio,omitempty"`
}

// Repository defines the contract for author data storage.
type Repository interface {
	List(ctx context.Context) ([]Author, error)
	Create(ctx context.Context, a *Author) error
	Update(ctx context.Context, a *Author) error
	Delete(ctx context.Context, id int64) error
}
