package category

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a category is not found.
var ErrNotFound = errors.New("category not found")

// ErrDuplicateName is returned when a category with the same name already exists.
var ErrDuplicateName = errors.New("category name already exists")

// Category represents a book category.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Repository defines the contract for category data storage.
type Repository interface {
	List(ctx context.Context) ([]Category, error)
	Create(ctx context.Context, c *Category) error
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id int64) error
}
