package member

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a member is not found.
var ErrNotFound = errors.New("member not found")

// ErrDuplicateEmail is returned when the email is already registered.
var ErrDuplicateEmail = errors.New("email already registered")

// Member represents a registered borrower.
type Member struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	RegisteredAt string `json:"registered_at"`
}

// Repository defines the contract for member data storage.
type Repository interface {
	List(ctx context.Context) ([]Member, error)
	Create(ctx context.Context, m *Member) error
	Update(ctx context.Context, m *Member) error
	Delete(ctx context.Context, id int64) error
}
