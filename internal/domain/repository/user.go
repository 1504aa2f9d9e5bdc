package repository

import (
	"context"

	"github.com/usersnack/usersnack/internal/domain/model"
)

// UserUpdate carries the mutable subset of a user; nil fields are left as is.
type UserUpdate struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}

// UserRepository persists customer records. Email lookups are
// case-insensitive; the unique index on lowercased email is the arbiter for
// concurrent creation, surfaced as ErrAlreadyExists.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context, skip, limit int) ([]model.User, int, error)
	Update(ctx context.Context, id string, update UserUpdate) (*model.User, error)
	Deactivate(ctx context.Context, id string) error
}
