package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/usersnack/usersnack/internal/domain/errors"
	"github.com/usersnack/usersnack/internal/domain/model"
	"github.com/usersnack/usersnack/internal/domain/repository"
	pkgAuth "github.com/usersnack/usersnack/internal/pkg/auth"
)

// UserUseCase handles customer registration and account management.
type UserUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
}

// NewUserUseCase constructs UserUseCase.
func NewUserUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher) *UserUseCase {
	return &UserUseCase{users: users, hasher: hasher}
}

// RegisterParams carries input for explicit user registration.
type RegisterParams struct {
	Name     string
	Email    string
	Password string
	Phone    *string
	Address  *string
}

// Register creates a user with a hashed credential. A duplicate email
// surfaces as ErrAlreadyExists.
func (u *UserUseCase) Register(ctx context.Context, p RegisterParams) (*model.User, error) {
	name := strings.TrimSpace(p.Name)
	email := strings.TrimSpace(p.Email)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domainErrors.ErrValidation)
	}
	if !ValidEmail(email) {
		return nil, fmt.Errorf("%w: invalid email format", domainErrors.ErrValidation)
	}
	if p.Password == "" {
		return nil, fmt.Errorf("%w: password is required", domainErrors.ErrValidation)
	}

	hash, err := u.hasher.Hash(p.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &model.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		Phone:        p.Phone,
		Address:      p.Address,
		PasswordHash: &hash,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.users.Create(ctx, user)
}

func (u *UserUseCase) GetByID(ctx context.Context, id string) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

func (u *UserUseCase) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if !ValidEmail(email) {
		return nil, fmt.Errorf("%w: invalid email format", domainErrors.ErrValidation)
	}
	return u.users.GetByEmail(ctx, email)
}

func (u *UserUseCase) List(ctx context.Context, skip, limit int) ([]model.User, int, error) {
	return u.users.List(ctx, skip, limit)
}

func (u *UserUseCase) Update(ctx context.Context, id string, update repository.UserUpdate) (*model.User, error) {
	if update.Email != nil && !ValidEmail(*update.Email) {
		return nil, fmt.Errorf("%w: invalid email format", domainErrors.ErrValidation)
	}
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", domainErrors.ErrValidation)
	}
	return u.users.Update(ctx, id, update)
}

// Deactivate soft-deletes a user; orders referencing it remain intact.
func (u *UserUseCase) Deactivate(ctx context.Context, id string) error {
	return u.users.Deactivate(ctx, id)
}

// ResolveOrCreate finds the user owning the given contact email or creates
// one with the supplied order contact fields. Existing records are returned
// unchanged: order contact data never overwrites a stored user.
//
// Two racing callers with the same new email are arbitrated by the unique
// index on the email column: the loser's insert comes back as
// ErrAlreadyExists and is retried as a lookup, so at most one user exists
// per email without any explicit locking.
func ResolveOrCreate(ctx context.Context, users repository.UserRepository, name, email string, phone, address *string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", fmt.Errorf("%w: customer email is required", domainErrors.ErrValidation)
	}

	existing, err := users.GetByEmail(ctx, email)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, domainErrors.ErrNotFound) {
		return "", err
	}

	now := time.Now().UTC()
	user := &model.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Address:   address,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			winner, lookupErr := users.GetByEmail(ctx, email)
			if lookupErr != nil {
				return "", lookupErr
			}
			return winner.ID, nil
		}
		return "", err
	}
	return created.ID, nil
}
