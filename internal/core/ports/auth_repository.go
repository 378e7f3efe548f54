package ports

import (
	"context"

	"github.com/shoplite/shoplite-api/internal/core/domain"
)

// UserRepository is the credential store. Implementations must enforce email
// uniqueness at the storage level so concurrent registrations cannot race a
// check-then-insert.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByEmailAndBirthdate authenticates the recovery pair. Both values
	// must already be normalized.
	FindByEmailAndBirthdate(ctx context.Context, email, birthdate string) (*domain.User, error)
	// SetPassword overwrites the stored hash. Implementations retry once
	// against a fresh connection on retriable storage failures.
	SetPassword(ctx context.Context, id int64, passwordHash string) error
}
