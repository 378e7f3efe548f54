package ports

import (
	"context"

	"github.com/shoplite/shoplite-api/internal/core/domain"
)

type RegisterInput struct {
	Name      string
	Email     string
	Password  string
	Birthdate string
}

// AuthResult is returned by operations that establish a session.
type AuthResult struct {
	Token string
	User  *domain.User
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// ChangePassword re-validates the caller's current password before
	// storing a new hash. Identity comes from the verified token.
	ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error
	// ResetPasswordByIdentity is the out-of-band recovery path: the caller
	// authenticates with the (email, birthdate) pair instead of a password.
	ResetPasswordByIdentity(ctx context.Context, email, birthdate, newPassword string) error
}
