package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/shoplite/shoplite-api/internal/core/domain"
	"github.com/shoplite/shoplite-api/internal/core/ports"
)

const minPasswordLen = 6

// AuthService implements registration, login and the two password-update
// flows. Role assignment is derived from the email domain and never taken
// from client input.
type AuthService struct {
	users       ports.UserRepository
	codec       ports.TokenCodec
	hasher      PasswordHasher
	adminDomain string
}

func NewAuthService(users ports.UserRepository, codec ports.TokenCodec, hasher PasswordHasher, adminDomain string) *AuthService {
	if hasher == nil {
		hasher = NewBcryptHasher(0)
	}
	return &AuthService{users: users, codec: codec, hasher: hasher, adminDomain: adminDomain}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" || in.Birthdate == "" {
		return nil, domain.Validationf("name, email, password and birthdate are required")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return nil, domain.Validationf("email must be a well-formed address")
	}
	if len(in.Password) < minPasswordLen {
		return nil, domain.Validationf("password must be at least %d characters", minPasswordLen)
	}

	birthdate, err := domain.NormalizeBirthdate(in.Birthdate)
	if err != nil {
		return nil, err
	}

	email := domain.NormalizeEmail(in.Email)

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         in.Name,
		Email:        email,
		PasswordHash: hash,
		Birthdate:    birthdate,
		Role:         domain.RoleForEmail(email, s.adminDomain),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// Uniqueness is enforced by the store's constraint, not by a lookup
	// here, so concurrent registrations cannot both pass a pre-check.
	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	tkn, err := s.codec.Issue(created)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &ports.AuthResult{Token: tkn, User: created}, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Same error as a wrong password: the response must not reveal
			// whether the email exists.
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if s.hasher.Compare(user.PasswordHash, password) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	tkn, err := s.codec.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &ports.AuthResult{Token: tkn, User: user}, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	if len(newPassword) < minPasswordLen {
		return domain.Validationf("new password must be at least %d characters", minPasswordLen)
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrInvalidCredentials
		}
		return err
	}

	if s.hasher.Compare(user.PasswordHash, currentPassword) != nil {
		return domain.Validationf("current password is incorrect")
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.users.SetPassword(ctx, user.ID, hash)
}

func (s *AuthService) ResetPasswordByIdentity(ctx context.Context, email, birthdate, newPassword string) error {
	if len(newPassword) < minPasswordLen {
		return domain.Validationf("new password must be at least %d characters", minPasswordLen)
	}

	normalized, err := domain.NormalizeBirthdate(birthdate)
	if err != nil {
		return err
	}

	user, err := s.users.FindByEmailAndBirthdate(ctx, domain.NormalizeEmail(email), normalized)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// One error for every mismatch so the caller cannot probe which
			// half of the pair was wrong.
			return domain.ErrRecoveryFailed
		}
		return err
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.users.SetPassword(ctx, user.ID, hash)
}
