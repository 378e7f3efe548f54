package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/shoplite/shoplite-api/internal/core/domain"
)

// UserRepository is the credential store on SQLite.
type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if _, err := r.store.DB().NewInsert().Model(user).Exec(ctx); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	user := new(domain.User)
	err := r.store.DB().NewSelect().Model(user).Where("u.id = ?", id).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	user := new(domain.User)
	err := r.store.DB().NewSelect().Model(user).Where("u.email = ?", email).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return user, nil
}

func (r *UserRepository) FindByEmailAndBirthdate(ctx context.Context, email, birthdate string) (*domain.User, error) {
	user := new(domain.User)
	err := r.store.DB().NewSelect().Model(user).
		Where("u.email = ?", email).
		Where("u.birthdate = ?", birthdate).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by recovery pair: %w", err)
	}
	return user, nil
}

// SetPassword overwrites the stored hash. A retriable failure (lock
// contention, dead handle) is retried exactly once against a reopened
// connection before surfacing.
func (r *UserRepository) SetPassword(ctx context.Context, id int64, passwordHash string) error {
	err := r.setPassword(ctx, r.store.DB(), id, passwordHash)
	if err == nil || !retriable(err) {
		return err
	}

	if reopenErr := r.store.Reopen(ctx); reopenErr != nil {
		return fmt.Errorf("set password: %w (fallback reconnect failed: %v)", err, reopenErr)
	}
	return r.setPassword(ctx, r.store.DB(), id, passwordHash)
}

func (r *UserRepository) setPassword(ctx context.Context, db *bun.DB, id int64, passwordHash string) error {
	res, err := db.NewUpdate().
		Model((*domain.User)(nil)).
		Set("password_hash = ?", passwordHash).
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
