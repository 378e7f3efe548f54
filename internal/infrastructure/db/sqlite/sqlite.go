// Package sqlite provides the bun-backed SQLite store and its repositories.
package sqlite

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"github.com/shoplite/shoplite-api/internal/core/domain"
)

// Store owns the process-wide bun handle. The handle is created once at
// startup and injected into repositories; Reopen exists solely for the
// one-shot password-update retry path.
type Store struct {
	mu  sync.Mutex
	db  *bun.DB
	dsn string
}

// Connect opens the SQLite database, verifies it with a ping, and creates the
// schema when missing.
func Connect(ctx context.Context, path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?cache=shared", path)

	db, err := open(dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite ping: %w", err)
	}

	s := &Store{db: db, dsn: dsn}
	if err := s.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func open(dsn string) (*bun.DB, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}
	// SQLite serializes writers; a second writer on the same pool just
	// contends on the file lock.
	sqldb.SetMaxOpenConns(1)
	return bun.NewDB(sqldb, sqlitedialect.New()), nil
}

// DB returns the current handle.
func (s *Store) DB() *bun.DB {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db
}

// Reopen swaps in a fresh connection and closes the old one. Used as the
// fallback when a password update hits a retriable storage failure.
func (s *Store) Reopen(ctx context.Context) error {
	fresh, err := open(s.dsn)
	if err != nil {
		return err
	}
	if err := fresh.PingContext(ctx); err != nil {
		_ = fresh.Close()
		return fmt.Errorf("sqlite reopen ping: %w", err)
	}

	s.mu.Lock()
	old := s.db
	s.db = fresh
	s.mu.Unlock()

	_ = old.Close()
	return nil
}

// Ping verifies connectivity, for the readiness probe.
func (s *Store) Ping(ctx context.Context) error {
	return s.DB().PingContext(ctx)
}

func (s *Store) Close() error {
	return s.DB().Close()
}

func (s *Store) initSchema(ctx context.Context) error {
	models := []any{
		(*domain.User)(nil),
		(*domain.Product)(nil),
		(*domain.Order)(nil),
		(*domain.OrderItem)(nil),
		(*domain.Setting)(nil),
	}
	for _, model := range models {
		if _, err := s.db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("create table for %T: %w", model, err)
		}
	}
	return nil
}

// isUniqueViolation matches the constraint error text emitted by both the
// cgo and the pure-Go sqlite drivers behind sqliteshim.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// retriable reports whether a storage failure is worth one retry on a fresh
// connection (file lock contention or a dead handle).
func retriable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "table is locked")
}
