package domain

import (
	"strings"
	"time"

	"github.com/uptrace/bun"
)

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User models a registered account. The password hash never leaves the
// backend: it is excluded from JSON and only compared inside the auth service.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID           int64     `bun:"id,pk,autoincrement" json:"id"`
	Name         string    `bun:"name,notnull" json:"name"`
	Email        string    `bun:"email,notnull,unique" json:"email"`
	PasswordHash string    `bun:"password_hash,notnull" json:"-"`
	Birthdate    string    `bun:"birthdate,notnull" json:"birthdate"`
	Role         string    `bun:"role,notnull" json:"role"`
	CreatedAt    time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt    time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
}

// NormalizeEmail canonicalizes an email for storage and lookup. Uniqueness is
// case-insensitive, so every path (register, login, recovery) must go through
// this before touching the store.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// RoleForEmail derives the account role from the email's domain. Addresses
// under the trusted admin domain become admins; everyone else is a customer.
// Roles are never accepted from client input.
func RoleForEmail(email, adminDomain string) string {
	if adminDomain != "" && strings.HasSuffix(NormalizeEmail(email), "@"+strings.ToLower(adminDomain)) {
		return RoleAdmin
	}
	return RoleCustomer
}

const (
	birthdateInputLayout = "02/01/2006"
	birthdateStoreLayout = "2006-01-02"
)

// NormalizeBirthdate converts a DD/MM/YYYY input into the canonical
// YYYY-MM-DD storage form. Inputs that do not survive a parse/format round
// trip (e.g. 31/02/2024, which time.Parse would roll over to March) are
// rejected.
func NormalizeBirthdate(input string) (string, error) {
	s := strings.TrimSpace(input)
	t, err := time.Parse(birthdateInputLayout, s)
	if err != nil {
		return "", Validationf("birthdate must be a valid date in DD/MM/YYYY format")
	}
	if t.Format(birthdateInputLayout) != s {
		return "", Validationf("birthdate must be a valid date in DD/MM/YYYY format")
	}
	return t.Format(birthdateStoreLayout), nil
}
