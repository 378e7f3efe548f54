package ports

import (
	"github.com/shoplite/shoplite-api/internal/core/domain"
	"github.com/shoplite/shoplite-api/internal/core/token"
)

// TokenCodec issues and verifies the bearer tokens carried by clients.
type TokenCodec interface {
	Issue(user *domain.User) (string, error)
	Verify(raw string) (*token.Claims, error)
}
