package domain

import (
	"time"

	"github.com/uptrace/bun"
)

// Product is a catalog entry. Prices are stored in cents to avoid floating
// point arithmetic on money.
type Product struct {
	bun.BaseModel `bun:"table:products,alias:p"`

	ID          int64     `bun:"id,pk,autoincrement" json:"id"`
	Name        string    `bun:"name,notnull" json:"name"`
	Description string    `bun:"description" json:"description"`
	PriceCents  int64     `bun:"price_cents,notnull" json:"price_cents"`
	Category    string    `bun:"category" json:"category"`
	Image       string    `bun:"image" json:"image"`
	Stock       int64     `bun:"stock,notnull,default:0" json:"stock"`
	CreatedAt   time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
}
