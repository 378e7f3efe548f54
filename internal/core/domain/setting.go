package domain

import "github.com/uptrace/bun"

// Setting is a single key/value pair of store-wide configuration managed by
// admins (store name, currency, banner text, ...).
type Setting struct {
	bun.BaseModel `bun:"table:settings,alias:s"`

	Key   string `bun:"key,pk" json:"key"`
	Value string `bun:"value,notnull" json:"value"`
}
