package tables

import (
	"time"

	"github.com/uptrace/bun"
)

// StoredValue is one key of a persistent store namespace (a browser profile)
type StoredValue struct {
	bun.BaseModel `bun:"table:storefront_values,alias:sv"`

	Namespace string    `bun:"namespace,pk" json:"namespace"`
	Key       string    `bun:"key,pk" json:"key"`
	Value     string    `bun:"value,notnull" json:"value"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`
}
