package model

import "time"

// Metadata holds the store-assigned audit columns shared by persisted entities.
type Metadata struct {
	CreatedAt time.Time `db:"created_at" generated:"true"`
}
