// Package bst file: entity.go
package bst

import (
	"time"

	"github.com/google/uuid"
)

// BaseModel provides common fields for indexed entities.
type BaseModel struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Entity interface for any object stored in an Index.
type Entity interface {
	GetBase() *BaseModel
}

// stamp assigns an ID to a new entity and refreshes its timestamps.
func (b *BaseModel) stamp(now time.Time) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}
