// Package storage defines the persistence contract the engine consumes.
// Backends live with the embedding application; the engine only requires
// that loaded documents pass the structure check and migration before use.
// MemoryStore is the reference implementation used by tests and examples.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/goliatone/go-formschema/pkg/schema"
)

// ErrNotFound reports a load or delete against an unknown schema id.
var ErrNotFound = errors.New("storage: schema not found")

// Record pairs a stored schema with its save time.
type Record struct {
	ID      string
	Schema  schema.FormSchema
	SavedAt time.Time
}

// Store persists form schemas. Load implementations must return documents
// that already went through migrate.ValidateStructure and migrate.Migrate.
type Store interface {
	Save(ctx context.Context, s schema.FormSchema) error
	Load(ctx context.Context, id string) (schema.FormSchema, error)
	List(ctx context.Context) ([]Record, error)
	Delete(ctx context.Context, id string) error
}
