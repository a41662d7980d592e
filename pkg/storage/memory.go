package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/goliatone/go-formschema/pkg/migrate"
	"github.com/goliatone/go-formschema/pkg/schema"
)

// MemoryStore keeps schemas as serialized documents in memory. Storing the
// wire format rather than live structs means every Load exercises the same
// structure-check-then-migrate pipeline a real backend goes through.
type MemoryStore struct {
	mu    sync.RWMutex
	docs  map[string][]byte
	saved map[string]time.Time
	clock func() time.Time
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore constructs an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs:  make(map[string][]byte),
		saved: make(map[string]time.Time),
		clock: time.Now,
	}
}

// Save serializes and stores the schema keyed by its id.
func (s *MemoryStore) Save(ctx context.Context, form schema.FormSchema) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if form.ID == "" {
		return fmt.Errorf("storage: schema id is required")
	}
	payload, err := json.Marshal(form)
	if err != nil {
		return fmt.Errorf("storage: encode schema: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[form.ID] = payload
	s.saved[form.ID] = s.clock()
	return nil
}

// Load retrieves, structure-checks, and migrates a stored document.
func (s *MemoryStore) Load(ctx context.Context, id string) (schema.FormSchema, error) {
	if err := ctx.Err(); err != nil {
		return schema.FormSchema{}, err
	}
	s.mu.RLock()
	payload, ok := s.docs[id]
	s.mu.RUnlock()
	if !ok {
		return schema.FormSchema{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return migrate.ParseDocument(payload)
}

// List returns every stored schema ordered by save time, oldest first, with
// ties broken by id for determinism.
func (s *MemoryStore) List(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, 0, len(s.docs))
	for id, payload := range s.docs {
		form, err := migrate.ParseDocument(payload)
		if err != nil {
			// A corrupt record is skipped, matching the recommended
			// treat-as-not-found recovery for structural failures.
			continue
		}
		out = append(out, Record{ID: id, Schema: form, SavedAt: s.saved[id]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SavedAt.Equal(out[j].SavedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].SavedAt.Before(out[j].SavedAt)
	})
	return out, nil
}

// Delete removes a stored schema.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	delete(s.docs, id)
	delete(s.saved, id)
	return nil
}
