// Package migrate normalizes stored form documents to the current structural
// version. ValidateStructure gates every load: migration assumes a
// structurally valid input and must never see anything else.
package migrate

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goliatone/go-formschema/pkg/schema"
)

// ErrStructuralInvalid reports a stored document whose top-level shape is
// unusable. The load is fatal; callers should treat it as "not found" rather
// than crash the session.
var ErrStructuralInvalid = errors.New("migrate: structurally invalid document")

// transform upgrades a schema from one structural version to the next.
// Migrate applies matching transforms in order and falls through, so a chain
// of versions upgrades step by step. The chain is empty for the current
// single version; it exists so future versions slot in without reshaping the
// load path.
type transform struct {
	from  string
	apply func(*schema.FormSchema)
}

var chain []transform

// Migrate normalizes a structurally valid schema to the current version. It
// is idempotent: migrating an already-current schema only re-stamps the
// version tag and re-runs the (stable) sanitization pass.
func Migrate(s schema.FormSchema) schema.FormSchema {
	out := s.Clone()
	for _, step := range chain {
		if out.Version == step.from {
			step.apply(&out)
		}
	}
	sanitizeSchema(&out)
	out.Version = schema.CurrentVersion
	return out
}

// ValidateStructure rejects a candidate document missing any required
// top-level member or carrying one with the wrong type. It must run before
// Migrate.
func ValidateStructure(data []byte) error {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return fmt.Errorf("%w: %v", ErrStructuralInvalid, err)
	}

	checks := []struct {
		key  string
		kind string
	}{
		{"version", "string"},
		{"id", "string"},
		{"metadata", "object"},
		{"fields", "array"},
		{"settings", "object"},
	}
	for _, check := range checks {
		raw, ok := top[check.key]
		if !ok {
			return fmt.Errorf("%w: missing %q", ErrStructuralInvalid, check.key)
		}
		if !jsonKindIs(raw, check.kind) {
			return fmt.Errorf("%w: %q is not a %s", ErrStructuralInvalid, check.key, check.kind)
		}
	}
	return nil
}

// ParseDocument is the load pipeline of a stored document: structure check,
// decode, migrate.
func ParseDocument(data []byte) (schema.FormSchema, error) {
	if err := ValidateStructure(data); err != nil {
		return schema.FormSchema{}, err
	}
	var decoded schema.FormSchema
	if err := json.Unmarshal(data, &decoded); err != nil {
		return schema.FormSchema{}, fmt.Errorf("migrate: decode document: %w", err)
	}
	return Migrate(decoded), nil
}

func jsonKindIs(raw json.RawMessage, kind string) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		switch kind {
		case "string":
			return b == '"'
		case "object":
			return b == '{'
		case "array":
			return b == '['
		default:
			return false
		}
	}
	return false
}
