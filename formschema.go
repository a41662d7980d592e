// Package formschema re-exports the most used types and entry points so
// simple integrations can import a single package.
package formschema

import (
	"github.com/goliatone/go-formschema/pkg/depgraph"
	"github.com/goliatone/go-formschema/pkg/migrate"
	"github.com/goliatone/go-formschema/pkg/model"
	"github.com/goliatone/go-formschema/pkg/schema"
	"github.com/goliatone/go-formschema/pkg/validation"
	"github.com/goliatone/go-formschema/pkg/visibility/conditions"
)

// FormSchema is the versioned declarative form document.
type FormSchema = schema.FormSchema

// FieldSchema is one field's declarative description.
type FieldSchema = schema.FieldSchema

// FormData maps field ids to submitted values.
type FormData = schema.FormData

// ValidationResult aggregates whole-form validation by field id.
type ValidationResult = validation.Result

// NewModel constructs the schema lifecycle model.
func NewModel(options ...model.Option) *model.Model {
	return model.New(options...)
}

// ParseDocument runs the load pipeline for a stored document: structure
// check, decode, migrate.
func ParseDocument(data []byte) (schema.FormSchema, error) {
	return migrate.ParseDocument(data)
}

// IsVisible evaluates a field's conditions against the current answers.
func IsVisible(field schema.FieldSchema, data schema.FormData, fields []schema.FieldSchema) bool {
	return conditions.Visible(field, data, fields)
}

// ValidateForm validates every visible interactive field.
func ValidateForm(fields []schema.FieldSchema, data schema.FormData) validation.Result {
	return validation.ValidateForm(fields, data)
}

// DetectCycles reports conditional-dependency cycle entry points.
func DetectCycles(fields []schema.FieldSchema) []string {
	return depgraph.DetectCycles(fields)
}
