// Package validation decides whether field values satisfy their declared
// constraints and orchestrates whole-form validation respecting visibility.
//
// Failures are data, never errors: per-field outcomes carry a user-facing
// message, and form-level results aggregate them keyed by field id.
// Misconfigured rules (an uncompilable pattern, an unmatchable file type)
// are logged and treated as inapplicable so they never block a submitter.
package validation

import (
	"github.com/rs/zerolog"

	"github.com/goliatone/go-formschema/pkg/schema"
	"github.com/goliatone/go-formschema/pkg/visibility"
	"github.com/goliatone/go-formschema/pkg/visibility/conditions"
)

// FieldResult is the outcome of validating a single field value.
type FieldResult struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// Result aggregates whole-form validation keyed by field id.
type Result struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors,omitempty"`
}

// Engine validates field values against their schema. The zero-config engine
// uses the built-in conditions evaluator and a no-op logger.
type Engine struct {
	logger     zerolog.Logger
	visibility visibility.Evaluator
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger wires a diagnostics logger. Only configuration gaps are logged;
// validation failures are returned, never logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithVisibilityEvaluator swaps the evaluator consulted by ValidateForm.
func WithVisibilityEvaluator(ev visibility.Evaluator) Option {
	return func(e *Engine) {
		if ev != nil {
			e.visibility = ev
		}
	}
}

// New constructs an Engine.
func New(options ...Option) *Engine {
	e := &Engine{
		logger:     zerolog.Nop(),
		visibility: conditions.New(),
	}
	for _, apply := range options {
		apply(e)
	}
	return e
}

var defaultEngine = New()

// ValidateField validates a single value with the default engine.
func ValidateField(field schema.FieldSchema, value any, data schema.FormData) FieldResult {
	return defaultEngine.ValidateField(field, value, data)
}

// ValidateForm validates a whole answer set with the default engine.
func ValidateForm(fields []schema.FieldSchema, data schema.FormData) Result {
	return defaultEngine.ValidateForm(fields, data)
}

// ValidateForm validates every interactive, currently visible field and
// aggregates failures by field id. Layout sections, hidden carriers, and
// fields whose conditions hide them are skipped; an invisible field can
// never block submission.
func (e *Engine) ValidateForm(fields []schema.FieldSchema, data schema.FormData) Result {
	result := Result{Valid: true}
	for _, field := range fields {
		if !field.Type.Interactive() {
			continue
		}
		if !e.visibility.Visible(field, data, fields) {
			continue
		}
		outcome := e.ValidateField(field, data[field.ID], data)
		if outcome.Valid {
			continue
		}
		if result.Errors == nil {
			result.Errors = make(map[string]string)
		}
		result.Errors[field.ID] = outcome.Error
		result.Valid = false
	}
	return result
}

// ValidateField checks one value against the field's declared constraints,
// short-circuiting on the first failure:
//
//  1. required and empty fails immediately
//  2. optional and empty passes immediately
//  3. declared rules run in list order
//  4. type-specific structural checks run last
func (e *Engine) ValidateField(field schema.FieldSchema, value any, data schema.FormData) FieldResult {
	_ = data // reserved for cross-field rules

	if conditions.IsEmpty(value) {
		if field.Required() {
			return fail(requiredMessage(field))
		}
		return FieldResult{Valid: true}
	}

	for _, rule := range field.Rules() {
		if ok, message := e.runRule(field, rule, value); !ok {
			return fail(message)
		}
	}

	if ok, message := e.checkStructural(field, value); !ok {
		return fail(message)
	}
	return FieldResult{Valid: true}
}

func fail(message string) FieldResult {
	return FieldResult{Valid: false, Error: message}
}

func requiredMessage(field schema.FieldSchema) string {
	label := field.Label
	if label == "" {
		label = "This field"
	}
	return label + " is required"
}
