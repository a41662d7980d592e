package visibility

import "github.com/goliatone/go-formschema/pkg/schema"

// Evaluator decides whether a field is currently active given the live
// answer data. The full field sequence is passed alongside for evaluators
// that need type-aware comparison; the built-in rule evaluator in the
// conditions subpackage does not.
type Evaluator interface {
	Visible(field schema.FieldSchema, data schema.FormData, fields []schema.FieldSchema) bool
}

// EvaluatorFunc adapts a function into an Evaluator.
type EvaluatorFunc func(field schema.FieldSchema, data schema.FormData, fields []schema.FieldSchema) bool

// Visible delegates to the underlying function.
func (fn EvaluatorFunc) Visible(field schema.FieldSchema, data schema.FormData, fields []schema.FieldSchema) bool {
	return fn(field, data, fields)
}
