// Package conditions implements the fixed-operator visibility evaluator.
//
// Operator semantics are exact and case-sensitive. There is no general
// expression language: a field's conditions are an ordered rule list whose
// individual outcomes combine under AND or OR logic.
package conditions

import (
	"strings"

	"github.com/goliatone/go-formschema/pkg/schema"
	"github.com/goliatone/go-formschema/pkg/visibility"
)

// Evaluator implements visibility.Evaluator over ConditionalRule sets.
type Evaluator struct{}

// New returns the rule-set evaluator.
func New() *Evaluator { return &Evaluator{} }

var _ visibility.Evaluator = (*Evaluator)(nil)

// Visible reports whether the field is active for the given answer data.
func (e *Evaluator) Visible(field schema.FieldSchema, data schema.FormData, fields []schema.FieldSchema) bool {
	return Visible(field, data, fields)
}

// Visible evaluates a field's conditions against the answer data.
//
//   - no conditions: always visible, regardless of Show
//   - empty rule list: exactly conditions.Show
//   - otherwise every rule is evaluated independently and combined per the
//     declared logic
func Visible(field schema.FieldSchema, data schema.FormData, fields []schema.FieldSchema) bool {
	_ = fields
	c := field.Conditions
	if c == nil {
		return true
	}
	if len(c.Rules) == 0 {
		return c.Show
	}

	if c.Logic == schema.LogicOr {
		for _, rule := range c.Rules {
			if EvalRule(rule, data[rule.Field]) {
				return true
			}
		}
		return false
	}
	for _, rule := range c.Rules {
		if !EvalRule(rule, data[rule.Field]) {
			return false
		}
	}
	return true
}

// EvalRule compares a dependent field's current value against the rule
// literal using the rule's operator. Unknown operators evaluate to false.
func EvalRule(rule schema.ConditionalRule, value any) bool {
	switch rule.Operator {
	case schema.OperatorEquals:
		return strictEqual(value, rule.Value)
	case schema.OperatorNotEquals:
		return !strictEqual(value, rule.Value)
	case schema.OperatorContains:
		return contains(value, rule.Value)
	case schema.OperatorNotContains:
		// Mismatched type combinations are vacuously true here, mirroring the
		// fixed false result for contains.
		return !contains(value, rule.Value)
	case schema.OperatorGreaterThan:
		a, b, ok := numericPair(value, rule.Value)
		return ok && a > b
	case schema.OperatorLessThan:
		a, b, ok := numericPair(value, rule.Value)
		return ok && a < b
	case schema.OperatorGreaterThanOrEqual:
		a, b, ok := numericPair(value, rule.Value)
		return ok && a >= b
	case schema.OperatorLessThanOrEqual:
		a, b, ok := numericPair(value, rule.Value)
		return ok && a <= b
	case schema.OperatorIsEmpty:
		return IsEmpty(value)
	case schema.OperatorIsNotEmpty:
		return !IsEmpty(value)
	default:
		return false
	}
}

// IsEmpty reports whether a value counts as "not answered": nil, a string
// that is blank after trimming, or a zero-length array. Everything else,
// including zero numbers and false, is not empty.
func IsEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []any:
		return len(v) == 0
	case []string:
		return len(v) == 0
	case []schema.FileValue:
		return len(v) == 0
	default:
		return false
	}
}

// strictEqual mirrors strict equality: no cross-type coercion, with numeric
// values compared by magnitude so int and float encodings of the same answer
// agree.
func strictEqual(a, b any) bool {
	if an, aok := asNumber(a); aok {
		bn, bok := asNumber(b)
		return bok && an == bn
	}
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case nil:
		return b == nil
	default:
		return false
	}
}

// contains is a substring test when both sides are strings and a membership
// test when the dependent value is an array. Any other combination is a
// fixed false.
func contains(value, needle any) bool {
	switch v := value.(type) {
	case string:
		n, ok := needle.(string)
		return ok && strings.Contains(v, n)
	case []any:
		for _, item := range v {
			if strictEqual(item, needle) {
				return true
			}
		}
		return false
	case []string:
		for _, item := range v {
			if strictEqual(item, needle) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func numericPair(a, b any) (float64, float64, bool) {
	an, aok := asNumber(a)
	if !aok {
		return 0, 0, false
	}
	bn, bok := asNumber(b)
	if !bok {
		return 0, 0, false
	}
	return an, bn, true
}

// asNumber accepts the numeric shapes JSON decoding and Go callers produce.
// Strings are never parsed; comparisons are numeric only.
func asNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}
