// Package testsupport provides shared fixtures and helpers for package
// tests and examples.
package testsupport

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/goliatone/go-formschema/pkg/schema"
)

// FixedTime is the deterministic timestamp fixtures use for metadata.
var FixedTime = time.Date(2026, time.March, 14, 9, 26, 53, 0, time.UTC)

// Clock returns FixedTime, for wiring into model.WithClock.
func Clock() time.Time { return FixedTime }

// SequentialIDs returns an id generator producing prefix-1, prefix-2, ...
func SequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// CountrySchema is the canonical conditional fixture: a country select and a
// state text field shown only when country equals "US".
func CountrySchema() schema.FormSchema {
	return schema.FormSchema{
		Version: schema.CurrentVersion,
		ID:      "form-country",
		Metadata: schema.FormMetadata{
			Title:     "Shipping Details",
			CreatedAt: FixedTime,
			UpdatedAt: FixedTime,
		},
		Fields: []schema.FieldSchema{
			{
				ID:    "country",
				Type:  schema.FieldTypeSelect,
				Label: "Country",
				Config: schema.ChoiceConfig{
					Required: true,
					Options: []schema.Option{
						{Label: "United States", Value: "US"},
						{Label: "Canada", Value: "CA"},
					},
				},
				Order: 0,
			},
			{
				ID:     "state",
				Type:   schema.FieldTypeText,
				Label:  "State",
				Config: schema.TextConfig{Required: true},
				Conditions: &schema.FieldConditions{
					Rules: []schema.ConditionalRule{
						{Field: "country", Operator: schema.OperatorEquals, Value: "US"},
					},
					Logic: schema.LogicAnd,
				},
				Order: 1,
			},
		},
		Settings: schema.FormSettings{
			SubmitButton:   schema.SubmitButton{Text: "Submit", Enabled: true},
			SuccessMessage: "Thanks!",
		},
	}
}

// MustJSON marshals a value or fails the test.
func MustJSON(t *testing.T, value any) []byte {
	t.Helper()
	data, err := json.Marshal(value)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return data
}

// MustParseField decodes a single field document or fails the test.
func MustParseField(t *testing.T, data []byte) schema.FieldSchema {
	t.Helper()
	var field schema.FieldSchema
	if err := json.Unmarshal(data, &field); err != nil {
		t.Fatalf("unmarshal field: %v", err)
	}
	return field
}
