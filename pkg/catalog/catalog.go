// Package catalog provides the field type catalog: a lookup service mapping
// every field type to its category, display metadata, and default config.
// The schema model consults it when constructing new field instances.
package catalog

import (
	"fmt"
	"sync"

	"github.com/goliatone/go-formschema/pkg/schema"
)

// Category groups field types for palette-style consumers.
type Category string

const (
	CategoryInput   Category = "input"
	CategoryChoice  Category = "choice"
	CategoryLayout  Category = "layout"
	CategorySpecial Category = "special"
)

// Definition describes one field type. NewConfig returns a fresh default
// config so callers never share mutable state.
type Definition struct {
	Type        schema.FieldType
	Category    Category
	Label       string
	Description string
	NewConfig   func() schema.FieldConfig
}

// Catalog maps field types to definitions. The zero value is unusable; use
// Default or New.
type Catalog struct {
	mu      sync.RWMutex
	entries map[schema.FieldType]Definition
}

// New constructs an empty catalog. Most callers want Default instead.
func New() *Catalog {
	return &Catalog{entries: make(map[schema.FieldType]Definition)}
}

// Default returns a catalog populated with the built-in definitions for every
// field type.
func Default() *Catalog {
	c := New()
	for _, def := range builtins() {
		c.Register(def)
	}
	return c
}

// Register adds or replaces a definition. Definitions without a NewConfig
// factory fall back to the schema package's zero variant.
func (c *Catalog) Register(def Definition) {
	if c == nil || def.Type == "" {
		return
	}
	if def.NewConfig == nil {
		fieldType := def.Type
		def.NewConfig = func() schema.FieldConfig { return schema.DefaultConfig(fieldType) }
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[def.Type] = def
}

// Lookup returns the definition for a field type. A missing entry is a
// configuration error on the caller's side, so the boolean is the only
// signal; nothing is synthesised.
func (c *Catalog) Lookup(t schema.FieldType) (Definition, bool) {
	if c == nil {
		return Definition{}, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	def, ok := c.entries[t]
	return def, ok
}

// MustLookup is Lookup for wiring code where an absent entry means the
// catalog was assembled wrong.
func (c *Catalog) MustLookup(t schema.FieldType) Definition {
	def, ok := c.Lookup(t)
	if !ok {
		panic(fmt.Sprintf("catalog: no definition registered for field type %q", t))
	}
	return def
}

func builtins() []Definition {
	float := func(v float64) *float64 { return &v }
	return []Definition{
		{Type: schema.FieldTypeText, Category: CategoryInput, Label: "Text", Description: "Single-line text input"},
		{Type: schema.FieldTypeTextarea, Category: CategoryInput, Label: "Long Text", Description: "Multi-line text input"},
		{Type: schema.FieldTypeEmail, Category: CategoryInput, Label: "Email", Description: "Email address input",
			NewConfig: func() schema.FieldConfig {
				return schema.TextConfig{Placeholder: "name@example.com", Rules: []schema.ValidationRule{
					{Kind: schema.ValidationEmail, Message: "Enter a valid email address"},
				}}
			}},
		{Type: schema.FieldTypePhone, Category: CategoryInput, Label: "Phone", Description: "Telephone number input"},
		{Type: schema.FieldTypeURL, Category: CategoryInput, Label: "Website", Description: "URL input",
			NewConfig: func() schema.FieldConfig {
				return schema.TextConfig{Placeholder: "https://", Rules: []schema.ValidationRule{
					{Kind: schema.ValidationURL, Message: "Enter a valid URL"},
				}}
			}},
		{Type: schema.FieldTypeNumber, Category: CategoryInput, Label: "Number", Description: "Numeric input"},
		{Type: schema.FieldTypeDate, Category: CategoryInput, Label: "Date", Description: "Date picker"},
		{Type: schema.FieldTypeTime, Category: CategoryInput, Label: "Time", Description: "Time picker"},
		{Type: schema.FieldTypeSelect, Category: CategoryChoice, Label: "Dropdown", Description: "Single choice from a dropdown",
			NewConfig: choiceDefaults},
		{Type: schema.FieldTypeRadio, Category: CategoryChoice, Label: "Multiple Choice", Description: "Single choice shown as radio buttons",
			NewConfig: choiceDefaults},
		{Type: schema.FieldTypeCheckbox, Category: CategoryChoice, Label: "Checkboxes", Description: "Multiple selections",
			NewConfig: choiceDefaults},
		{Type: schema.FieldTypeFile, Category: CategorySpecial, Label: "File Upload", Description: "File attachment",
			NewConfig: func() schema.FieldConfig {
				return schema.FileConfig{MaxSize: 10 << 20}
			}},
		{Type: schema.FieldTypeRating, Category: CategorySpecial, Label: "Rating", Description: "Star rating",
			NewConfig: func() schema.FieldConfig {
				return schema.NumberConfig{Min: float(1), Max: float(5), Step: float(1)}
			}},
		{Type: schema.FieldTypeSlider, Category: CategorySpecial, Label: "Slider", Description: "Value on a sliding scale",
			NewConfig: func() schema.FieldConfig {
				return schema.NumberConfig{Min: float(0), Max: float(100), Step: float(1)}
			}},
		{Type: schema.FieldTypeSignature, Category: CategorySpecial, Label: "Signature", Description: "Drawn signature capture"},
		{Type: schema.FieldTypeLocation, Category: CategorySpecial, Label: "Location", Description: "Geographic location"},
		{Type: schema.FieldTypeSection, Category: CategoryLayout, Label: "Section", Description: "Heading and description between fields"},
		{Type: schema.FieldTypeHidden, Category: CategorySpecial, Label: "Hidden", Description: "Hidden tracking value"},
	}
}

func choiceDefaults() schema.FieldConfig {
	return schema.ChoiceConfig{Options: []schema.Option{
		{Label: "Option 1", Value: "option-1"},
		{Label: "Option 2", Value: "option-2"},
	}}
}
