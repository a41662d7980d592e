package schema

import (
	"encoding/json"
	"fmt"
)

// FieldType enumerates the kinds of fields a form can carry.
type FieldType string

const (
	FieldTypeText      FieldType = "text"
	FieldTypeTextarea  FieldType = "textarea"
	FieldTypeEmail     FieldType = "email"
	FieldTypePhone     FieldType = "phone"
	FieldTypeURL       FieldType = "url"
	FieldTypeNumber    FieldType = "number"
	FieldTypeDate      FieldType = "date"
	FieldTypeTime      FieldType = "time"
	FieldTypeSelect    FieldType = "select"
	FieldTypeRadio     FieldType = "radio"
	FieldTypeCheckbox  FieldType = "checkbox"
	FieldTypeFile      FieldType = "file"
	FieldTypeRating    FieldType = "rating"
	FieldTypeSlider    FieldType = "slider"
	FieldTypeSignature FieldType = "signature"
	FieldTypeLocation  FieldType = "location"
	FieldTypeSection   FieldType = "section"
	FieldTypeHidden    FieldType = "hidden"
)

// Types lists every field type in a stable order.
func Types() []FieldType {
	return []FieldType{
		FieldTypeText, FieldTypeTextarea, FieldTypeEmail, FieldTypePhone,
		FieldTypeURL, FieldTypeNumber, FieldTypeDate, FieldTypeTime,
		FieldTypeSelect, FieldTypeRadio, FieldTypeCheckbox, FieldTypeFile,
		FieldTypeRating, FieldTypeSlider, FieldTypeSignature,
		FieldTypeLocation, FieldTypeSection, FieldTypeHidden,
	}
}

// HasValue reports whether the type carries a submitted value. Section fields
// are layout-only.
func (t FieldType) HasValue() bool {
	return t != FieldTypeSection
}

// Interactive reports whether the type collects user input at all. Hidden
// fields carry tracking data supplied by the embedding page, not the user.
func (t FieldType) Interactive() bool {
	return t != FieldTypeSection && t != FieldTypeHidden
}

// FieldSchema is one field's declarative description.
type FieldSchema struct {
	ID         string           `json:"id"`
	Type       FieldType        `json:"type"`
	Label      string           `json:"label"`
	Config     FieldConfig      `json:"config"`
	Conditions *FieldConditions `json:"conditions,omitempty"`
	Order      int              `json:"order"`
}

// Required reports whether the field's config marks it mandatory.
func (f FieldSchema) Required() bool {
	switch cfg := f.Config.(type) {
	case TextConfig:
		return cfg.Required
	case NumberConfig:
		return cfg.Required
	case ChoiceConfig:
		return cfg.Required
	case FileConfig:
		return cfg.Required
	default:
		return false
	}
}

// Rules returns the generic validation rules declared on the field, in order.
func (f FieldSchema) Rules() []ValidationRule {
	switch cfg := f.Config.(type) {
	case TextConfig:
		return cfg.Rules
	case NumberConfig:
		return cfg.Rules
	default:
		return nil
	}
}

// Clone returns a deep copy of the field.
func (f FieldSchema) Clone() FieldSchema {
	out := f
	out.Config = cloneConfig(f.Config)
	if f.Conditions != nil {
		conditions := f.Conditions.Clone()
		out.Conditions = &conditions
	}
	return out
}

// UnmarshalJSON decodes the config payload into the concrete variant selected
// by the field type, keeping the tagged-union discipline at the wire boundary.
func (f *FieldSchema) UnmarshalJSON(data []byte) error {
	type raw struct {
		ID         string           `json:"id"`
		Type       FieldType        `json:"type"`
		Label      string           `json:"label"`
		Config     json.RawMessage  `json:"config"`
		Conditions *FieldConditions `json:"conditions,omitempty"`
		Order      int              `json:"order"`
	}
	var decoded raw
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	f.ID = decoded.ID
	f.Type = decoded.Type
	f.Label = decoded.Label
	f.Conditions = decoded.Conditions
	f.Order = decoded.Order

	cfg, err := decodeConfig(decoded.Type, decoded.Config)
	if err != nil {
		return fmt.Errorf("schema: field %q: %w", decoded.ID, err)
	}
	f.Config = cfg
	return nil
}
