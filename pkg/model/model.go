package model

import (
	"fmt"

	"github.com/goliatone/go-formschema/pkg/schema"
)

// Model performs schema lifecycle operations with injected defaults.
type Model struct {
	opts Options
}

// New constructs a Model.
func New(options ...Option) *Model {
	opts := defaultOptions()
	for _, apply := range options {
		apply(&opts)
	}
	return &Model{opts: opts}
}

// NewSchema returns an empty form schema with default metadata and settings,
// stamped with the current version tag.
func (m *Model) NewSchema() schema.FormSchema {
	now := m.opts.Clock()
	return schema.FormSchema{
		Version: schema.CurrentVersion,
		ID:      m.opts.NewID(),
		Metadata: schema.FormMetadata{
			Title:     "Untitled Form",
			CreatedAt: now,
			UpdatedAt: now,
		},
		Fields: []schema.FieldSchema{},
		Settings: schema.FormSettings{
			SubmitButton:   schema.SubmitButton{Text: "Submit", Enabled: true},
			SuccessMessage: "Thank you! Your response has been recorded.",
		},
	}
}

// NewField constructs a detached field of the given type with a fresh id and
// catalog-supplied label and config.
func (m *Model) NewField(t schema.FieldType, order int) (schema.FieldSchema, error) {
	def, ok := m.opts.Catalog.Lookup(t)
	if !ok {
		return schema.FieldSchema{}, fmt.Errorf("%w: %q", ErrUnknownFieldType, t)
	}
	return schema.FieldSchema{
		ID:     m.opts.NewID(),
		Type:   t,
		Label:  def.Label,
		Config: def.NewConfig(),
		Order:  order,
	}, nil
}

// AddField appends a newly created field of the given type and returns the
// new snapshot along with the inserted field, which editors treat as the
// current selection.
func (m *Model) AddField(s schema.FormSchema, t schema.FieldType) (schema.FormSchema, schema.FieldSchema, error) {
	return m.AddFieldAt(s, t, len(s.Fields))
}

// AddFieldAt inserts a newly created field at position. Positions outside
// [0, len(fields)] fail with ErrIndexOutOfRange.
func (m *Model) AddFieldAt(s schema.FormSchema, t schema.FieldType, position int) (schema.FormSchema, schema.FieldSchema, error) {
	if position < 0 || position > len(s.Fields) {
		return s, schema.FieldSchema{}, fmt.Errorf("%w: insert position %d with %d fields", ErrIndexOutOfRange, position, len(s.Fields))
	}
	field, err := m.NewField(t, position)
	if err != nil {
		return s, schema.FieldSchema{}, err
	}

	out := s.Clone()
	out.Fields = append(out.Fields, schema.FieldSchema{})
	copy(out.Fields[position+1:], out.Fields[position:])
	out.Fields[position] = field
	renumber(out.Fields)
	m.touch(&out)
	return out, out.Fields[position], nil
}

// FieldPatch is a partial field update. Nil members are left untouched;
// non-nil members replace the current value wholesale.
type FieldPatch struct {
	Label      *string
	Type       *schema.FieldType
	Config     schema.FieldConfig
	Conditions *schema.FieldConditions
	// ClearConditions removes the conditions entirely, making the field
	// unconditionally visible again.
	ClearConditions bool
}

// UpdateField applies a patch to the field with the matching id. An unknown
// id is a no-op and returns the input schema unchanged.
func (m *Model) UpdateField(s schema.FormSchema, fieldID string, patch FieldPatch) schema.FormSchema {
	idx := s.FieldIndex(fieldID)
	if idx < 0 {
		return s
	}

	out := s.Clone()
	field := &out.Fields[idx]
	if patch.Type != nil && *patch.Type != field.Type {
		field.Type = *patch.Type
		// A type change invalidates the old config variant; fall back to the
		// catalog default unless the patch carries a replacement.
		if patch.Config == nil {
			if def, ok := m.opts.Catalog.Lookup(field.Type); ok {
				field.Config = def.NewConfig()
			} else {
				field.Config = schema.DefaultConfig(field.Type)
			}
		}
	}
	if patch.Label != nil {
		field.Label = *patch.Label
	}
	if patch.Config != nil {
		field.Config = patch.Config
	}
	if patch.ClearConditions {
		field.Conditions = nil
	} else if patch.Conditions != nil {
		conditions := patch.Conditions.Clone()
		field.Conditions = &conditions
	}
	m.touch(&out)
	return out
}

// RemoveField deletes the field and sweeps every remaining field's
// conditional rules, dropping rules that referenced the removed id. A field
// whose rule list becomes empty loses its conditions entirely, restoring
// unconditional visibility. An unknown id is a no-op.
func (m *Model) RemoveField(s schema.FormSchema, fieldID string) schema.FormSchema {
	idx := s.FieldIndex(fieldID)
	if idx < 0 {
		return s
	}

	out := s.Clone()
	out.Fields = append(out.Fields[:idx], out.Fields[idx+1:]...)
	for i := range out.Fields {
		sweepConditions(&out.Fields[i], fieldID)
	}
	renumber(out.Fields)
	m.touch(&out)
	return out
}

// DuplicateField clones the field with a fresh id, marks the label as a
// copy, and inserts the clone directly after the source.
func (m *Model) DuplicateField(s schema.FormSchema, fieldID string) (schema.FormSchema, schema.FieldSchema, error) {
	idx := s.FieldIndex(fieldID)
	if idx < 0 {
		return s, schema.FieldSchema{}, fmt.Errorf("%w: %q", ErrFieldNotFound, fieldID)
	}

	out := s.Clone()
	clone := out.Fields[idx].Clone()
	clone.ID = m.opts.NewID()
	clone.Label = clone.Label + " (copy)"

	out.Fields = append(out.Fields, schema.FieldSchema{})
	copy(out.Fields[idx+2:], out.Fields[idx+1:])
	out.Fields[idx+1] = clone
	renumber(out.Fields)
	m.touch(&out)
	return out, out.Fields[idx+1], nil
}

// ReorderField moves the field at fromIndex to toIndex and renumbers the
// whole sequence. Out-of-range indices fail with ErrIndexOutOfRange.
func (m *Model) ReorderField(s schema.FormSchema, fromIndex, toIndex int) (schema.FormSchema, error) {
	if fromIndex < 0 || fromIndex >= len(s.Fields) {
		return s, fmt.Errorf("%w: from index %d with %d fields", ErrIndexOutOfRange, fromIndex, len(s.Fields))
	}
	if toIndex < 0 || toIndex >= len(s.Fields) {
		return s, fmt.Errorf("%w: to index %d with %d fields", ErrIndexOutOfRange, toIndex, len(s.Fields))
	}

	out := s.Clone()
	field := out.Fields[fromIndex]
	out.Fields = append(out.Fields[:fromIndex], out.Fields[fromIndex+1:]...)
	out.Fields = append(out.Fields, schema.FieldSchema{})
	copy(out.Fields[toIndex+1:], out.Fields[toIndex:])
	out.Fields[toIndex] = field
	renumber(out.Fields)
	m.touch(&out)
	return out, nil
}

// UpdateSettings replaces the form settings.
func (m *Model) UpdateSettings(s schema.FormSchema, settings schema.FormSettings) schema.FormSchema {
	out := s.Clone()
	out.Settings = settings
	m.touch(&out)
	return out
}

// UpdateMetadata replaces the form title and description.
func (m *Model) UpdateMetadata(s schema.FormSchema, title, description string) schema.FormSchema {
	out := s.Clone()
	out.Metadata.Title = title
	out.Metadata.Description = description
	m.touch(&out)
	return out
}

func (m *Model) touch(s *schema.FormSchema) {
	s.Metadata.UpdatedAt = m.opts.Clock()
}

func renumber(fields []schema.FieldSchema) {
	for i := range fields {
		fields[i].Order = i
	}
}

func sweepConditions(field *schema.FieldSchema, removedID string) {
	if field.Conditions == nil {
		return
	}
	kept := field.Conditions.Rules[:0]
	for _, rule := range field.Conditions.Rules {
		if rule.Field != removedID {
			kept = append(kept, rule)
		}
	}
	if len(kept) == 0 {
		field.Conditions = nil
		return
	}
	field.Conditions.Rules = kept
}
