package schema

import "time"

// CurrentVersion is the structural version tag stamped on schemas produced or
// migrated by this module.
const CurrentVersion = "1.0"

// FormSchema is the top-level declarative description of a form. Its JSON
// encoding is the persisted document shape consumed by editors and renderers.
type FormSchema struct {
	Version  string       `json:"version"`
	ID       string       `json:"id"`
	Metadata FormMetadata `json:"metadata"`
	Fields   []FieldSchema `json:"fields"`
	Settings FormSettings `json:"settings"`
}

// FormMetadata carries display metadata and lifecycle timestamps.
type FormMetadata struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FormSettings configures submission behaviour.
type FormSettings struct {
	SubmitButton   SubmitButton `json:"submitButton"`
	SuccessMessage string       `json:"successMessage"`
	RedirectURL    string       `json:"redirectUrl,omitempty"`
}

// SubmitButton describes the submit control.
type SubmitButton struct {
	Text    string `json:"text"`
	Enabled bool   `json:"enabled"`
}

// FormData maps field ids to submitted values. Value shape depends on the
// field type: scalar, []any for multi-choice fields, or FileValue /
// []FileValue for file fields. An absent key means "not yet answered".
type FormData map[string]any

// Value returns the answer for a field id.
func (d FormData) Value(fieldID string) (any, bool) {
	if d == nil {
		return nil, false
	}
	v, ok := d[fieldID]
	return v, ok
}

// FileValue is the answer shape for file fields.
type FileValue struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	MIME string `json:"mime"`
}

// Field looks up a field by id.
func (s FormSchema) Field(id string) (FieldSchema, bool) {
	for _, field := range s.Fields {
		if field.ID == id {
			return field, true
		}
	}
	return FieldSchema{}, false
}

// FieldIndex returns the position of a field id, or -1 when absent.
func (s FormSchema) FieldIndex(id string) int {
	for idx, field := range s.Fields {
		if field.ID == id {
			return idx
		}
	}
	return -1
}

// Clone returns a deep copy of the schema. Mutating operations in pkg/model
// clone first so every mutation yields a fresh snapshot.
func (s FormSchema) Clone() FormSchema {
	out := s
	if s.Fields != nil {
		out.Fields = make([]FieldSchema, len(s.Fields))
		for idx, field := range s.Fields {
			out.Fields[idx] = field.Clone()
		}
	}
	return out
}
