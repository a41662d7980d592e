package model_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formschema/pkg/model"
	"github.com/goliatone/go-formschema/pkg/schema"
	"github.com/goliatone/go-formschema/pkg/testsupport"
)

func newModel(t *testing.T) *model.Model {
	t.Helper()
	return model.New(
		model.WithClock(testsupport.Clock),
		model.WithIDGenerator(testsupport.SequentialIDs("field")),
	)
}

func TestNewSchemaDefaults(t *testing.T) {
	t.Parallel()

	m := newModel(t)
	form := m.NewSchema()

	if form.Version != schema.CurrentVersion {
		t.Fatalf("expected version %q, got %q", schema.CurrentVersion, form.Version)
	}
	if len(form.Fields) != 0 {
		t.Fatalf("expected no fields, got %d", len(form.Fields))
	}
	if !form.Metadata.CreatedAt.Equal(testsupport.FixedTime) || !form.Metadata.UpdatedAt.Equal(testsupport.FixedTime) {
		t.Fatalf("expected fixed timestamps, got %v / %v", form.Metadata.CreatedAt, form.Metadata.UpdatedAt)
	}
	if !form.Settings.SubmitButton.Enabled {
		t.Fatalf("expected submit button enabled by default")
	}
}

func TestAddFieldAppendsAndNumbers(t *testing.T) {
	t.Parallel()

	m := newModel(t)
	form := m.NewSchema()

	var selected schema.FieldSchema
	var err error
	for _, fieldType := range []schema.FieldType{schema.FieldTypeText, schema.FieldTypeEmail, schema.FieldTypeSelect} {
		form, selected, err = m.AddField(form, fieldType)
		if err != nil {
			t.Fatalf("AddField: %v", err)
		}
	}

	if selected.Type != schema.FieldTypeSelect || selected.Order != 2 {
		t.Fatalf("expected selection to be the inserted field, got %#v", selected)
	}
	assertOrderInvariant(t, form)

	// Catalog defaults flow into new fields.
	if _, ok := form.Fields[2].Config.(schema.ChoiceConfig); !ok {
		t.Fatalf("expected ChoiceConfig for select field, got %T", form.Fields[2].Config)
	}
	if form.Fields[1].Label != "Email" {
		t.Fatalf("expected catalog label, got %q", form.Fields[1].Label)
	}
}

func TestAddFieldAtInsertsInMiddle(t *testing.T) {
	t.Parallel()

	m := newModel(t)
	form := m.NewSchema()
	form, _, _ = m.AddField(form, schema.FieldTypeText)
	form, _, _ = m.AddField(form, schema.FieldTypeText)

	form, inserted, err := m.AddFieldAt(form, schema.FieldTypeNumber, 1)
	if err != nil {
		t.Fatalf("AddFieldAt: %v", err)
	}
	if form.Fields[1].ID != inserted.ID {
		t.Fatalf("expected inserted field at index 1")
	}
	assertOrderInvariant(t, form)
}

func TestAddFieldAtOutOfRange(t *testing.T) {
	t.Parallel()

	m := newModel(t)
	form := m.NewSchema()
	if _, _, err := m.AddFieldAt(form, schema.FieldTypeText, 1); !errors.Is(err, model.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if _, _, err := m.AddFieldAt(form, schema.FieldTypeText, -1); !errors.Is(err, model.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestAddFieldUnknownType(t *testing.T) {
	t.Parallel()

	m := newModel(t)
	form := m.NewSchema()
	if _, _, err := m.AddField(form, schema.FieldType("hologram")); !errors.Is(err, model.ErrUnknownFieldType) {
		t.Fatalf("expected ErrUnknownFieldType, got %v", err)
	}
}

func TestUpdateFieldAppliesPatch(t *testing.T) {
	t.Parallel()

	m := newModel(t)
	form := m.NewSchema()
	form, field, _ := m.AddField(form, schema.FieldTypeText)

	label := "Your name"
	form = m.UpdateField(form, field.ID, model.FieldPatch{
		Label:  &label,
		Config: schema.TextConfig{Required: true, Placeholder: "Ada"},
	})

	got := form.Fields[0]
	if got.Label != label {
		t.Fatalf("expected label %q, got %q", label, got.Label)
	}
	cfg := got.Config.(schema.TextConfig)
	if !cfg.Required || cfg.Placeholder != "Ada" {
		t.Fatalf("unexpected config: %#v", cfg)
	}
}

func TestUpdateFieldUnknownIDIsNoOp(t *testing.T) {
	t.Parallel()

	m := newModel(t)
	form := m.NewSchema()
	form, _, _ = m.AddField(form, schema.FieldTypeText)

	label := "nope"
	after := m.UpdateField(form, "missing", model.FieldPatch{Label: &label})
	if diff := cmp.Diff(form, after); diff != "" {
		t.Fatalf("expected unchanged schema (-want +got):\n%s", diff)
	}
}

func TestUpdateFieldTypeChangeResetsConfig(t *testing.T) {
	t.Parallel()

	m := newModel(t)
	form := m.NewSchema()
	form, field, _ := m.AddField(form, schema.FieldTypeText)

	next := schema.FieldTypeSelect
	form = m.UpdateField(form, field.ID, model.FieldPatch{Type: &next})

	if form.Fields[0].Type != schema.FieldTypeSelect {
		t.Fatalf("expected type change, got %q", form.Fields[0].Type)
	}
	if _, ok := form.Fields[0].Config.(schema.ChoiceConfig); !ok {
		t.Fatalf("expected config reset to ChoiceConfig, got %T", form.Fields[0].Config)
	}
}

func TestRemoveFieldSweepsConditionalRules(t *testing.T) {
	t.Parallel()

	m := newModel(t)
	form := conditionalFixture(t, m)

	// "summary" depends on both "country" and "subscribe".
	form = m.RemoveField(form, "country")

	summary, ok := form.Field("summary")
	if !ok {
		t.Fatalf("summary field missing")
	}
	if summary.Conditions == nil {
		t.Fatalf("expected surviving conditions")
	}
	if len(summary.Conditions.Rules) != 1 || summary.Conditions.Rules[0].Field != "subscribe" {
		t.Fatalf("expected only subscribe rule, got %#v", summary.Conditions.Rules)
	}

	form = m.RemoveField(form, "subscribe")
	summary, _ = form.Field("summary")
	if summary.Conditions != nil {
		t.Fatalf("expected conditions removed when rule list empties, got %#v", summary.Conditions)
	}
	assertOrderInvariant(t, form)
}

func TestRemoveFieldUnknownIDIsNoOp(t *testing.T) {
	t.Parallel()

	m := newModel(t)
	form := m.NewSchema()
	form, _, _ = m.AddField(form, schema.FieldTypeText)
	after := m.RemoveField(form, "missing")
	if diff := cmp.Diff(form, after); diff != "" {
		t.Fatalf("expected unchanged schema (-want +got):\n%s", diff)
	}
}

func TestDuplicateFieldInsertsAfterSource(t *testing.T) {
	t.Parallel()

	m := newModel(t)
	form := m.NewSchema()
	form, first, _ := m.AddField(form, schema.FieldTypeText)
	form, _, _ = m.AddField(form, schema.FieldTypeNumber)

	form, clone, err := m.DuplicateField(form, first.ID)
	if err != nil {
		t.Fatalf("DuplicateField: %v", err)
	}
	if clone.ID == first.ID {
		t.Fatalf("expected fresh id for clone")
	}
	if clone.Label != first.Label+" (copy)" {
		t.Fatalf("expected copy suffix, got %q", clone.Label)
	}
	if form.Fields[1].ID != clone.ID {
		t.Fatalf("expected clone directly after source")
	}
	assertOrderInvariant(t, form)
}

func TestDuplicateFieldUnknownID(t *testing.T) {
	t.Parallel()

	m := newModel(t)
	form := m.NewSchema()
	if _, _, err := m.DuplicateField(form, "missing"); !errors.Is(err, model.ErrFieldNotFound) {
		t.Fatalf("expected ErrFieldNotFound, got %v", err)
	}
}

func TestReorderFieldRotates(t *testing.T) {
	t.Parallel()

	m := newModel(t)
	form := m.NewSchema()
	form, a, _ := m.AddField(form, schema.FieldTypeText)
	form, b, _ := m.AddField(form, schema.FieldTypeText)
	form, c, _ := m.AddField(form, schema.FieldTypeText)

	form, err := m.ReorderField(form, 0, 2)
	if err != nil {
		t.Fatalf("ReorderField: %v", err)
	}
	got := []string{form.Fields[0].ID, form.Fields[1].ID, form.Fields[2].ID}
	want := []string{b.ID, c.ID, a.ID}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected rotation (-want +got):\n%s", diff)
	}
	assertOrderInvariant(t, form)
}

func TestReorderFieldOutOfRange(t *testing.T) {
	t.Parallel()

	m := newModel(t)
	form := m.NewSchema()
	form, _, _ = m.AddField(form, schema.FieldTypeText)

	if _, err := m.ReorderField(form, 0, 5); !errors.Is(err, model.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if _, err := m.ReorderField(form, -1, 0); !errors.Is(err, model.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestMutationsAreCopyOnWrite(t *testing.T) {
	t.Parallel()

	m := newModel(t)
	form := m.NewSchema()
	form, _, _ = m.AddField(form, schema.FieldTypeText)

	before := form.Clone()
	_, _, _ = m.AddField(form, schema.FieldTypeNumber)
	_ = m.RemoveField(form, form.Fields[0].ID)

	if diff := cmp.Diff(before, form); diff != "" {
		t.Fatalf("input schema mutated (-want +got):\n%s", diff)
	}
}

func TestMutationsStampUpdatedAt(t *testing.T) {
	t.Parallel()

	current := testsupport.FixedTime
	m := model.New(
		model.WithClock(func() time.Time { return current }),
		model.WithIDGenerator(testsupport.SequentialIDs("field")),
	)

	form := m.NewSchema()
	current = current.Add(time.Minute)
	form, _, _ = m.AddField(form, schema.FieldTypeText)

	if !form.Metadata.UpdatedAt.Equal(current) {
		t.Fatalf("expected updatedAt %v, got %v", current, form.Metadata.UpdatedAt)
	}
	if !form.Metadata.CreatedAt.Equal(testsupport.FixedTime) {
		t.Fatalf("createdAt must not move, got %v", form.Metadata.CreatedAt)
	}

	current = current.Add(time.Minute)
	form = m.UpdateSettings(form, form.Settings)
	if !form.Metadata.UpdatedAt.Equal(current) {
		t.Fatalf("expected settings update to stamp updatedAt")
	}
}

func assertOrderInvariant(t *testing.T, form schema.FormSchema) {
	t.Helper()
	seen := make(map[string]bool, len(form.Fields))
	for i, field := range form.Fields {
		if field.Order != i {
			t.Fatalf("field %q at index %d has order %d", field.ID, i, field.Order)
		}
		if seen[field.ID] {
			t.Fatalf("duplicate field id %q", field.ID)
		}
		seen[field.ID] = true
	}
}

func conditionalFixture(t *testing.T, m *model.Model) schema.FormSchema {
	t.Helper()

	form := m.NewSchema()
	for _, spec := range []struct {
		id        string
		fieldType schema.FieldType
	}{
		{"country", schema.FieldTypeSelect},
		{"subscribe", schema.FieldTypeCheckbox},
		{"summary", schema.FieldTypeTextarea},
	} {
		var err error
		form, _, err = m.AddField(form, spec.fieldType)
		if err != nil {
			t.Fatalf("AddField %q: %v", spec.id, err)
		}
		form.Fields[len(form.Fields)-1].ID = spec.id
	}

	form = m.UpdateField(form, "summary", model.FieldPatch{
		Conditions: &schema.FieldConditions{
			Rules: []schema.ConditionalRule{
				{Field: "country", Operator: schema.OperatorEquals, Value: "US"},
				{Field: "subscribe", Operator: schema.OperatorIsNotEmpty},
			},
			Logic: schema.LogicAnd,
		},
	})
	return form
}
