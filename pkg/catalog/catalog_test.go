package catalog_test

import (
	"testing"

	"github.com/goliatone/go-formschema/pkg/catalog"
	"github.com/goliatone/go-formschema/pkg/schema"
)

func TestDefaultCoversEveryFieldType(t *testing.T) {
	t.Parallel()

	c := catalog.Default()
	for _, fieldType := range schema.Types() {
		def, ok := c.Lookup(fieldType)
		if !ok {
			t.Fatalf("no definition for %q", fieldType)
		}
		if def.Label == "" {
			t.Fatalf("definition for %q has no label", fieldType)
		}
		if def.NewConfig == nil {
			t.Fatalf("definition for %q has no config factory", fieldType)
		}
	}
}

func TestNewConfigReturnsFreshCopies(t *testing.T) {
	t.Parallel()

	def := catalog.Default().MustLookup(schema.FieldTypeSelect)

	first := def.NewConfig().(schema.ChoiceConfig)
	second := def.NewConfig().(schema.ChoiceConfig)
	if len(first.Options) == 0 {
		t.Fatalf("expected seeded options")
	}

	first.Options[0].Label = "mutated"
	if second.Options[0].Label == "mutated" {
		t.Fatalf("config factories must not share option slices")
	}
	if def.NewConfig().(schema.ChoiceConfig).Options[0].Label == "mutated" {
		t.Fatalf("mutation leaked back into the catalog")
	}
}

func TestEmailDefinitionCarriesRules(t *testing.T) {
	t.Parallel()

	def := catalog.Default().MustLookup(schema.FieldTypeEmail)
	cfg := def.NewConfig().(schema.TextConfig)
	if len(cfg.Rules) == 0 || cfg.Rules[0].Kind != schema.ValidationEmail {
		t.Fatalf("expected prebuilt email rule, got %#v", cfg.Rules)
	}
}

func TestRegisterReplacesDefinition(t *testing.T) {
	t.Parallel()

	c := catalog.Default()
	c.Register(catalog.Definition{
		Type:     schema.FieldTypeText,
		Category: catalog.CategoryInput,
		Label:    "Short Answer",
	})

	def := c.MustLookup(schema.FieldTypeText)
	if def.Label != "Short Answer" {
		t.Fatalf("expected replacement, got %q", def.Label)
	}
	// Register fills in a factory when none is provided.
	if _, ok := def.NewConfig().(schema.TextConfig); !ok {
		t.Fatalf("expected fallback TextConfig factory, got %T", def.NewConfig())
	}
}

func TestLookupUnknownType(t *testing.T) {
	t.Parallel()

	if _, ok := catalog.Default().Lookup(schema.FieldType("hologram")); ok {
		t.Fatalf("expected unknown type to miss")
	}
}
