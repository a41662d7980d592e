package depgraph_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formschema/pkg/depgraph"
	"github.com/goliatone/go-formschema/pkg/schema"
)

func conditionalField(id string, deps ...string) schema.FieldSchema {
	field := schema.FieldSchema{
		ID:    id,
		Type:  schema.FieldTypeText,
		Label: id,
	}
	if len(deps) == 0 {
		return field
	}
	rules := make([]schema.ConditionalRule, 0, len(deps))
	for _, dep := range deps {
		rules = append(rules, schema.ConditionalRule{
			Field:    dep,
			Operator: schema.OperatorIsNotEmpty,
		})
	}
	field.Conditions = &schema.FieldConditions{Show: true, Rules: rules, Logic: schema.LogicAnd}
	return field
}

func TestBuildCollectsDependencies(t *testing.T) {
	t.Parallel()

	g := depgraph.Build([]schema.FieldSchema{
		conditionalField("a"),
		conditionalField("b", "a"),
		conditionalField("c", "a", "b"),
	})

	want := depgraph.Graph{
		"a": nil,
		"b": {"a"},
		"c": {"a", "b"},
	}
	if diff := cmp.Diff(want, g); diff != "" {
		t.Fatalf("unexpected graph (-want +got):\n%s", diff)
	}
}

func TestDetectCyclesLinearChainIsClean(t *testing.T) {
	t.Parallel()

	got := depgraph.DetectCycles([]schema.FieldSchema{
		conditionalField("a", "b"),
		conditionalField("b", "c"),
		conditionalField("c"),
	})
	if len(got) != 0 {
		t.Fatalf("expected no cycles, got %v", got)
	}
}

func TestDetectCyclesThreeNodeLoop(t *testing.T) {
	t.Parallel()

	got := depgraph.DetectCycles([]schema.FieldSchema{
		conditionalField("a", "b"),
		conditionalField("b", "c"),
		conditionalField("c", "a"),
	})
	if len(got) == 0 {
		t.Fatalf("expected a cycle to be reported")
	}
	members := map[string]bool{"a": true, "b": true, "c": true}
	for _, id := range got {
		if !members[id] {
			t.Fatalf("reported id %q is not part of the cycle", id)
		}
	}
}

func TestDetectCyclesSelfReference(t *testing.T) {
	t.Parallel()

	got := depgraph.DetectCycles([]schema.FieldSchema{conditionalField("a", "a")})
	if diff := cmp.Diff([]string{"a"}, got); diff != "" {
		t.Fatalf("unexpected cycle report (-want +got):\n%s", diff)
	}
}

func TestDetectCyclesReportsEntryPointsOnly(t *testing.T) {
	t.Parallel()

	// d hangs off the b<->c loop but is not itself part of it.
	got := depgraph.DetectCycles([]schema.FieldSchema{
		conditionalField("a"),
		conditionalField("b", "c"),
		conditionalField("c", "b"),
		conditionalField("d", "b"),
	})
	if len(got) != 1 {
		t.Fatalf("expected a single entry point, got %v", got)
	}
	if got[0] != "b" && got[0] != "c" {
		t.Fatalf("entry point %q not in the loop", got[0])
	}
}

func TestDetectCyclesDanglingReference(t *testing.T) {
	t.Parallel()

	// Rules may reference ids that no longer exist in the schema.
	got := depgraph.DetectCycles([]schema.FieldSchema{conditionalField("a", "ghost")})
	if len(got) != 0 {
		t.Fatalf("expected dangling reference to be ignored, got %v", got)
	}
}

func TestDetectCyclesNoConditions(t *testing.T) {
	t.Parallel()

	got := depgraph.DetectCycles([]schema.FieldSchema{conditionalField("a"), conditionalField("b")})
	if len(got) != 0 {
		t.Fatalf("expected empty report, got %v", got)
	}
}
