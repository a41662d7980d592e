package openapi_test

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-formschema/pkg/model"
	"github.com/goliatone/go-formschema/pkg/openapi"
	"github.com/goliatone/go-formschema/pkg/schema"
	"github.com/goliatone/go-formschema/pkg/testsupport"
)

const registrationDoc = `{
  "openapi": "3.0.3",
  "info": {"title": "Accounts", "version": "1.0.0"},
  "paths": {
    "/signup": {
      "post": {
        "operationId": "createAccount",
        "summary": "Create an account",
        "description": "Registers a new account.",
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["email", "display_name"],
                "properties": {
                  "display_name": {"type": "string", "minLength": 2, "maxLength": 40},
                  "email": {"type": "string", "format": "email"},
                  "age": {"type": "integer", "minimum": 13, "maximum": 120},
                  "plan": {"type": "string", "enum": ["free", "pro"]},
                  "newsletter": {"type": "boolean"}
                }
              }
            }
          }
        },
        "responses": {"201": {"description": "created"}}
      }
    }
  }
}`

func importFixture(t *testing.T) schema.FormSchema {
	t.Helper()
	importer := openapi.NewImporter(openapi.WithModel(model.New(
		model.WithClock(testsupport.Clock),
		model.WithIDGenerator(testsupport.SequentialIDs("field")),
	)))
	form, err := importer.Import(context.Background(), []byte(registrationDoc), "createAccount")
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	return form
}

func TestImportBuildsSchemaFromOperation(t *testing.T) {
	t.Parallel()

	form := importFixture(t)

	if form.Metadata.Title != "Create an account" {
		t.Fatalf("expected summary as title, got %q", form.Metadata.Title)
	}
	if form.Metadata.Description != "Registers a new account." {
		t.Fatalf("unexpected description %q", form.Metadata.Description)
	}

	// Properties arrive in sorted name order.
	wantLabels := []string{"Age", "Display Name", "Email", "Newsletter", "Plan"}
	if len(form.Fields) != len(wantLabels) {
		t.Fatalf("expected %d fields, got %d", len(wantLabels), len(form.Fields))
	}
	for i, want := range wantLabels {
		if form.Fields[i].Label != want {
			t.Fatalf("field %d label = %q, want %q", i, form.Fields[i].Label, want)
		}
		if form.Fields[i].Order != i {
			t.Fatalf("field %d order = %d", i, form.Fields[i].Order)
		}
	}
}

func TestImportMapsPropertyTypes(t *testing.T) {
	t.Parallel()

	form := importFixture(t)

	age := form.Fields[0]
	if age.Type != schema.FieldTypeNumber {
		t.Fatalf("age type = %q", age.Type)
	}
	ageCfg := age.Config.(schema.NumberConfig)
	if ageCfg.Min == nil || *ageCfg.Min != 13 || ageCfg.Max == nil || *ageCfg.Max != 120 {
		t.Fatalf("age bounds not mapped: %#v", ageCfg)
	}
	if ageCfg.Required {
		t.Fatalf("age is optional in the document")
	}

	name := form.Fields[1]
	if name.Type != schema.FieldTypeText {
		t.Fatalf("display_name type = %q", name.Type)
	}
	nameCfg := name.Config.(schema.TextConfig)
	if !nameCfg.Required {
		t.Fatalf("display_name is required in the document")
	}
	if len(nameCfg.Rules) != 2 ||
		nameCfg.Rules[0].Kind != schema.ValidationMinLength ||
		nameCfg.Rules[1].Kind != schema.ValidationMaxLength {
		t.Fatalf("length rules not mapped: %#v", nameCfg.Rules)
	}

	email := form.Fields[2]
	if email.Type != schema.FieldTypeEmail {
		t.Fatalf("email type = %q", email.Type)
	}
	emailCfg := email.Config.(schema.TextConfig)
	if len(emailCfg.Rules) != 1 || emailCfg.Rules[0].Kind != schema.ValidationEmail {
		t.Fatalf("email rule not mapped: %#v", emailCfg.Rules)
	}

	newsletter := form.Fields[3]
	if newsletter.Type != schema.FieldTypeRadio {
		t.Fatalf("newsletter type = %q", newsletter.Type)
	}
	newsCfg := newsletter.Config.(schema.ChoiceConfig)
	if len(newsCfg.Options) != 2 || newsCfg.Options[0].Value != "true" || newsCfg.Options[1].Value != "false" {
		t.Fatalf("boolean options not mapped: %#v", newsCfg.Options)
	}

	plan := form.Fields[4]
	if plan.Type != schema.FieldTypeSelect {
		t.Fatalf("plan type = %q", plan.Type)
	}
	planCfg := plan.Config.(schema.ChoiceConfig)
	if len(planCfg.Options) != 2 || planCfg.Options[0].Value != "free" || planCfg.Options[1].Value != "pro" {
		t.Fatalf("enum options not mapped: %#v", planCfg.Options)
	}
}

func TestImportOperationNotFound(t *testing.T) {
	t.Parallel()

	importer := openapi.NewImporter()
	_, err := importer.Import(context.Background(), []byte(registrationDoc), "deleteAccount")
	if !errors.Is(err, openapi.ErrOperationNotFound) {
		t.Fatalf("expected ErrOperationNotFound, got %v", err)
	}
}

func TestImportEmptyPayload(t *testing.T) {
	t.Parallel()

	importer := openapi.NewImporter()
	if _, err := importer.Import(context.Background(), nil, "createAccount"); err == nil {
		t.Fatalf("expected error for empty payload")
	}
}

func TestLabelHumanizesNames(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"display_name", "Display Name"},
		{"display-name", "Display Name"},
		{"displayName", "Display Name"},
		{"email", "Email"},
		{"shippingAddressLine1", "Shipping Address Line1"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := openapi.Label(tc.in); got != tc.want {
			t.Fatalf("Label(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
