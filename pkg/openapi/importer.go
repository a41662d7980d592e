package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formschema/pkg/model"
	"github.com/goliatone/go-formschema/pkg/schema"
)

// ErrOperationNotFound reports an operation id absent from the document.
var ErrOperationNotFound = errors.New("openapi: operation not found")

// requestMediaTypes lists the content types considered for the request body,
// in preference order.
var requestMediaTypes = []string{
	"application/json",
	"application/x-www-form-urlencoded",
	"multipart/form-data",
}

// Importer builds form schemas from OpenAPI operations.
type Importer struct {
	model  *model.Model
	loader *Loader
}

// ImporterOption configures an Importer.
type ImporterOption func(*Importer)

// WithModel injects the schema model used to assemble the form, letting
// callers control ids, timestamps, and catalog defaults.
func WithModel(m *model.Model) ImporterOption {
	return func(i *Importer) {
		if m != nil {
			i.model = m
		}
	}
}

// WithLoader injects the document loader used by ImportSource.
func WithLoader(l *Loader) ImporterOption {
	return func(i *Importer) {
		if l != nil {
			i.loader = l
		}
	}
}

// NewImporter constructs an Importer.
func NewImporter(options ...ImporterOption) *Importer {
	i := &Importer{
		model:  model.New(),
		loader: NewLoader(LoaderOptions{}),
	}
	for _, apply := range options {
		apply(i)
	}
	return i
}

// ImportSource loads a document from src and imports the named operation.
func (i *Importer) ImportSource(ctx context.Context, src Source, operationID string) (schema.FormSchema, error) {
	data, err := i.loader.Load(ctx, src)
	if err != nil {
		return schema.FormSchema{}, err
	}
	return i.Import(ctx, data, operationID)
}

// Import parses an OpenAPI document (JSON or YAML) and converts the named
// operation's request body into a form schema.
func (i *Importer) Import(ctx context.Context, data []byte, operationID string) (schema.FormSchema, error) {
	if len(data) == 0 {
		return schema.FormSchema{}, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return schema.FormSchema{}, fmt.Errorf("openapi: load document: %w", err)
	}

	operation := findOperation(doc, operationID)
	if operation == nil {
		return schema.FormSchema{}, fmt.Errorf("%w: %q", ErrOperationNotFound, operationID)
	}

	body := requestSchema(operation)
	if body == nil || len(body.Properties) == 0 {
		return schema.FormSchema{}, fmt.Errorf("openapi: operation %q has no object request body to import", operationID)
	}

	form := i.model.NewSchema()
	title := strings.TrimSpace(operation.Summary)
	if title == "" {
		title = operationID
	}
	form = i.model.UpdateMetadata(form, title, strings.TrimSpace(operation.Description))

	requiredSet := make(map[string]struct{}, len(body.Required))
	for _, name := range body.Required {
		requiredSet[name] = struct{}{}
	}

	names := make([]string, 0, len(body.Properties))
	for name := range body.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ref := body.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		_, isRequired := requiredSet[name]
		fieldType, cfg := mapProperty(ref.Value, isRequired)

		var field schema.FieldSchema
		form, field, err = i.model.AddField(form, fieldType)
		if err != nil {
			return schema.FormSchema{}, fmt.Errorf("openapi: property %q: %w", name, err)
		}
		label := Label(name)
		form = i.model.UpdateField(form, field.ID, model.FieldPatch{Label: &label, Config: cfg})
	}

	return form, nil
}

func findOperation(doc *openapi3.T, operationID string) *openapi3.Operation {
	if doc.Paths == nil {
		return nil
	}
	for _, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for _, operation := range item.Operations() {
			if operation != nil && operation.OperationID == operationID {
				return operation
			}
		}
	}
	return nil
}

func requestSchema(operation *openapi3.Operation) *openapi3.Schema {
	if operation.RequestBody == nil || operation.RequestBody.Value == nil {
		return nil
	}
	content := operation.RequestBody.Value.Content
	for _, mediaType := range requestMediaTypes {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}
