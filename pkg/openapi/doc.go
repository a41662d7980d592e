// Package openapi imports form schemas from OpenAPI documents. An
// operation's request body becomes a FormSchema: properties map onto typed
// fields, OpenAPI constraints onto validation rules, and the required list
// onto the per-field required flag.
//
// The import path is one-way and editor-facing: it seeds a schema that the
// model operations then evolve like any hand-built form.
package openapi
