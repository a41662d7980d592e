// Package schema defines the declarative form document model: the versioned
// FormSchema, per-field FieldSchema entries with type-specific config
// variants, conditional visibility rules, and the answer-set FormData shape.
//
// The JSON encoding of FormSchema is the literal persisted wire format;
// loaders are expected to run migrate.ValidateStructure and migrate.Migrate
// before handing a stored document to the rest of the engine.
package schema
