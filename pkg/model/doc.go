// Package model implements the form schema lifecycle: creating empty
// schemas, adding, updating, removing, duplicating, and reordering fields.
//
// Every operation is pure. The input schema is never mutated; each call
// clones it, applies the change, renumbers field order, stamps the update
// timestamp, and returns the new snapshot. The caller is the single owner of
// the current snapshot and simply replaces its reference.
package model
