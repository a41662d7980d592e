package model

import "errors"

var (
	// ErrIndexOutOfRange reports a reorder or insert position outside the
	// field sequence. This is a contract violation by the caller; operations
	// fail loudly instead of clamping.
	ErrIndexOutOfRange = errors.New("model: index out of range")
	// ErrFieldNotFound reports an operation against an id the schema does not
	// contain, where silently returning the input would hide an editor bug.
	ErrFieldNotFound = errors.New("model: field not found")
	// ErrUnknownFieldType reports a field type the catalog has no entry for.
	ErrUnknownFieldType = errors.New("model: unknown field type")
)
