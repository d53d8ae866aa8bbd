package coerce

import (
	"github.com/teranos/coerce/errors"
)

// Sentinel errors surfaced by the engine and installer.
// Use these with errors.Is(); call sites wrap them with context.
var (
	// ErrInvalidTypeName indicates a malformed namespaced type name.
	ErrInvalidTypeName = errors.New("invalid type name")

	// ErrInvalidMethodName indicates a malformed method identifier.
	ErrInvalidMethodName = errors.New("invalid method name")

	// ErrTargetNotLoaded indicates a type requested for coercion is not
	// present in the registry. Coerce never loads types itself; Install
	// does, so this surfaces only when the caller failed to pre-load.
	// Resolve reuses it for either side of a pair; the message names
	// which side was missing.
	ErrTargetNotLoaded = errors.New("target type not loaded")

	// ErrMethodCollision indicates an install would have replaced a method
	// the consumer already exposes. Existing methods are never overwritten.
	ErrMethodCollision = errors.New("method already defined on consumer")

	// ErrUnsupportedImport indicates an install-time configuration of an
	// unrecognized shape or arity.
	ErrUnsupportedImport = errors.New("unsupported import")
)
