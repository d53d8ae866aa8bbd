package coerce

import "strings"

// DirectiveKind discriminates how a resolved conversion proceeds.
type DirectiveKind uint8

const (
	// DirectiveNone records that no conversion exists for a pair. Cached
	// like any other directive so repeated failed lookups stay O(1).
	DirectiveNone DirectiveKind = iota

	// DirectivePush invokes a zero-argument method on the source instance.
	DirectivePush

	// DirectivePull invokes a one-argument method on the target type,
	// passing the source instance.
	DirectivePull
)

// String returns the kind's conventional name.
func (k DirectiveKind) String() string {
	switch k {
	case DirectivePush:
		return "push"
	case DirectivePull:
		return "pull"
	default:
		return "none"
	}
}

// Directive describes the resolved conversion path for one ordered
// (source type, target type) pair.
type Directive struct {
	Kind   DirectiveKind
	Method string
}

// Method-name markers of the conversion convention.
const (
	// PushPrefix marks a method a source type defines to declare outward
	// convertibility: __as_<flattened target name>.
	PushPrefix = "__as_"

	// PullPrefix marks a method a target type defines to declare that it
	// accepts a source: __from_<flattened source name>.
	PullPrefix = "__from_"
)

// Flatten rewrites a namespaced type name into its method-name form,
// replacing each namespace separator with an underscore. Total for any
// validated type name.
func Flatten(typeName string) string {
	return strings.ReplaceAll(typeName, Separator, "_")
}

// PushMethodName derives the method a source type must expose to declare
// that its instances can become target.
func PushMethodName(target string) string {
	return PushPrefix + Flatten(target)
}

// PullMethodName derives the method a target type must expose to declare
// that it accepts instances of source.
func PullMethodName(source string) string {
	return PullPrefix + Flatten(source)
}
