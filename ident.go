package coerce

import (
	"regexp"
	"strings"
)

// Namespace constants of the host convention.
const (
	// Separator joins the segments of a namespaced type name.
	Separator = "::"

	// RootNamespace is the name of the host's root namespace. A type name
	// that is exactly the separator resolves to it, and a leading
	// separator roots the rest of the name under it.
	RootNamespace = "main"
)

var (
	methodNameRE = regexp.MustCompile(`^[A-Za-z_]\w*$`)
	typeNameRE   = regexp.MustCompile(`^[A-Za-z_]\w*(::[A-Za-z_]\w*)*$`)
)

// ValidMethodName reports whether s is a bare identifier usable as a
// method name. Namespace separators are not allowed. The normalized name
// is returned on success; ("", false) otherwise.
func ValidMethodName(s string) (string, bool) {
	if !methodNameRE.MatchString(s) {
		return "", false
	}
	return s, true
}

// ValidTypeName validates and normalizes a namespaced type name: one or
// more identifier segments joined by Separator. "::" alone names the root
// namespace; "::Foo" normalizes to "main::Foo". Invalid input returns
// ("", false); this function never panics and has no side effects, so a
// rejected name is always distinguishable from a legitimately named type.
func ValidTypeName(s string) (string, bool) {
	if s == Separator {
		return RootNamespace, true
	}
	if strings.HasPrefix(s, Separator) {
		s = RootNamespace + s
	}
	if !typeNameRE.MatchString(s) {
		return "", false
	}
	return s, true
}
