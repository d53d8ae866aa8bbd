// Package coerce implements a parameter-coercion convention for embedded
// dynamic object systems: given a target type name and an arbitrary value,
// the engine discovers at run time a conversion method declared by either
// the value's type or the target type, executes it, verifies the result,
// and memoizes the discovered path per (source type, target type) pair.
//
// Types participate by following a naming convention. A type declares that
// it can become Foo::Bar by defining a zero-argument method named
// "__as_Foo_Bar" (the push direction); a type declares that it accepts
// instances of Baz by defining a one-argument type method named
// "__from_Baz" (the pull direction). When both directions are declared for
// a pair, push wins: the source type's own claim that it can become the
// target is authoritative over the target's acceptance.
//
// Three outcomes are possible when coercing. A value whose concrete type
// already satisfies the target is returned unchanged. A value with a
// discoverable conversion path is converted and the result verified
// against the target type. Everything else — unboxed values, pairs with no
// declared conversion, conversion methods that fail or return something
// unusable — yields a nil result with a nil error: "no conversion" is a
// normal outcome callers must check for, never an error.
//
// Consumers that coerce toward a fixed target can have a bound helper
// installed on their own type via Install, mirroring a pragma-style
// import:
//
//	eng := coerce.New(reg)
//	err := eng.Install(point, "_Vector", "Math::Vector")
//
// after which any Point instance converts itself with
// inst.Call("_Vector").
package coerce
