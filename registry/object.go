package registry

// Object boxes a typed instance value: the concrete type plus an opaque
// payload owned by the host. Any Go value that is not an *Object is a
// plain, unboxed value as far as the coercion convention is concerned.
type Object struct {
	typ  *Type
	data any
}

// NewObject boxes data as an instance of t.
func NewObject(t *Type, data any) *Object {
	return &Object{typ: t, data: data}
}

// Type returns the object's concrete type.
func (o *Object) Type() *Type {
	return o.typ
}

// Data returns the host payload.
func (o *Object) Data() any {
	return o.data
}

// Is reports whether the object's concrete type satisfies other.
func (o *Object) Is(other *Type) bool {
	return o.typ.Is(other)
}

// Call invokes an instance method with the object as receiver.
func (o *Object) Call(name string, args ...any) (any, error) {
	return o.typ.Call(name, o, args...)
}
