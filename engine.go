package coerce

import (
	"go.uber.org/zap"

	"github.com/teranos/coerce/errors"
	"github.com/teranos/coerce/registry"
)

// Engine resolves and executes conversions against one type registry.
// An Engine is safe for concurrent use.
type Engine struct {
	reg   *registry.Registry
	cache *resolutionCache
	log   *zap.SugaredLogger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger routes the engine's resolution debug logging to l.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(e *Engine) { e.log = l }
}

// New creates an Engine bound to reg with an empty resolution cache.
func New(reg *registry.Registry, opts ...Option) *Engine {
	e := &Engine{
		reg:   reg,
		cache: newResolutionCache(),
		log:   zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry returns the registry the engine resolves against.
func (e *Engine) Registry() *registry.Registry {
	return e.reg
}

// Coerce converts value into an instance of the named target type, which
// must already be loaded — Coerce never loads types (Install does).
//
// A (nil, nil) result is the documented "no conversion" outcome and covers
// unboxed values, pairs with no declared conversion, and conversion
// methods that fail or return something that is not an instance of the
// target. Errors are reserved for caller mistakes: a malformed target name
// (ErrInvalidTypeName) or a target missing from the registry
// (ErrTargetNotLoaded).
func (e *Engine) Coerce(targetName string, value any) (any, error) {
	name, ok := ValidTypeName(targetName)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidTypeName, "%q", targetName)
	}
	target, loaded := e.reg.Lookup(name)
	if !loaded {
		return nil, errors.Wrapf(ErrTargetNotLoaded, "%s", name)
	}

	// Coercion only applies to typed instances. A typed-nil *Object — the
	// zero result of a host function returning (*Object, error) — passes
	// the assertion and must be caught before any method on it.
	obj, ok := value.(*registry.Object)
	if !ok || obj == nil {
		return nil, nil
	}

	// Identity short-circuit, before any cache or capability query.
	if obj.Is(target) {
		return value, nil
	}

	d := e.resolve(obj.Type(), target)
	return e.execute(d, obj, target), nil
}

// Resolve reports the directive the engine would use to convert instances
// of source into target, without executing it. Both types must be loaded;
// a missing type on either side is ErrTargetNotLoaded, with the message
// naming the side. Identity pairs resolve like any other: a subtype
// already satisfying the target is the caller's check, not Resolve's.
func (e *Engine) Resolve(sourceName, targetName string) (Directive, error) {
	sname, ok := ValidTypeName(sourceName)
	if !ok {
		return Directive{}, errors.Wrapf(ErrInvalidTypeName, "%q", sourceName)
	}
	tname, ok := ValidTypeName(targetName)
	if !ok {
		return Directive{}, errors.Wrapf(ErrInvalidTypeName, "%q", targetName)
	}
	source, loaded := e.reg.Lookup(sname)
	if !loaded {
		return Directive{}, errors.Wrapf(ErrTargetNotLoaded, "source %s", sname)
	}
	target, loaded := e.reg.Lookup(tname)
	if !loaded {
		return Directive{}, errors.Wrapf(ErrTargetNotLoaded, "target %s", tname)
	}
	return e.resolve(source, target), nil
}

// resolve returns the directive for the pair, consulting the cache first.
// On a miss the push direction is probed before pull: a source type
// declaring "I can become the target" is authoritative over a target
// declaring "I accept the source", so double-registered pairs resolve
// deterministically. The computed directive — including DirectiveNone —
// is stored before use.
func (e *Engine) resolve(source, target *registry.Type) Directive {
	if d, ok := e.cache.lookup(source.Name(), target.Name()); ok {
		return d
	}

	d := Directive{Kind: DirectiveNone}
	if push := PushMethodName(target.Name()); source.Exposes(push) {
		d = Directive{Kind: DirectivePush, Method: push}
	} else if pull := PullMethodName(source.Name()); target.Exposes(pull) {
		d = Directive{Kind: DirectivePull, Method: pull}
	}

	e.cache.store(source.Name(), target.Name(), d)
	e.log.Debugw("resolved conversion directive",
		"source", source.Name(),
		"target", target.Name(),
		"kind", d.Kind.String(),
		"method", d.Method,
	)
	return d
}

// execute runs the directive and verifies the produced value. Every
// failure mode — no directive, the method erroring, a result that is not
// an instance of the target — collapses to nil, the normal "no
// conversion" outcome.
func (e *Engine) execute(d Directive, src *registry.Object, target *registry.Type) any {
	var out any
	var err error

	switch d.Kind {
	case DirectivePush:
		out, err = src.Type().Call(d.Method, src)
	case DirectivePull:
		out, err = target.Call(d.Method, target, src)
	default:
		return nil
	}

	if err != nil {
		e.log.Debugw("conversion method failed",
			"method", d.Method,
			"source", src.Type().Name(),
			"target", target.Name(),
			"error", err,
		)
		return nil
	}

	res, ok := out.(*registry.Object)
	if !ok || res == nil || !res.Is(target) {
		return nil
	}
	return res
}
