package coerce

import (
	"github.com/teranos/coerce/errors"
	"github.com/teranos/coerce/registry"
)

// ImportCoerce is the single-argument install form requesting the free
// coercion function.
const ImportCoerce = "coerce"

// Install is the pragma-style entry point a consumer invokes once, at
// type-definition time. The recognized forms are:
//
//	Install(consumer)                         — no-op
//	Install(consumer, "coerce")               — bind the free coerce
//	                                            function into the consumer
//	Install(consumer, methodName, targetName) — install a bound helper
//
// Any other shape is ErrUnsupportedImport. All errors here are
// install-time configuration failures the consumer must treat as fatal;
// nothing is deferred to call time.
func (e *Engine) Install(consumer *registry.Type, args ...string) error {
	switch len(args) {
	case 0:
		return nil
	case 1:
		if args[0] != ImportCoerce {
			return errors.Wrapf(ErrUnsupportedImport, "%q", args[0])
		}
		return e.installFree(consumer)
	case 2:
		return e.installBound(consumer, args[0], args[1])
	default:
		return errors.Wrapf(ErrUnsupportedImport, "%d arguments", len(args))
	}
}

// installFree binds a generic coerce(targetName, value) method into the
// consumer's own table.
func (e *Engine) installFree(consumer *registry.Type) error {
	if consumer.Defines(ImportCoerce) {
		return errors.Wrapf(ErrMethodCollision, "%s.%s", consumer.Name(), ImportCoerce)
	}
	return consumer.Define(ImportCoerce, func(self any, args ...any) (any, error) {
		if len(args) != 2 {
			return nil, errors.Newf("coerce: want 2 arguments, got %d", len(args))
		}
		name, ok := args[0].(string)
		if !ok {
			return nil, errors.New("coerce: target type name must be a string")
		}
		return e.Coerce(name, args[1])
	})
}

// installBound synthesizes a helper that coerces its receiver to the fixed
// target type and attaches it to the consumer. The target is loaded on
// demand; a method the consumer already exposes — own or inherited — is
// never overwritten.
func (e *Engine) installBound(consumer *registry.Type, methodName, targetName string) error {
	mname, ok := ValidMethodName(methodName)
	if !ok {
		return errors.Wrapf(ErrInvalidMethodName, "%q", methodName)
	}
	tname, ok := ValidTypeName(targetName)
	if !ok {
		return errors.Wrapf(ErrInvalidTypeName, "%q", targetName)
	}
	if consumer.Exposes(mname) {
		return errors.Wrapf(ErrMethodCollision, "%s.%s", consumer.Name(), mname)
	}
	if err := e.reg.Load(tname); err != nil {
		return errors.Wrapf(err, "installing %s.%s", consumer.Name(), mname)
	}
	return consumer.Define(mname, func(self any, _ ...any) (any, error) {
		return e.Coerce(tname, self)
	})
}
