package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/coerce/errors"
)

func TestDefineAndLookup(t *testing.T) {
	reg := NewRegistry()

	typ, err := reg.Define("Currency", nil)
	require.NoError(t, err)
	require.NotNil(t, typ)
	assert.Equal(t, "Currency", typ.Name())
	assert.Nil(t, typ.Parent())

	got, ok := reg.Lookup("Currency")
	require.True(t, ok)
	assert.Same(t, typ, got)

	_, ok = reg.Lookup("Unknown")
	assert.False(t, ok)
}

func TestDefineDuplicate(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Define("Currency", nil)
	require.NoError(t, err)

	_, err = reg.Define("Currency", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already defined")
}

func TestLoaded(t *testing.T) {
	reg := NewRegistry()
	assert.False(t, reg.Loaded("Currency"))

	_, err := reg.Define("Currency", nil)
	require.NoError(t, err)
	assert.True(t, reg.Loaded("Currency"))
}

func TestListIsSorted(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"Zeta", "Alpha", "Mid"} {
		_, err := reg.Define(name, nil)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"Alpha", "Mid", "Zeta"}, reg.List())
}

func TestLoadAlreadyDefinedIsNoop(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Define("Currency", nil)
	require.NoError(t, err)

	// No loader installed, but the type exists.
	assert.NoError(t, reg.Load("Currency"))
}

func TestLoadWithoutLoader(t *testing.T) {
	reg := NewRegistry()
	err := reg.Load("Currency")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no loader")
}

func TestLoadInvokesLoader(t *testing.T) {
	reg := NewRegistry()
	reg.SetLoader(func(name string) error {
		_, err := reg.Define(name, nil)
		return err
	})

	require.NoError(t, reg.Load("Currency"))
	assert.True(t, reg.Loaded("Currency"))
}

func TestLoadPropagatesLoaderFailure(t *testing.T) {
	sentinel := errors.New("module not found")
	reg := NewRegistry()
	reg.SetLoader(func(name string) error {
		return sentinel
	})

	err := reg.Load("Currency")
	require.Error(t, err)
	assert.True(t, errors.Is(err, sentinel))
}

func TestLoadDetectsLyingLoader(t *testing.T) {
	reg := NewRegistry()
	reg.SetLoader(func(name string) error {
		return nil // claims success, defines nothing
	})

	err := reg.Load("Currency")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did not define")
}

func TestTypeIs(t *testing.T) {
	reg := NewRegistry()
	animal, err := reg.Define("Animal", nil)
	require.NoError(t, err)
	dog, err := reg.Define("Dog", animal)
	require.NoError(t, err)
	cat, err := reg.Define("Cat", animal)
	require.NoError(t, err)

	assert.True(t, dog.Is(dog))
	assert.True(t, dog.Is(animal))
	assert.False(t, animal.Is(dog))
	assert.False(t, dog.Is(cat))
}

func TestMethodDefineAndCall(t *testing.T) {
	reg := NewRegistry()
	typ, err := reg.Define("Greeter", nil)
	require.NoError(t, err)

	require.NoError(t, typ.Define("greet", func(self any, args ...any) (any, error) {
		return "hello", nil
	}))

	assert.True(t, typ.Defines("greet"))
	assert.True(t, typ.Exposes("greet"))

	out, err := typ.Call("greet", nil)
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestMethodDefineCollision(t *testing.T) {
	reg := NewRegistry()
	typ, err := reg.Define("Greeter", nil)
	require.NoError(t, err)

	noop := func(self any, args ...any) (any, error) { return nil, nil }
	require.NoError(t, typ.Define("greet", noop))
	assert.Error(t, typ.Define("greet", noop))
}

func TestMethodInheritance(t *testing.T) {
	reg := NewRegistry()
	animal, err := reg.Define("Animal", nil)
	require.NoError(t, err)
	dog, err := reg.Define("Dog", animal)
	require.NoError(t, err)

	require.NoError(t, animal.Define("speak", func(self any, args ...any) (any, error) {
		return "generic noise", nil
	}))

	// Inherited, not own.
	assert.False(t, dog.Defines("speak"))
	assert.True(t, dog.Exposes("speak"))

	out, err := dog.Call("speak", nil)
	require.NoError(t, err)
	assert.Equal(t, "generic noise", out)

	// Override shadows the parent definition.
	require.NoError(t, dog.Define("speak", func(self any, args ...any) (any, error) {
		return "woof", nil
	}))
	out, err = dog.Call("speak", nil)
	require.NoError(t, err)
	assert.Equal(t, "woof", out)

	// Parent untouched.
	out, err = animal.Call("speak", nil)
	require.NoError(t, err)
	assert.Equal(t, "generic noise", out)
}

func TestCallUnknownMethod(t *testing.T) {
	reg := NewRegistry()
	typ, err := reg.Define("Empty", nil)
	require.NoError(t, err)

	_, err = typ.Call("missing", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no method")
}

func TestObject(t *testing.T) {
	reg := NewRegistry()
	animal, err := reg.Define("Animal", nil)
	require.NoError(t, err)
	dog, err := reg.Define("Dog", animal)
	require.NoError(t, err)

	require.NoError(t, dog.Define("name", func(self any, args ...any) (any, error) {
		return self.(*Object).Data(), nil
	}))

	obj := NewObject(dog, "rex")
	assert.Same(t, dog, obj.Type())
	assert.Equal(t, "rex", obj.Data())
	assert.True(t, obj.Is(animal))

	out, err := obj.Call("name")
	require.NoError(t, err)
	assert.Equal(t, "rex", out)
}

func TestConcurrentDefineAndLookup(t *testing.T) {
	reg := NewRegistry()
	base, err := reg.Define("Base", nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			reg.Loaded("Base")
			base.Exposes("anything")
		}()
		go func() {
			defer wg.Done()
			reg.Lookup("Base")
		}()
	}
	wg.Wait()
}
