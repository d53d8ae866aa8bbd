// Package manifest loads TOML descriptions of a host's types so their
// conversion paths can be analyzed without running the host. A manifest
// declares type names, parents, and the method names each type defines;
// Build turns that into a registry of inert stubs, and Plan resolves the
// directive every ordered type pair would use.
package manifest

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/teranos/coerce"
	"github.com/teranos/coerce/errors"
	"github.com/teranos/coerce/registry"
)

// TypeDecl describes one named type in a manifest.
type TypeDecl struct {
	Name    string   `toml:"name"`
	Parent  string   `toml:"parent,omitempty"`
	Methods []string `toml:"methods,omitempty"`
}

// Manifest is a parsed, validated set of type declarations. Declaration
// order matters: a parent must be declared before its children, matching
// the load order a real host would impose.
type Manifest struct {
	Types []TypeDecl `toml:"type"`
}

// Parse decodes and validates a TOML manifest.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "parsing manifest")
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading manifest %s", path)
	}
	return Parse(data)
}

func (m *Manifest) validate() error {
	if len(m.Types) == 0 {
		return errors.New("manifest declares no types")
	}

	seen := make(map[string]bool, len(m.Types))
	for _, decl := range m.Types {
		name, ok := coerce.ValidTypeName(decl.Name)
		if !ok {
			return errors.Wrapf(coerce.ErrInvalidTypeName, "%q", decl.Name)
		}
		if seen[name] {
			return errors.Newf("duplicate type: %s", name)
		}
		seen[name] = true

		if decl.Parent != "" {
			pname, ok := coerce.ValidTypeName(decl.Parent)
			if !ok {
				return errors.Wrapf(coerce.ErrInvalidTypeName, "parent %q of %s", decl.Parent, name)
			}
			if !seen[pname] {
				return errors.Newf("parent %s of %s is not declared before it", pname, name)
			}
		}

		for _, meth := range decl.Methods {
			if _, ok := coerce.ValidMethodName(meth); !ok {
				return errors.Wrapf(coerce.ErrInvalidMethodName, "%s.%q", name, meth)
			}
		}
	}
	return nil
}

// stub stands in for a host method body; Plan resolves directives but
// never executes them.
func stub(self any, args ...any) (any, error) {
	return nil, nil
}

// Build constructs a registry with the manifest's types and stub methods,
// preserving exactly the shape the resolution engine inspects.
func (m *Manifest) Build() (*registry.Registry, error) {
	reg := registry.NewRegistry()
	for _, decl := range m.Types {
		name, _ := coerce.ValidTypeName(decl.Name)

		var parent *registry.Type
		if decl.Parent != "" {
			pname, _ := coerce.ValidTypeName(decl.Parent)
			p, ok := reg.Lookup(pname)
			if !ok {
				return nil, errors.Newf("parent %s of %s is not defined", pname, name)
			}
			parent = p
		}

		typ, err := reg.Define(name, parent)
		if err != nil {
			return nil, err
		}
		for _, meth := range decl.Methods {
			if err := typ.Define(meth, stub); err != nil {
				return nil, err
			}
		}
	}
	return reg, nil
}

// PairPlan reports how one ordered type pair would convert. Identity
// covers pairs where the source already satisfies the target; Directive
// is meaningful only when Identity is false.
type PairPlan struct {
	Source    string
	Target    string
	Identity  bool
	Directive coerce.Directive
}

// Plan resolves every ordered pair of declared types, in declaration
// order of source then target.
func (m *Manifest) Plan() ([]PairPlan, error) {
	reg, err := m.Build()
	if err != nil {
		return nil, err
	}
	eng := coerce.New(reg)

	names := make([]string, 0, len(m.Types))
	for _, decl := range m.Types {
		name, _ := coerce.ValidTypeName(decl.Name)
		names = append(names, name)
	}

	var plans []PairPlan
	for _, source := range names {
		for _, target := range names {
			if source == target {
				continue
			}
			st, _ := reg.Lookup(source)
			tt, _ := reg.Lookup(target)
			if st.Is(tt) {
				plans = append(plans, PairPlan{Source: source, Target: target, Identity: true})
				continue
			}
			d, err := eng.Resolve(source, target)
			if err != nil {
				return nil, err
			}
			plans = append(plans, PairPlan{Source: source, Target: target, Directive: d})
		}
	}
	return plans, nil
}
