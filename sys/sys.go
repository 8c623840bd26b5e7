/*
Package sys provides a registry for statically declared measurement systems.

The quantity kind and unit algebras resolve everything from symbolic values
that exist before any quantity is constructed. A System collects those
declarations, in the way a schema project collects its models, and validates
the whole set up front: every base kind must carry a dimension, every unit
must have a derivable kind, every declared reference must pair
interconvertible components and names must be unique. A system that passes
validation cannot produce an invalid reference later, so validation failures
are the static diagnostics of this library.
*/
package sys

import (
	"github.com/mb0/xelf/cor"

	"github.com/jvocht/mp-units/dim"
	"github.com/jvocht/mp-units/log"
	"github.com/jvocht/mp-units/num"
	"github.com/jvocht/mp-units/qty"
	"github.com/jvocht/mp-units/ref"
	"github.com/jvocht/mp-units/unit"
)

// System is a named set of dimension, kind, unit and reference declarations.
// Declare everything during program initialization, validate once, then treat
// the system as an immutable constant.
type System struct {
	Name  string
	Dims  []*dim.Dim
	Kinds []*qty.Kind
	Units []unit.Unit
	Refs  []ref.Ref
}

// New returns a new empty system.
func New(name string) *System {
	return &System{Name: name}
}

// Dim declares and registers a new base dimension.
func (s *System) Dim(name, sym string) *dim.Dim {
	d := dim.New(name, sym)
	s.Dims = append(s.Dims, d)
	return d
}

// Base declares and registers a new base kind tied to the dimension d.
func (s *System) Base(name string, d *dim.Dim) *qty.Kind {
	k := qty.Base(name, d)
	s.Kinds = append(s.Kinds, k)
	return k
}

// Kind declares and registers a new kind specializing parent.
func (s *System) Kind(name string, parent *qty.Kind) *qty.Kind {
	k := qty.New(name, parent)
	s.Kinds = append(s.Kinds, k)
	return k
}

// Derive declares and registers a new named kind defined by the equation eq.
func (s *System) Derive(name string, eq qty.Spec) *qty.Kind {
	k := qty.Derive(name, eq)
	s.Kinds = append(s.Kinds, k)
	return k
}

// BaseUnit declares and registers a new unit associated with the kind k.
func (s *System) BaseUnit(name, sym string, k *qty.Kind) *unit.Base {
	u := unit.NewBase(name, sym, k)
	s.Units = append(s.Units, u)
	return u
}

// ScaledUnit declares and registers a new unit scaling u by mag.
func (s *System) ScaledUnit(name, sym string, mag num.Rat, u unit.Unit) *unit.Scaled {
	res := unit.NewScaled(name, sym, mag, u)
	s.Units = append(s.Units, res)
	return res
}

// Unit registers an already constructed unit, typically a derived expression.
func (s *System) Unit(u unit.Unit) unit.Unit {
	s.Units = append(s.Units, u)
	return u
}

// Ref registers an already constructed reference.
func (s *System) Ref(r ref.Ref) ref.Ref {
	s.Refs = append(s.Refs, r)
	return r
}

// FindKind returns the registered kind with the given name or nil.
func (s *System) FindKind(name string) *qty.Kind {
	for _, k := range s.Kinds {
		if k.Name() == name {
			return k
		}
	}
	return nil
}

// Validate re-runs every static check over the declared set, logging each
// failure, and returns an error when any declaration is inconsistent.
func (s *System) Validate(l log.Logger) error {
	l = l.With("sys", s.Name)
	var bad int
	fail := func(msg string, tags ...interface{}) {
		l.Error(msg, tags...)
		bad++
	}
	kinds := make(map[string]bool, len(s.Kinds))
	for _, k := range s.Kinds {
		if kinds[k.Name()] {
			fail("duplicate kind name", "kind", k.Name())
		}
		kinds[k.Name()] = true
		var shapes int
		if k.Dim() != nil {
			shapes++
		}
		if k.Parent() != nil {
			shapes++
		}
		if k.Equation() != nil {
			shapes++
		}
		if shapes > 1 {
			fail("kind has more than one of dimension, parent and equation", "kind", k.Name())
		}
		if k.Char() > qty.Tensor {
			fail("kind has an invalid character", "kind", k.Name())
		}
	}
	units := make(map[string]bool, len(s.Units))
	for _, u := range s.Units {
		if b, ok := u.(*unit.Base); ok {
			if units[b.Name()] {
				fail("duplicate unit name", "unit", b.Name())
			}
			units[b.Name()] = true
		}
		if v, ok := u.(*unit.Scaled); ok {
			if units[v.Name()] {
				fail("duplicate unit name", "unit", v.Name())
			}
			units[v.Name()] = true
			if v.Mag().Cmp(num.Zero) <= 0 {
				fail("unit magnitude must be positive", "unit", v.Name())
			}
		}
		if _, err := ref.Spec(u); err != nil {
			fail("unit has no derivable kind", "unit", u.String(), "err", err)
		}
	}
	for _, r := range s.Refs {
		us, err := ref.Spec(r.Unit)
		if err != nil {
			fail("reference unit has no derivable kind", "ref", r.String(), "err", err)
			continue
		}
		if !qty.Interconv(r.Spec, us) {
			fail("reference pairs non-interconvertible kind and unit", "ref", r.String())
		}
		// independent route: reduce both sides to base dimension vectors
		if !qty.Dims(r.Spec).Equal(qty.Dims(us)) {
			fail("reference dimension vectors differ", "ref", r.String(),
				"kind", qty.Dims(r.Spec), "unit", qty.Dims(us))
		}
	}
	if bad > 0 {
		return cor.Errorf("system %s has %d invalid declarations", s.Name, bad)
	}
	l.Debug("validated", "kinds", len(s.Kinds), "units", len(s.Units), "refs", len(s.Refs))
	return nil
}

// MustValidate validates against the root logger and panics on failure. It is
// meant for init time use where an inconsistent declaration set must stop the
// program before any quantity value exists.
func (s *System) MustValidate() {
	err := s.Validate(log.Root)
	if err != nil {
		panic(err)
	}
}
