/*
Package ref pairs quantity kinds with units and provides the reference
algebra quantities are built on.

A reference is an immutable pair of a quantity kind expression and a unit.
References are either constructed explicitly, pairing a kind with an
interconvertible unit, or lifted from a bare unit whose kind is derived from
the unit structure alone. All reference operations accept full references and
bare units alike, treating a bare unit as sugar for the pair of its derived
kind and the unit itself.

Once a reference is successfully constructed, all algebra over it is total:
the kind and unit components are combined in lock-step, so no operation on
valid references can produce an invalid one.
*/
package ref

import (
	"github.com/mb0/xelf/bfr"
	"github.com/mb0/xelf/cor"

	"github.com/jvocht/mp-units/qty"
	"github.com/jvocht/mp-units/unit"
)

// Ref is an immutable pairing of a quantity kind and a unit. Equality is
// structural over the pair; references carry no other state.
type Ref struct {
	Spec qty.Spec
	Unit unit.Unit
}

// New returns a reference explicitly pairing the kind s with the unit u. The
// unit's derived kind must be interconvertible with s: height with metre is
// fine, height with second is a diagnostic failure at construction.
func New(s qty.Spec, u unit.Unit) (Ref, error) {
	ds, err := Spec(u)
	if err != nil {
		return Ref{}, err
	}
	if !qty.Interconv(s, ds) {
		return Ref{}, cor.Errorf("non-interconvertible pairing: kind %s does not match unit %s measuring %s", s, u, ds)
	}
	return Ref{qty.Norm(s), unit.Norm(u)}, nil
}

// From lifts a bare unit into a reference with the unit's derived kind.
func From(u unit.Unit) (Ref, error) {
	s, err := Spec(u)
	if err != nil {
		return Ref{}, err
	}
	return Ref{s, unit.Norm(u)}, nil
}

// Must returns the reference or panics. It is meant for static declarations
// where a failure indicates an inconsistent declaration set.
func Must(r Ref, err error) Ref {
	if err != nil {
		panic(err)
	}
	return r
}

func (r Ref) String() string { return bfr.String(r) }
func (r Ref) WriteBfr(b *bfr.Ctx) error {
	err := r.Spec.WriteBfr(b)
	if err != nil {
		return err
	}
	b.WriteByte('[')
	err = r.Unit.WriteBfr(b)
	b.WriteByte(']')
	return err
}

func (r Ref) resolve() (Ref, error) { return r, nil }

// Exp is an operand of the reference algebra: either a full reference or a
// bare unit wrapped with U.
type Exp interface {
	resolve() (Ref, error)
}

// U wraps a bare unit as a reference operand.
func U(u unit.Unit) Exp { return bare{u} }

type bare struct {
	u unit.Unit
}

func (b bare) resolve() (Ref, error) { return From(b.u) }

// Spec derives the quantity kind implied by a unit that was not explicitly
// paired with one. Base units return their associated kind, scaled units
// derive through their reference unit and derived units compose the kinds of
// their fraction sides recursively. A unit with none of these shapes has no
// derivable kind, which is a diagnostic failure at the point of reference
// construction.
func Spec(u unit.Unit) (qty.Spec, error) {
	switch v := u.(type) {
	case *unit.Base:
		return v.AssocKind(), nil
	case *unit.Scaled:
		return Spec(v.RefUnit())
	case unit.Derived:
		n, err := assoc(v.Num())
		if err != nil {
			return nil, err
		}
		d, err := assoc(v.Den())
		if err != nil {
			return nil, err
		}
		return qty.Div(n, d), nil
	}
	return nil, cor.Errorf("unit %s has no derivable quantity kind", u)
}

// assoc folds the derived kinds of a factor list into one product, seeded
// with the dimensionless kind so an empty side resolves to it.
func assoc(fs []unit.Factor) (qty.Spec, error) {
	res := qty.Spec(qty.Dimensionless)
	for _, f := range fs {
		s, err := Spec(f.Unit)
		if err != nil {
			return nil, err
		}
		res = qty.Mul(res, qty.Pow(s, f.Exp))
	}
	return res, nil
}
