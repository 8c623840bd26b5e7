package ref

import (
	"github.com/jvocht/mp-units/qty"
	"github.com/jvocht/mp-units/unit"
)

// Mul returns the reference product: the kind and unit components are
// multiplied in lock-step.
func Mul(a, b Exp) (Ref, error) {
	ra, rb, err := resolve2(a, b)
	if err != nil {
		return Ref{}, err
	}
	return Ref{qty.Mul(ra.Spec, rb.Spec), unit.Mul(ra.Unit, rb.Unit)}, nil
}

// Div returns the reference quotient.
func Div(a, b Exp) (Ref, error) {
	ra, rb, err := resolve2(a, b)
	if err != nil {
		return Ref{}, err
	}
	return Ref{qty.Div(ra.Spec, rb.Spec), unit.Div(ra.Unit, rb.Unit)}, nil
}

// Equal reports whether both the kind components and the unit components are
// equal. Width of metre and height of metre are unequal references even
// though they are interconvertible.
func Equal(a, b Exp) (bool, error) {
	ra, rb, err := resolve2(a, b)
	if err != nil {
		return false, err
	}
	return qty.Equal(ra.Spec, rb.Spec) && unit.Equal(ra.Unit, rb.Unit), nil
}

// Interconv reports whether both the kinds and the units are
// interconvertible.
func Interconv(a, b Exp) (bool, error) {
	ra, rb, err := resolve2(a, b)
	if err != nil {
		return false, err
	}
	return qty.Interconv(ra.Spec, rb.Spec) && unit.Interconv(ra.Unit, rb.Unit), nil
}

// Common resolves the reference a mixed operation should land on. For bare
// unit operands the common unit decides alone and carries its implied kind.
// For full references both the common kind and the common unit must resolve;
// either sub-failure is the diagnostic of the whole operation.
func Common(a, b Exp, rest ...Exp) (Ref, error) {
	if u, ok := bareUnits(a, b, rest); ok {
		cu, err := unit.Common(u[0], u[1], u[2:]...)
		if err != nil {
			return Ref{}, err
		}
		return From(cu)
	}
	refs := make([]Ref, 0, 2+len(rest))
	for _, x := range append([]Exp{a, b}, rest...) {
		r, err := x.resolve()
		if err != nil {
			return Ref{}, err
		}
		refs = append(refs, r)
	}
	cs, err := qty.Common(refs[0].Spec, refs[1].Spec, specs(refs[2:])...)
	if err != nil {
		return Ref{}, err
	}
	us := make([]unit.Unit, 0, len(refs)-2)
	for _, r := range refs[2:] {
		us = append(us, r.Unit)
	}
	cu, err := unit.Common(refs[0].Unit, refs[1].Unit, us...)
	if err != nil {
		return Ref{}, err
	}
	return Ref{cs, cu}, nil
}

func resolve2(a, b Exp) (ra, rb Ref, err error) {
	ra, err = a.resolve()
	if err != nil {
		return
	}
	rb, err = b.resolve()
	return
}

func bareUnits(a, b Exp, rest []Exp) ([]unit.Unit, bool) {
	all := append([]Exp{a, b}, rest...)
	us := make([]unit.Unit, 0, len(all))
	for _, x := range all {
		w, ok := x.(bare)
		if !ok {
			return nil, false
		}
		us = append(us, w.u)
	}
	return us, true
}

func specs(refs []Ref) []qty.Spec {
	res := make([]qty.Spec, 0, len(refs))
	for _, r := range refs {
		res = append(res, r.Spec)
	}
	return res
}
