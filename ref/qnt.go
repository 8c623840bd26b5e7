package ref

import (
	"github.com/mb0/xelf/bfr"
	"github.com/mb0/xelf/cor"
	"github.com/mb0/xelf/lit"

	"github.com/jvocht/mp-units/rep"
	"github.com/jvocht/mp-units/unit"
)

// ErrRawRep guides callers that try to combine a raw representation value or
// a bare reference with a quantity. The mistaken and the correct idiom differ
// only by an explicit binding, so the diagnostic must be distinct from a
// plain type mismatch.
var ErrRawRep = cor.Error("raw value and reference cannot be combined directly, bind the value first")

// Quantity is a representation literal bound to a reference. It is the only
// runtime observable value of this library; everything else is resolved
// statically during declaration.
type Quantity struct {
	Ref Ref
	Val lit.Lit
}

// Bind binds the representation literal l to the reference. The literal must
// match the kind's character: scalar kinds take numerics, vector kinds take
// lists of numerics. A mismatch fails here, at construction, never at later
// use.
func (r Ref) Bind(l lit.Lit) (Quantity, error) {
	err := rep.Check(r.Spec.Char(), l)
	if err != nil {
		return Quantity{}, cor.Errorf("bind %s to %s: %w", l, r, err)
	}
	return Quantity{r, l}, nil
}

// Bind binds the representation literal l to the resolved reference operand,
// accepting a full reference or a bare unit.
func Bind(l lit.Lit, x Exp) (Quantity, error) {
	r, err := x.resolve()
	if err != nil {
		return Quantity{}, err
	}
	return r.Bind(l)
}

func (q Quantity) String() string { return bfr.String(q) }
func (q Quantity) WriteBfr(b *bfr.Ctx) error {
	err := q.Val.WriteBfr(b)
	if err != nil {
		return err
	}
	b.WriteByte(' ')
	return q.Ref.WriteBfr(b)
}

// Mul multiplies two quantities. The result reference is the reference
// product; the representations are multiplied numerically. The operand must
// be another quantity: passing a reference, a bare unit or a raw literal
// fails with ErrRawRep.
func (q Quantity) Mul(x interface{}) (Quantity, error) {
	o, err := operand(x)
	if err != nil {
		return Quantity{}, err
	}
	r, err := Mul(q.Ref, o.Ref)
	if err != nil {
		return Quantity{}, err
	}
	v, err := mulVal(q.Val, o.Val, false)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{r, v}, nil
}

// Div divides two quantities, with the same operand rules as Mul.
func (q Quantity) Div(x interface{}) (Quantity, error) {
	o, err := operand(x)
	if err != nil {
		return Quantity{}, err
	}
	r, err := Div(q.Ref, o.Ref)
	if err != nil {
		return Quantity{}, err
	}
	v, err := mulVal(q.Val, o.Val, true)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{r, v}, nil
}

func operand(x interface{}) (Quantity, error) {
	switch v := x.(type) {
	case Quantity:
		return v, nil
	case Ref:
		return Quantity{}, cor.Errorf("operand is the bare reference %s: %w", v, ErrRawRep)
	case Exp:
		return Quantity{}, cor.Errorf("operand is a bare unit: %w", ErrRawRep)
	case unit.Unit:
		return Quantity{}, cor.Errorf("operand is the bare unit %s: %w", v, ErrRawRep)
	case lit.Lit:
		return Quantity{}, cor.Errorf("operand is the raw value %s: %w", v, ErrRawRep)
	}
	return Quantity{}, cor.Errorf("operand %T is not a quantity", x)
}

func mulVal(a, b lit.Lit, div bool) (lit.Lit, error) {
	na, ok := lit.Deopt(a).(lit.Numeric)
	if !ok {
		return nil, cor.Errorf("quantity arithmetic needs scalar values, got %s", a.Typ())
	}
	nb, ok := lit.Deopt(b).(lit.Numeric)
	if !ok {
		return nil, cor.Errorf("quantity arithmetic needs scalar values, got %s", b.Typ())
	}
	if div {
		if nb.Num() == 0 {
			return nil, cor.Error("quantity division by zero")
		}
		return lit.Real(na.Num() / nb.Num()), nil
	}
	return lit.Real(na.Num() * nb.Num()), nil
}
