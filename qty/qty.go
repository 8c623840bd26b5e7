/*
Package qty provides the symbolic quantity kind model and its algebra.

A quantity kind describes what is measured, independent of any unit. Kinds are
either atomic named kinds or derived expressions built from named kinds with
multiplication, division and rational powers. Named kinds come in three
flavors: base kinds tied to a base dimension (length, time, mass), kinds
specializing another kind (width specializes length), and kinds defined by an
equation over other kinds (speed is length over time).

All kinds are statically declared symbolic values. Every combinator returns a
new normalized expression and no kind is ever mutated after declaration, so
all operations are safe for concurrent use.
*/
package qty

import (
	"github.com/mb0/xelf/bfr"

	"github.com/jvocht/mp-units/dim"
	"github.com/jvocht/mp-units/num"
)

// Character classifies the algebraic shape of a quantity kind. It constrains
// which representation literals may be bound to a reference of that kind.
type Character uint32

const (
	Scalar Character = iota
	Vector
	Tensor
)

func (c Character) String() string {
	switch c {
	case Scalar:
		return "scalar"
	case Vector:
		return "vector"
	case Tensor:
		return "tensor"
	}
	return "invalid"
}

// Spec is a symbolic quantity kind expression, either a named kind or a
// normalized derived product of named kind powers.
type Spec interface {
	Char() Character
	String() string
	WriteBfr(b *bfr.Ctx) error
	factors() []Factor
}

// Kind is an atomic named quantity kind.
type Kind struct {
	name   string
	char   Character
	dim    *dim.Dim
	parent *Kind
	eq     Spec
}

// Dimensionless is the kind of pure numbers and the identity of the kind
// product. It is elided from normalized derived expressions.
var Dimensionless = &Kind{name: "dimensionless"}

// Base declares a new base kind tied to the base dimension d.
func Base(name string, d *dim.Dim) *Kind {
	return &Kind{name: name, dim: d}
}

// New declares a new kind specializing parent. The new kind inherits the
// parent's character and belongs to the parent's family.
func New(name string, parent *Kind) *Kind {
	return &Kind{name: name, char: parent.char, parent: parent}
}

// Derive declares a new named kind defined by the equation eq, for example
// speed as length over time. The kind inherits the equation's character.
func Derive(name string, eq Spec) *Kind {
	return &Kind{name: name, char: eq.Char(), eq: Norm(eq)}
}

// WithChar overrides the declared character and returns the kind itself for
// chained declarations. It must only be called at declaration time, before
// the kind is used in any expression.
func (k *Kind) WithChar(c Character) *Kind {
	k.char = c
	return k
}

func (k *Kind) Name() string    { return k.name }
func (k *Kind) Char() Character { return k.char }

// Dim returns the base dimension for base kinds or nil.
func (k *Kind) Dim() *dim.Dim { return k.dim }

// Parent returns the specialized kind or nil.
func (k *Kind) Parent() *Kind { return k.parent }

// Equation returns the defining equation for named derived kinds or nil.
func (k *Kind) Equation() Spec { return k.eq }

func (k *Kind) String() string { return k.name }
func (k *Kind) WriteBfr(b *bfr.Ctx) error {
	b.WriteString(k.name)
	return nil
}

func (k *Kind) factors() []Factor {
	if k == Dimensionless {
		return nil
	}
	return []Factor{{k, num.One}}
}

// Factor is a named kind raised to a rational power.
type Factor struct {
	Kind *Kind
	Exp  num.Rat
}

// Derived is a normalized product of kind powers: factors are sorted by kind
// name, exponents merged, zero exponents and dimensionless factors elided.
// Use the package combinators to construct derived expressions.
type Derived []Factor

func (d Derived) Char() Character {
	var res Character
	for _, f := range d {
		if c := f.Kind.char; c > res {
			res = c
		}
	}
	return res
}

func (d Derived) factors() []Factor { return d }

func (d Derived) String() string { return bfr.String(d) }
func (d Derived) WriteBfr(b *bfr.Ctx) error {
	pos, neg := 0, 0
	for _, f := range d {
		if f.Exp.N > 0 {
			pos++
		} else {
			neg++
		}
	}
	if pos == 0 {
		b.WriteByte('1')
	}
	n := 0
	for _, f := range d {
		if f.Exp.N <= 0 {
			continue
		}
		if n > 0 {
			b.WriteByte('*')
		}
		writeFactor(b, f.Kind.name, f.Exp)
		n++
	}
	if neg == 0 {
		return nil
	}
	b.WriteByte('/')
	if neg > 1 {
		b.WriteByte('(')
	}
	n = 0
	for _, f := range d {
		if f.Exp.N > 0 {
			continue
		}
		if n > 0 {
			b.WriteByte('*')
		}
		writeFactor(b, f.Kind.name, f.Exp.Neg())
		n++
	}
	if neg > 1 {
		b.WriteByte(')')
	}
	return nil
}

func writeFactor(b *bfr.Ctx, name string, exp num.Rat) {
	b.WriteString(name)
	if !exp.IsOne() {
		b.WriteByte('^')
		b.WriteString(exp.String())
	}
}
