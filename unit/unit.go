/*
Package unit provides the symbolic unit algebra.

Units are measurement scales closed under multiplication, division and
rational powers, independent of the quantity kind algebra. Named units are
either base units intrinsically associated with a quantity kind (metre with
length) or scaled units that scale a reference unit by an exact magnitude
(kilometre is 1000 metre, hour is 3600 second). Everything else is a derived
unit: a normalized product of named unit powers.

Like quantity kinds, units are statically declared symbolic values: all
combinators return new normalized expressions and nothing is mutated after
declaration.
*/
package unit

import (
	"github.com/mb0/xelf/bfr"

	"github.com/jvocht/mp-units/num"
	"github.com/jvocht/mp-units/qty"
)

// Unit is a symbolic unit expression, either a named unit or a normalized
// derived product of named unit powers.
type Unit interface {
	String() string
	WriteBfr(b *bfr.Ctx) error
	key() string
	factors() []Factor
}

// Base is a named unit intrinsically associated with a quantity kind.
type Base struct {
	name string
	sym  string
	kind *qty.Kind
}

// One is the dimensionless unit and the identity of the unit product. It is
// elided from normalized derived expressions.
var One = &Base{name: "one", sym: "1", kind: qty.Dimensionless}

// NewBase declares a new named unit directly associated with the kind k.
func NewBase(name, sym string, k *qty.Kind) *Base {
	return &Base{name: name, sym: sym, kind: k}
}

func (u *Base) Name() string { return u.name }
func (u *Base) Sym() string  { return u.sym }

// AssocKind returns the quantity kind the unit is associated with.
func (u *Base) AssocKind() *qty.Kind { return u.kind }

func (u *Base) String() string { return u.sym }
func (u *Base) WriteBfr(b *bfr.Ctx) error {
	b.WriteString(u.sym)
	return nil
}
func (u *Base) key() string { return u.name }
func (u *Base) factors() []Factor {
	if u == One {
		return nil
	}
	return []Factor{{u, num.One}}
}

// Scaled is a named unit scaling a reference unit by an exact magnitude.
// A magnitude of one declares an alias, typically naming a derived unit.
type Scaled struct {
	name string
	sym  string
	mag  num.Rat
	ref  Unit
}

// NewScaled declares a new named unit equal to mag times the reference unit.
func NewScaled(name, sym string, mag num.Rat, ref Unit) *Scaled {
	return &Scaled{name: name, sym: sym, mag: mag, ref: Norm(ref)}
}

func (u *Scaled) Name() string { return u.name }
func (u *Scaled) Sym() string  { return u.sym }

// RefUnit returns the unit u scales.
func (u *Scaled) RefUnit() Unit { return u.ref }

// Mag returns the exact scale factor relative to the reference unit.
func (u *Scaled) Mag() num.Rat { return u.mag }

func (u *Scaled) String() string { return u.sym }
func (u *Scaled) WriteBfr(b *bfr.Ctx) error {
	b.WriteString(u.sym)
	return nil
}
func (u *Scaled) key() string      { return u.name }
func (u *Scaled) factors() []Factor { return []Factor{{u, num.One}} }

// Factor is a named unit raised to a rational power.
type Factor struct {
	Unit Unit
	Exp  num.Rat
}

// Derived is a normalized product of named unit powers: factors sorted by
// unit name, exponents merged, zero exponents and the one unit elided. Use
// the package combinators to construct derived units.
type Derived []Factor

// Num returns the numerator factors of the unit fraction.
func (d Derived) Num() []Factor {
	res := make([]Factor, 0, len(d))
	for _, f := range d {
		if f.Exp.N > 0 {
			res = append(res, f)
		}
	}
	return res
}

// Den returns the denominator factors of the unit fraction with positive
// exponents.
func (d Derived) Den() []Factor {
	res := make([]Factor, 0, len(d))
	for _, f := range d {
		if f.Exp.N < 0 {
			res = append(res, Factor{f.Unit, f.Exp.Neg()})
		}
	}
	return res
}

func (d Derived) key() string       { return d.String() }
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
		writeFactor(b, f)
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
		writeFactor(b, Factor{f.Unit, f.Exp.Neg()})
		n++
	}
	if neg > 1 {
		b.WriteByte(')')
	}
	return nil
}

func writeFactor(b *bfr.Ctx, f Factor) {
	f.Unit.WriteBfr(b)
	if !f.Exp.IsOne() {
		b.WriteByte('^')
		b.WriteString(f.Exp.String())
	}
}
