package unit

import (
	"sort"

	"github.com/mb0/xelf/cor"

	"github.com/jvocht/mp-units/num"
)

// Norm returns the canonical normal form of u. Units returned by the package
// combinators are already normalized.
func Norm(u Unit) Unit {
	if d, ok := u.(Derived); ok {
		return norm(d)
	}
	return u
}

// Mul returns the normalized product of a and b.
func Mul(a, b Unit) Unit {
	fs := make([]Factor, 0, len(a.factors())+len(b.factors()))
	fs = append(fs, a.factors()...)
	fs = append(fs, b.factors()...)
	return norm(fs)
}

// Div returns the normalized quotient of a and b.
func Div(a, b Unit) Unit {
	fs := append([]Factor{}, a.factors()...)
	for _, f := range b.factors() {
		fs = append(fs, Factor{f.Unit, f.Exp.Neg()})
	}
	return norm(fs)
}

// Pow returns a raised to the rational power exp. A zero exponent yields One.
func Pow(a Unit, exp num.Rat) Unit {
	if exp.IsZero() {
		return One
	}
	fs := make([]Factor, 0, len(a.factors()))
	for _, f := range a.factors() {
		fs = append(fs, Factor{f.Unit, f.Exp.Mul(exp)})
	}
	return norm(fs)
}

// Equal reports whether a and b have identical normal forms. Kilometre and
// metre are unequal even though both measure length.
func Equal(a, b Unit) bool {
	na, nb := Norm(a), Norm(b)
	da, ok := na.(Derived)
	if !ok {
		return na == nb
	}
	db, ok := nb.(Derived)
	if !ok || len(da) != len(db) {
		return false
	}
	for i, f := range da {
		if db[i].Unit != f.Unit || db[i].Exp != f.Exp {
			return false
		}
	}
	return true
}

// Interconv reports whether a and b measure the same dimension: their
// expansions into base units agree up to magnitude. Kilometre and metre are
// interconvertible, metre and second are not.
func Interconv(a, b Unit) bool {
	ea, eb := expand(a), expand(b)
	if len(ea) != len(eb) {
		return false
	}
	for i, f := range ea {
		if eb[i].Unit != f.Unit || eb[i].Exp != f.Exp {
			return false
		}
	}
	return true
}

// Common resolves the unit a mixed-unit operation should land on. Equal units
// resolve to themselves. When one unit's magnitude is an exact multiple of
// the other's, the smaller unit wins and rescaled values of either operand
// stay exact. Otherwise a scaled unit with the greatest common magnitude of
// both operands is synthesized, so kilometre per hour and metre per second
// meet at one eighteenth of a metre per second. It fails when the units
// measure different dimensions or a magnitude is not exactly representable.
func Common(a, b Unit, rest ...Unit) (Unit, error) {
	res, err := common(a, b)
	if err != nil {
		return nil, err
	}
	for _, u := range rest {
		res, err = common(res, u)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func common(a, b Unit) (Unit, error) {
	na, nb := Norm(a), Norm(b)
	if Equal(na, nb) {
		return na, nil
	}
	if !Interconv(na, nb) {
		return nil, cor.Errorf("no common unit for %s and %s", na, nb)
	}
	ma, oka := mag(na)
	mb, okb := mag(nb)
	if !oka || !okb {
		return nil, cor.Errorf("no common unit for %s and %s: magnitudes are not comparable", na, nb)
	}
	g := ratGCD(ma, mb)
	if g == ma {
		return na, nil
	}
	if g == mb {
		return nb, nil
	}
	base := baseUnit(expand(na))
	sym := "(" + g.String() + " " + base.String() + ")"
	return NewScaled(sym, sym, g, base), nil
}

// ratGCD returns the greatest rational that divides both a and b to integers.
func ratGCD(a, b num.Rat) num.Rat {
	return num.New(gcd(a.N*b.D, b.N*a.D), a.D*b.D)
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// baseUnit rebuilds a unit value from base unit factors.
func baseUnit(fs []Factor) Unit {
	res := Unit(One)
	for _, f := range fs {
		res = Mul(res, Pow(f.Unit, f.Exp))
	}
	return res
}

// expand reduces u to its base unit form, dropping magnitudes: scaled units
// are replaced by the expansion of their reference unit, recursively.
func expand(u Unit) []Factor {
	var fs []Factor
	for _, f := range Norm(u).factors() {
		switch v := f.Unit.(type) {
		case *Scaled:
			for _, g := range expand(v.ref) {
				fs = append(fs, Factor{g.Unit, g.Exp.Mul(f.Exp)})
			}
		default:
			fs = append(fs, f)
		}
	}
	res := norm(fs)
	if res == One {
		return nil
	}
	if d, ok := res.(Derived); ok {
		return d
	}
	return res.factors()
}

// mag returns the exact magnitude of u relative to its base unit expansion.
// It fails when a scaled factor carries a fractional exponent, whose
// magnitude is not rational in general.
func mag(u Unit) (num.Rat, bool) {
	res := num.One
	for _, f := range Norm(u).factors() {
		v, ok := f.Unit.(*Scaled)
		if !ok {
			continue
		}
		if !f.Exp.IsInt() {
			return num.One, false
		}
		m, ok := mag(v.ref)
		if !ok {
			return num.One, false
		}
		m = m.Mul(v.mag)
		res = res.Mul(ratPow(m, f.Exp.N))
	}
	return res, true
}

func ratPow(r num.Rat, n int64) num.Rat {
	res := num.One
	inv := n < 0
	if inv {
		n = -n
	}
	for i := int64(0); i < n; i++ {
		res = res.Mul(r)
	}
	if inv {
		res = res.Inv()
	}
	return res
}

func norm(fs []Factor) Unit {
	// factor lists only ever hold named units, which are comparable pointers;
	// merging by identity keeps distinct units that happen to share a name apart
	merged := make(map[Unit]num.Rat, len(fs))
	for _, f := range fs {
		if f.Unit == Unit(One) {
			continue
		}
		e := f.Exp
		if old, ok := merged[f.Unit]; ok {
			e = old.Add(e)
		}
		merged[f.Unit] = e
	}
	res := make([]Factor, 0, len(merged))
	for u, e := range merged {
		if e.IsZero() {
			continue
		}
		res = append(res, Factor{u, e})
	}
	if len(res) == 0 {
		return One
	}
	if len(res) == 1 && res[0].Exp.IsOne() {
		return res[0].Unit
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Unit.key() < res[j].Unit.key() })
	return Derived(res)
}
