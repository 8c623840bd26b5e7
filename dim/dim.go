// Package dim provides base dimension symbols and dimension vectors.
//
// A dimension vector is the fully reduced exponent form of a quantity kind or
// unit expression. System validation cross-checks the vectors of both sides
// of every declared pairing; all user facing algebra happens on the symbolic
// forms themselves, which keep distinctions the vector erases.
package dim

import (
	"sort"
	"strings"

	"github.com/jvocht/mp-units/num"
)

// Dim is a named base dimension such as length or time.
type Dim struct {
	name string
	sym  string
}

// New returns a new base dimension with the given name and symbol.
func New(name, sym string) *Dim {
	return &Dim{name: name, sym: sym}
}

func (d *Dim) Name() string   { return d.name }
func (d *Dim) String() string { return d.sym }

// Term is one factor of a dimension vector.
type Term struct {
	Dim *Dim
	Exp num.Rat
}

// Vec is a normalized dimension vector: terms sorted by dimension name with
// nonzero exponents. The empty vector is dimensionless.
type Vec []Term

// Make returns the vector for a single base dimension.
func Make(d *Dim) Vec { return Vec{{d, num.One}} }

// Mul returns the product of v and o.
func (v Vec) Mul(o Vec) Vec { return v.combine(o, false) }

// Div returns the quotient of v and o.
func (v Vec) Div(o Vec) Vec { return v.combine(o, true) }

// Pow returns v with all exponents multiplied by exp.
func (v Vec) Pow(exp num.Rat) Vec {
	if exp.IsZero() {
		return nil
	}
	res := make(Vec, 0, len(v))
	for _, t := range v {
		res = append(res, Term{t.Dim, t.Exp.Mul(exp)})
	}
	return res
}

// Equal reports whether v and o are the same dimension.
func (v Vec) Equal(o Vec) bool {
	if len(v) != len(o) {
		return false
	}
	for i, t := range v {
		if o[i].Dim != t.Dim || o[i].Exp != t.Exp {
			return false
		}
	}
	return true
}

// IsZero reports whether v is the dimensionless vector.
func (v Vec) IsZero() bool { return len(v) == 0 }

func (v Vec) String() string {
	if len(v) == 0 {
		return "1"
	}
	var b strings.Builder
	for i, t := range v {
		if i > 0 {
			b.WriteByte('*')
		}
		b.WriteString(t.Dim.sym)
		if !t.Exp.IsOne() {
			b.WriteByte('^')
			b.WriteString(t.Exp.String())
		}
	}
	return b.String()
}

func (v Vec) combine(o Vec, div bool) Vec {
	m := make(map[*Dim]num.Rat, len(v)+len(o))
	for _, t := range v {
		m[t.Dim] = t.Exp
	}
	for _, t := range o {
		e := t.Exp
		if div {
			e = e.Neg()
		}
		if old, ok := m[t.Dim]; ok {
			e = old.Add(e)
		}
		m[t.Dim] = e
	}
	res := make(Vec, 0, len(m))
	for d, e := range m {
		if e.IsZero() {
			continue
		}
		res = append(res, Term{d, e})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Dim.name < res[j].Dim.name })
	return res
}
