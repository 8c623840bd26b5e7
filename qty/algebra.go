package qty

import (
	"sort"

	"github.com/mb0/xelf/cor"

	"github.com/jvocht/mp-units/dim"
	"github.com/jvocht/mp-units/num"
)

// Norm returns the canonical normal form of s. Expressions returned by the
// package combinators are already normalized; normalizing them again returns
// an identical value.
func Norm(s Spec) Spec {
	if k, ok := s.(*Kind); ok {
		return k
	}
	return norm(s.factors())
}

// Mul returns the normalized product of a and b. Exponents of shared kinds
// are added; multiplying by Dimensionless is the identity.
func Mul(a, b Spec) Spec {
	fs := make([]Factor, 0, len(a.factors())+len(b.factors()))
	fs = append(fs, a.factors()...)
	fs = append(fs, b.factors()...)
	return norm(fs)
}

// Div returns the normalized quotient of a and b. Exponents of shared kinds
// are subtracted; dividing an expression by itself yields Dimensionless.
func Div(a, b Spec) Spec {
	fs := append([]Factor{}, a.factors()...)
	for _, f := range b.factors() {
		fs = append(fs, Factor{f.Kind, f.Exp.Neg()})
	}
	return norm(fs)
}

// Pow returns a raised to the rational power exp. A zero exponent yields
// Dimensionless.
func Pow(a Spec, exp num.Rat) Spec {
	if exp.IsZero() {
		return Dimensionless
	}
	fs := make([]Factor, 0, len(a.factors()))
	for _, f := range a.factors() {
		fs = append(fs, Factor{f.Kind, f.Exp.Mul(exp)})
	}
	return norm(fs)
}

// Equal reports whether a and b have identical normal forms. This is
// structural equality: width and height are unequal even though both are
// interconvertible with length.
func Equal(a, b Spec) bool {
	na, nb := Norm(a), Norm(b)
	if ka, ok := na.(*Kind); ok {
		kb, ok := nb.(*Kind)
		return ok && ka == kb
	}
	da, ok := na.(Derived)
	if !ok {
		return false
	}
	db, ok := nb.(Derived)
	if !ok || len(da) != len(db) {
		return false
	}
	for i, f := range da {
		if db[i].Kind != f.Kind || db[i].Exp != f.Exp {
			return false
		}
	}
	return true
}

// Interconv reports whether a and b denote the same dimension up to kind
// specialization, so that a quantity of one can be treated as an instance of
// the other's family. It is strictly weaker than Equal: width and height are
// interconvertible, length and time are not.
func Interconv(a, b Spec) bool {
	return Equal(explode(a), explode(b))
}

// Common resolves the most specific kind all arguments are interconvertible
// with, for example length for width and height. It fails when the arguments
// share no common family. The result is independent of argument order.
func Common(a, b Spec, rest ...Spec) (Spec, error) {
	res, err := common(a, b)
	if err != nil {
		return nil, err
	}
	for _, s := range rest {
		res, err = common(res, s)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func common(a, b Spec) (Spec, error) {
	na, nb := Norm(a), Norm(b)
	if Equal(na, nb) {
		return na, nil
	}
	if !Interconv(na, nb) {
		return nil, cor.Errorf("no common quantity kind for %s and %s", na, nb)
	}
	ka, oka := na.(*Kind)
	kb, okb := nb.(*Kind)
	if oka && okb {
		if c := ancestor(ka, kb); c != nil {
			return c, nil
		}
		// same family through equations only, fall back to the family root
		return explode(na), nil
	}
	if oka {
		return namedOrRoot(ka, nb), nil
	}
	if okb {
		return namedOrRoot(kb, na), nil
	}
	if c, ok := matchFactors(na.(Derived), nb.(Derived)); ok {
		return c, nil
	}
	return explode(na), nil
}

// ancestor returns the lowest common ancestor of two named kinds or nil.
func ancestor(a, b *Kind) *Kind {
	seen := make(map[*Kind]bool)
	for k := a; k != nil; k = k.parent {
		seen[k] = true
	}
	for k := b; k != nil; k = k.parent {
		if seen[k] {
			return k
		}
	}
	return nil
}

// namedOrRoot resolves the common kind of a named kind and an interconvertible
// derived expression. When the expression spells out the defining equation of
// the kind or one of its ancestors, that named kind is the most specific
// answer; otherwise the two only meet at the family root.
func namedOrRoot(k *Kind, d Spec) Spec {
	for a := k; a != nil; a = a.parent {
		if a.eq != nil && Equal(a.eq, d) {
			return a
		}
	}
	return explode(d)
}

// matchFactors resolves the factor-wise common kind of two derived
// expressions with pairwise matching factors, so that width*time and
// height*time meet at length*time rather than at the exploded base form.
func matchFactors(a, b Derived) (Spec, bool) {
	if len(a) != len(b) {
		return nil, false
	}
	used := make([]bool, len(b))
	fs := make([]Factor, 0, len(a))
	for _, f := range a {
		found := false
		for i, g := range b {
			if used[i] || g.Exp != f.Exp || !Interconv(f.Kind, g.Kind) {
				continue
			}
			c, err := common(f.Kind, g.Kind)
			if err != nil {
				return nil, false
			}
			ck, ok := c.(*Kind)
			if !ok {
				return nil, false
			}
			fs = append(fs, Factor{ck, f.Exp})
			used[i] = true
			found = true
			break
		}
		if !found {
			return nil, false
		}
	}
	return norm(fs), true
}

// Dims returns the base dimension vector of s: the fully reduced exponent
// form over base dimensions. Specializations and defining equations are
// reduced to base kinds first, so all interconvertible kinds share a vector.
// The vector is strictly coarser than Interconv: distinct base kinds
// declared on one dimension share a vector without being interconvertible.
func Dims(s Spec) dim.Vec {
	var res dim.Vec
	for _, f := range explode(s).factors() {
		if d := f.Kind.dim; d != nil {
			res = res.Mul(dim.Make(d).Pow(f.Exp))
		}
	}
	return res
}

// explode reduces s to its family root form: specializations are replaced by
// their topmost ancestor and defining equations unfolded, recursively, until
// only base kinds and plain roots remain.
func explode(s Spec) Spec {
	res := Spec(Dimensionless)
	for _, f := range Norm(s).factors() {
		res = Mul(res, Pow(explodeKind(f.Kind), f.Exp))
	}
	return res
}

func explodeKind(k *Kind) Spec {
	for k.parent != nil {
		k = k.parent
	}
	if k.eq != nil {
		return explode(k.eq)
	}
	return k
}

// norm merges and reduces a factor list into canonical form. A reduction to
// a single kind power of one keeps the kind's name. Any other combination
// unfolds the defining equations of named derived kinds, so that speed times
// time reduces all the way to length: kinds that genuinely combine lose their
// names, a kind on its own keeps it. Specializations are never unfolded.
func norm(fs []Factor) Spec {
	res := merge(fs)
	if len(res) == 0 {
		return Dimensionless
	}
	if len(res) == 1 && res[0].Exp.IsOne() {
		return res[0].Kind
	}
	if unfolded, ok := unfold(res); ok {
		return norm(unfolded)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Kind.name < res[j].Kind.name })
	return Derived(res)
}

func merge(fs []Factor) []Factor {
	merged := make(map[*Kind]num.Rat, len(fs))
	for _, f := range fs {
		if f.Kind == Dimensionless {
			continue
		}
		e := f.Exp
		if old, ok := merged[f.Kind]; ok {
			e = old.Add(e)
		}
		merged[f.Kind] = e
	}
	res := make([]Factor, 0, len(merged))
	for k, e := range merged {
		if e.IsZero() {
			continue
		}
		res = append(res, Factor{k, e})
	}
	return res
}

func unfold(fs []Factor) ([]Factor, bool) {
	any := false
	for _, f := range fs {
		if f.Kind.eq != nil {
			any = true
			break
		}
	}
	if !any {
		return nil, false
	}
	res := make([]Factor, 0, len(fs))
	for _, f := range fs {
		eq := f.Kind.eq
		if eq == nil {
			res = append(res, f)
			continue
		}
		for _, g := range eq.factors() {
			res = append(res, Factor{g.Kind, g.Exp.Mul(f.Exp)})
		}
	}
	return res, true
}
