/*
Package rep checks representation literals against quantity kind characters.

A quantity value is an xelf literal bound to a reference. The kind's character
constrains the literal shape: scalar kinds take numeric literals, vector kinds
take indexed literals of numerics, and tensor kinds take indexed literals of
vectors. The check happens once at construction; a bound value never needs to
be rechecked.
*/
package rep

import (
	"github.com/mb0/xelf/cor"
	"github.com/mb0/xelf/lit"

	"github.com/jvocht/mp-units/qty"
)

// Check returns nil if the literal l is a valid representation for the
// character c, or a diagnostic error naming the mismatch.
func Check(c qty.Character, l lit.Lit) error {
	switch c {
	case qty.Scalar:
		if !numeric(l) {
			return cor.Errorf("character mismatch: scalar kind needs a numeric literal, got %s", l.Typ())
		}
	case qty.Vector:
		if !indexed(l, numeric) {
			return cor.Errorf("character mismatch: vector kind needs a list of numerics, got %s", l.Typ())
		}
	case qty.Tensor:
		if !indexed(l, func(e lit.Lit) bool { return indexed(e, numeric) }) {
			return cor.Errorf("character mismatch: tensor kind needs a list of vectors, got %s", l.Typ())
		}
	default:
		return cor.Errorf("unknown character %d", c)
	}
	return nil
}

func numeric(l lit.Lit) bool {
	_, ok := lit.Deopt(l).(lit.Numeric)
	return ok
}

func indexed(l lit.Lit, el func(lit.Lit) bool) bool {
	idxr, ok := lit.Deopt(l).(lit.Indexer)
	if !ok || idxr.Len() == 0 {
		return false
	}
	err := idxr.IterIdx(func(_ int, e lit.Lit) error {
		if !el(e) {
			return cor.Error("element mismatch")
		}
		return nil
	})
	return err == nil
}
