package rep

import (
	"testing"

	"github.com/mb0/xelf/lit"

	"github.com/jvocht/mp-units/qty"
)

func vec(els ...lit.Lit) *lit.List { return &lit.List{Data: els} }

func TestCheck(t *testing.T) {
	tests := []struct {
		char qty.Character
		l    lit.Lit
		ok   bool
	}{
		{qty.Scalar, lit.Int(5), true},
		{qty.Scalar, lit.Real(2.5), true},
		{qty.Scalar, lit.Str("five"), false},
		{qty.Scalar, vec(lit.Int(1)), false},
		{qty.Vector, vec(lit.Int(1), lit.Int(2), lit.Int(3)), true},
		{qty.Vector, vec(lit.Real(1.5), lit.Int(2)), true},
		{qty.Vector, lit.Int(1), false},
		{qty.Vector, vec(), false},
		{qty.Vector, vec(lit.Str("x")), false},
		{qty.Tensor, vec(vec(lit.Int(1), lit.Int(2)), vec(lit.Int(3), lit.Int(4))), true},
		{qty.Tensor, vec(lit.Int(1), lit.Int(2)), false},
		{qty.Tensor, lit.Real(1), false},
	}
	for _, test := range tests {
		err := Check(test.char, test.l)
		if test.ok && err != nil {
			t.Errorf("check %s %s: unexpected error %v", test.char, test.l, err)
		}
		if !test.ok && err == nil {
			t.Errorf("check %s %s: expected character mismatch", test.char, test.l)
		}
	}
}
