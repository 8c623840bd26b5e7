// Package num provides small exact rational numbers used for exponents and unit magnitudes.
package num

import (
	"fmt"
	"strconv"
)

// Rat is an exact rational number with small integer numerator and denominator.
// The zero value is invalid; use Int or New. A Rat is always normalized: the
// denominator is positive and the fraction fully reduced, so rats compare with ==.
type Rat struct {
	N, D int64
}

var (
	Zero = Rat{0, 1}
	One  = Rat{1, 1}
)

// Int returns the rational n/1.
func Int(n int64) Rat { return Rat{n, 1} }

// New returns the normalized rational n/d. It panics for d == 0, which always
// indicates a programming error in a declaration, never bad user input.
func New(n, d int64) Rat {
	if d == 0 {
		panic(fmt.Sprintf("num: zero denominator in %d/%d", n, d))
	}
	if d < 0 {
		n, d = -n, -d
	}
	if g := gcd(abs(n), d); g > 1 {
		n, d = n/g, d/g
	}
	if n == 0 {
		d = 1
	}
	return Rat{n, d}
}

func (r Rat) Add(o Rat) Rat { return New(r.N*o.D+o.N*r.D, r.D*o.D) }
func (r Rat) Sub(o Rat) Rat { return New(r.N*o.D-o.N*r.D, r.D*o.D) }
func (r Rat) Mul(o Rat) Rat { return New(r.N*o.N, r.D*o.D) }
func (r Rat) Neg() Rat      { return Rat{-r.N, r.D} }

// Inv returns the reciprocal. It panics for zero.
func (r Rat) Inv() Rat { return New(r.D, r.N) }

// Cmp returns -1, 0 or 1 depending on whether r is less than, equal to or
// greater than o.
func (r Rat) Cmp(o Rat) int {
	a, b := r.N*o.D, o.N*r.D
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (r Rat) IsZero() bool { return r.N == 0 }
func (r Rat) IsOne() bool  { return r.N == 1 && r.D == 1 }

// IsInt reports whether r is a whole number.
func (r Rat) IsInt() bool { return r.D == 1 }

func (r Rat) String() string {
	if r.D == 1 {
		return strconv.FormatInt(r.N, 10)
	}
	return fmt.Sprintf("%d/%d", r.N, r.D)
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
