// Package si declares the SI units for the isq quantity kinds.
package si

import (
	"github.com/jvocht/mp-units/isq"
	"github.com/jvocht/mp-units/num"
	"github.com/jvocht/mp-units/ref"
	"github.com/jvocht/mp-units/sys"
	"github.com/jvocht/mp-units/unit"
)

// Sys holds all SI declarations. It is validated during init and must be
// treated as immutable afterwards.
var Sys = sys.New("si")

// Base units, one per base kind.
var (
	Metre   = Sys.BaseUnit("metre", "m", isq.Length)
	Gram    = Sys.BaseUnit("gram", "g", isq.Mass)
	Second  = Sys.BaseUnit("second", "s", isq.Time)
	Ampere  = Sys.BaseUnit("ampere", "A", isq.Current)
	Kelvin  = Sys.BaseUnit("kelvin", "K", isq.Temperature)
	Mole    = Sys.BaseUnit("mole", "mol", isq.Amount)
	Candela = Sys.BaseUnit("candela", "cd", isq.Intensity)
)

// Scaled units.
var (
	Kilometre  = Sys.ScaledUnit("kilometre", "km", num.Int(1000), Metre)
	Centimetre = Sys.ScaledUnit("centimetre", "cm", num.New(1, 100), Metre)
	Millimetre = Sys.ScaledUnit("millimetre", "mm", num.New(1, 1000), Metre)
	Kilogram   = Sys.ScaledUnit("kilogram", "kg", num.Int(1000), Gram)
	Minute     = Sys.ScaledUnit("minute", "min", num.Int(60), Second)
	Hour       = Sys.ScaledUnit("hour", "h", num.Int(3600), Second)
)

// Named derived units, declared as aliases scaling their defining expression.
var (
	Hertz  = Sys.ScaledUnit("hertz", "Hz", num.One, unit.Div(unit.One, Second))
	Newton = Sys.ScaledUnit("newton", "N", num.One,
		unit.Div(unit.Mul(Kilogram, Metre), unit.Pow(Second, num.Int(2))))
	Joule = Sys.ScaledUnit("joule", "J", num.One, unit.Mul(Newton, Metre))
)

// Common derived unit expressions.
var (
	MetrePerSecond   = Sys.Unit(unit.Div(Metre, Second))
	KilometrePerHour = Sys.Unit(unit.Div(Kilometre, Hour))
	SquareMetre      = Sys.Unit(unit.Pow(Metre, num.Int(2)))
)

// Predeclared references.
var (
	SpeedKmh = Sys.Ref(ref.Must(ref.New(isq.Speed, KilometrePerHour)))
	HeightM  = Sys.Ref(ref.Must(ref.New(isq.Height, Metre)))
)

func init() {
	Sys.MustValidate()
}
