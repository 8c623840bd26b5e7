// Package isq declares the quantity kinds of the international system of
// quantities used across the module and its tests.
package isq

import (
	"github.com/jvocht/mp-units/num"
	"github.com/jvocht/mp-units/qty"
	"github.com/jvocht/mp-units/sys"
)

// Sys holds all isq declarations. It is validated during init and must be
// treated as immutable afterwards.
var Sys = sys.New("isq")

// Base dimensions.
var (
	DimLength      = Sys.Dim("length", "L")
	DimMass        = Sys.Dim("mass", "M")
	DimTime        = Sys.Dim("time", "T")
	DimCurrent     = Sys.Dim("current", "I")
	DimTemperature = Sys.Dim("temperature", "O")
	DimAmount      = Sys.Dim("amount", "N")
	DimIntensity   = Sys.Dim("intensity", "J")
)

// Base kinds.
var (
	Length      = Sys.Base("length", DimLength)
	Mass        = Sys.Base("mass", DimMass)
	Time        = Sys.Base("time", DimTime)
	Current     = Sys.Base("current", DimCurrent)
	Temperature = Sys.Base("temperature", DimTemperature)
	Amount      = Sys.Base("amount", DimAmount)
	Intensity   = Sys.Base("intensity", DimIntensity)
)

// Specializations of length.
var (
	Width    = Sys.Kind("width", Length)
	Height   = Sys.Kind("height", Length)
	Radius   = Sys.Kind("radius", Width)
	Distance = Sys.Kind("distance", Length)

	Displacement = Sys.Kind("displacement", Length).WithChar(qty.Vector)
)

// Named derived kinds.
var (
	Area         = Sys.Derive("area", qty.Pow(Length, num.Int(2)))
	Volume       = Sys.Derive("volume", qty.Pow(Length, num.Int(3)))
	Speed        = Sys.Derive("speed", qty.Div(Length, Time))
	Velocity     = Sys.Derive("velocity", qty.Div(Displacement, Time))
	Acceleration = Sys.Derive("acceleration", qty.Div(Speed, Time))
	Frequency    = Sys.Derive("frequency", qty.Div(qty.Dimensionless, Time))
	Force        = Sys.Derive("force", qty.Mul(Mass, Acceleration))
	Energy       = Sys.Derive("energy", qty.Mul(Force, Length))
)

func init() {
	Sys.MustValidate()
}
