package ref_test

import (
	"testing"

	"github.com/jvocht/mp-units/isq"
	"github.com/jvocht/mp-units/num"
	"github.com/jvocht/mp-units/qty"
	"github.com/jvocht/mp-units/ref"
	"github.com/jvocht/mp-units/si"
	"github.com/jvocht/mp-units/unit"
)

func TestSpecDerivation(t *testing.T) {
	tests := []struct {
		u    unit.Unit
		want string
	}{
		{si.Metre, "length"},
		{si.Kilometre, "length"},
		{si.Second, "time"},
		{unit.One, "dimensionless"},
		{si.MetrePerSecond, "length/time"},
		{si.KilometrePerHour, "length/time"},
		{si.SquareMetre, "length^2"},
		{si.Hertz, "1/time"},
		{si.Newton, "length*mass/time^2"},
		{si.Joule, "length^2*mass/time^2"},
		{unit.Div(si.Metre, si.Metre), "dimensionless"},
	}
	for _, test := range tests {
		got, err := ref.Spec(test.u)
		if err != nil {
			t.Errorf("spec of %s: %v", test.u, err)
			continue
		}
		if got.String() != test.want {
			t.Errorf("spec of %s want %s got %s", test.u, test.want, got)
		}
	}
}

func TestDerivedSpecMatchesDeclared(t *testing.T) {
	got, err := ref.Spec(si.KilometrePerHour)
	if err != nil {
		t.Fatalf("spec of km/h: %v", err)
	}
	if !qty.Equal(got, qty.Div(isq.Length, isq.Time)) {
		t.Errorf("derived kind of km/h should equal length/time, got %s", got)
	}
	if !qty.Interconv(got, isq.Speed) {
		t.Errorf("derived kind of km/h should be interconvertible with speed")
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		spec qty.Spec
		u    unit.Unit
		ok   bool
	}{
		{isq.Length, si.Metre, true},
		{isq.Height, si.Metre, true},
		{isq.Speed, si.KilometrePerHour, true},
		{isq.Speed, si.Second, false},
		{isq.Area, si.SquareMetre, true},
		{isq.Area, si.Metre, false},
		{qty.Div(isq.Length, isq.Time), si.MetrePerSecond, true},
	}
	for _, test := range tests {
		_, err := ref.New(test.spec, test.u)
		if test.ok && err != nil {
			t.Errorf("new %s[%s]: %v", test.spec, test.u, err)
		}
		if !test.ok && err == nil {
			t.Errorf("new %s[%s] should fail as a non-interconvertible pairing", test.spec, test.u)
		}
	}
}

func TestEqualVsInterconv(t *testing.T) {
	width := ref.Must(ref.New(isq.Width, si.Metre))
	height := ref.Must(ref.New(isq.Height, si.Metre))
	eq, err := ref.Equal(width, height)
	if err != nil {
		t.Fatalf("equal: %v", err)
	}
	if eq {
		t.Errorf("width[m] and height[m] must not be equal")
	}
	ic, err := ref.Interconv(width, height)
	if err != nil {
		t.Fatalf("interconv: %v", err)
	}
	if !ic {
		t.Errorf("width[m] and height[m] must be interconvertible")
	}

	length := ref.Must(ref.New(isq.Length, si.Metre))
	eq, err = ref.Equal(length, ref.U(si.Metre))
	if err != nil {
		t.Fatalf("equal with bare unit: %v", err)
	}
	if !eq {
		t.Errorf("length[m] must equal the bare metre")
	}
}

func TestClosure(t *testing.T) {
	r1 := ref.Must(ref.New(isq.Speed, si.KilometrePerHour))
	r2 := ref.Must(ref.From(si.Second))
	got, err := ref.Mul(r1, r2)
	if err != nil {
		t.Fatalf("mul: %v", err)
	}
	want := ref.Must(ref.New(isq.Length, unit.Div(unit.Mul(si.Kilometre, si.Second), si.Hour)))
	eq, err := ref.Equal(got, want)
	if err != nil {
		t.Fatalf("equal: %v", err)
	}
	if !eq {
		t.Errorf("speed[km/h] * time[s] want %s got %s", want, got)
	}
	back, err := ref.Div(got, r2)
	if err != nil {
		t.Fatalf("div: %v", err)
	}
	eq, err = ref.Equal(back, ref.Must(ref.New(qty.Div(isq.Length, isq.Time), si.KilometrePerHour)))
	if err != nil {
		t.Fatalf("equal: %v", err)
	}
	if !eq {
		t.Errorf("dividing the product by time[s] should give length/time[km/h], got %s", back)
	}
}

func TestStrings(t *testing.T) {
	r := ref.Must(ref.New(isq.Speed, si.KilometrePerHour))
	if got := r.String(); got != "speed[km/h]" {
		t.Errorf("want speed[km/h] got %s", got)
	}
}

func TestCommon(t *testing.T) {
	width := ref.Must(ref.New(isq.Width, si.Metre))
	height := ref.Must(ref.New(isq.Height, si.Kilometre))
	got, err := ref.Common(width, height)
	if err != nil {
		t.Fatalf("common: %v", err)
	}
	want := ref.Must(ref.New(isq.Length, si.Metre))
	eq, err := ref.Equal(got, want)
	if err != nil || !eq {
		t.Errorf("common of width[m] and height[km] want %s got %s", want, got)
	}
}

func TestCommonBareUnits(t *testing.T) {
	got, err := ref.Common(ref.U(si.Hour), ref.U(si.Minute), ref.U(si.Second))
	if err != nil {
		t.Fatalf("common: %v", err)
	}
	if !unit.Equal(got.Unit, si.Second) {
		t.Errorf("common of h, min, s should be s, got %s", got.Unit)
	}
	if !qty.Equal(got.Spec, isq.Time) {
		t.Errorf("common of bare time units should carry the time kind, got %s", got.Spec)
	}
}

func TestCommonFails(t *testing.T) {
	length := ref.Must(ref.New(isq.Length, si.Metre))
	tim := ref.Must(ref.New(isq.Time, si.Second))
	if got, err := ref.Common(length, tim); err == nil {
		t.Errorf("common of length[m] and time[s] should fail, got %s", got)
	}
	if _, err := ref.Common(ref.U(si.Metre), ref.U(si.Second)); err == nil {
		t.Errorf("common of bare m and s should fail")
	}
}

func TestScaledCommon(t *testing.T) {
	kmh := ref.Must(ref.New(isq.Speed, si.KilometrePerHour))
	ms := ref.Must(ref.New(isq.Speed, si.MetrePerSecond))
	got, err := ref.Common(kmh, ms)
	if err != nil {
		t.Fatalf("common: %v", err)
	}
	if !qty.Equal(got.Spec, isq.Speed) {
		t.Errorf("common kind should stay speed, got %s", got.Spec)
	}
	ic := unit.Interconv(got.Unit, si.MetrePerSecond)
	if !ic {
		t.Errorf("common unit %s should be interconvertible with m/s", got.Unit)
	}
}

func TestPowZeroSpec(t *testing.T) {
	s, err := ref.Spec(unit.Pow(si.Metre, num.Int(0)))
	if err != nil {
		t.Fatalf("spec: %v", err)
	}
	if !qty.Equal(s, qty.Dimensionless) {
		t.Errorf("kind of a zeroth power unit should be dimensionless, got %s", s)
	}
}
