package qty

import (
	"testing"

	"github.com/jvocht/mp-units/dim"
	"github.com/jvocht/mp-units/num"
)

var (
	length = Base("length", dim.New("length", "L"))
	mass   = Base("mass", dim.New("mass", "M"))
	tim    = Base("time", dim.New("time", "T"))
	width  = New("width", length)
	height = New("height", length)
	radius = New("radius", width)
	speed  = Derive("speed", Div(length, tim))
	area   = Derive("area", Pow(length, num.Int(2)))
	disp   = New("displacement", length).WithChar(Vector)
)

func TestMul(t *testing.T) {
	tests := []struct {
		got  Spec
		want string
	}{
		{Mul(length, tim), "length*time"},
		{Mul(tim, length), "length*time"},
		{Div(length, tim), "length/time"},
		{Div(length, length), "dimensionless"},
		{Mul(length, Dimensionless), "length"},
		{Mul(Dimensionless, Dimensionless), "dimensionless"},
		{Mul(length, length), "length^2"},
		{Pow(length, num.Int(0)), "dimensionless"},
		{Pow(Div(length, tim), num.Int(2)), "length^2/time^2"},
		{Div(Dimensionless, tim), "1/time"},
		{Div(mass, Mul(length, tim)), "mass/(length*time)"},
		{Mul(Pow(length, num.New(1, 2)), Pow(length, num.New(1, 2))), "length"},
		{Mul(Pow(length, num.Int(2)), Pow(length, num.New(1, 2))), "length^5/2"},
		{Mul(Div(length, tim), tim), "length"},
	}
	for _, test := range tests {
		if got := test.got.String(); got != test.want {
			t.Errorf("want %s got %s", test.want, got)
		}
	}
}

func TestMulProperties(t *testing.T) {
	ks := []Spec{length, tim, mass, speed, width}
	for _, a := range ks {
		for _, b := range ks {
			if !Equal(Mul(a, b), Mul(b, a)) {
				t.Errorf("%s * %s is not commutative", a, b)
			}
			for _, c := range ks {
				if !Equal(Mul(Mul(a, b), c), Mul(a, Mul(b, c))) {
					t.Errorf("(%s*%s)*%s is not associative", a, b, c)
				}
			}
		}
		if !Equal(Div(a, a), Dimensionless) {
			t.Errorf("%s / %s is not dimensionless", a, a)
		}
		if !Equal(Mul(a, Div(Dimensionless, a)), Dimensionless) {
			t.Errorf("%s times its inverse is not dimensionless", a)
		}
	}
	nested := Mul(Div(speed, mass), Pow(tim, num.New(3, 2)))
	if !Equal(Div(nested, nested), Dimensionless) {
		t.Errorf("nested expression divided by itself is not dimensionless")
	}
}

func TestNormIdempotent(t *testing.T) {
	exprs := []Spec{
		length,
		Dimensionless,
		Mul(length, tim),
		Div(Mul(speed, mass), Pow(tim, num.New(1, 2))),
	}
	for _, x := range exprs {
		n := Norm(x)
		if !Equal(n, Norm(n)) {
			t.Errorf("norm of %s is not a fixed point", x)
		}
	}
}

func TestEqualVsInterconv(t *testing.T) {
	tests := []struct {
		a, b      Spec
		eq, inter bool
	}{
		{length, length, true, true},
		{width, height, false, true},
		{width, length, false, true},
		{radius, height, false, true},
		{length, tim, false, false},
		{speed, Div(length, tim), false, true},
		{speed, Div(width, tim), false, true},
		{Mul(width, tim), Mul(height, tim), false, true},
		{area, Pow(length, num.Int(2)), false, true},
		{area, Mul(width, height), false, true},
		{speed, area, false, false},
		{disp, length, false, true},
	}
	for _, test := range tests {
		if got := Equal(test.a, test.b); got != test.eq {
			t.Errorf("equal %s %s want %v got %v", test.a, test.b, test.eq, got)
		}
		if got := Interconv(test.a, test.b); got != test.inter {
			t.Errorf("interconv %s %s want %v got %v", test.a, test.b, test.inter, got)
		}
		if got := Interconv(test.b, test.a); got != test.inter {
			t.Errorf("interconv %s %s want %v got %v", test.b, test.a, test.inter, got)
		}
	}
}

func TestCommon(t *testing.T) {
	tests := []struct {
		a, b Spec
		want string
	}{
		{width, height, "length"},
		{width, length, "length"},
		{radius, height, "length"},
		{radius, width, "width"},
		{speed, Div(length, tim), "speed"},
		{Div(length, tim), speed, "speed"},
		{speed, speed, "speed"},
		{Mul(width, tim), Mul(height, tim), "length*time"},
		{Div(area, length), width, "length"},
	}
	for _, test := range tests {
		got, err := common(test.a, test.b)
		if err != nil {
			t.Errorf("common %s %s: %v", test.a, test.b, err)
			continue
		}
		if got.String() != test.want {
			t.Errorf("common %s %s want %s got %s", test.a, test.b, test.want, got)
		}
	}
}

func TestCommonFold(t *testing.T) {
	want := "length"
	perms := [][]Spec{
		{width, height, radius},
		{radius, width, height},
		{height, radius, width},
	}
	for _, ks := range perms {
		got, err := Common(ks[0], ks[1], ks[2])
		if err != nil {
			t.Errorf("common fold: %v", err)
			continue
		}
		if got.String() != want {
			t.Errorf("common fold want %s got %s", want, got)
		}
	}
}

func TestCommonFails(t *testing.T) {
	tests := [][2]Spec{
		{length, tim},
		{speed, area},
		{Mul(length, tim), Div(length, tim)},
	}
	for _, test := range tests {
		if got, err := common(test[0], test[1]); err == nil {
			t.Errorf("common %s %s should fail, got %s", test[0], test[1], got)
		}
	}
}

func TestDims(t *testing.T) {
	tests := []struct {
		s    Spec
		want string
	}{
		{length, "L"},
		{width, "L"},
		{radius, "L"},
		{speed, "L*T^-1"},
		{area, "L^2"},
		{Mul(mass, speed), "L*M*T^-1"},
		{Pow(length, num.New(1, 2)), "L^1/2"},
	}
	for _, test := range tests {
		if got := Dims(test.s).String(); got != test.want {
			t.Errorf("dims of %s want %s got %s", test.s, test.want, got)
		}
	}
	if !Dims(Dimensionless).IsZero() {
		t.Errorf("dimensionless should have an empty dimension vector")
	}
	if !Dims(Div(width, height)).IsZero() {
		t.Errorf("width/height should have an empty dimension vector")
	}
	if Dims(width).Equal(Dims(tim)) {
		t.Errorf("length and time vectors must differ")
	}
}

func TestChar(t *testing.T) {
	if length.Char() != Scalar {
		t.Errorf("length should be scalar")
	}
	if disp.Char() != Vector {
		t.Errorf("displacement should be vector")
	}
	if got := Div(disp, tim).Char(); got != Vector {
		t.Errorf("displacement/time should be vector got %s", got)
	}
	velocity := Derive("velocity", Div(disp, tim))
	if velocity.Char() != Vector {
		t.Errorf("velocity should inherit the vector character")
	}
}
