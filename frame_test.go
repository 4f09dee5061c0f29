package vsop87

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func norm(v []float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

func TestPositionSpherical(t *testing.T) {
	ds := loadFixture(t)
	R, err := Position(ds, 0)
	if err != nil {
		t.Fatal(err)
	}
	l, b, r := Cartesian2Spherical(R)
	if !floats.EqualWithinAbs(l, 1.7519995027195552, 1e-12) || !floats.EqualWithinAbs(b, -2.7916414377702375e-06, 1e-12) || !floats.EqualWithinAbs(r, 0.9834484276511438, 1e-12) {
		t.Fatalf("round trip failed: l=%f b=%f r=%f", l, b, r)
	}
	if !floats.EqualWithinAbs(norm(R), r, 1e-15) {
		t.Fatal("radius not preserved")
	}
}

func TestPositionErrors(t *testing.T) {
	if _, err := Position(&Dataset{Name: "empty"}, 0); err == nil {
		t.Fatal("expected an error for an empty dataset")
	}
	mixed := &Dataset{Name: "mixed", Terms: []Term{{Version: 2, Variable: 1}, {Version: 4, Variable: 2}}}
	if _, err := Position(mixed, 0); err == nil {
		t.Fatal("expected an error for mixed versions")
	}
	elliptic := &Dataset{Name: "elliptic", Terms: []Term{{Variable: 1}, {Variable: 2}, {Variable: 3}}}
	if _, err := Position(elliptic, 0); err == nil {
		t.Fatal("expected an error for elliptic elements")
	}
	partial := &Dataset{Name: "partial", Terms: []Term{{Version: 1, Variable: 1}, {Version: 1, Variable: 3}}}
	if _, err := Position(partial, 0); err == nil {
		t.Fatal("expected an error for a missing variable")
	}
	rect := &Dataset{Name: "rect", Terms: []Term{{Version: 1, Variable: 1, A: 1}, {Version: 1, Variable: 2, A: 2}, {Version: 1, Variable: 3, A: 3}}}
	R, err := Position(rect, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.Equal(R, []float64{1, 2, 3}) {
		t.Fatalf("rectangular coordinates altered: %v", R)
	}
}

func TestEclipticToFK5(t *testing.T) {
	ε := 23.4392911 * math.Pi / 180
	// The ecliptic pole lies ε away from the celestial pole, towards RA 18h.
	pole := EclipticToFK5([]float64{0, 0, 1})
	if !floats.EqualWithinAbs(pole[1], -math.Sin(ε), 1e-6) || !floats.EqualWithinAbs(pole[2], math.Cos(ε), 1e-6) {
		t.Fatalf("unexpected pole %v", pole)
	}
	v := []float64{0.3, -0.9, 0.05}
	if !floats.EqualWithinAbs(norm(EclipticToFK5(v)), norm(v), 1e-9) {
		t.Fatal("rotation changed the norm")
	}
	x := EclipticToFK5([]float64{1, 0, 0})
	if !floats.EqualWithinAbs(x[0], 1, 1e-12) || !floats.EqualWithinAbs(x[1], -0.000000479966, 1e-15) {
		t.Fatalf("unexpected x axis %v", x)
	}
}

func TestSpherical2Cartesian(t *testing.T) {
	for _, exp := range []struct {
		l, b, r float64
		v       []float64
	}{
		{0, 0, 1, []float64{1, 0, 0}},
		{math.Pi / 2, 0, 2, []float64{0, 2, 0}},
		{0, math.Pi / 2, 3, []float64{0, 0, 3}},
	} {
		if v := Spherical2Cartesian(exp.l, exp.b, exp.r); !floats.EqualApprox(v, exp.v, 1e-12) {
			t.Fatalf("expected %v, got %v", exp.v, v)
		}
	}
	if l, b, r := Cartesian2Spherical([]float64{0, 0, 0}); l != 0 || b != 0 || r != 0 {
		t.Fatal("zero vector should map to zeros")
	}
	if l, _, _ := Cartesian2Spherical([]float64{0, -1, 0}); !floats.EqualWithinAbs(l, 3*math.Pi/2, 1e-12) {
		t.Fatalf("longitude not in [0, 2π): %f", l)
	}
}

func TestPositionFK5(t *testing.T) {
	if _, err := PositionFK5(loadFixture(t), 0); err == nil {
		t.Fatal("expected an error for a dataset of date")
	}
	rect := &Dataset{Name: "VSOP87A.ear", Terms: []Term{{Version: 1, Variable: 1, A: 1}, {Version: 1, Variable: 2}, {Version: 1, Variable: 3}}}
	R, err := PositionFK5(rect, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualApprox(R, EclipticToFK5([]float64{1, 0, 0}), 1e-15) {
		t.Fatalf("unexpected FK5 position %v", R)
	}
	spherical := &Dataset{Name: "VSOP87B.ear", Terms: []Term{{Version: 2, Variable: 1}, {Version: 2, Variable: 2}, {Version: 2, Variable: 3, A: 1}}}
	if R, err = PositionFK5(spherical, 0); err != nil || !floats.EqualWithinAbs(norm(R), 1, 1e-12) {
		t.Fatalf("unexpected FK5 position %v (%v)", R, err)
	}
}
