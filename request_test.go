package vsop87

import (
	"io/fs"
	"math"
	"testing"
	"time"

	"github.com/gonum/floats"
	"github.com/pkg/errors"
)

func TestParseJulianDay(t *testing.T) {
	if jd, err := ParseJulianDay(""); jd != nil || err != nil {
		t.Fatalf("empty value should mean now: %v %v", jd, err)
	}
	jd, err := ParseJulianDay(" 2451545.25 ")
	if err != nil || *jd != 2451545.25 {
		t.Fatalf("unexpected %v %v", jd, err)
	}
	for _, s := range []string{"abc", "NaN", "+Inf", "-inf", "2451545,5"} {
		_, err := ParseJulianDay(s)
		var terr *TimeArgumentError
		if !errors.As(err, &terr) {
			t.Fatalf("%s: expected a TimeArgumentError, got %v", s, err)
		}
	}
}

func TestParseGrouping(t *testing.T) {
	for s, exp := range map[string]Grouping{"": ByIndex, "index": ByIndex, "Variable": ByVariable} {
		if g, err := ParseGrouping(s); err != nil || g != exp {
			t.Fatalf("%q: expected %s, got %s (%v)", s, exp, g, err)
		}
	}
	if _, err := ParseGrouping("body"); err == nil {
		t.Fatal("expected an error")
	}
}

func TestCompute(t *testing.T) {
	c := NewCatalog("testdata", nil)
	jd := J2000
	res, err := c.Compute(Request{Dataset: "VSOP87D.ear", JulianDay: &jd})
	if err != nil {
		t.Fatal(err)
	}
	if res.Dataset != "VSOP87D.ear" || res.JulianDay != J2000 || res.Millennia != 0 || res.Grouping != ByIndex {
		t.Fatalf("unexpected result %+v", res)
	}
	assertSeries(t, "compute", res.Values, map[int]float64{0: 2.7354451387292613, 1: 0, 2: 0})
	if !res.Time().Equal(time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected time %s", res.Time())
	}

	res, err = c.Compute(Request{Dataset: "VSOP87D.ear", JulianDay: &jd, Grouping: ByVariable})
	if err != nil {
		t.Fatal(err)
	}
	if idx := res.Values.Indices(); len(idx) != 3 || idx[0] != 1 || idx[2] != 3 {
		t.Fatalf("expected variables 1 to 3, got %v", idx)
	}
}

func TestComputeNow(t *testing.T) {
	defer func(now func() time.Time) { Now = now }(Now)
	Now = func() time.Time { return time.Date(1992, 12, 20, 0, 0, 0, 0, time.UTC) }
	res, err := NewCatalog("testdata", nil).Compute(Request{Dataset: "VSOP87D.ear"})
	if err != nil {
		t.Fatal(err)
	}
	if res.JulianDay != 2448976.5 {
		t.Fatalf("expected JD 2448976.5, got %f", res.JulianDay)
	}
	v, _ := res.Values.Value(1)
	if !floats.EqualWithinAbs(v, -44.18535906949146, 1e-9) {
		t.Fatalf("unexpected value %f", v)
	}
}

func TestComputeErrors(t *testing.T) {
	c := NewCatalog("testdata", nil)
	if res, err := c.Compute(Request{}); res != nil || err != ErrNoDataset {
		t.Fatalf("expected ErrNoDataset, got %v", err)
	}
	nan := math.NaN()
	var terr *TimeArgumentError
	if res, err := c.Compute(Request{Dataset: "VSOP87D.ear", JulianDay: &nan}); res != nil || !errors.As(err, &terr) {
		t.Fatalf("expected a TimeArgumentError, got %v", err)
	}
	if res, err := c.Compute(Request{Dataset: "VSOP87D.mars"}); res != nil || !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected a missing file, got %v", err)
	}
	var perr *ParseError
	if res, err := c.Compute(Request{Dataset: "malformed.ear"}); res != nil || !errors.As(err, &perr) {
		t.Fatalf("expected a ParseError, got %v", err)
	}
}
