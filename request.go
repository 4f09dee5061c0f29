package vsop87

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-kit/kit/log/level"
	"github.com/pkg/errors"
	"github.com/soniakeys/meeus/v3/julian"
)

// Grouping selects the key terms are summed under.
type Grouping uint8

const (
	// ByIndex sums terms sharing a power of time.
	ByIndex Grouping = iota
	// ByVariable sums terms sharing a variable, i.e. one full coordinate series.
	ByVariable
)

func (g Grouping) String() string {
	if g == ByVariable {
		return "variable"
	}
	return "index"
}

// ParseGrouping parses "index" or "variable".
func ParseGrouping(s string) (Grouping, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "index":
		return ByIndex, nil
	case "variable":
		return ByVariable, nil
	default:
		return ByIndex, errors.Errorf("unknown grouping %q", s)
	}
}

// Request names a dataset and an optional Julian Day.
type Request struct {
	Dataset   string
	JulianDay *float64 // nil means now
	Grouping  Grouping
}

// ParseJulianDay parses a Julian Day parameter. The empty string yields nil.
func ParseJulianDay(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	jd, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, &TimeArgumentError{Value: s, Err: err}
	}
	if err := checkFinite(jd); err != nil {
		return nil, err
	}
	return &jd, nil
}

func checkFinite(jd float64) error {
	if math.IsNaN(jd) || math.IsInf(jd, 0) {
		return &TimeArgumentError{Value: strconv.FormatFloat(jd, 'g', -1, 64), Err: errors.New("not finite")}
	}
	return nil
}

// Result is the outcome of one request.
type Result struct {
	Dataset   string
	JulianDay float64
	Millennia float64
	Grouping  Grouping
	Values    *Series
}

// Time returns the instant of the Julian Day.
func (r *Result) Time() time.Time {
	return julian.JDToTime(r.JulianDay)
}

// Compute loads the requested dataset and evaluates it. Nothing is returned
// unless both steps succeed.
func (c *Catalog) Compute(req Request) (*Result, error) {
	if strings.TrimSpace(req.Dataset) == "" {
		return nil, ErrNoDataset
	}
	var jd float64
	if req.JulianDay == nil {
		jd = JulianDay(Now())
	} else {
		jd = *req.JulianDay
		if err := checkFinite(jd); err != nil {
			return nil, err
		}
	}
	ds, err := c.Load(req.Dataset)
	if err != nil {
		return nil, err
	}
	tm := Millennia(jd)
	var values *Series
	switch req.Grouping {
	case ByVariable:
		values = Elements(ds, tm)
	default:
		values = Evaluate(ds, tm)
	}
	level.Info(orNop(c.Logger)).Log("subsys", "series", "dataset", ds.Name, "jd", jd, "terms", ds.Len(), "indices", values.Len(), "grouping", req.Grouping)
	return &Result{Dataset: ds.Name, JulianDay: jd, Millennia: tm, Grouping: req.Grouping, Values: values}, nil
}
