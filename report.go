package vsop87

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Reporter writes a result.
type Reporter interface {
	Report(w io.Writer, r *Result) error
}

// NewReporter returns the reporter for the format "text" or "json".
// A negative precision prints the shortest exact representation.
func NewReporter(format string, precision int) (Reporter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return TextReporter{Precision: precision}, nil
	case "json":
		return JSONReporter{Indent: true}, nil
	default:
		return nil, errors.Errorf("unknown output format %q", format)
	}
}

// TextReporter writes a header line followed by `variable[i] = v` lines.
type TextReporter struct {
	Precision int
}

// Report implements Reporter.
func (t TextReporter) Report(w io.Writer, r *Result) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s at JD%s\n", r.Dataset, strconv.FormatFloat(r.JulianDay, 'f', -1, 64))
	for _, i := range r.Values.Indices() {
		v, _ := r.Values.Value(i)
		fmt.Fprintf(&b, "variable[%d] = %s\n", i, strconv.FormatFloat(v, 'g', t.Precision, 64))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// JSONReporter writes the result as a JSON document. The total is the sum of
// all values.
type JSONReporter struct {
	Indent bool
}

type jsonValue struct {
	Index int     `json:"index"`
	Value float64 `json:"value"`
}

type jsonResult struct {
	Dataset   string      `json:"dataset"`
	JulianDay float64     `json:"julian_day"`
	Millennia float64     `json:"millennia"`
	Grouping  string      `json:"grouping"`
	Values    []jsonValue `json:"values"`
	Total     float64     `json:"total"`
}

// Report implements Reporter.
func (j JSONReporter) Report(w io.Writer, r *Result) error {
	out := jsonResult{Dataset: r.Dataset, JulianDay: r.JulianDay, Millennia: r.Millennia, Grouping: r.Grouping.String(), Values: []jsonValue{}, Total: r.Values.Sum()}
	for _, i := range r.Values.Indices() {
		v, _ := r.Values.Value(i)
		out.Values = append(out.Values, jsonValue{i, v})
	}
	enc := json.NewEncoder(w)
	if j.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}
