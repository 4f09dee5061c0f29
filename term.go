package vsop87

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Term is one summand of a VSOP87 series: A·cos(B + C·T)·T^Index.
type Term struct {
	Version  int // theory version (0 elliptic, 1-5 for A to E)
	Body     int // body number (1 Mercury ... 8 Neptune, 9 EMB)
	Index    int // power of the time argument
	Variable int // coordinate or element within the file
	A        float64
	B        float64 // rad
	C        float64 // rad per millennium
}

// At returns the contribution of this term at t Julian millennia.
func (t Term) At(tm float64) float64 {
	return t.A * math.Cos(t.B+t.C*tm) * math.Pow(tm, float64(t.Index))
}

func (t Term) String() string {
	return fmt.Sprintf("v%d body %d var %d T^%d: %g cos(%g + %g T)", t.Version, t.Body, t.Variable, t.Index, t.A, t.B, t.C)
}

// Parser converts fixed-column lines to terms.
type Parser struct {
	schema *Schema
}

// NewParser returns a parser for the provided schema. A nil schema means VSOP87.
func NewParser(s *Schema) *Parser {
	if s == nil {
		s = VSOP87
	}
	return &Parser{schema: s}
}

// Parse returns the term held by the line. It returns ok == false without an
// error for header and blank lines. Conversion failures are *ParseError
// values whose Name and Line are left for the caller to fill in.
func (p *Parser) Parse(line string) (term Term, ok bool, err error) {
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" {
		return
	}
	marker, _ := p.schema.Field(FieldMarker)
	if len(line) >= marker.End {
		for _, r := range line[marker.Start:marker.End] {
			if unicode.IsLetter(r) {
				return
			}
		}
	}
	if len(line) < p.schema.Width() {
		err = &ParseError{Text: line, Err: fmt.Errorf("line has %d columns, need %d", len(line), p.schema.Width())}
		return
	}
	ints := [...]struct {
		name string
		dst  *int
	}{
		{FieldVersion, &term.Version},
		{FieldBody, &term.Body},
		{FieldVariable, &term.Variable},
		{FieldIndex, &term.Index},
	}
	for _, f := range ints {
		if *f.dst, err = p.atoi(line, f.name); err != nil {
			return
		}
	}
	if term.Index < 0 {
		err = &ParseError{Field: FieldIndex, Text: strconv.Itoa(term.Index), Err: fmt.Errorf("negative power of time")}
		return
	}
	floats := [...]struct {
		name string
		dst  *float64
	}{
		{FieldAmplitude, &term.A},
		{FieldPhase, &term.B},
		{FieldFrequency, &term.C},
	}
	for _, f := range floats {
		if *f.dst, err = p.atof(line, f.name); err != nil {
			return
		}
	}
	return term, true, nil
}

func (p *Parser) text(line, name string) string {
	f, _ := p.schema.Field(name)
	return strings.TrimSpace(line[f.Start:f.End])
}

func (p *Parser) atoi(line, name string) (int, error) {
	txt := p.text(line, name)
	v, err := strconv.Atoi(txt)
	if err != nil {
		return 0, &ParseError{Field: name, Text: txt, Err: err}
	}
	return v, nil
}

func (p *Parser) atof(line, name string) (float64, error) {
	txt := p.text(line, name)
	v, err := strconv.ParseFloat(txt, 64)
	if err != nil {
		return 0, &ParseError{Field: name, Text: txt, Err: err}
	}
	return v, nil
}
