package vsop87

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind is the expected type of a fixed-column field.
type Kind uint8

const (
	// Marker fields only distinguish header lines from data lines.
	Marker Kind = iota
	// Int fields hold a base 10 integer.
	Int
	// Float fields hold a decimal floating point number.
	Float
)

func (k Kind) String() string {
	switch k {
	case Marker:
		return "marker"
	case Int:
		return "int"
	case Float:
		return "float"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Field names understood by the term parser.
const (
	FieldMarker    = "marker"
	FieldVersion   = "version"
	FieldBody      = "body"
	FieldVariable  = "variable"
	FieldIndex     = "index"
	FieldAmplitude = "amplitude"
	FieldPhase     = "phase"
	FieldFrequency = "frequency"
)

var requiredFields = map[string]Kind{
	FieldMarker:    Marker,
	FieldVersion:   Int,
	FieldBody:      Int,
	FieldVariable:  Int,
	FieldIndex:     Int,
	FieldAmplitude: Float,
	FieldPhase:     Float,
	FieldFrequency: Float,
}

// Field is a named column span [Start, End) of a data line, 0-based.
type Field struct {
	Name       string
	Start, End int
	Kind       Kind
}

func (f Field) String() string {
	return fmt.Sprintf("%s[%d:%d] (%s)", f.Name, f.Start, f.End, f.Kind)
}

// Schema is a validated fixed-column layout.
type Schema struct {
	Version string
	fields  map[string]Field
	width   int // minimum line length for a data line
}

// NewSchema validates the provided fields and returns a schema. Every field
// the term parser needs must be present exactly once with the right kind.
func NewSchema(version string, fields ...Field) (*Schema, error) {
	s := &Schema{Version: version, fields: make(map[string]Field, len(fields))}
	for _, f := range fields {
		if f.Start < 0 || f.End <= f.Start {
			return nil, errors.Errorf("schema %s: invalid span for %s", version, f)
		}
		if _, dup := s.fields[f.Name]; dup {
			return nil, errors.Errorf("schema %s: duplicate field %s", version, f.Name)
		}
		kind, known := requiredFields[f.Name]
		if !known {
			return nil, errors.Errorf("schema %s: unknown field %s", version, f.Name)
		}
		if kind != f.Kind {
			return nil, errors.Errorf("schema %s: field %s must be %s, not %s", version, f.Name, kind, f.Kind)
		}
		if f.Kind != Marker && f.End > s.width {
			s.width = f.End
		}
		s.fields[f.Name] = f
	}
	for name := range requiredFields {
		if _, ok := s.fields[name]; !ok {
			return nil, errors.Errorf("schema %s: missing field %s", version, name)
		}
	}
	return s, nil
}

// MustSchema is like NewSchema but panics on an invalid layout.
func MustSchema(version string, fields ...Field) *Schema {
	s, err := NewSchema(version, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Field returns the named field.
func (s *Schema) Field(name string) (Field, bool) {
	f, ok := s.fields[name]
	return f, ok
}

// Width returns the minimum length of a data line.
func (s *Schema) Width() int {
	return s.width
}

// VSOP87 is the column layout of the VSOP87 distribution files (CDS catalogue VI/81).
// The second character is the version digit on data lines and the "V" of
// "VSOP87" on header lines.
var VSOP87 = MustSchema("VSOP87/1",
	Field{FieldMarker, 1, 2, Marker},
	Field{FieldVersion, 1, 2, Int},
	Field{FieldBody, 2, 3, Int},
	Field{FieldVariable, 3, 4, Int},
	Field{FieldIndex, 4, 5, Int},
	Field{FieldAmplitude, 79, 97, Float},
	Field{FieldPhase, 97, 111, Float},
	Field{FieldFrequency, 111, 131, Float},
)
