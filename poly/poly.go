// Package poly evaluates polynomials in Julian centuries, such as the mean
// longitude of the lunar ascending node or the mean longitude of the Sun.
package poly

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/astrocalc/vsop87"
	"github.com/pkg/errors"
	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/unit"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Polynomial is c0 + c1·t + c2·t² + ... with t = (JD − Epoch) / Unit.
// A positive Modulus reduces the result to [0, Modulus).
type Polynomial struct {
	Name         string
	Epoch        float64 // Julian Day
	Unit         float64 // days per unit of t
	Coefficients []float64
	Modulus      float64
}

// At returns the value of the polynomial at the Julian Day jd.
func (p Polynomial) At(jd float64) float64 {
	v := base.Horner((jd-p.Epoch)/p.Unit, p.Coefficients...)
	if p.Modulus > 0 {
		v = unit.PMod(v, p.Modulus)
	}
	return v
}

// AtTime returns the value of the polynomial at dt.
func (p Polynomial) AtTime(dt time.Time) float64 {
	return p.At(vsop87.JulianDay(dt))
}

// Validate checks that the polynomial can be evaluated.
func (p Polynomial) Validate() error {
	if len(p.Coefficients) == 0 {
		return errors.Errorf("polynomial %s: no coefficients", p.Name)
	}
	if p.Unit == 0 {
		return errors.Errorf("polynomial %s: zero time unit", p.Name)
	}
	if p.Modulus < 0 {
		return errors.Errorf("polynomial %s: negative modulus", p.Name)
	}
	return nil
}

func (p Polynomial) String() string {
	return fmt.Sprintf("%s (epoch JD%.1f, unit %.0f d, %d coefficients)", p.Name, p.Epoch, p.Unit, len(p.Coefficients))
}

// NodeEpoch is the epoch of the mean longitude presets, JD 2451120 (1998-11-02 12h).
const NodeEpoch = 2451120.0

var (
	// MeanLunarNode is the mean longitude of the ascending node of the Moon, in degrees.
	MeanLunarNode = Polynomial{
		Name:         "lunar-node",
		Epoch:        NodeEpoch,
		Unit:         vsop87.DaysPerCentury,
		Coefficients: []float64{125.0445222, -1934.136260833, 0.0020708333, 2.222e-06},
		Modulus:      360,
	}
	// MeanSolarLongitude is the geometric mean longitude of the Sun, in degrees.
	MeanSolarLongitude = Polynomial{
		Name:         "solar-longitude",
		Epoch:        NodeEpoch,
		Unit:         vsop87.DaysPerCentury,
		Coefficients: []float64{280.4664567, 36000.76982779, 0.0003032028, 1.0 / 49931, -1.0 / 15299, -1.0 / 1988000},
		Modulus:      360,
	}
	// MeanLunarNodeJ2000 has the coefficients of MeanLunarNode counted from J2000.
	MeanLunarNodeJ2000 = atJ2000(MeanLunarNode)
	// MeanSolarLongitudeJ2000 has the coefficients of MeanSolarLongitude counted from J2000.
	MeanSolarLongitudeJ2000 = atJ2000(MeanSolarLongitude)
)

func atJ2000(p Polynomial) Polynomial {
	p.Name += "-j2000"
	p.Epoch = vsop87.J2000
	p.Coefficients = append([]float64(nil), p.Coefficients...)
	return p
}

var presets = map[string]Polynomial{
	MeanLunarNode.Name:           MeanLunarNode,
	MeanSolarLongitude.Name:      MeanSolarLongitude,
	MeanLunarNodeJ2000.Name:      MeanLunarNodeJ2000,
	MeanSolarLongitudeJ2000.Name: MeanSolarLongitudeJ2000,
}

// Names returns the names of the built-in polynomials.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the named polynomial. Definitions under `polynomial.<name>`
// in v (epoch, unit, coefficients, modulus) override or extend the built-in
// ones; v may be nil.
func Lookup(v *viper.Viper, name string) (Polynomial, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	p, known := presets[name]
	if v != nil {
		key := "polynomial." + name
		if v.IsSet(key + ".coefficients") {
			if !known {
				p = Polynomial{Name: name, Epoch: vsop87.J2000, Unit: vsop87.DaysPerCentury}
			}
			coeffs, err := float64s(v.Get(key + ".coefficients"))
			if err != nil {
				return Polynomial{}, errors.Wrapf(err, "polynomial %s", name)
			}
			p.Coefficients = coeffs
			known = true
		}
		if known {
			if v.IsSet(key + ".epoch") {
				p.Epoch = v.GetFloat64(key + ".epoch")
			}
			if v.IsSet(key + ".unit") {
				p.Unit = v.GetFloat64(key + ".unit")
			}
			if v.IsSet(key + ".modulus") {
				p.Modulus = v.GetFloat64(key + ".modulus")
			}
		}
	}
	if !known {
		return Polynomial{}, errors.Errorf("unknown polynomial %q", name)
	}
	return p, p.Validate()
}

func float64s(raw interface{}) ([]float64, error) {
	if fs, ok := raw.([]float64); ok {
		return append([]float64(nil), fs...), nil
	}
	items, err := cast.ToSliceE(raw)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(items))
	for i, item := range items {
		if out[i], err = cast.ToFloat64E(item); err != nil {
			return nil, errors.Wrapf(err, "coefficient %d", i)
		}
	}
	return out, nil
}
