package vsop87

import (
	"math"

	"github.com/gonum/matrix/mat64"
	"github.com/pkg/errors"
	"github.com/soniakeys/unit"
)

// VSOP87 versions, as stored in the version column.
const (
	Elliptic             = iota // VSOP87: elliptic elements, J2000
	RectangularJ2000            // VSOP87A
	SphericalJ2000              // VSOP87B
	RectangularOfDate           // VSOP87C
	SphericalOfDate             // VSOP87D
	BarycentricRectJ2000        // VSOP87E
)

// ecl2fk5 rotates the J2000 dynamical ecliptic to the FK5 equator (VSOP87 documentation).
var ecl2fk5 = mat64.NewDense(3, 3, []float64{
	1, 0.000000440360, -0.000000190919,
	-0.000000479966, 0.917482137087, -0.397776982902,
	0, 0.397776982902, 0.917482137087,
})

// Version returns the theory version shared by all terms of the dataset.
func (d *Dataset) Version() (int, error) {
	if len(d.Terms) == 0 {
		return 0, errors.Errorf("%s: empty dataset", d.Name)
	}
	v := d.Terms[0].Version
	for _, t := range d.Terms[1:] {
		if t.Version != v {
			return 0, errors.Errorf("%s: mixed versions %d and %d", d.Name, v, t.Version)
		}
	}
	return v, nil
}

// Position returns the heliocentric (or barycentric for VSOP87E) ecliptic
// rectangular position in au at tm Julian millennia. Elliptic element
// datasets are not supported.
func Position(ds *Dataset, tm float64) ([]float64, error) {
	version, err := ds.Version()
	if err != nil {
		return nil, err
	}
	el := Elements(ds, tm)
	coord := make([]float64, 3)
	for i := range coord {
		v, ok := el.Value(i + 1)
		if !ok {
			return nil, errors.Errorf("%s: variable %d missing", ds.Name, i+1)
		}
		coord[i] = v
	}
	switch version {
	case RectangularJ2000, RectangularOfDate, BarycentricRectJ2000:
		return coord, nil
	case SphericalJ2000, SphericalOfDate:
		return Spherical2Cartesian(unit.PMod(coord[0], 2*math.Pi), coord[1], coord[2]), nil
	default:
		return nil, errors.Errorf("%s: version %d holds no position", ds.Name, version)
	}
}

// PositionFK5 returns the position of Position rotated to the FK5 equator.
// Only datasets referred to the J2000 ecliptic can be rotated.
func PositionFK5(ds *Dataset, tm float64) ([]float64, error) {
	version, err := ds.Version()
	if err != nil {
		return nil, err
	}
	if version == RectangularOfDate || version == SphericalOfDate {
		return nil, errors.Errorf("%s: version %d is referred to the ecliptic of date, not J2000", ds.Name, version)
	}
	R, err := Position(ds, tm)
	if err != nil {
		return nil, err
	}
	return EclipticToFK5(R), nil
}

// Spherical2Cartesian converts ecliptic longitude, latitude (rad) and radius to Cartesian coordinates.
func Spherical2Cartesian(l, b, r float64) []float64 {
	sB, cB := math.Sincos(b)
	sL, cL := math.Sincos(l)
	return []float64{r * cB * cL, r * cB * sL, r * sB}
}

// Cartesian2Spherical returns the longitude in [0, 2π), latitude and radius of a Cartesian vector.
func Cartesian2Spherical(v []float64) (l, b, r float64) {
	r = math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if r == 0 {
		return 0, 0, 0
	}
	return unit.PMod(math.Atan2(v[1], v[0]), 2*math.Pi), math.Asin(v[2] / r), r
}

// EclipticToFK5 rotates a J2000 ecliptic vector to the FK5 equatorial frame.
// Use PositionFK5 for dataset positions.
func EclipticToFK5(v []float64) []float64 {
	return MxV33(ecl2fk5, v)
}

// MxV33 multiplies a 3x3 matrix with a vector. Note that there is no dimension check!
func MxV33(m *mat64.Dense, v []float64) []float64 {
	var rVec mat64.Vector
	rVec.MulVec(m, mat64.NewVector(len(v), v))
	return []float64{rVec.At(0, 0), rVec.At(1, 0), rVec.At(2, 0)}
}
