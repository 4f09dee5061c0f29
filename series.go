package vsop87

import (
	"fmt"
	"sort"

	"github.com/gonum/floats"
)

// Series is a sparse set of accumulated values keyed by an integer index.
// Keys with no contributing term are absent.
type Series struct {
	keys   []int // ascending
	values map[int]float64
}

func newSeries() *Series {
	return &Series{values: make(map[int]float64)}
}

func (s *Series) add(key int, v float64) {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] += v
}

func (s *Series) seal() *Series {
	sort.Ints(s.keys)
	return s
}

// Evaluate sums every term of the dataset into the bucket of its power of
// time, in dataset order, at tm Julian millennia since J2000.0.
func Evaluate(ds *Dataset, tm float64) *Series {
	s := newSeries()
	for _, term := range ds.Terms {
		s.add(term.Index, term.At(tm))
	}
	return s.seal()
}

// Elements sums every term of the dataset into the bucket of its variable,
// in dataset order. For spherical VSOP87 versions the buckets 1, 2 and 3 are
// the longitude, latitude and radius.
func Elements(ds *Dataset, tm float64) *Series {
	s := newSeries()
	for _, term := range ds.Terms {
		s.add(term.Variable, term.At(tm))
	}
	return s.seal()
}

// Len returns the number of populated indices.
func (s *Series) Len() int {
	return len(s.keys)
}

// Indices returns the populated indices, smallest first.
func (s *Series) Indices() []int {
	return append([]int(nil), s.keys...)
}

// Value returns the accumulated value at index i and whether any term targeted it.
func (s *Series) Value(i int) (float64, bool) {
	v, ok := s.values[i]
	return v, ok
}

// Values returns the accumulated values ordered by index.
func (s *Series) Values() []float64 {
	vals := make([]float64, len(s.keys))
	for i, k := range s.keys {
		vals[i] = s.values[k]
	}
	return vals
}

// Dense returns the values for indices 0 through the largest populated one,
// with absent indices set to zero. Negative indices are not represented.
func (s *Series) Dense() []float64 {
	if len(s.keys) == 0 || s.keys[len(s.keys)-1] < 0 {
		return nil
	}
	dense := make([]float64, s.keys[len(s.keys)-1]+1)
	for _, k := range s.keys {
		if k >= 0 {
			dense[k] = s.values[k]
		}
	}
	return dense
}

// Sum returns the total of all populated indices.
func (s *Series) Sum() float64 {
	return floats.Sum(s.Values())
}

// Add returns the index-wise sum of two series.
func (s *Series) Add(o *Series) *Series {
	r := newSeries()
	for _, k := range s.keys {
		r.add(k, s.values[k])
	}
	for _, k := range o.keys {
		r.add(k, o.values[k])
	}
	return r.seal()
}

func (s *Series) String() string {
	str := "["
	for i, k := range s.keys {
		if i > 0 {
			str += " "
		}
		str += fmt.Sprintf("%d:%g", k, s.values[k])
	}
	return str + "]"
}
