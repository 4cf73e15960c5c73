package random

import (
	"encoding/binary"
	"math/rand/v2"
)

// Float64s is a randomizable vector of float64 values in [Min, Max).
type Float64s []float64

// Randomize implements Item.
func (f Float64s) Randomize(r *rand.Rand) {
	for i := range f {
		f[i] = uniform(r)
	}
}

// Float32s is a randomizable vector of float32 values in [Min, Max).
type Float32s []float32

// Randomize implements Item.
func (f Float32s) Randomize(r *rand.Rand) {
	for i := range f {
		f[i] = float32(uniform(r))
	}
}

// Ints is a randomizable vector of int values in [Min, Max].
type Ints []int

// Randomize implements Item.
func (v Ints) Randomize(r *rand.Rand) {
	for i := range v {
		v[i] = int(integer(r))
	}
}

// Int64s is a randomizable vector of int64 values in [Min, Max].
type Int64s []int64

// Randomize implements Item.
func (v Int64s) Randomize(r *rand.Rand) {
	for i := range v {
		v[i] = integer(r)
	}
}

// Bytes is a randomizable byte buffer covering the full byte range.
type Bytes []byte

// Randomize implements Item.
func (b Bytes) Randomize(r *rand.Rand) {
	var word [8]byte
	for i := 0; i < len(b); i += 8 {
		binary.LittleEndian.PutUint64(word[:], r.Uint64())
		copy(b[i:], word[:])
	}
}

// Matrix is a dense row-major matrix of float64 values.
type Matrix struct {
	Rows, Cols int
	Data       []float64
}

// NewMatrix allocates a rows x cols matrix.
func NewMatrix(rows, cols int) *Matrix {
	return &Matrix{Rows: rows, Cols: cols, Data: make([]float64, rows*cols)}
}

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	return m.Data[i*m.Cols+j]
}

// Set stores v at row i, column j.
func (m *Matrix) Set(i, j int, v float64) {
	m.Data[i*m.Cols+j] = v
}

// Randomize implements Item.
func (m *Matrix) Randomize(r *rand.Rand) {
	Float64s(m.Data).Randomize(r)
}

// Number is the set of scalar types a Scalar can point to.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Scalar randomizes a single externally owned number through a pointer.
type Scalar[T Number] struct {
	p *T
}

// Of returns a handle refreshing *p.
func Of[T Number](p *T) Scalar[T] {
	return Scalar[T]{p: p}
}

// Randomize implements Item. Unsigned targets receive values in [0, Max].
// Integers narrower than the generated range wrap around.
func (s Scalar[T]) Randomize(r *rand.Rand) {
	half, minusOne := 0.5, -1
	if T(half) != 0 {
		*s.p = T(uniform(r))
		return
	}
	v := integer(r)
	var zero T
	if T(minusOne) > zero && v < 0 {
		v = -v
	}
	*s.p = T(v)
}

// Func adapts a plain function to Item.
type Func func(r *rand.Rand)

// Randomize implements Item.
func (f Func) Randomize(r *rand.Rand) {
	f(r)
}
