package cpm

import (
	"strconv"
	"strings"
)

// Size describes the scale of one measurement point: either a single
// dimension (linear) or a fixed number of dimensions. The zero Size is the
// linear size 0.
type Size struct {
	dims []int
}

// Linear returns a one dimensional size. A negative n is clamped to 0.
func Linear(n int) Size {
	return Size{dims: []int{max(0, n)}}
}

// Dims returns a multi-dimensional size. It panics without dimensions.
// Negative dimensions are clamped to 0.
func Dims(d ...int) Size {
	if len(d) == 0 {
		panic("cpm: Dims requires at least one dimension")
	}
	return Size{dims: clamp(append([]int(nil), d...))}
}

func clamp(dims []int) []int {
	for i, d := range dims {
		dims[i] = max(0, d)
	}
	return dims
}

// N returns the first dimension.
func (s Size) N() int {
	if len(s.dims) == 0 {
		return 0
	}
	return s.dims[0]
}

// Dim returns dimension i.
func (s Size) Dim(i int) int {
	if i == 0 && len(s.dims) == 0 {
		return 0
	}
	return s.dims[i]
}

// Arity returns the number of dimensions.
func (s Size) Arity() int {
	return max(1, len(s.dims))
}

// Dimensions returns a copy of every dimension.
func (s Size) Dimensions() []int {
	if len(s.dims) == 0 {
		return []int{0}
	}
	return append([]int(nil), s.dims...)
}

// Product returns the number of elements of a dense problem of this size.
func (s Size) Product() int {
	p := 1
	for _, d := range s.Dimensions() {
		p *= d
	}
	return p
}

// Map returns a size with f applied to every dimension. Negative results
// are clamped to 0.
func (s Size) Map(f func(int) int) Size {
	dims := s.Dimensions()
	for i, d := range dims {
		dims[i] = f(d)
	}
	return Size{dims: clamp(dims)}
}

// Equal reports whether both sizes have the same dimensions.
func (s Size) Equal(o Size) bool {
	a, b := s.Dimensions(), o.Dimensions()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// String returns the label of the size: "100" for a linear size and
// "100x200" for a multi-dimensional one.
func (s Size) String() string {
	dims := s.Dimensions()
	if len(dims) == 1 {
		return strconv.Itoa(dims[0])
	}
	parts := make([]string, len(dims))
	for i, d := range dims {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, "x")
}
