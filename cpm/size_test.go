package cpm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizeLabels(t *testing.T) {
	tests := []struct {
		name string
		size Size
		want string
	}{
		{"zero value", Size{}, "0"},
		{"linear", Linear(100), "100"},
		{"single dim", Dims(7), "7"},
		{"two dims", Dims(100, 200), "100x200"},
		{"three dims", Dims(1, 2, 3), "1x2x3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.size.String())
		})
	}
}

func TestSizeAccessors(t *testing.T) {
	s := Dims(4, 5, 6)

	assert.Equal(t, 4, s.N())
	assert.Equal(t, 6, s.Dim(2))
	assert.Equal(t, 3, s.Arity())
	assert.Equal(t, 120, s.Product())
	assert.Equal(t, []int{4, 5, 6}, s.Dimensions())

	var zero Size
	assert.Equal(t, 0, zero.N())
	assert.Equal(t, 0, zero.Dim(0))
	assert.Equal(t, 1, zero.Arity())
	assert.True(t, zero.Equal(Linear(0)))
}

func TestSizeIsImmutable(t *testing.T) {
	dims := []int{1, 2}
	s := Dims(dims...)
	dims[0] = 99

	assert.Equal(t, "1x2", s.String())

	out := s.Dimensions()
	out[1] = 99
	assert.Equal(t, "1x2", s.String())

	doubled := s.Map(func(d int) int { return d * 2 })
	assert.Equal(t, "2x4", doubled.String())
	assert.Equal(t, "1x2", s.String())
}

func TestNegativeDimensionsAreClamped(t *testing.T) {
	assert.Equal(t, "0", Linear(-5).String())
	assert.Equal(t, "0x3", Dims(-1, 3).String())
	assert.Equal(t, "0", Linear(2).Map(func(d int) int { return d - 10 }).String())
}

func TestDimsPanicsWithoutDimensions(t *testing.T) {
	assert.Panics(t, func() { Dims() })
}
