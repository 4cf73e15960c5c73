package cpm

import (
	"math"
	"time"
)

// Step is the state of a sweep: the size to measure and its position in
// the sweep.
type Step struct {
	Size  Size
	Index int
}

// Policy chooses the sizes of a sweep and decides when it ends.
//
// Begin returns the first point. After each measurement, HasNext receives
// the measured step and the average duration of one trial at that step; the
// sweep continues with Next as long as HasNext returns true. Policies must
// not keep state between calls, so the same value can drive several sweeps.
type Policy interface {
	Begin() Step
	HasNext(s Step, last time.Duration) bool
	Next(s Step) Step
}

// DefaultPolicy is used when no policy is configured: sizes 10, 100, ...,
// 1,000,000, stopping early once one trial takes more than a second.
func DefaultPolicy() Policy {
	return Timeout{
		Increasing: Increasing{Start: Linear(10), End: 1_000_000, Factor: 10},
		Limit:      time.Second,
	}
}

type values struct {
	sizes []Size
}

// Values is a fixed enumeration of linear sizes, each measured once, in
// order. It panics on an empty list.
func Values(sizes ...int) Policy {
	s := make([]Size, len(sizes))
	for i, n := range sizes {
		s[i] = Linear(n)
	}
	return ValuesOf(s...)
}

// ValuesOf is a fixed enumeration of arbitrary sizes. It panics on an empty
// list.
func ValuesOf(sizes ...Size) Policy {
	if len(sizes) == 0 {
		panic("cpm: Values requires at least one size")
	}
	return values{sizes: append([]Size(nil), sizes...)}
}

// Once measures a single size.
func Once(size Size) Policy {
	return ValuesOf(size)
}

func (v values) Begin() Step {
	return Step{Size: v.sizes[0]}
}

func (v values) HasNext(s Step, _ time.Duration) bool {
	return s.Index+1 < len(v.sizes)
}

func (v values) Next(s Step) Step {
	return Step{Size: v.sizes[s.Index+1], Index: s.Index + 1}
}

// Increasing grows every dimension geometrically and arithmetically:
// next = size*Factor + Add. The sweep stops before any dimension would
// exceed End, or when the size would no longer grow. A Factor below 1
// counts as 1 and a zero Start as Linear(1).
type Increasing struct {
	Start  Size
	End    int
	Add    int
	Factor int
}

func (p Increasing) start() Size {
	if p.Start.dims == nil {
		return Linear(1)
	}
	return p.Start
}

func (p Increasing) factor() int {
	return max(1, p.Factor)
}

func (p Increasing) grow(s Size) Size {
	f := p.factor()
	return s.Map(func(d int) int { return d*f + p.Add })
}

// fits reports whether d*Factor + Add stays within End. Results that would
// overflow int are out of bounds.
func (p Increasing) fits(d int) bool {
	f := p.factor()
	if d > math.MaxInt/f {
		return false
	}
	v := d * f
	if p.Add > 0 && v > math.MaxInt-p.Add {
		return false
	}
	return v+p.Add <= p.End
}

// Begin implements Policy.
func (p Increasing) Begin() Step {
	return Step{Size: p.start()}
}

// HasNext implements Policy.
func (p Increasing) HasNext(s Step, _ time.Duration) bool {
	for _, d := range s.Size.Dimensions() {
		if !p.fits(d) {
			return false
		}
	}
	return !p.grow(s.Size).Equal(s.Size)
}

// Next implements Policy.
func (p Increasing) Next(s Step) Step {
	return Step{Size: p.grow(s.Size), Index: s.Index + 1}
}

// Timeout is an Increasing sweep that also stops as soon as one trial at
// the last size took longer than Limit.
type Timeout struct {
	Increasing
	Limit time.Duration
}

// HasNext implements Policy.
func (p Timeout) HasNext(s Step, last time.Duration) bool {
	if last > p.Limit {
		return false
	}
	return p.Increasing.HasNext(s, last)
}
