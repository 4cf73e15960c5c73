package suites

import (
	"github.com/utkarsh5026/cpm/cpm"
	"github.com/utkarsh5026/cpm/random"
)

const globalLen = 1 << 16

var (
	samples = make(random.Float64s, globalLen)
	scale   float64
)

var globalPolicy = cpm.Values(1<<10, 1<<12, 1<<14, globalLen)

// Global reduces prefixes of a package level buffer that is refreshed
// before every trial.
func Global(r Runner) {
	s := r.Section("global", cpm.WithPolicy(globalPolicy))
	defer s.End()

	s.MeasureGlobal("range", cpm.CallSized(func(size cpm.Size) {
		var acc float64
		for _, v := range samples[:size.N()] {
			acc += v * scale
		}
		sink = acc
	}), samples, random.Of(&scale))

	s.MeasureGlobal("pairwise", cpm.CallSized(func(size cpm.Size) {
		sink = pairwise(samples[:size.N()]) * scale
	}), samples, random.Of(&scale))
}

func pairwise(v []float64) float64 {
	if len(v) <= 8 {
		var acc float64
		for _, x := range v {
			acc += x
		}
		return acc
	}
	mid := len(v) / 2
	return pairwise(v[:mid]) + pairwise(v[mid:])
}
