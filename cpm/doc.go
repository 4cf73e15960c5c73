// Package cpm measures the performance of small units of work over a sweep
// of problem sizes, aggregates the results into titled series, prints them
// and persists them as JSON result files.
//
// # Basic Usage
//
//	bench := cpm.New("vector", cpm.WithFolder("results"))
//	bench.Begin()
//	defer bench.End()
//
//	bench.MeasureSimple("fill", cpm.CallSized(func(s cpm.Size) {
//	    v := make([]float64, s.N())
//	    for i := range v {
//	        v[i] = 1
//	    }
//	}))
//
// Every measurement runs the unit of work warmup times (default 10) without
// timing it, then repeat times (default 50), and keeps the truncated average
// in microseconds.
//
// # Protocols
//
// Three ways to measure are available, on a Benchmark or on a Section:
//
//   - MeasureSimple and MeasureOnce time a call taking nothing or the size
//   - MeasureTwoPass allocates inputs once per size with an Initializer and
//     randomizes each of them before every trial
//   - MeasureGlobal randomizes references owned by the caller before every
//     trial, for code working on fixed state
//
// Randomization is never part of the timed window. Panics raised by the
// unit of work, the initializer or the randomizer are not recovered.
//
// # Sweeps
//
// A Policy chooses the sizes. Values enumerates fixed sizes, Increasing
// grows them geometrically up to a bound and Timeout additionally stops once
// one trial gets too slow. DefaultPolicy is used when none is configured.
//
// # Sections
//
// A Section compares several series over the same sizes:
//
//	sec := bench.Section("sort", cpm.WithPolicy(cpm.Values(100, 1000, 10000)))
//	sec.MeasureTwoPass("std", initFloats, sortStd)
//	sec.MeasureTwoPass("insertion", initFloats, sortInsertion)
//	sec.End()
//
// Consecutive measurements under the same title extend one series. The
// sizes of the first series are the rows of the comparison table.
package cpm
