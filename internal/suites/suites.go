// Package suites holds the benchmark suites shipped with the cpm command.
package suites

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknown is returned by Lookup for a name no suite answers to.
var ErrUnknown = errors.New("unknown suite")

// Suite is a named group of measurements run against one benchmark.
type Suite struct {
	Name        string
	Description string
	Run         func(r Runner)
}

var registry = []Suite{
	{Name: "sort", Description: "standard sorts against an insertion sort", Run: Sort},
	{Name: "matrix", Description: "square matrix products in two loop orders", Run: Matrix},
	{Name: "global", Description: "reductions over package level buffers", Run: Global},
	{Name: "once", Description: "single shot and simple direct measurements", Run: Once},
}

// All returns every suite in registration order.
func All() []Suite {
	return slices.Clone(registry)
}

// Lookup returns the suites called names, in the given order. No names
// selects every suite.
func Lookup(names ...string) ([]Suite, error) {
	if len(names) == 0 {
		return All(), nil
	}

	out := make([]Suite, 0, len(names))
	for _, name := range names {
		i := slices.IndexFunc(registry, func(s Suite) bool { return s.Name == name })
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", ErrUnknown, name)
		}
		out = append(out, registry[i])
	}
	return out, nil
}

// sink keeps results alive so the work under measure is not elided.
var sink float64
