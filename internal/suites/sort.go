package suites

import (
	"slices"
	"sort"

	"github.com/utkarsh5026/cpm/cpm"
	"github.com/utkarsh5026/cpm/random"
)

// sortPolicy stops where the insertion sort gets too slow to repeat.
var sortPolicy = cpm.Increasing{Start: cpm.Linear(10), End: 10_000, Factor: 10}

// Sort compares three sorts of random float64 vectors in one section.
func Sort(r Runner) {
	s := r.Section("sort", cpm.WithPolicy(sortPolicy))
	defer s.End()

	setup := cpm.Init(func(size cpm.Size) cpm.Data {
		return cpm.Data{make(random.Float64s, size.N())}
	})

	s.MeasureTwoPass("sort.Float64s", setup, cpm.OnData(func(d cpm.Data) {
		sort.Float64s(cpm.Item[random.Float64s](d, 0))
	}))
	s.MeasureTwoPass("slices.Sort", setup, cpm.OnData(func(d cpm.Data) {
		slices.Sort(cpm.Item[random.Float64s](d, 0))
	}))
	s.MeasureTwoPass("insertion", setup, cpm.OnData(func(d cpm.Data) {
		insertionSort(cpm.Item[random.Float64s](d, 0))
	}))
}

func insertionSort(v []float64) {
	for i := 1; i < len(v); i++ {
		x := v[i]
		j := i - 1
		for j >= 0 && v[j] > x {
			v[j+1] = v[j]
			j--
		}
		v[j+1] = x
	}
}
