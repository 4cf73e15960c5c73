package suites

import (
	"github.com/utkarsh5026/cpm/cpm"
	"github.com/utkarsh5026/cpm/random"
)

var matrixPolicy = cpm.Increasing{Start: cpm.Dims(8, 8), End: 256, Factor: 2}

// Matrix measures c = a*b over square sizes with the two classic loop
// orders.
func Matrix(r Runner) {
	s := r.Section("matrix", cpm.WithPolicy(matrixPolicy))
	defer s.End()

	setup := cpm.Init(func(size cpm.Size) cpm.Data {
		rows, cols := size.Dim(0), size.Dim(1)
		return cpm.Data{
			random.NewMatrix(rows, cols),
			random.NewMatrix(cols, rows),
			random.NewMatrix(rows, rows),
		}
	})

	s.MeasureTwoPass("ijk", setup, cpm.OnData(func(d cpm.Data) {
		multiplyIJK(cpm.Item[*random.Matrix](d, 0), cpm.Item[*random.Matrix](d, 1), cpm.Item[*random.Matrix](d, 2))
	}))
	s.MeasureTwoPass("ikj", setup, cpm.OnData(func(d cpm.Data) {
		multiplyIKJ(cpm.Item[*random.Matrix](d, 0), cpm.Item[*random.Matrix](d, 1), cpm.Item[*random.Matrix](d, 2))
	}))
}

func multiplyIJK(a, b, c *random.Matrix) {
	for i := range a.Rows {
		for j := range b.Cols {
			var acc float64
			for k := range a.Cols {
				acc += a.At(i, k) * b.At(k, j)
			}
			c.Set(i, j, acc)
		}
	}
}

// multiplyIKJ walks b row by row.
func multiplyIKJ(a, b, c *random.Matrix) {
	clear(c.Data)
	for i := range a.Rows {
		for k := range a.Cols {
			aik := a.At(i, k)
			row := b.Data[k*b.Cols : (k+1)*b.Cols]
			out := c.Data[i*c.Cols : (i+1)*c.Cols]
			for j, v := range row {
				out[j] += aik * v
			}
		}
	}
}
