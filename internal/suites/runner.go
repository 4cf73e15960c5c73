package suites

import "github.com/utkarsh5026/cpm/cpm"

// Runner is the part of a benchmark the suites drive.
type Runner interface {
	MeasureOnce(title string, w cpm.Work)
	MeasureSimple(title string, w cpm.Work)
	MeasureTwoPass(title string, setup cpm.Initializer, w cpm.DataWork)
	MeasureGlobal(title string, w cpm.Work, refs ...cpm.Randomizable)
	Section(name string, opts ...cpm.Option) *cpm.Section
}

var _ Runner = (*cpm.Benchmark)(nil)
