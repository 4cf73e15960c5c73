package suites

import (
	"strconv"
	"strings"

	"github.com/utkarsh5026/cpm/cpm"
)

// Once mixes a single shot measurement with simple sweeps over the
// configured policy.
func Once(r Runner) {
	r.MeasureOnce("warm start", cpm.Call(func() {
		var b strings.Builder
		for i := range 1000 {
			b.WriteString(strconv.Itoa(i))
		}
		sink = float64(b.Len())
	}))

	r.MeasureSimple("make", cpm.CallSized(func(size cpm.Size) {
		buf := make([]float64, size.N())
		sink = float64(len(buf))
	}))
	r.MeasureSimple("fill", cpm.CallSized(func(size cpm.Size) {
		buf := make([]float64, size.N())
		for i := range buf {
			buf[i] = float64(i)
		}
		if len(buf) > 0 {
			sink = buf[len(buf)-1]
		}
	}))
}
