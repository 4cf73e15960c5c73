package cpm

import (
	"bytes"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/utkarsh5026/cpm/internal/clock"
)

// quiet returns a benchmark that saves nothing and prints into out.
func quiet(t *testing.T, out *bytes.Buffer, opts ...Option) *Benchmark {
	t.Helper()

	base := []Option{
		WithFolder(t.TempDir()),
		WithAutoSave(false),
		WithColor(false),
		WithSeed(1),
	}
	if out != nil {
		base = append(base, WithOutput(out))
	} else {
		base = append(base, WithStandardReport(false))
	}
	return New("test", append(base, opts...)...)
}

func manualClock() *clock.Manual {
	return clock.NewManual(time.Unix(0, 0))
}

// tracked is a randomizable input recording when it is refreshed. Refreshing
// it advances the clock, so any leak of randomization into the timed window
// shows up in the measured duration.
type tracked struct {
	name  string
	log   *[]string
	clock *clock.Manual
	value float64
}

func (p *tracked) Randomize(r *rand.Rand) {
	*p.log = append(*p.log, "rand:"+p.name)
	p.value = r.Float64()
	if p.clock != nil {
		p.clock.Advance(time.Second)
	}
}
