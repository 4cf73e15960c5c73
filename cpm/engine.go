package cpm

import (
	"slices"
	"time"

	"github.com/utkarsh5026/cpm/internal/clock"
	"github.com/utkarsh5026/cpm/internal/cpu"
)

// scope is where a measurement is recorded: the top level of a run or one
// of its sections.
type scope struct {
	cfg   *config
	store *Store
}

// sweep drives the policy of the scope and records every measured size.
func (b *Benchmark) sweep(sc scope, title string, measure func(Size) time.Duration) {
	release := b.pin(sc.cfg)
	defer release()

	b.counters.Tests++

	p := sc.cfg.policy
	step := p.Begin()
	for {
		d := measure(step.Size)
		b.record(sc, title, step.Size.String(), d)
		if !p.HasNext(step, d) {
			return
		}
		step = p.Next(step)
	}
}

// once performs exactly one timed call, without warmup.
func (b *Benchmark) once(sc scope, title string, w Work) {
	release := b.pin(sc.cfg)
	defer release()

	b.counters.Tests++
	b.counters.Measures++

	size := Linear(1)
	c := sc.cfg.clock

	start := c.Now()
	w.fn(size)
	d := clock.Since(c, start)
	b.counters.Runs++

	b.record(sc, title, size.String(), d)
}

// measureDirect times w called with the size as only input.
func (b *Benchmark) measureDirect(cfg *config, w Work, size Size) time.Duration {
	b.counters.Measures++

	for range cfg.warmup {
		w.fn(size)
		b.counters.Runs++
	}

	c := cfg.clock
	var total time.Duration
	for range cfg.repeat {
		start := c.Now()
		w.fn(size)
		total += clock.Since(c, start)
		b.counters.Runs++
	}

	return average(total, cfg.repeat)
}

// measureTwoPass allocates the inputs once for size, then refreshes each of
// them before every trial. Only the call to w is timed.
func (b *Benchmark) measureTwoPass(cfg *config, setup Initializer, w DataWork, size Size) time.Duration {
	b.counters.Measures++

	// The arity of the inputs is frozen for the whole size.
	data := slices.Clip(slices.Clone(setup.fn(size)))
	rnd := cfg.randomizer

	for range cfg.warmup {
		refresh(rnd, data)
		w.fn(size, data)
		b.counters.Runs++
	}

	c := cfg.clock
	var total time.Duration
	for range cfg.repeat {
		refresh(rnd, data)
		start := c.Now()
		w.fn(size, data)
		total += clock.Since(c, start)
		b.counters.Runs++
	}

	return average(total, cfg.repeat)
}

// measureGlobal refreshes externally owned references before every trial,
// then times w. The references keep their state between trials.
func (b *Benchmark) measureGlobal(cfg *config, w Work, size Size, refs []Randomizable) time.Duration {
	b.counters.Measures++

	rnd := cfg.randomizer

	for range cfg.warmup {
		refresh(rnd, refs)
		w.fn(size)
		b.counters.Runs++
	}

	c := cfg.clock
	var total time.Duration
	for range cfg.repeat {
		refresh(rnd, refs)
		start := c.Now()
		w.fn(size)
		total += clock.Since(c, start)
		b.counters.Runs++
	}

	return average(total, cfg.repeat)
}

func refresh[S ~[]Randomizable](rnd Randomizer, items S) {
	for _, item := range items {
		rnd.Randomize(item)
	}
}

// average is the truncated mean of repeat trials, in whole microseconds.
func average(total time.Duration, repeat int) time.Duration {
	us := int64(total / time.Microsecond)
	return time.Duration(us/int64(repeat)) * time.Microsecond
}

func (b *Benchmark) pin(cfg *config) func() {
	if !cfg.pin {
		return func() {}
	}
	release, err := cpu.Pin(cfg.core)
	if err != nil && !b.pinWarned {
		b.pinWarned = true
		b.rep.Warn("Failed to pin measurements to CPU %d: %v", cfg.core, err)
	}
	return release
}

func (b *Benchmark) record(sc scope, title, size string, d time.Duration) {
	b.rep.Measured(title, size, d)
	sc.store.Record(title, size, d)
}
