package cpm

import (
	"io"
	"os"

	"github.com/utkarsh5026/cpm/internal/clock"
	"github.com/utkarsh5026/cpm/random"
)

// Default trial counts.
const (
	DefaultWarmup = 10
	DefaultRepeat = 50
)

// Clock is the source of instants used to time trials.
type Clock = clock.Clock

// Option configures a Benchmark. Passed to Benchmark.Section, options about
// reporting and persistence are ignored.
type Option func(*config)

type config struct {
	warmup int
	repeat int
	policy Policy

	folder    string
	tag       string
	autoSave  bool
	autoMkdir bool

	out            io.Writer
	standardReport bool
	color          *bool

	clock      Clock
	randomizer Randomizer

	pin  bool
	core int
}

func defaultConfig() config {
	return config{
		warmup:         DefaultWarmup,
		repeat:         DefaultRepeat,
		policy:         DefaultPolicy(),
		folder:         ".",
		autoSave:       true,
		autoMkdir:      true,
		out:            os.Stdout,
		standardReport: true,
		clock:          clock.System{},
	}
}

// WithWarmup sets the number of untimed calls before each measurement.
// Negative values are ignored.
func WithWarmup(n int) Option {
	return func(cfg *config) {
		if n >= 0 {
			cfg.warmup = n
		}
	}
}

// WithRepeat sets the number of timed calls averaged by each measurement.
// Values below 1 are ignored.
func WithRepeat(n int) Option {
	return func(cfg *config) {
		if n >= 1 {
			cfg.repeat = n
		}
	}
}

// WithPolicy sets the size sweep policy. If not specified, DefaultPolicy is
// used.
func WithPolicy(p Policy) Option {
	return func(cfg *config) {
		if p != nil {
			cfg.policy = p
		}
	}
}

// WithFolder sets the folder receiving the result file. Relative folders are
// resolved against the working directory. Defaults to the working directory.
func WithFolder(folder string) Option {
	return func(cfg *config) {
		cfg.folder = folder
	}
}

// WithTag sets the name of the result file, without extension. If not
// specified, the first free integer in the folder is used.
func WithTag(tag string) Option {
	return func(cfg *config) {
		cfg.tag = tag
	}
}

// WithAutoSave controls whether End persists the results. Enabled by
// default.
func WithAutoSave(on bool) Option {
	return func(cfg *config) {
		cfg.autoSave = on
	}
}

// WithAutoMkdir controls whether a missing results folder is created.
// Enabled by default.
func WithAutoMkdir(on bool) Option {
	return func(cfg *config) {
		cfg.autoMkdir = on
	}
}

// WithOutput sets the destination of the standard report. Defaults to
// os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(cfg *config) {
		if w != nil {
			cfg.out = w
		}
	}
}

// WithStandardReport enables or disables console reporting. Enabled by
// default.
func WithStandardReport(on bool) Option {
	return func(cfg *config) {
		cfg.standardReport = on
	}
}

// WithColor forces colored output on or off. By default colors are used
// when standard output is a terminal.
func WithColor(on bool) Option {
	return func(cfg *config) {
		cfg.color = &on
	}
}

// WithClock replaces the clock used to time trials.
func WithClock(c Clock) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.clock = c
		}
	}
}

// WithRandomizer replaces the randomization provider.
func WithRandomizer(r Randomizer) Option {
	return func(cfg *config) {
		if r != nil {
			cfg.randomizer = r
		}
	}
}

// WithSeed makes input randomization reproducible.
func WithSeed(seed uint64) Option {
	return func(cfg *config) {
		cfg.randomizer = random.New(seed)
	}
}

// WithPinnedCPU runs every measurement on a single OS thread pinned to the
// given core. Pinning is best effort: platforms without affinity support
// only lock the thread.
func WithPinnedCPU(core int) Option {
	return func(cfg *config) {
		cfg.pin = true
		cfg.core = core
	}
}
