package cpm

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/utkarsh5026/cpm/internal/persist"
	"github.com/utkarsh5026/cpm/internal/report"
	"github.com/utkarsh5026/cpm/internal/sysinfo"
	"github.com/utkarsh5026/cpm/random"
)

// Counters are the totals of a run.
type Counters struct {
	// Tests is the number of measure calls.
	Tests int
	// Measures is the number of measured sizes.
	Measures int
	// Runs is the number of calls to units of work, warmup included.
	Runs int
}

// Benchmark is one run of measurements. It owns the top-level series, the
// sections and the counters of the run, and persists all of them when it
// ends. A Benchmark is not safe for concurrent use.
type Benchmark struct {
	name string
	cfg  config
	rep  *report.Printer

	folder   string
	folderOK bool
	file     string

	compiler string
	os       string
	start    time.Time

	counters  Counters
	store     Store
	sections  []*Section
	ended     bool
	pinWarned bool
}

// New creates a run named name. The results folder is resolved, and created
// if needed, immediately. Call End when done, typically with defer.
func New(name string, opts ...Option) *Benchmark {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.randomizer == nil {
		cfg.randomizer = random.NewRandom()
	}

	b := &Benchmark{
		name:     name,
		cfg:      cfg,
		rep:      report.New(cfg.out, cfg.standardReport),
		compiler: sysinfo.Compiler(),
	}
	if cfg.color != nil {
		b.rep.SetColor(*cfg.color)
	}

	b.resolveFolder()

	if b.folderOK && b.cfg.tag == "" {
		tag, err := persist.FreeTag(b.folder)
		if err != nil {
			b.rep.Warn("Failed to select a free tag: %v", err)
			b.folderOK = false
		} else {
			b.cfg.tag = tag
		}
	}
	b.file = persist.Path(b.folder, b.cfg.tag)

	osName, err := sysinfo.OperatingSystem()
	if err != nil {
		b.rep.Warn("Failed to detect operating system")
	}
	b.os = osName

	b.start = time.Now()
	return b
}

func (b *Benchmark) resolveFolder() {
	folder := b.cfg.folder
	if folder == "" || folder == "." {
		wd, err := os.Getwd()
		if err != nil {
			b.rep.Warn("Failed to get the working directory: %v", err)
			return
		}
		folder = wd
	}

	abs, err := filepath.Abs(folder)
	if err == nil {
		folder = abs
	}
	b.folder = folder

	info, err := os.Stat(folder)
	switch {
	case err == nil && info.IsDir():
		b.folderOK = true
	case err == nil:
		b.rep.Warn("The given folder does not exist or is not a folder")
	case errors.Is(err, os.ErrNotExist) && b.cfg.autoMkdir:
		if err := os.MkdirAll(folder, 0o755); err != nil {
			b.rep.Warn("Failed to create the folder: %v", err)
			return
		}
		b.folderOK = true
	default:
		b.rep.Warn("The given folder does not exist or is not a folder")
	}
}

// Name returns the name of the run.
func (b *Benchmark) Name() string {
	return b.name
}

// Tag returns the tag of the run, empty when the folder is unusable and no
// tag was given.
func (b *Benchmark) Tag() string {
	return b.cfg.tag
}

// File returns the result file of the run.
func (b *Benchmark) File() string {
	return b.file
}

// Counters returns the totals so far.
func (b *Benchmark) Counters() Counters {
	return b.counters
}

// Begin prints the configuration banner of the run.
func (b *Benchmark) Begin() {
	b.rep.Begin(report.Banner{
		File:     b.file,
		FolderOK: b.folderOK,
		AutoSave: b.cfg.autoSave,
		Warmup:   b.cfg.warmup,
		Repeat:   b.cfg.repeat,
		Start:    b.start,
		Compiler: b.compiler,
		OS:       b.os,
	})
}

// End closes the open sections, prints the totals and, when auto-save is
// enabled, persists the run. An unusable folder only produces a warning.
// Calling End more than once has no effect.
func (b *Benchmark) End() error {
	if b.ended {
		return nil
	}
	b.ended = true

	for _, s := range b.sections {
		s.End()
	}

	b.rep.End(report.Totals{
		Tests:    b.counters.Tests,
		Measures: b.counters.Measures,
		Runs:     b.counters.Runs,
	})

	if !b.cfg.autoSave {
		return nil
	}
	if !b.folderOK {
		b.rep.Warn("Impossible to save the results (invalid folder)")
		return nil
	}
	return b.Save()
}

// Save writes the current snapshot of the run to its result file.
func (b *Benchmark) Save() error {
	if !b.folderOK {
		return ErrNoFolder
	}
	if err := persist.Write(b.file, b.Snapshot()); err != nil {
		return fmt.Errorf("failed to save run %s: %w", b.name, err)
	}
	b.rep.Saved(b.file)
	return nil
}

// Snapshot returns everything measured so far in the persisted form.
func (b *Benchmark) Snapshot() persist.Run {
	run := persist.Run{
		Name:     b.name,
		Tag:      b.cfg.tag,
		Compiler: b.compiler,
		OS:       b.os,
		Results:  []persist.Result{},
		Sections: []persist.Section{},
	}
	run.Stamp(b.start)

	for _, s := range b.store.Series() {
		run.Results = append(run.Results, persist.Result{Title: s.Title, Results: measurements(s.Entries)})
	}

	for _, sec := range b.sections {
		ps := persist.Section{Name: sec.name, Results: []persist.Series{}}
		for _, s := range sec.store.Series() {
			ps.Results = append(ps.Results, persist.Series{Name: s.Title, Results: measurements(s.Entries)})
		}
		run.Sections = append(run.Sections, ps)
	}
	return run
}

func measurements(entries []Entry) []persist.Measurement {
	out := make([]persist.Measurement, len(entries))
	for i, e := range entries {
		out[i] = persist.Measurement{Size: e.Size, Duration: persist.Micros(e.Duration)}
	}
	return out
}

// Results returns the top-level series.
func (b *Benchmark) Results() []Series {
	return b.store.Series()
}

// Sections returns the sections of the run, in creation order.
func (b *Benchmark) Sections() []*Section {
	return append([]*Section(nil), b.sections...)
}

func (b *Benchmark) top() scope {
	return scope{cfg: &b.cfg, store: &b.store}
}

// MeasureOnce times a single call of w, without warmup. The point is
// labelled "1".
func (b *Benchmark) MeasureOnce(title string, w Work) {
	b.once(b.top(), title, w)
}

// MeasureSimple sweeps w over the sizes of the policy.
func (b *Benchmark) MeasureSimple(title string, w Work) {
	b.rep.Blank()
	sc := b.top()
	b.sweep(sc, title, func(size Size) time.Duration {
		return b.measureDirect(sc.cfg, w, size)
	})
}

// MeasureTwoPass sweeps w over the sizes of the policy. For each size, setup
// allocates the inputs once and every input is randomized before each trial,
// outside of the timed window.
func (b *Benchmark) MeasureTwoPass(title string, setup Initializer, w DataWork) {
	b.rep.Blank()
	sc := b.top()
	b.sweep(sc, title, func(size Size) time.Duration {
		return b.measureTwoPass(sc.cfg, setup, w, size)
	})
}

// MeasureGlobal sweeps w over the sizes of the policy. The references are
// owned by the caller; each is randomized before every trial, outside of the
// timed window.
func (b *Benchmark) MeasureGlobal(title string, w Work, refs ...Randomizable) {
	b.rep.Blank()
	sc := b.top()
	b.sweep(sc, title, func(size Size) time.Duration {
		return b.measureGlobal(sc.cfg, w, size, refs)
	})
}
