package cpm

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/utkarsh5026/cpm/internal/report"
)

// Section groups competing series measured over the same sizes. When it
// ends, it renders them side by side in a comparison table. Its series are
// persisted with the run, separately from the top-level series.
type Section struct {
	bench *Benchmark
	name  string
	cfg   config
	store Store
	ended bool
}

// Section opens a section named name. Warmup, repeat and policy default to
// those of the run and may be overridden with opts. A name already used in
// the run is renamed to the first free "name_N", with a warning.
func (b *Benchmark) Section(name string, opts ...Option) *Section {
	unique := b.uniqueSectionName(name)
	if unique != name {
		b.rep.Warn("Section already exists. Renamed in %q", unique)
	}

	cfg := b.cfg
	for _, opt := range opts {
		opt(&cfg)
	}
	// Reporting and persistence always belong to the run.
	cfg.out, cfg.standardReport = b.cfg.out, b.cfg.standardReport
	cfg.folder, cfg.tag = b.cfg.folder, b.cfg.tag
	cfg.autoSave, cfg.autoMkdir = b.cfg.autoSave, b.cfg.autoMkdir

	b.rep.Blank()

	s := &Section{bench: b, name: unique, cfg: cfg}
	b.sections = append(b.sections, s)
	return s
}

func (b *Benchmark) uniqueSectionName(name string) string {
	taken := func(n string) bool {
		return slices.ContainsFunc(b.sections, func(s *Section) bool { return s.name == n })
	}
	if !taken(name) {
		return name
	}
	for id := 0; ; id++ {
		candidate := name + "_" + strconv.Itoa(id)
		if !taken(candidate) {
			return candidate
		}
	}
}

// Name returns the final name of the section.
func (s *Section) Name() string {
	return s.name
}

// Results returns the series of the section.
func (s *Section) Results() []Series {
	return s.store.Series()
}

// Grid returns the comparison grid of the section.
func (s *Section) Grid() Grid {
	return s.store.Grid()
}

func (s *Section) scope() scope {
	return scope{cfg: &s.cfg, store: &s.store}
}

// frozen reports whether the section has ended, warning that title is
// ignored if so.
func (s *Section) frozen(title string) bool {
	if s.ended {
		s.bench.rep.Warn("Section %q has ended, %s is not measured", s.name, title)
	}
	return s.ended
}

// MeasureOnce times a single call of w, without warmup.
func (s *Section) MeasureOnce(title string, w Work) {
	if s.frozen(title) {
		return
	}
	s.bench.once(s.scope(), title, w)
}

// MeasureSimple sweeps w over the sizes of the section policy.
func (s *Section) MeasureSimple(title string, w Work) {
	if s.frozen(title) {
		return
	}
	sc := s.scope()
	s.bench.sweep(sc, title, func(size Size) time.Duration {
		return s.bench.measureDirect(sc.cfg, w, size)
	})
}

// MeasureTwoPass sweeps w over the sizes of the section policy with inputs
// allocated by setup and randomized before each trial.
func (s *Section) MeasureTwoPass(title string, setup Initializer, w DataWork) {
	if s.frozen(title) {
		return
	}
	sc := s.scope()
	s.bench.sweep(sc, title, func(size Size) time.Duration {
		return s.bench.measureTwoPass(sc.cfg, setup, w, size)
	})
}

// MeasureGlobal sweeps w over the sizes of the section policy, randomizing
// the references before each trial.
func (s *Section) MeasureGlobal(title string, w Work, refs ...Randomizable) {
	if s.frozen(title) {
		return
	}
	sc := s.scope()
	s.bench.sweep(sc, title, func(size Size) time.Duration {
		return s.bench.measureGlobal(sc.cfg, w, size, refs)
	})
}

// End renders the comparison table of the section and freezes it: later
// measurements are skipped with a warning. Calling End more than once has
// no effect.
func (s *Section) End() {
	if s.ended {
		return
	}
	s.ended = true

	if s.store.Len() == 0 {
		return
	}

	g := s.store.Grid()
	if len(g.Misaligned) > 0 {
		s.bench.rep.Warn("Section %q: %s not measured over the same sizes as %q",
			s.name, strings.Join(g.Misaligned, ", "), g.Titles[0])
	}

	if err := s.bench.rep.Table(g.table(s.name)); err != nil {
		s.bench.rep.Warn("Failed to render section %q: %v", s.name, err)
	}
}

func (g Grid) table(name string) report.Table {
	t := report.Table{Name: name, Columns: g.Titles}
	for row, label := range g.Sizes {
		cells := make([]report.Cell, len(g.Cells[row]))
		for col, c := range g.Cells[row] {
			cells[col] = report.Cell{Duration: c.Duration, OK: c.OK}
		}
		t.Rows = append(t.Rows, report.Row{Label: label, Cells: cells})
	}
	return t
}
