package cpm

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utkarsh5026/cpm/internal/persist"
	"github.com/utkarsh5026/cpm/random"
)

func TestStandardReportLines(t *testing.T) {
	var out bytes.Buffer
	c := manualClock()
	b := quiet(t, &out, WithClock(c), WithWarmup(0), WithRepeat(1), WithPolicy(Values(10, 100)))

	b.MeasureSimple("fill", CallSized(func(s Size) {
		c.Advance(time.Duration(s.N()) * time.Microsecond)
	}))

	assert.Contains(t, out.String(), "fill(10) took 10µs\n")
	assert.Contains(t, out.String(), "fill(100) took 100µs\n")
}

func TestBeginAndEndBanners(t *testing.T) {
	var out bytes.Buffer
	b := quiet(t, &out, WithWarmup(3), WithRepeat(4), WithPolicy(Values(1)))

	b.Begin()
	b.MeasureSimple("x", Call(func() {}))
	require.NoError(t, b.End())

	text := out.String()
	assert.Contains(t, text, "Start CPM benchmarks")
	assert.Contains(t, text, "Results will be saved on-demand in "+b.File())
	assert.Contains(t, text, "Each test is warmed-up 3 times")
	assert.Contains(t, text, "Each test is repeated 4 times")
	assert.Contains(t, text, "End of CPM benchmarks")
	assert.Contains(t, text, "1 tests have been run")
	assert.Contains(t, text, "7 functors calls")
}

func TestTopLevelTitleAggregation(t *testing.T) {
	b := quiet(t, nil, WithWarmup(0), WithRepeat(1), WithPolicy(Values(1)))

	for _, title := range []string{"A", "A", "B", "A"} {
		b.MeasureSimple(title, Call(func() {}))
	}

	results := b.Results()
	require.Len(t, results, 3)
	assert.Equal(t, "A", results[0].Title)
	assert.Len(t, results[0].Entries, 2)
	assert.Equal(t, "B", results[1].Title)
	assert.Len(t, results[1].Entries, 1)
	assert.Equal(t, "A", results[2].Title)
	assert.Len(t, results[2].Entries, 1)
}

func TestSectionRenaming(t *testing.T) {
	var out bytes.Buffer
	b := quiet(t, &out)

	first := b.Section("sort")
	second := b.Section("sort")
	third := b.Section("sort")
	other := b.Section("search")

	assert.Equal(t, "sort", first.Name())
	assert.Equal(t, "sort_0", second.Name())
	assert.Equal(t, "sort_1", third.Name())
	assert.Equal(t, "search", other.Name())
	assert.Contains(t, out.String(), `Warning: Section already exists. Renamed in "sort_0"`)
	assert.Contains(t, out.String(), `Warning: Section already exists. Renamed in "sort_1"`)
	assert.Len(t, b.Sections(), 4)
}

func TestSectionSettings(t *testing.T) {
	b := quiet(t, nil, WithWarmup(4), WithRepeat(6), WithPolicy(Values(1, 2)))

	inherited := b.Section("inherited")
	calls := 0
	inherited.MeasureSimple("w", Call(func() { calls++ }))
	assert.Equal(t, 2*(4+6), calls)

	overridden := b.Section("overridden", WithWarmup(0), WithRepeat(1), WithPolicy(Values(9)))
	calls = 0
	overridden.MeasureSimple("w", Call(func() { calls++ }))
	assert.Equal(t, 1, calls)
	assert.Equal(t, "9", overridden.Results()[0].Entries[0].Size)
}

func TestSectionScopesAreIndependent(t *testing.T) {
	b := quiet(t, nil, WithWarmup(0), WithRepeat(1), WithPolicy(Values(1)))

	b.MeasureSimple("shared", Call(func() {}))
	s := b.Section("sec")
	s.MeasureSimple("shared", Call(func() {}))
	b.MeasureSimple("shared", Call(func() {}))

	top := b.Results()
	require.Len(t, top, 1)
	assert.Len(t, top[0].Entries, 2)
	assert.Len(t, s.Results(), 1)
}

func TestSectionTable(t *testing.T) {
	var out bytes.Buffer
	c := manualClock()
	b := quiet(t, &out, WithClock(c), WithWarmup(0), WithRepeat(1))

	s := b.Section("compare", WithPolicy(Values(10, 100)))
	s.MeasureSimple("linear", CallSized(func(sz Size) { c.Advance(time.Duration(sz.N()) * time.Microsecond) }))
	s.MeasureTwoPass("short", Init(func(sz Size) Data { return Data{make(random.Float64s, sz.N())} }),
		OnSizedData(func(sz Size, _ Data) { c.Advance(2 * time.Duration(sz.N()) * time.Microsecond) }))
	s.End()
	s.End()

	text := out.String()
	// Once in the progress line, once in the table.
	assert.Equal(t, 2, strings.Count(text, "200µs"), "the table is rendered once")
	assert.Contains(t, text, "20µs")
	assert.Contains(t, text, "100µs")

	grid := s.Grid()
	assert.Equal(t, []string{"10", "100"}, grid.Sizes)
	assert.Equal(t, []string{"linear", "short"}, grid.Titles)
}

func TestSectionTableMarksMissingCells(t *testing.T) {
	var out bytes.Buffer
	b := quiet(t, &out, WithWarmup(0), WithRepeat(1))

	s := b.Section("partial")
	s.MeasureSimple("full", Call(func() {}))
	s.MeasureOnce("once", Call(func() {}))
	s.End()

	assert.Contains(t, out.String(), "*")
	assert.Contains(t, out.String(), `Warning: Section "partial": once not measured over the same sizes as "full"`)
}

func TestEndClosesOpenSections(t *testing.T) {
	var out bytes.Buffer
	b := quiet(t, &out, WithWarmup(0), WithRepeat(1), WithPolicy(Values(1)))

	s := b.Section("open")
	s.MeasureSimple("only", Call(func() {}))
	require.NoError(t, b.End())
	require.NoError(t, b.End())

	assert.Equal(t, 1, strings.Count(out.String(), "End of CPM benchmarks"))
	assert.True(t, s.ended)
}

func TestEndedSectionIgnoresMeasures(t *testing.T) {
	var out bytes.Buffer
	b := quiet(t, &out, WithWarmup(0), WithRepeat(1), WithPolicy(Values(1)))

	s := b.Section("closed")
	s.MeasureSimple("before", Call(func() {}))
	s.End()

	calls := 0
	work := Call(func() { calls++ })
	s.MeasureSimple("late", work)
	s.MeasureOnce("late", work)
	s.MeasureGlobal("late", work)
	s.MeasureTwoPass("late", InitFixed(func() Data { return nil }), OnData(func(Data) { calls++ }))

	assert.Zero(t, calls)
	require.Len(t, s.Results(), 1)
	assert.Equal(t, "before", s.Results()[0].Title)
	assert.Equal(t, 4, strings.Count(out.String(), `Warning: Section "closed" has ended, late is not measured`))

	require.NoError(t, b.End())
	assert.Len(t, b.Snapshot().Sections[0].Results, 1)
}

func TestPersistedRunMatchesMemory(t *testing.T) {
	dir := t.TempDir()
	c := manualClock()
	b := New("roundtrip",
		WithFolder(dir),
		WithTag("nightly"),
		WithStandardReport(false),
		WithClock(c),
		WithWarmup(1),
		WithRepeat(2),
		WithPolicy(Values(10, 100, 1000)),
	)

	work := CallSized(func(s Size) { c.Advance(time.Duration(s.N()) * time.Microsecond) })
	b.MeasureSimple("top", work)
	b.MeasureOnce("once", work)

	sec := b.Section("pair", WithPolicy(ValuesOf(Dims(2, 3), Dims(4, 6))))
	sec.MeasureSimple("left", work)
	sec.MeasureGlobal("right", work, random.Of(new(float64)))
	sec.End()

	require.NoError(t, b.End())

	path := filepath.Join(dir, "nightly.cpm")
	assert.Equal(t, path, b.File())

	run, err := persist.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "roundtrip", run.Name)
	assert.Equal(t, "nightly", run.Tag)
	assert.NotEmpty(t, run.Compiler)
	assert.NotEmpty(t, run.OS)
	assert.NotEmpty(t, run.Time)
	assert.NotZero(t, run.Timestamp)

	type triple struct {
		title, size string
		us          uint64
	}
	var mem, disk []triple
	for _, s := range b.Results() {
		for _, e := range s.Entries {
			mem = append(mem, triple{s.Title, e.Size, uint64(e.Duration.Microseconds())})
		}
	}
	for _, sec := range b.Sections() {
		for _, s := range sec.Results() {
			for _, e := range s.Entries {
				mem = append(mem, triple{sec.Name() + "/" + s.Title, e.Size, uint64(e.Duration.Microseconds())})
			}
		}
	}
	for _, r := range run.Results {
		for _, m := range r.Results {
			disk = append(disk, triple{r.Title, m.Size, m.Duration})
		}
	}
	for _, sec := range run.Sections {
		for _, s := range sec.Results {
			for _, m := range s.Results {
				disk = append(disk, triple{sec.Name + "/" + s.Name, m.Size, m.Duration})
			}
		}
	}

	assert.Equal(t, mem, disk)
	assert.Contains(t, disk, triple{"top", "1000", 1000})
	assert.Contains(t, disk, triple{"pair/right", "4x6", 4})
}

func TestAutomaticTag(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "0.cpm"), []byte("{}"), 0o644))

	b := New("auto", WithFolder(dir), WithStandardReport(false))

	assert.Equal(t, "1", b.Tag())
	require.NoError(t, b.End())
	assert.FileExists(t, filepath.Join(dir, "1.cpm"))
}

func TestMissingFolderIsCreated(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "results")

	b := New("mkdir", WithFolder(dir), WithStandardReport(false))
	require.NoError(t, b.End())

	assert.FileExists(t, filepath.Join(dir, "0.cpm"))
}

func TestMissingFolderWithoutMkdir(t *testing.T) {
	var out bytes.Buffer
	dir := filepath.Join(t.TempDir(), "absent")

	b := New("nomkdir",
		WithFolder(dir),
		WithAutoMkdir(false),
		WithOutput(&out),
		WithColor(false),
		WithPolicy(Values(1)),
		WithWarmup(0),
		WithRepeat(1),
	)
	b.MeasureSimple("still runs", Call(func() {}))

	assert.NoError(t, b.End(), "an unusable folder is not fatal")
	assert.True(t, errors.Is(b.Save(), ErrNoFolder))
	assert.NoDirExists(t, dir)
	assert.Contains(t, out.String(), "Warning: The given folder does not exist or is not a folder")
	assert.Contains(t, out.String(), "Warning: Impossible to save the results (invalid folder)")
	assert.Len(t, b.Results(), 1)
}

func TestFolderIsAFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	b := New("file", WithFolder(file), WithStandardReport(false))

	assert.True(t, errors.Is(b.Save(), ErrNoFolder))
}

func TestRelativeFolderIsAbsolute(t *testing.T) {
	t.Chdir(t.TempDir())

	b := New("relative", WithFolder("out"), WithStandardReport(false), WithAutoSave(false))

	assert.True(t, filepath.IsAbs(b.File()))
	assert.DirExists(t, "out")
}

func TestAutoSaveDisabled(t *testing.T) {
	dir := t.TempDir()
	b := New("manual", WithFolder(dir), WithStandardReport(false), WithAutoSave(false))

	require.NoError(t, b.End())
	assert.NoFileExists(t, filepath.Join(dir, "0.cpm"))

	require.NoError(t, b.Save())
	assert.FileExists(t, filepath.Join(dir, "0.cpm"))
}
