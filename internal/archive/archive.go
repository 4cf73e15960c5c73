// Package archive loads previously persisted runs and lines them up for
// comparison.
package archive

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/utkarsh5026/cpm/internal/persist"
	"github.com/utkarsh5026/cpm/internal/report"
)

// DefaultLimit bounds the number of files decoded at the same time.
const DefaultLimit = 8

// Expand replaces every folder in paths by the result files it contains,
// sorted by name. Files are kept as given.
func Expand(paths []string) ([]string, error) {
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", p, err)
		}
		if !info.IsDir() {
			out = append(out, p)
			continue
		}
		matches, err := filepath.Glob(filepath.Join(p, "*"+persist.Ext))
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", p, err)
		}
		slices.Sort(matches)
		out = append(out, matches...)
	}
	return out, nil
}

// LoadAll decodes every file, at most limit at a time, and returns the runs
// in the order of paths. The first failure cancels the remaining loads.
func LoadAll(ctx context.Context, paths []string, limit int) ([]persist.Run, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	runs := make([]persist.Run, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			run, err := persist.Load(path)
			if err != nil {
				return err
			}
			runs[i] = run
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return runs, nil
}

// Label names a run in comparison columns.
func Label(run persist.Run) string {
	return fmt.Sprintf("%s:%s", run.Name, run.Tag)
}

// key identifies one series across runs. Section series are prefixed with
// the section name.
func key(section, title string) string {
	if section == "" {
		return title
	}
	return section + "/" + title
}

// Tables returns the series of one run as tables: one table for the
// top-level series and one per section. Rows are matched by size label.
func Tables(run persist.Run) []report.Table {
	var tables []report.Table

	if len(run.Results) > 0 {
		b := newBuilder(run.Name)
		for _, r := range run.Results {
			b.add(r.Title, r.Results)
		}
		tables = append(tables, b.table())
	}

	for _, sec := range run.Sections {
		b := newBuilder(sec.Name)
		for _, s := range sec.Results {
			b.add(s.Name, s.Results)
		}
		tables = append(tables, b.table())
	}
	return tables
}

// Compare returns one table per series found in any run, in first seen
// order, with one column per run. Rows are the union of the size labels.
func Compare(runs []persist.Run) []report.Table {
	var order []string
	series := make(map[string][]column)

	add := func(k, label string, ms []persist.Measurement) {
		if _, ok := series[k]; !ok {
			order = append(order, k)
		}
		series[k] = append(series[k], column{name: label, values: ms})
	}

	for _, run := range runs {
		label := Label(run)
		for _, r := range run.Results {
			add(key("", r.Title), label, r.Results)
		}
		for _, sec := range run.Sections {
			for _, s := range sec.Results {
				add(key(sec.Name, s.Name), label, s.Results)
			}
		}
	}

	tables := make([]report.Table, 0, len(order))
	for _, k := range order {
		b := newBuilder(k)
		for _, c := range series[k] {
			b.add(c.name, c.values)
		}
		tables = append(tables, b.table())
	}
	return tables
}

type column struct {
	name   string
	values []persist.Measurement
}

// builder lines columns up by size label. A column measuring the same size
// twice keeps its last value.
type builder struct {
	name    string
	sizes   []string
	columns []string
	values  []map[string]persist.Measurement
}

func newBuilder(name string) *builder {
	return &builder{name: name}
}

func (b *builder) add(name string, ms []persist.Measurement) {
	values := make(map[string]persist.Measurement, len(ms))
	for _, m := range ms {
		if !slices.Contains(b.sizes, m.Size) {
			b.sizes = append(b.sizes, m.Size)
		}
		values[m.Size] = m
	}
	b.columns = append(b.columns, name)
	b.values = append(b.values, values)
}

func (b *builder) table() report.Table {
	t := report.Table{Name: strings.TrimSpace(b.name), Columns: b.columns}
	for _, size := range b.sizes {
		row := report.Row{Label: size, Cells: make([]report.Cell, len(b.columns))}
		for i, values := range b.values {
			if m, ok := values[size]; ok {
				row.Cells[i] = report.Cell{Duration: m.Elapsed(), OK: true}
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}
