package report

import (
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/utkarsh5026/cpm/internal/clock"
)

// Cell is one duration of a table. OK is false when the series has no
// value for the row.
type Cell struct {
	Duration time.Duration
	OK       bool
}

// Row is a labelled line of cells, one per column.
type Row struct {
	Label string
	Cells []Cell
}

// Table is a comparison of several series over the same rows.
type Table struct {
	Name    string
	Columns []string
	Rows    []Row
}

// Mark is the highlight of a cell.
type Mark int

const (
	Plain Mark = iota
	Fast
	Slow
	Missing
)

// tolerance is the relative distance to the row extremes that still counts
// as fastest or slowest.
const tolerance = 0.01

// Highlight decides the mark of every cell of a row. Cells within 1% of the
// row minimum are Fast, otherwise cells within 1% of the row maximum are
// Slow. Rows with less than two values, or where all values are equal, are
// not highlighted.
func Highlight(cells []Cell) []Mark {
	marks := make([]Mark, len(cells))

	var lo, hi time.Duration
	present := 0
	for _, c := range cells {
		if !c.OK {
			continue
		}
		if present == 0 || c.Duration < lo {
			lo = c.Duration
		}
		if present == 0 || c.Duration > hi {
			hi = c.Duration
		}
		present++
	}

	for i, c := range cells {
		switch {
		case !c.OK:
			marks[i] = Missing
		case present < 2 || lo == hi:
			marks[i] = Plain
		case near(c.Duration, lo):
			marks[i] = Fast
		case near(c.Duration, hi):
			marks[i] = Slow
		}
	}
	return marks
}

func near(v, target time.Duration) bool {
	f, t := float64(v), float64(target)
	return f >= (1-tolerance)*t && f <= (1+tolerance)*t
}

// RenderTable writes t to w. Nothing is written for a table without columns.
func (p *Printer) RenderTable(w io.Writer, t Table) error {
	if len(t.Columns) == 0 {
		return nil
	}

	// Headers are names given by the user and are printed as is.
	table := tablewriter.NewTable(w, tablewriter.WithHeaderAutoFormat(tw.Off))

	header := make([]any, 0, len(t.Columns)+1)
	header = append(header, t.Name)
	for _, c := range t.Columns {
		header = append(header, c)
	}
	table.Header(header...)

	for _, r := range t.Rows {
		line := make([]string, 0, len(r.Cells)+1)
		line = append(line, r.Label)
		for i, mark := range Highlight(r.Cells) {
			line = append(line, p.cell(r.Cells[i], mark))
		}
		if err := table.Append(line); err != nil {
			return err
		}
	}

	return table.Render()
}

// Table renders t on the report stream when the printer is enabled.
func (p *Printer) Table(t Table) error {
	if !p.enabled {
		return nil
	}
	return p.RenderTable(p.out, t)
}

func (p *Printer) cell(c Cell, mark Mark) string {
	switch mark {
	case Missing:
		return p.red.Sprint("*")
	case Fast:
		return p.green.Sprint(clock.Format(c.Duration))
	case Slow:
		return p.red.Sprint(clock.Format(c.Duration))
	default:
		return clock.Format(c.Duration)
	}
}
