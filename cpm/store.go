package cpm

import (
	"slices"
	"time"
)

// Entry is one measured point of a series.
type Entry struct {
	Size     string
	Duration time.Duration
}

// Series is the ordered list of points recorded under one title.
type Series struct {
	Title   string
	Entries []Entry
}

// Store accumulates the series of one scope, in recording order.
//
// Consecutive records with the same title extend the same series; any other
// title starts a new one, even if that title was used before.
type Store struct {
	series []Series
}

// Record appends one point under title.
func (s *Store) Record(title, size string, d time.Duration) {
	if n := len(s.series); n == 0 || s.series[n-1].Title != title {
		s.series = append(s.series, Series{Title: title})
	}
	last := &s.series[len(s.series)-1]
	last.Entries = append(last.Entries, Entry{Size: size, Duration: d})
}

// Len returns the number of series.
func (s *Store) Len() int {
	return len(s.series)
}

// Series returns a copy of every series.
func (s *Store) Series() []Series {
	out := make([]Series, len(s.series))
	for i, series := range s.series {
		out[i] = Series{Title: series.Title, Entries: slices.Clone(series.Entries)}
	}
	return out
}

// Sizes returns the row axis of the scope: the size labels of the first
// series.
func (s *Store) Sizes() []string {
	if len(s.series) == 0 {
		return nil
	}
	labels := make([]string, len(s.series[0].Entries))
	for i, e := range s.series[0].Entries {
		labels[i] = e.Size
	}
	return labels
}

// Cell is one value of a Grid.
type Cell struct {
	Duration time.Duration
	OK       bool
}

// Grid correlates every series of a scope by position against the row axis.
type Grid struct {
	Sizes  []string
	Titles []string
	// Cells[row][column]
	Cells [][]Cell
	// Misaligned lists the series whose entries do not line up with the row
	// axis: a label differs at some position, or there are more entries than
	// rows. Mismatched cells are reported as missing.
	Misaligned []string
}

// Grid builds the comparison grid of the scope.
func (s *Store) Grid() Grid {
	g := Grid{Sizes: s.Sizes()}
	for _, series := range s.series {
		g.Titles = append(g.Titles, series.Title)
	}

	misaligned := make([]bool, len(s.series))
	g.Cells = make([][]Cell, len(g.Sizes))
	for row, label := range g.Sizes {
		g.Cells[row] = make([]Cell, len(s.series))
		for col, series := range s.series {
			if row >= len(series.Entries) {
				continue
			}
			e := series.Entries[row]
			if e.Size != label {
				misaligned[col] = true
				continue
			}
			g.Cells[row][col] = Cell{Duration: e.Duration, OK: true}
		}
	}

	for col, series := range s.series {
		if len(series.Entries) > len(g.Sizes) {
			misaligned[col] = true
		}
		if misaligned[col] {
			g.Misaligned = append(g.Misaligned, series.Title)
		}
	}
	return g
}
