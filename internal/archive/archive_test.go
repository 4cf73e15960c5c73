package archive

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utkarsh5026/cpm/internal/persist"
	"github.com/utkarsh5026/cpm/internal/report"
)

func run(tag string, base uint64) persist.Run {
	return persist.Run{
		Name: "suite",
		Tag:  tag,
		Results: []persist.Result{
			{Title: "fill", Results: []persist.Measurement{{Size: "10", Duration: base}, {Size: "100", Duration: base * 10}}},
		},
		Sections: []persist.Section{
			{Name: "sort", Results: []persist.Series{
				{Name: "std", Results: []persist.Measurement{{Size: "10", Duration: base}}},
			}},
		},
	}
}

func writeRuns(t *testing.T, dir string, n int) []string {
	t.Helper()
	paths := make([]string, n)
	for i := range n {
		tag := strconv.Itoa(i)
		paths[i] = persist.Path(dir, tag)
		require.NoError(t, persist.Write(paths[i], run(tag, uint64(i+1))))
	}
	return paths
}

func TestLoadAllKeepsOrder(t *testing.T) {
	paths := writeRuns(t, t.TempDir(), 20)

	runs, err := LoadAll(context.Background(), paths, 3)
	require.NoError(t, err)
	require.Len(t, runs, 20)
	for i, r := range runs {
		assert.Equal(t, strconv.Itoa(i), r.Tag)
	}
}

func TestLoadAllFails(t *testing.T) {
	dir := t.TempDir()
	paths := writeRuns(t, dir, 2)

	bad := filepath.Join(dir, "bad.cpm")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))

	_, err := LoadAll(context.Background(), append(paths, bad), 0)
	assert.True(t, errors.Is(err, persist.ErrFormat))
}

func TestExpand(t *testing.T) {
	dir := t.TempDir()
	writeRuns(t, dir, 3)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o644))

	single := filepath.Join(t.TempDir(), "x.cpm")
	require.NoError(t, persist.Write(single, run("x", 1)))

	paths, err := Expand([]string{dir, single})
	require.NoError(t, err)
	assert.Equal(t, []string{
		persist.Path(dir, "0"), persist.Path(dir, "1"), persist.Path(dir, "2"), single,
	}, paths)

	_, err = Expand([]string{filepath.Join(dir, "missing")})
	assert.Error(t, err)
}

func TestTables(t *testing.T) {
	tables := Tables(run("0", 2))
	require.Len(t, tables, 2)

	assert.Equal(t, "suite", tables[0].Name)
	assert.Equal(t, []string{"fill"}, tables[0].Columns)
	assert.Equal(t, report.Row{Label: "100", Cells: []report.Cell{{Duration: 20 * time.Microsecond, OK: true}}}, tables[0].Rows[1])

	assert.Equal(t, "sort", tables[1].Name)
	assert.Equal(t, []string{"std"}, tables[1].Columns)
}

func TestCompare(t *testing.T) {
	older := run("0", 1)
	newer := run("1", 2)
	newer.Results[0].Results = append(newer.Results[0].Results, persist.Measurement{Size: "1000", Duration: 200})

	tables := Compare([]persist.Run{older, newer})
	require.Len(t, tables, 2)

	fill := tables[0]
	assert.Equal(t, "fill", fill.Name)
	assert.Equal(t, []string{"suite:0", "suite:1"}, fill.Columns)
	require.Len(t, fill.Rows, 3)
	assert.Equal(t, "1000", fill.Rows[2].Label)
	assert.False(t, fill.Rows[2].Cells[0].OK)
	assert.Equal(t, 200*time.Microsecond, fill.Rows[2].Cells[1].Duration)

	assert.Equal(t, "sort/std", tables[1].Name)
}
