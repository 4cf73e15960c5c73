package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utkarsh5026/cpm/cpm"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	s, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "cpm", s.Name)
	assert.Equal(t, cpm.DefaultWarmup, s.Warmup)
	assert.Equal(t, cpm.DefaultRepeat, s.Repeat)
	assert.Equal(t, ".", s.Folder)
	assert.True(t, s.AutoSave)
	assert.True(t, s.AutoMkdir)
	assert.Equal(t, -1, s.Pin)
	assert.False(t, s.NoColor)
	assert.Equal(t, Policy{Start: 10, End: 1_000_000, Factor: 10, Limit: time.Second}, s.Policy)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	content := "warmup: 2\nrepeat: 5\ntag: nightly\npolicy:\n  end: 1000\n  limit: 250ms\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cpm.yaml"), []byte(content), 0o644))

	s, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, 2, s.Warmup)
	assert.Equal(t, 5, s.Repeat)
	assert.Equal(t, "nightly", s.Tag)
	assert.Equal(t, 1000, s.Policy.End)
	assert.Equal(t, 250*time.Millisecond, s.Policy.Limit)
	assert.Equal(t, 10, s.Policy.Factor)
}

func TestLoadEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CPM_REPEAT", "7")
	t.Setenv("CPM_POLICY_FACTOR", "2")

	s, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, 7, s.Repeat)
	assert.Equal(t, 2, s.Policy.Factor)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestSweepPolicy(t *testing.T) {
	p := Policy{Start: 1, End: 100, Factor: 10}
	assert.IsType(t, cpm.Increasing{}, p.SweepPolicy())

	p.Limit = time.Second
	assert.IsType(t, cpm.Timeout{}, p.SweepPolicy())
}

func TestOptions(t *testing.T) {
	t.Chdir(t.TempDir())
	s, err := Load(viper.New(), "")
	require.NoError(t, err)
	s.Quiet = true
	s.AutoSave = false
	s.Tag = "x"
	s.Policy = Policy{Start: 1, End: 1}

	b := cpm.New("config", s.Options()...)
	assert.Equal(t, "x", b.Tag())
	b.MeasureSimple("noop", cpm.Call(func() {}))
	require.NoError(t, b.End())
	require.Len(t, b.Results(), 1)
	assert.Len(t, b.Results()[0].Entries, 1)
}
