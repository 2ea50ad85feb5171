package game

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gridfill/internal/config"
	"gridfill/internal/fill"
	"gridfill/internal/grid"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, w, h int) (*Session, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	s := NewSession(w, h)
	s.SetLogger(logger)
	return s, hook
}

func TestNewSessionDefaults(t *testing.T) {
	s, _ := newTestSession(t, 16, 16)
	assert.Equal(t, grid.Green, s.Color())
	assert.Equal(t, fill.Recursive, s.Algorithm())
	assert.True(t, s.Dirty())
	assert.Equal(t, grid.Red, s.Grid().Get(8, 8), "starts with the test pattern")
}

func TestFillAtUsesActiveColorAndAlgorithm(t *testing.T) {
	s, hook := newTestSession(t, 16, 16)
	s.ClearDirty()
	s.SetColor(grid.Blue)
	s.SetAlgorithm(fill.Scanline)

	stats, err := s.FillAt(0, 0)
	require.NoError(t, err)
	assert.Equal(t, fill.Scanline, stats.Algorithm)
	assert.Equal(t, grid.Blue, s.Grid().Get(0, 0))
	assert.Equal(t, grid.Blue, s.Grid().Get(15, 15))
	assert.True(t, s.Dirty())
	assert.Equal(t, stats, s.LastStats())
	assert.Equal(t, "fill done", hook.LastEntry().Message)
}

func TestFillAtNoopsAreLoggedNotApplied(t *testing.T) {
	s, hook := newTestSession(t, 16, 16)
	s.ClearDirty()
	before := s.Grid().Clone()

	_, err := s.FillAt(-1, 3)
	assert.ErrorIs(t, err, fill.ErrOutOfBounds)

	s.SetColor(grid.Red)
	_, err = s.FillAt(8, 8)
	assert.ErrorIs(t, err, fill.ErrTrivialRequest)

	assert.False(t, s.Dirty())
	assert.True(t, before.Equal(s.Grid()))
	assert.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)
	assert.Equal(t, fill.Stats{}, s.LastStats())
}

func TestFillAtCancelled(t *testing.T) {
	s, hook := newTestSession(t, 128, 128)
	s.Grid().Reset()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.FillAtContext(ctx, 0, 0)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestAlgorithmSelection(t *testing.T) {
	s, _ := newTestSession(t, 8, 8)
	assert.Equal(t, fill.Stack, s.CycleAlgorithm())
	s.SetAlgorithm(fill.Algorithm(99))
	assert.Equal(t, fill.Stack, s.Algorithm())
	s.SetAlgorithm(fill.Scanline)
	assert.Equal(t, fill.Recursive, s.CycleAlgorithm())
}

func TestResetRestoresPattern(t *testing.T) {
	s, _ := newTestSession(t, 16, 16)
	_, err := s.FillAt(0, 0)
	require.NoError(t, err)
	s.ClearDirty()

	s.Reset()
	assert.True(t, s.Dirty())
	want := grid.New(16, 16)
	grid.TestPattern(want)
	assert.True(t, want.Equal(s.Grid()))
}

func writePattern(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			c := color.RGBA{255, 255, 255, 255}
			if x == y {
				c = color.RGBA{0, 0, 0, 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
}

func TestLoadPatternFileAndReset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diag.png")
	writePattern(t, path)

	s, _ := newTestSession(t, 4, 4)
	require.NoError(t, s.LoadPatternFile(path))
	// image row 0 is the top grid row
	assert.Equal(t, grid.Black, s.Grid().Get(0, 3))
	assert.Equal(t, grid.White, s.Grid().Get(0, 0))

	_, err := s.FillAt(0, 0)
	require.NoError(t, err)
	s.Reset()
	assert.Equal(t, grid.White, s.Grid().Get(0, 0))
	assert.Equal(t, grid.Black, s.Grid().Get(3, 0))
}

func TestLoadPatternFileErrors(t *testing.T) {
	s, _ := newTestSession(t, 4, 4)
	assert.Error(t, s.LoadPatternFile(filepath.Join(t.TempDir(), "missing.png")))

	bad := filepath.Join(t.TempDir(), "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("nope"), 0o644))
	assert.Error(t, s.LoadPatternFile(bad))
}

func TestResetFallsBackWhenPatternDisappears(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diag.png")
	writePattern(t, path)

	s, hook := newTestSession(t, 16, 16)
	require.NoError(t, s.LoadPatternFile(path))
	require.NoError(t, os.Remove(path))

	s.Reset()
	assert.Equal(t, grid.Red, s.Grid().Get(8, 8))
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestWriteSnapshot(t *testing.T) {
	dir := t.TempDir()
	s, _ := newTestSession(t, 8, 6)
	now := time.Date(2026, 10, 19, 15, 4, 5, 0, time.UTC)

	path, err := s.WriteSnapshot(dir, 3, now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "gridfill-20261019-150405.000.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.Width)
	assert.Equal(t, 18, cfg.Height)

	_, err = s.WriteSnapshot(filepath.Join(dir, "missing"), 1, now)
	assert.Error(t, err)
}

func TestFPSLimiterUncapped(t *testing.T) {
	config.SetFPSLimit(0)
	defer config.SetFPSLimit(60)

	f := NewFPSLimiter()
	start := time.Now()
	for i := 0; i < 100; i++ {
		f.Wait(false)
	}
	assert.Less(t, time.Since(start), 50*time.Millisecond)
}

func TestFPSLimiterPaces(t *testing.T) {
	config.SetFPSLimit(500)
	defer config.SetFPSLimit(60)

	f := NewFPSLimiter()
	start := time.Now()
	for i := 0; i < 10; i++ {
		f.Wait(false)
	}
	assert.GreaterOrEqual(t, time.Since(start), 18*time.Millisecond)
}

func TestFPSLimiterCountsFrames(t *testing.T) {
	f := NewFPSLimiter()
	start := time.Unix(100, 0)

	assert.False(t, f.count(start))
	for i := 1; i < 45; i++ {
		assert.False(t, f.count(start.Add(time.Duration(i)*20*time.Millisecond)))
	}
	assert.Zero(t, f.FPS())

	assert.True(t, f.count(start.Add(time.Second)))
	assert.Equal(t, 46, f.FPS())
}

func TestLoadImageMarksDirty(t *testing.T) {
	s, _ := newTestSession(t, 4, 4)
	s.ClearDirty()

	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{0, 0, 255, 255})
	s.LoadImage(img)

	assert.True(t, s.Dirty())
	assert.Equal(t, grid.Blue, s.Grid().Get(3, 3))
	assert.Equal(t, 16, s.Grid().FilledCount())
}
