package game

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"gridfill/internal/fill"
	"gridfill/internal/grid"
	"gridfill/internal/profiling"

	"github.com/sirupsen/logrus"
)

// Session owns the grid being edited together with the active fill color and
// algorithm. It has no GL state; the app renders whatever it holds.
type Session struct {
	grid      *grid.Grid
	color     grid.Color
	algorithm fill.Algorithm
	pattern   string

	dirty bool
	last  fill.Stats
	log   logrus.FieldLogger
}

// NewSession creates a width×height grid showing the test pattern, with green
// as the fill color and the recursive algorithm selected.
func NewSession(width, height int) *Session {
	s := &Session{
		grid:      grid.New(width, height),
		color:     grid.Green,
		algorithm: fill.Recursive,
		log:       logrus.StandardLogger(),
	}
	s.Reset()
	return s
}

// SetLogger replaces the session logger.
func (s *Session) SetLogger(l logrus.FieldLogger) { s.log = l }

func (s *Session) Grid() *grid.Grid          { return s.grid }
func (s *Session) Color() grid.Color         { return s.color }
func (s *Session) Algorithm() fill.Algorithm { return s.algorithm }
func (s *Session) LastStats() fill.Stats     { return s.last }

// Dirty reports whether the grid changed since the last ClearDirty.
func (s *Session) Dirty() bool { return s.dirty }
func (s *Session) ClearDirty() { s.dirty = false }

// SetColor selects the fill color.
func (s *Session) SetColor(c grid.Color) {
	s.color = c
}

// SetAlgorithm selects the fill algorithm. Unknown values are ignored.
func (s *Session) SetAlgorithm(a fill.Algorithm) {
	if !a.Valid() {
		return
	}
	s.algorithm = a
	s.log.WithField("algorithm", a).Info("algorithm selected")
}

// CycleAlgorithm selects the next algorithm and returns it.
func (s *Session) CycleAlgorithm() fill.Algorithm {
	s.SetAlgorithm(s.algorithm.Next())
	return s.algorithm
}

// FillAt floods the region under (x, y) with the active color.
func (s *Session) FillAt(x, y int) (fill.Stats, error) {
	return s.FillAtContext(context.Background(), x, y)
}

// FillAtContext is FillAt with cancellation.
func (s *Session) FillAtContext(ctx context.Context, x, y int) (fill.Stats, error) {
	defer profiling.Track("fill." + s.algorithm.String())()

	target := s.grid.Get(x, y)
	stats, err := fill.FillContext(ctx, s.grid, s.algorithm, x, y, target, s.color)
	if stats.Painted > 0 {
		s.dirty = true
	}

	entry := s.log.WithFields(logrus.Fields{
		"algorithm": s.algorithm,
		"x":         x,
		"y":         y,
	})
	switch {
	case errors.Is(err, fill.ErrOutOfBounds), errors.Is(err, fill.ErrNoMatch), errors.Is(err, fill.ErrTrivialRequest):
		entry.WithError(err).Debug("fill skipped")
	case err != nil:
		entry.WithError(err).Warn("fill interrupted")
	default:
		s.last = stats
		entry.WithFields(logrus.Fields{
			"painted": stats.Painted,
			"pushes":  stats.Pushes,
			"peak":    stats.MaxLen,
			"elapsed": stats.Elapsed,
		}).Info("fill done")
	}
	return stats, err
}

// Reset restores the starting image: the pattern file when one was loaded,
// otherwise the built-in test pattern.
func (s *Session) Reset() {
	if s.pattern != "" {
		err := s.LoadPatternFile(s.pattern)
		if err == nil {
			return
		}
		s.log.WithError(err).Warn("pattern reload failed, using test pattern")
	}
	grid.TestPattern(s.grid)
	s.dirty = true
}

// LoadImage replaces the grid contents with img scaled to the grid.
func (s *Session) LoadImage(img image.Image) {
	grid.LoadImage(s.grid, img)
	s.dirty = true
}

// LoadPatternFile loads an image file into the grid and makes it the image
// Reset returns to.
func (s *Session) LoadPatternFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open pattern: %w", err)
	}
	defer f.Close()

	if err := grid.DecodeImage(s.grid, f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	s.pattern = path
	s.dirty = true
	s.log.WithField("path", path).Info("pattern loaded")
	return nil
}

// WriteSnapshot saves the grid as a PNG in dir, named after now, and returns
// the file path.
func (s *Session) WriteSnapshot(dir string, scale int, now time.Time) (string, error) {
	name := filepath.Join(dir, "gridfill-"+now.Format("20060102-150405.000")+".png")
	f, err := os.Create(name)
	if err != nil {
		return "", fmt.Errorf("create snapshot: %w", err)
	}
	if err := grid.WritePNG(f, s.grid, scale); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close snapshot: %w", err)
	}
	s.log.WithField("path", name).Info("snapshot written")
	return name, nil
}
