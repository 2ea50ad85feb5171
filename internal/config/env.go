package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gridfill/internal/fill"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const envPrefix = "GRIDFILL_"

const (
	minGridSize = 8
	maxGridSize = 4096
)

// Settings is the startup configuration of a viewer.
type Settings struct {
	GridWidth, GridHeight     int
	WindowWidth, WindowHeight int
	Algorithm                 fill.Algorithm
	PatternPath               string
	SnapshotDir               string
	SnapshotScale             int
	FPSLimit                  int
	LogLevel                  logrus.Level
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Settings {
	return Settings{
		GridWidth:     256,
		GridHeight:    256,
		WindowWidth:   800,
		WindowHeight:  600,
		Algorithm:     fill.Recursive,
		SnapshotDir:   ".",
		SnapshotScale: 2,
		FPSLimit:      60,
		LogLevel:      logrus.InfoLevel,
	}
}

// LoadDotEnv loads the given .env files (".env" when none) into the process
// environment. Variables already set win. A missing file is not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("load %s: %w", strings.Join(existing, ", "), err)
	}
	return nil
}

// Load reads settings from the environment on top of Defaults, then publishes the
// runtime-adjustable values (FPS limit, snapshot scale).
func Load() (Settings, error) {
	return load(os.LookupEnv)
}

func load(lookup func(string) (string, bool)) (Settings, error) {
	s := Defaults()
	var errs []error

	intVar := func(name string, dst *int) {
		v, ok := lookup(envPrefix + name)
		if !ok || strings.TrimSpace(v) == "" {
			return
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s%s: %w", envPrefix, name, err))
			return
		}
		*dst = n
	}
	strVar := func(name string, dst *string) {
		if v, ok := lookup(envPrefix + name); ok && v != "" {
			*dst = v
		}
	}

	intVar("GRID_WIDTH", &s.GridWidth)
	intVar("GRID_HEIGHT", &s.GridHeight)
	intVar("WINDOW_WIDTH", &s.WindowWidth)
	intVar("WINDOW_HEIGHT", &s.WindowHeight)
	intVar("SNAPSHOT_SCALE", &s.SnapshotScale)
	intVar("FPS_LIMIT", &s.FPSLimit)
	strVar("PATTERN", &s.PatternPath)
	strVar("SNAPSHOT_DIR", &s.SnapshotDir)

	if v, ok := lookup(envPrefix + "ALGORITHM"); ok && v != "" {
		alg, err := fill.ParseAlgorithm(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sALGORITHM: %w", envPrefix, err))
		} else {
			s.Algorithm = alg
		}
	}
	if v, ok := lookup(envPrefix + "LOG_LEVEL"); ok && v != "" {
		lvl, err := logrus.ParseLevel(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sLOG_LEVEL: %w", envPrefix, err))
		} else {
			s.LogLevel = lvl
		}
	}

	s.GridWidth = clamp(s.GridWidth, minGridSize, maxGridSize)
	s.GridHeight = clamp(s.GridHeight, minGridSize, maxGridSize)
	s.WindowWidth = clamp(s.WindowWidth, 64, 8192)
	s.WindowHeight = clamp(s.WindowHeight, 64, 8192)

	SetFPSLimit(s.FPSLimit)
	SetSnapshotScale(s.SnapshotScale)
	s.FPSLimit = GetFPSLimit()
	s.SnapshotScale = GetSnapshotScale()

	return s, errors.Join(errs...)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
