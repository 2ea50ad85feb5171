package config

import "sync"

// RuntimeSettings holds values the viewer may change while running
type RuntimeSettings struct {
	mu            sync.RWMutex
	fpsLimit      int
	snapshotScale int
}

var globalRuntimeSettings = &RuntimeSettings{
	fpsLimit:      60,
	snapshotScale: 2,
}

// GetFPSLimit returns the frame cap; 0 means uncapped
func GetFPSLimit() int {
	globalRuntimeSettings.mu.RLock()
	defer globalRuntimeSettings.mu.RUnlock()
	return globalRuntimeSettings.fpsLimit
}

// SetFPSLimit sets the frame cap
func SetFPSLimit(limit int) {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()

	// Clamp to reasonable values
	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}

	globalRuntimeSettings.fpsLimit = limit
}

// GetSnapshotScale returns pixels per grid cell in PNG snapshots
func GetSnapshotScale() int {
	globalRuntimeSettings.mu.RLock()
	defer globalRuntimeSettings.mu.RUnlock()
	return globalRuntimeSettings.snapshotScale
}

// SetSnapshotScale sets pixels per grid cell in PNG snapshots
func SetSnapshotScale(scale int) {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()

	if scale < 1 {
		scale = 1
	}
	if scale > 16 {
		scale = 16
	}

	globalRuntimeSettings.snapshotScale = scale
}
