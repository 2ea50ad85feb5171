package app

import (
	"fmt"
	"time"

	"gridfill/internal/config"
	"gridfill/internal/fill"
	"gridfill/internal/game"
	"gridfill/internal/graphics"
	"gridfill/internal/grid"
	"gridfill/internal/input"
	"gridfill/internal/profiling"
	"gridfill/internal/viewport"
	"gridfill/internal/watch"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/sirupsen/logrus"
)

// App runs the flood fill viewer: it turns input into session operations and
// keeps the grid texture in sync with the session.
type App struct {
	window   *glfw.Window
	input    *input.InputManager
	session  *game.Session
	settings config.Settings

	texture *graphics.GridTexture
	quad    *graphics.GridQuad
	limiter *game.FPSLimiter
	watcher *watch.FileWatcher

	colorName string
	log       logrus.FieldLogger
}

// New wires a session of the configured size to the window.
func New(window *glfw.Window, settings config.Settings, log logrus.FieldLogger) (*App, error) {
	session := game.NewSession(settings.GridWidth, settings.GridHeight)
	session.SetLogger(log)
	session.SetAlgorithm(settings.Algorithm)

	a := &App{
		window:    window,
		input:     input.NewInputManager(),
		session:   session,
		settings:  settings,
		limiter:   game.NewFPSLimiter(),
		colorName: "green",
		log:       log,
	}

	if settings.PatternPath != "" {
		if err := session.LoadPatternFile(settings.PatternPath); err != nil {
			log.WithError(err).Warn("using test pattern")
		} else if w, err := watch.NewFileWatcher(settings.PatternPath); err != nil {
			log.WithError(err).Warn("pattern changes will not be picked up")
		} else {
			a.watcher = w
		}
	}

	quad, err := graphics.NewGridQuad(settings.GridWidth, settings.GridHeight)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("grid quad: %w", err)
	}
	a.quad = quad
	a.texture = graphics.NewGridTexture(settings.GridWidth, settings.GridHeight)

	a.input.Attach(window)
	a.updateTitle()
	return a, nil
}

// Run loops until the window is closed.
func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	start := time.Now()

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	a.reloadPattern()
	changed := a.handleInput()
	changed = a.render() || changed

	func() { defer profiling.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()

	if d := time.Since(start); d > 16*time.Millisecond {
		a.log.WithField("fill", profiling.SumWithPrefix("fill.")).
			Debugf("Slow frame: %v. Top tasks: %s", d, profiling.TopN(5))
	}

	a.input.PostUpdate()
	if a.limiter.Wait(!changed) {
		a.log.WithField("fps", a.limiter.FPS()).Debug("frame rate")
	}
}

// handleInput applies this frame's actions and reports whether anything happened.
func (a *App) handleInput() bool {
	im := a.input
	acted := false

	for i, act := range input.ColorActions {
		if im.JustPressed(act) {
			e := grid.Palette[i]
			a.session.SetColor(e.Color)
			a.colorName = e.Name
			acted = true
		}
	}
	for i, act := range input.AlgorithmActions {
		if im.JustPressed(act) {
			a.session.SetAlgorithm(fill.Algorithms[i])
			acted = true
		}
	}
	if im.JustPressed(input.ActionCycleAlgorithm) {
		a.session.CycleAlgorithm()
		acted = true
	}
	if im.JustPressed(input.ActionReset) {
		a.session.Reset()
		acted = true
	}
	if im.JustPressed(input.ActionSnapshot) {
		if _, err := a.session.WriteSnapshot(a.settings.SnapshotDir, config.GetSnapshotScale(), time.Now()); err != nil {
			a.log.WithError(err).Warn("snapshot failed")
		}
	}
	if im.JustPressed(input.ActionFill) {
		a.fillAtCursor()
		acted = true
	}
	if im.JustPressed(input.ActionQuit) {
		a.window.SetShouldClose(true)
	}

	if acted {
		a.updateTitle()
	}
	return acted
}

func (a *App) fillAtCursor() {
	cx, cy := a.window.GetCursorPos()
	ww, wh := a.window.GetSize()
	g := a.session.Grid()
	vp := viewport.New(ww, wh, g.Width(), g.Height())

	x, y, ok := vp.ScreenToGrid(cx, cy)
	if !ok {
		return
	}
	// errors are already logged by the session; the grid is unchanged for them
	_, _ = a.session.FillAt(x, y)
}

func (a *App) reloadPattern() {
	if a.watcher == nil {
		return
	}
	select {
	case path := <-a.watcher.Changed():
		if err := a.session.LoadPatternFile(path); err != nil {
			// half-written files decode badly; the next write event retries
			a.log.WithError(err).Debug("pattern reload")
		}
	default:
	}
}

// render draws the grid, uploading it first when the session changed.
func (a *App) render() bool {
	uploaded := false
	if a.session.Dirty() {
		func() {
			defer profiling.Track("texture.Upload")()
			a.texture.Upload(a.session.Grid())
		}()
		a.session.ClearDirty()
		uploaded = true
	}

	gl.Clear(gl.COLOR_BUFFER_BIT)
	ww, wh := a.window.GetSize()
	g := a.session.Grid()
	a.quad.Draw(viewport.New(ww, wh, g.Width(), g.Height()).Projection(), a.texture)
	return uploaded
}

func (a *App) updateTitle() {
	title := fmt.Sprintf("Flood Fill - %s - %s", a.session.Algorithm(), a.colorName)
	if st := a.session.LastStats(); st.Painted > 0 {
		title += fmt.Sprintf(" - last: %d cells in %v", st.Painted, st.Elapsed.Round(time.Microsecond))
	}
	a.window.SetTitle(title)
}

// Close releases GL resources and the pattern watcher.
func (a *App) Close() {
	if a.watcher != nil {
		a.watcher.Close()
		a.watcher = nil
	}
	if a.texture != nil {
		a.texture.Delete()
	}
	if a.quad != nil {
		a.quad.Dispose()
	}
}
