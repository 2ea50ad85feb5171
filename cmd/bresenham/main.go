package main

import (
	"runtime"

	"gridfill/internal/app"
	"gridfill/internal/config"
	"gridfill/internal/game"
	"gridfill/internal/graphics"
	"gridfill/internal/grid"
	"gridfill/internal/raster"
	"gridfill/internal/viewport"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/sirupsen/logrus"
)

const (
	windowWidth  = 800
	windowHeight = 800
	gridSize     = 100
)

func init() {
	runtime.LockOSThread()
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := config.LoadDotEnv(); err != nil {
		logrus.WithError(err).Warn("ignoring .env")
	}
	// Load publishes the FPS limit the loop below paces to
	settings, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	logrus.SetLevel(settings.LogLevel)

	if err := glfw.Init(); err != nil {
		logrus.WithError(err).Fatal("glfw init")
	}
	defer glfw.Terminate()

	window, err := app.SetupWindow(windowWidth, windowHeight, "Bresenham")
	if err != nil {
		logrus.WithError(err).Fatal("window setup")
	}
	defer window.Destroy()

	g := grid.New(gridSize, gridSize)
	demo := raster.DemoDiagonal
	demo.Draw(g)
	dirty := true

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeySpace:
			demo = demo.Next()
			demo.Draw(g)
			dirty = true
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		}
	})

	quad, err := graphics.NewGridQuad(gridSize, gridSize)
	if err != nil {
		logrus.WithError(err).Fatal("grid quad")
	}
	defer quad.Dispose()
	tex := graphics.NewGridTexture(gridSize, gridSize)
	defer tex.Delete()

	limiter := game.NewFPSLimiter()
	for !window.ShouldClose() {
		glfw.PollEvents()

		changed := dirty
		if dirty {
			tex.Upload(g)
			window.SetTitle("Bresenham - " + demo.String())
			dirty = false
		}

		gl.Clear(gl.COLOR_BUFFER_BIT)
		ww, wh := window.GetSize()
		quad.Draw(viewport.New(ww, wh, gridSize, gridSize).Projection(), tex)
		window.SwapBuffers()

		limiter.Wait(!changed)
	}
}
