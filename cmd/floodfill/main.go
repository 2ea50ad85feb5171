package main

import (
	"runtime"

	"gridfill/internal/app"
	"gridfill/internal/config"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/sirupsen/logrus"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := config.LoadDotEnv(); err != nil {
		logrus.WithError(err).Warn("ignoring .env")
	}
	settings, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	logrus.SetLevel(settings.LogLevel)

	if err := glfw.Init(); err != nil {
		logrus.WithError(err).Fatal("glfw init")
	}
	defer glfw.Terminate()

	window, err := app.SetupWindow(settings.WindowWidth, settings.WindowHeight, "Flood Fill")
	if err != nil {
		logrus.WithError(err).Fatal("window setup")
	}
	defer window.Destroy()

	a, err := app.New(window, settings, logrus.StandardLogger())
	if err != nil {
		logrus.WithError(err).Fatal("app setup")
	}
	defer a.Close()

	logrus.WithFields(logrus.Fields{
		"grid":      [2]int{settings.GridWidth, settings.GridHeight},
		"algorithm": settings.Algorithm,
	}).Info("click to fill; R G B Y P C pick a color, 1-4 or Tab pick an algorithm, Space resets, S saves a snapshot")
	a.Run()
}
