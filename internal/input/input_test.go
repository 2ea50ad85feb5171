package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestJustPressedEdge(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.KeyR, glfw.Press)
	assert.True(t, im.JustPressed(ActionColorRed))
	assert.True(t, im.IsActive(ActionColorRed))

	im.PostUpdate()
	assert.False(t, im.JustPressed(ActionColorRed))
	assert.True(t, im.IsActive(ActionColorRed))

	im.HandleKeyEvent(glfw.KeyR, glfw.Repeat)
	assert.False(t, im.JustPressed(ActionColorRed), "repeat is not a new press")

	im.HandleKeyEvent(glfw.KeyR, glfw.Release)
	assert.False(t, im.IsActive(ActionColorRed))
}

func TestMouseFill(t *testing.T) {
	im := NewInputManager()
	im.HandleMouseButtonEvent(glfw.MouseButtonLeft, glfw.Press)
	assert.True(t, im.JustPressed(ActionFill))
	im.HandleMouseButtonEvent(glfw.MouseButtonRight, glfw.Press)
	assert.False(t, im.JustPressed(ActionQuit))
}

func TestUnboundAndInvalid(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyF12, glfw.Press)
	for a := Action(0); a < ActionCount; a++ {
		assert.False(t, im.JustPressed(a))
	}
	assert.False(t, im.JustPressed(ActionCount))
	assert.False(t, im.IsActive(-1))

	im.BindKey(glfw.KeyF12, ActionSnapshot)
	im.HandleKeyEvent(glfw.KeyF12, glfw.Press)
	assert.True(t, im.JustPressed(ActionSnapshot))
}
