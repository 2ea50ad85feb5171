package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical viewer action, not a physical key
type Action int

const (
	ActionFill Action = iota
	ActionColorRed
	ActionColorGreen
	ActionColorBlue
	ActionColorYellow
	ActionColorMagenta
	ActionColorCyan
	ActionAlgorithm1
	ActionAlgorithm2
	ActionAlgorithm3
	ActionAlgorithm4
	ActionCycleAlgorithm
	ActionReset
	ActionSnapshot
	ActionQuit
	ActionCount // Sentinel value for array sizing
)

// ColorActions lists the palette actions in palette order.
var ColorActions = []Action{
	ActionColorRed,
	ActionColorGreen,
	ActionColorBlue,
	ActionColorYellow,
	ActionColorMagenta,
	ActionColorCyan,
}

// AlgorithmActions lists the algorithm selection actions in key order.
var AlgorithmActions = []Action{ActionAlgorithm1, ActionAlgorithm2, ActionAlgorithm3, ActionAlgorithm4}

// InputManager maps physical keys/buttons to logical actions and tracks
// per-frame press edges
type InputManager struct {
	mu sync.RWMutex

	keyToActions         map[glfw.Key][]Action
	mouseButtonToActions map[glfw.MouseButton][]Action

	currentState [ActionCount]bool
	justPressed  [ActionCount]bool
}

// NewInputManager creates an InputManager with the default bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions:         make(map[glfw.Key][]Action),
		mouseButtonToActions: make(map[glfw.MouseButton][]Action),
	}

	im.BindKey(glfw.KeyR, ActionColorRed)
	im.BindKey(glfw.KeyG, ActionColorGreen)
	im.BindKey(glfw.KeyB, ActionColorBlue)
	im.BindKey(glfw.KeyY, ActionColorYellow)
	im.BindKey(glfw.KeyP, ActionColorMagenta)
	im.BindKey(glfw.KeyC, ActionColorCyan)
	im.BindKey(glfw.Key1, ActionAlgorithm1)
	im.BindKey(glfw.Key2, ActionAlgorithm2)
	im.BindKey(glfw.Key3, ActionAlgorithm3)
	im.BindKey(glfw.Key4, ActionAlgorithm4)
	im.BindKey(glfw.KeyTab, ActionCycleAlgorithm)
	im.BindKey(glfw.KeySpace, ActionReset)
	im.BindKey(glfw.KeyS, ActionSnapshot)
	im.BindKey(glfw.KeyEscape, ActionQuit)

	im.BindMouseButton(glfw.MouseButtonLeft, ActionFill)

	return im
}

// BindKey binds a physical key to a logical action
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// BindMouseButton binds a mouse button to a logical action
func (im *InputManager) BindMouseButton(button glfw.MouseButton, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	im.mouseButtonToActions[button] = append(im.mouseButtonToActions[button], action)
}

// HandleKeyEvent processes a key event
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()
	// key repeat does not produce a new edge
	im.apply(im.keyToActions[key], action == glfw.Press || action == glfw.Repeat)
}

// HandleMouseButtonEvent processes a mouse button event
func (im *InputManager) HandleMouseButtonEvent(button glfw.MouseButton, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.apply(im.mouseButtonToActions[button], action == glfw.Press)
}

func (im *InputManager) apply(actions []Action, pressed bool) {
	for _, act := range actions {
		if pressed && !im.currentState[act] {
			im.justPressed[act] = true
		}
		im.currentState[act] = pressed
	}
}

// Attach installs key and mouse button callbacks on the window
func (im *InputManager) Attach(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleMouseButtonEvent(button, action)
	})
}

// PostUpdate clears the per-frame edges. Call at the end of each frame.
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()
	clear(im.justPressed[:])
}

// IsActive returns true while the action is held
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.currentState[action]
}

// JustPressed returns true only in the frame the action was pressed
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.justPressed[action]
}
