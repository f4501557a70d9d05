package input

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical control, not a physical key
type Action int

// Action constants using iota
const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionReleaseCursor
	ActionCaptureCursor
	ActionToggleOverlay
	ActionCount // Sentinel value for array sizing
)

// InputManager maps physical keys/buttons to logical actions.
type InputManager struct {
	// Key to action mapping (one key can map to multiple actions)
	keyToActions map[glfw.Key][]Action

	// Mouse button to action mapping
	mouseButtonToActions map[glfw.MouseButton][]Action
}

// NewInputManager creates a new InputManager with default key bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions:         make(map[glfw.Key][]Action),
		mouseButtonToActions: make(map[glfw.MouseButton][]Action),
	}

	// Set default key bindings
	im.BindKey(glfw.KeyW, ActionMoveForward)
	im.BindKey(glfw.KeyS, ActionMoveBackward)
	im.BindKey(glfw.KeyA, ActionMoveLeft)
	im.BindKey(glfw.KeyD, ActionMoveRight)
	im.BindKey(glfw.KeyE, ActionMoveUp)
	im.BindKey(glfw.KeyQ, ActionMoveDown)
	im.BindKey(glfw.KeyEscape, ActionReleaseCursor)
	im.BindKey(glfw.KeyF3, ActionToggleOverlay)

	// Set default mouse button bindings
	im.BindMouseButton(glfw.MouseButtonLeft, ActionCaptureCursor)

	return im
}

// BindKey binds a physical key to a logical action
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// BindMouseButton binds a mouse button to a logical action
func (im *InputManager) BindMouseButton(button glfw.MouseButton, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	im.mouseButtonToActions[button] = append(im.mouseButtonToActions[button], action)
}

// HandleKeyEvent returns the actions bound to key. The caller decides what a
// press, repeat or release means for each of them.
func (im *InputManager) HandleKeyEvent(key glfw.Key) []Action {
	return im.keyToActions[key]
}

// HandleMouseButtonEvent returns the actions bound to button.
func (im *InputManager) HandleMouseButtonEvent(button glfw.MouseButton) []Action {
	return im.mouseButtonToActions[button]
}
