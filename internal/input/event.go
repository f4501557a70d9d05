package input

import "github.com/go-gl/glfw/v3.3/glfw"

// Event is one of the platform events the dispatcher understands. The set is
// closed: only the types in this file implement it.
type Event interface {
	event()
}

// KeyEvent is a keyboard transition.
type KeyEvent struct {
	Key    glfw.Key
	Action glfw.Action
}

// MouseButtonEvent is a mouse button transition.
type MouseButtonEvent struct {
	Button glfw.MouseButton
	Action glfw.Action
}

// PointerMotionEvent carries a relative pointer delta, not a cursor position.
type PointerMotionEvent struct {
	DX, DY float64
}

// ResizeEvent reports the new drawable (framebuffer) size in pixels.
type ResizeEvent struct {
	Width, Height int
}

// FocusEvent reports the window gaining or losing focus.
type FocusEvent struct {
	Focused bool
}

// CloseEvent is a request to close the window.
type CloseEvent struct{}

func (KeyEvent) event()           {}
func (MouseButtonEvent) event()   {}
func (PointerMotionEvent) event() {}
func (ResizeEvent) event()        {}
func (FocusEvent) event()         {}
func (CloseEvent) event()         {}
