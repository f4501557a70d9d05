// Package platform owns the GLFW window and turns its callbacks into
// input events.
package platform

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"teapots/internal/input"
)

const (
	DefaultWidth  = 1024
	DefaultHeight = 768
	Title         = "teapots"
)

// Window is a GLFW window with an OpenGL 4.1 core context. All methods must
// be called from the main thread.
type Window struct {
	win     *glfw.Window
	pointer pointerTracker
	events  []input.Event
}

// NewWindow creates the window, makes its context current and loads the GL
// bindings. glfw.Init must already have succeeded.
func NewWindow(width, height int) (*Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.DepthBits, 24)

	win, err := glfw.CreateWindow(width, height, Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		win.Destroy()
		return nil, fmt.Errorf("init gl: %w", err)
	}

	// Uncapped; the loop reports its own frame rate
	glfw.SwapInterval(0)

	w := &Window{win: win}
	w.installCallbacks()
	return w, nil
}

func (w *Window) installCallbacks() {
	w.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		w.push(input.KeyEvent{Key: key, Action: action})
	})
	w.win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		w.push(input.MouseButtonEvent{Button: button, Action: action})
	})
	w.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if dx, dy, ok := w.pointer.Move(x, y); ok {
			w.push(input.PointerMotionEvent{DX: dx, DY: dy})
		}
	})
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.push(input.ResizeEvent{Width: width, Height: height})
	})
	w.win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		w.push(input.FocusEvent{Focused: focused})
	})
	w.win.SetCloseCallback(func(_ *glfw.Window) {
		w.push(input.CloseEvent{})
	})
}

func (w *Window) push(ev input.Event) {
	w.events = append(w.events, ev)
}

// PollEvents pumps the GLFW queue and returns what arrived since the last
// call, in order. The slice is reused by the next call.
func (w *Window) PollEvents() []input.Event {
	w.events = w.events[:0]
	glfw.PollEvents()
	return w.events
}

// FramebufferSize returns the drawable size in pixels.
func (w *Window) FramebufferSize() (int, int) {
	return w.win.GetFramebufferSize()
}

// SwapBuffers presents the frame.
func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

// ShouldClose reports whether a close was requested.
func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

// Close asks the loop to stop after the current frame.
func (w *Window) Close() {
	w.win.SetShouldClose(true)
}

// Destroy releases the window and its context.
func (w *Window) Destroy() {
	w.win.Destroy()
}

// LockCursor hides the cursor and confines it to the window. Raw motion is
// used where the platform offers it.
func (w *Window) LockCursor() error {
	if err := setInputMode(w.win, glfw.CursorMode, glfw.CursorDisabled); err != nil {
		return fmt.Errorf("lock cursor: %w", err)
	}
	if glfw.RawMouseMotionSupported() {
		if err := setInputMode(w.win, glfw.RawMouseMotion, glfw.True); err != nil {
			return fmt.Errorf("raw mouse motion: %w", err)
		}
	}
	// The cursor jumps when the mode changes.
	w.pointer.Reset()
	return nil
}

// UnlockCursor shows the cursor again.
func (w *Window) UnlockCursor() error {
	if err := setInputMode(w.win, glfw.CursorMode, glfw.CursorNormal); err != nil {
		return fmt.Errorf("unlock cursor: %w", err)
	}
	w.pointer.Reset()
	return nil
}

// setInputMode turns the panic go-gl/glfw raises for platform errors into
// an error.
func setInputMode(win *glfw.Window, mode glfw.InputMode, value int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("%v", r)
		}
	}()
	win.SetInputMode(mode, value)
	return nil
}
