package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestDefaultBindings(t *testing.T) {
	im := NewInputManager()
	cases := map[glfw.Key]Action{
		glfw.KeyW:      ActionMoveForward,
		glfw.KeyS:      ActionMoveBackward,
		glfw.KeyA:      ActionMoveLeft,
		glfw.KeyD:      ActionMoveRight,
		glfw.KeyE:      ActionMoveUp,
		glfw.KeyQ:      ActionMoveDown,
		glfw.KeyEscape: ActionReleaseCursor,
		glfw.KeyF3:     ActionToggleOverlay,
	}
	for key, want := range cases {
		got := im.HandleKeyEvent(key)
		if len(got) != 1 || got[0] != want {
			t.Errorf("key %v -> %v, want [%v]", key, got, want)
		}
	}

	got := im.HandleMouseButtonEvent(glfw.MouseButtonLeft)
	if len(got) != 1 || got[0] != ActionCaptureCursor {
		t.Errorf("left button -> %v, want [ActionCaptureCursor]", got)
	}
	if got := im.HandleMouseButtonEvent(glfw.MouseButtonRight); len(got) != 0 {
		t.Errorf("right button should be unbound, got %v", got)
	}
}

func TestUnboundKey(t *testing.T) {
	im := NewInputManager()
	if got := im.HandleKeyEvent(glfw.KeyZ); len(got) != 0 {
		t.Errorf("Z should be unbound, got %v", got)
	}
}

func TestBindKey(t *testing.T) {
	im := NewInputManager()
	im.BindKey(glfw.KeyUp, ActionMoveForward)
	im.BindKey(glfw.KeyUp, ActionCount) // ignored
	im.BindKey(glfw.KeyW, ActionToggleOverlay)

	got := im.HandleKeyEvent(glfw.KeyUp)
	if len(got) != 1 || got[0] != ActionMoveForward {
		t.Errorf("Up -> %v, want [ActionMoveForward]", got)
	}
	got = im.HandleKeyEvent(glfw.KeyW)
	if len(got) != 2 || got[0] != ActionMoveForward || got[1] != ActionToggleOverlay {
		t.Errorf("W -> %v, want both bound actions in order", got)
	}
}
