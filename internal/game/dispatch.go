package game

import (
	"log"

	"github.com/go-gl/glfw/v3.3/glfw"

	"teapots/internal/input"
	"teapots/internal/player"
)

type axisValue struct {
	axis  player.Axis
	value float32
}

// movement maps the move actions onto intent axes.
var movement = map[input.Action]axisValue{
	input.ActionMoveForward:  {player.AxisForward, 1},
	input.ActionMoveBackward: {player.AxisForward, -1},
	input.ActionMoveLeft:     {player.AxisStrafe, -1},
	input.ActionMoveRight:    {player.AxisStrafe, 1},
	input.ActionMoveUp:       {player.AxisUp, 1},
	input.ActionMoveDown:     {player.AxisUp, -1},
}

// Dispatch applies one platform event to the state.
func (s *State) Dispatch(ev input.Event) {
	switch ev := ev.(type) {
	case input.KeyEvent:
		s.handleKey(ev)
	case input.MouseButtonEvent:
		actions := s.Input.HandleMouseButtonEvent(ev.Button)
		if ev.Action != glfw.Press {
			return
		}
		for _, act := range actions {
			if act == input.ActionCaptureCursor {
				s.lockCursor()
			}
		}
	case input.PointerMotionEvent:
		s.Player.Look(ev.DX, ev.DY)
	case input.ResizeEvent:
		if s.viewport != nil {
			s.viewport.UpdateViewport(ev.Width, ev.Height)
		}
	case input.FocusEvent:
		if ev.Focused {
			s.lockCursor()
		} else {
			s.unlockCursor()
		}
	case input.CloseEvent:
		s.shell.Close()
	}
}

func (s *State) handleKey(ev input.KeyEvent) {
	actions := s.Input.HandleKeyEvent(ev.Key)

	switch ev.Action {
	case glfw.Press:
		for _, act := range actions {
			if mv, ok := movement[act]; ok {
				s.Player.SetIntent(mv.axis, mv.value)
				continue
			}
			switch act {
			case input.ActionReleaseCursor:
				s.unlockCursor()
			case input.ActionToggleOverlay:
				s.ShowOverlay = !s.ShowOverlay
			}
		}
	case glfw.Release:
		// Releasing a key zeroes its axis even if the opposite key is still
		// down.
		for _, act := range actions {
			if mv, ok := movement[act]; ok {
				s.Player.SetIntent(mv.axis, 0)
			}
		}
	}
}

func (s *State) lockCursor() {
	if err := s.shell.LockCursor(); err != nil {
		log.Printf("Failed to lock cursor: %v", err)
	}
}

func (s *State) unlockCursor() {
	if err := s.shell.UnlockCursor(); err != nil {
		log.Printf("Failed to unlock cursor: %v", err)
	}
}
