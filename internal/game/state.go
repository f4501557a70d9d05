package game

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"teapots/internal/config"
	"teapots/internal/input"
	"teapots/internal/player"
	"teapots/internal/profiling"
	"teapots/internal/scene"
)

// Shell is the slice of the platform window the dispatcher drives.
type Shell interface {
	LockCursor() error
	UnlockCursor() error
	Close()
}

// Viewport receives drawable size changes.
type Viewport interface {
	UpdateViewport(width, height int)
}

// Frame is the result of one update step.
type Frame struct {
	DT      float32 // seconds since the previous frame
	Elapsed float32 // seconds since the run started

	// Spin is the decorative rotation shared by every teapot this frame.
	Spin float32

	// Direction is the unit look vector.
	Direction mgl32.Vec3

	// FPS is 1/DT; +Inf when two frames share a timestamp.
	FPS float32
}

// State is everything the loop mutates between frames. It is owned by the
// main goroutine.
type State struct {
	Config config.Config
	Player *player.Controller
	Scene  *scene.Population
	Clock  *FrameClock
	Input  *input.InputManager

	// ShowOverlay toggles the FPS readout.
	ShowOverlay bool

	shell    Shell
	viewport Viewport
}

// NewState places the initial population and starts the frame clock at now.
func NewState(cfg config.Config, shell Shell, viewport Viewport, now time.Time) *State {
	return &State{
		Config:      cfg,
		Player:      player.New(),
		Scene:       scene.NewPopulation(cfg.Amount, cfg.Range, config.Seed),
		Clock:       NewFrameClock(now),
		Input:       input.NewInputManager(),
		ShowOverlay: true,
		shell:       shell,
		viewport:    viewport,
	}
}

// Update advances the simulation to now.
func (s *State) Update(now time.Time) Frame {
	defer profiling.Track("game.Update")()

	dt, elapsed := s.Clock.Tick(now)

	s.Player.Move(dt)

	if s.Config.FollowSpeed != 0 {
		s.Scene.Follow(s.Player.Position, s.Config.FollowFactor(dt))
	}

	if s.Config.SpawnSpeed != 0 {
		s.Scene.Spawn(s.Config.SpawnSpeed)
	}

	return Frame{
		DT:        dt,
		Elapsed:   elapsed,
		Spin:      elapsed * s.Config.SpinRate(),
		Direction: s.Player.Direction(),
		FPS:       1 / dt,
	}
}
