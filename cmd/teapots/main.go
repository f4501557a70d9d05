package main

import (
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"

	"teapots/assets"
	"teapots/internal/config"
	"teapots/internal/game"
	"teapots/internal/graphics/renderables/overlay"
	"teapots/internal/graphics/renderables/teapots"
	renderer "teapots/internal/graphics/renderer"
	"teapots/internal/music"
	"teapots/internal/platform"
)

func init() {
	// GLFW and the GL context live on the main thread
	runtime.LockOSThread()
}

func main() {
	defer closer.Close()

	cmd := config.NewCommand(run)
	if err := cmd.Execute(); err != nil {
		closer.Fatalln(err)
	}
}

func run(cfg config.Config) error {
	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()

	window, err := platform.NewWindow(platform.DefaultWidth, platform.DefaultHeight)
	if err != nil {
		return err
	}
	defer window.Destroy()

	width, height := window.FramebufferSize()
	r, err := renderer.NewRenderer(width, height,
		teapots.NewTeapots(),
		overlay.NewOverlay(),
	)
	if err != nil {
		return err
	}
	defer r.Dispose()

	if err := startMusic(); err != nil {
		return err
	}

	state := game.NewState(cfg, window, r, time.Now())
	if err := window.LockCursor(); err != nil {
		log.Printf("Failed to lock cursor: %v", err)
	}

	log.Printf("Spawned %d teapots in [-%g, %g)^3", state.Scene.Len(), cfg.Range, cfg.Range)
	runGameLoop(window, r, state)
	return nil
}

// startMusic starts the background loop. The player is also closed on
// SIGINT, which skips the deferred GL teardown.
func startMusic() error {
	player, err := music.Start(assets.Music)
	if err != nil {
		return fmt.Errorf("music: %w", err)
	}
	closer.Bind(player.Close)
	return nil
}
