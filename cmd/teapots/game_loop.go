package main

import (
	"log"
	"time"

	"teapots/internal/game"
	renderer "teapots/internal/graphics/renderer"
	"teapots/internal/platform"
	"teapots/internal/profiling"
)

// slowFrame is the frame time above which the loop logs where time went.
const slowFrame = 16 * time.Millisecond

func runGameLoop(window *platform.Window, r *renderer.Renderer, state *game.State) {
	frames := 0
	lastFPSCheckTime := time.Now()

	scene := &renderer.Scene{Colour: state.Config.Colour}
	limiter := game.NewFrameLimiter(state.Config.MaxFPS)

	for !window.ShouldClose() {
		profiling.ResetFrame()
		frameStart := time.Now()

		func() {
			defer profiling.Track("platform.PollEvents")()
			for _, ev := range window.PollEvents() {
				state.Dispatch(ev)
			}
		}()

		frame := state.Update(time.Now())

		scene.Position = state.Player.Position
		scene.Direction = frame.Direction
		scene.Spin = frame.Spin
		scene.Instances = state.Scene.Positions()
		scene.FPS = frame.FPS
		scene.ShowOverlay = state.ShowOverlay
		r.Render(scene)

		func() { defer profiling.Track("platform.SwapBuffers")(); window.SwapBuffers() }()
		frames++

		if time.Since(lastFPSCheckTime) >= time.Second {
			log.Printf("FPS: %d teapots: %d", frames, state.Scene.Len())
			frames = 0
			lastFPSCheckTime = time.Now()
		}

		if d := time.Since(frameStart); d > slowFrame {
			log.Printf("Frame took too long: %.2fms (render %.2fms, platform %.2fms) %s",
				float64(d.Microseconds())/1000,
				float64(profiling.Snapshot()["renderer.Render"].Microseconds())/1000,
				float64(profiling.SumWithPrefix("platform.").Microseconds())/1000,
				profiling.TopN(3))
		}

		limiter.Wait()
	}
}
