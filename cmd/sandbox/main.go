// Headless sandbox session: builds the reference scene, fires a few
// scripted shots through the picking core, and drains the spawn and
// collision queues the way a real engine integration would.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"sandbox3d/internal/camera"
	"sandbox3d/internal/config"
	"sandbox3d/internal/input"
	"sandbox3d/internal/physics"
	"sandbox3d/internal/picking"
	"sandbox3d/internal/sandbox"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/kardianos/osext"
)

func main() {
	configPath := flag.String("config", "", "path to sandbox.yaml (default: next to the executable)")
	watch := flag.Bool("watch", false, "reload tuning when the config file changes")
	frames := flag.Int("frames", 120, "number of frames to simulate")
	flag.Parse()

	cfg := loadConfig(*configPath)

	world := physics.NewCommandQueue()
	scene := sandbox.Setup(world, cfg)
	log.Printf("Sandbox: scene ready (%d cubes, gravity %+v)", len(scene.Cubes), cfg.Gravity.Vector3())

	cam := camera.NewLookingAt(cfg.Camera.Position.Vector3(), cfg.Camera.Target.Vector3())
	cam.Fovy = cfg.Camera.Fov
	cam.Near = cfg.Camera.Near
	cam.Far = cfg.Camera.Far

	vp := picking.Viewport{Width: cfg.Viewport.Width, Height: cfg.Viewport.Height}
	shooter := sandbox.NewShooter(world, cfg.Shoot)
	highlighter := sandbox.NewHighlighter()

	var watcher *config.Watcher
	if *watch && *configPath != "" {
		var err error
		watcher, err = config.NewWatcher(*configPath)
		if err != nil {
			log.Printf("Sandbox: config watch disabled: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	var queue input.Queue
	var state input.State
	go script(&queue, vp, *frames)

	// engine is a stand-in for the real physics plugin on the other
	// side of the port: it drains spawns and reports each shot touching
	// the ground for one step so the event path is exercised.
	engine := demoEngine{world: world, ground: scene.Ground}

	const dt = float32(1.0 / 60.0)
	for frame := 0; frame < *frames; frame++ {
		if watcher != nil {
			select {
			case path := <-watcher.Events:
				cfg = loadConfig(path)
				shooter.Impulse = cfg.Shoot.Impulse
				log.Printf("Sandbox: reloaded %s (impulse %g)", path, cfg.Shoot.Impulse)
			case err := <-watcher.Errors:
				log.Printf("Sandbox: config watch error: %v", err)
			default:
			}
		}

		cam.Update(dt, camera.Move{})
		shots := shooter.Update(queue.Drain(), &state, vp, cam)
		for _, handle := range shots {
			log.Printf("Sandbox: shot spawned as body %d", handle)
		}

		engine.step()
		highlighter.Update(world.DrainCollisionEvents())
	}

	log.Printf("Sandbox: session done after %d frames", *frames)
}

// script feeds a canned cursor path with periodic clicks into the queue.
func script(queue *input.Queue, vp picking.Viewport, frames int) {
	for i := 0; i < frames; i++ {
		t := float32(i) / float32(frames)
		queue.Push(input.Event{
			Kind: input.CursorMoved,
			Pos: rl.Vector2{
				X: vp.Width * t,
				Y: vp.Height * 0.5,
			},
		})
		if i%30 == 15 {
			queue.Push(input.Event{Kind: input.PrimaryPressed})
		}
	}
	// One shot with the cursor outside the window, exercising the
	// fallback-to-origin policy.
	queue.Push(input.Event{Kind: input.CursorLeft})
	queue.Push(input.Event{Kind: input.PrimaryPressed})
}

type demoEngine struct {
	world   *physics.CommandQueue
	ground  physics.BodyHandle
	landing []physics.BodyHandle
}

func (e *demoEngine) step() {
	for _, cmd := range e.world.DrainSpawns() {
		if cmd.EmitContacts {
			e.landing = append(e.landing, cmd.Handle)
		}
	}

	// Each tracked body touches the ground for exactly one step, which
	// yields a started event now and a stopped event next step.
	for _, handle := range e.landing {
		e.world.ReportContact(handle, e.ground)
	}
	e.landing = nil
	e.world.EndStep()
}

func loadConfig(path string) config.Config {
	if path == "" {
		// Deployed builds keep sandbox.yaml next to the executable.
		if dir, err := osext.ExecutableFolder(); err == nil {
			path = filepath.Join(dir, "sandbox.yaml")
		} else {
			path = "sandbox.yaml"
		}
		if _, err := os.Stat(path); err != nil {
			log.Printf("Sandbox: no config at %s, using defaults", path)
			return config.Default()
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Printf("Sandbox: %v, using defaults", err)
		return config.Default()
	}
	return cfg
}
