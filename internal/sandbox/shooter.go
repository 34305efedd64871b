package sandbox

import (
	"fmt"
	"log"
	"time"

	"sandbox3d/internal/camera"
	"sandbox3d/internal/config"
	"sandbox3d/internal/input"
	"sandbox3d/internal/physics"
	"sandbox3d/internal/picking"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Shooter spawns a cube along the cursor ray on every primary press.
//
// The ray's unnormalized direction (near plane to far plane) is passed
// straight through as the cube's linear velocity: its magnitude IS the
// launch speed. On top of that an impulse of Impulse units is applied
// along the camera's forward axis. Normalizing the direction here would
// silently change spawned-body speed; don't.
type Shooter struct {
	World    physics.World
	Impulse  float32
	Cooldown time.Duration

	now       func() time.Time
	lastShot  time.Time
	shotCount int
}

func NewShooter(world physics.World, cfg config.ShootConfig) *Shooter {
	return &Shooter{
		World:    world,
		Impulse:  cfg.Impulse,
		Cooldown: time.Duration(cfg.Cooldown * float32(time.Second)),
		now:      time.Now,
	}
}

// Update folds one tick of drained input events into state and fires a
// shot for each primary press. A failed cast (degenerate camera, bad
// viewport) drops that shot and logs at most once per update; the frame
// loop is never aborted, the next press simply retries.
func (s *Shooter) Update(events []input.Event, state *input.State, vp picking.Viewport, cam *camera.FlyCamera) []physics.BodyHandle {
	var spawned []physics.BodyHandle
	logged := false

	for _, ev := range events {
		state.Apply(ev)
		if ev.Kind != input.PrimaryPressed {
			continue
		}

		if s.Cooldown > 0 {
			now := s.now()
			if !s.lastShot.IsZero() && now.Sub(s.lastShot) < s.Cooldown {
				continue
			}
			s.lastShot = now
		}

		handle, err := s.shoot(state.CursorOrOrigin(), vp, cam)
		if err != nil {
			if !logged {
				log.Printf("Sandbox: shot dropped: %v", err)
				logged = true
			}
			continue
		}
		spawned = append(spawned, handle)
	}

	return spawned
}

func (s *Shooter) shoot(cursor rl.Vector2, vp picking.Viewport, cam *camera.FlyCamera) (physics.BodyHandle, error) {
	ray, err := picking.Cast(vp, cursor, cam.Snapshot(vp))
	if err != nil {
		return 0, err
	}

	s.shotCount++
	spin := rl.Vector3{X: 1, Y: 1, Z: 1}

	return s.World.SpawnBody(physics.SpawnCommand{
		Name:            fmt.Sprintf("Shot_%d", s.shotCount),
		Type:            physics.BodyDynamic,
		Position:        ray.Origin,
		Collider:        physics.Cuboid(1, 1, 1),
		LinearVelocity:  ray.Direction, // unnormalized, magnitude is the speed
		AngularVelocity: spin,
		Impulse:         rl.Vector3Scale(cam.Forward(), s.Impulse),
		TorqueImpulse:   spin,
		Ccd:             true,
		DisableSleep:    true,
		EmitContacts:    true,
	}), nil
}
