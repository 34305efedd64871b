// Package sandbox wires picking, input, and the physics port into the
// reference scene: a ground slab, a stack of falling cubes, a player
// capsule, a click-to-shoot spawner, and a collision highlighter.
package sandbox

import (
	"fmt"

	"sandbox3d/internal/config"
	"sandbox3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Scene holds the handles of the initially spawned bodies.
type Scene struct {
	Ground physics.BodyHandle
	Cubes  []physics.BodyHandle
	Player physics.BodyHandle
}

// Setup spawns the reference scene into the world and returns the
// body handles.
func Setup(world physics.World, cfg config.Config) Scene {
	var scene Scene

	scene.Ground = world.SpawnBody(physics.SpawnCommand{
		Name:     "Ground",
		Type:     physics.BodyFixed,
		Position: rl.Vector3{Y: -cfg.Ground.HalfHeight},
		Collider: physics.Cuboid(cfg.Ground.HalfSize, cfg.Ground.HalfHeight, cfg.Ground.HalfSize),
	})

	scene.Cubes = spawnCubeStack(world, cfg.Stack)

	scene.Player = world.SpawnBody(physics.SpawnCommand{
		Name:     "Player",
		Type:     physics.BodyDynamic,
		Position: cfg.Player.Position.Vector3(),
		Collider: physics.Capsule(
			rl.Vector3{Y: 0.5},
			rl.Vector3{Y: 1.5},
			cfg.Player.Radius,
		),
		Mass:         1.0,
		GravityScale: 1.0,
		LockRotation: true,
		Ccd:          true,
		DisableSleep: true,
		EmitContacts: true,
	})

	return scene
}

// spawnCubeStack builds the layered grid of falling cubes. Each layer
// is num x num cubes; layers drift slightly sideways so the stack
// topples instead of balancing perfectly.
func spawnCubeStack(world physics.World, stack config.StackConfig) []physics.BodyHandle {
	num := stack.Count
	rad := stack.Radius

	shift := rad*2 + rad
	centerX := shift * float32(num/2)
	centerY := shift / 2
	centerZ := shift * float32(num/2)

	offset := -float32(num) * (rad*2 + rad) * 0.5

	handles := make([]physics.BodyHandle, 0, stack.Layers*num*num)
	for j := 0; j < stack.Layers; j++ {
		for i := 0; i < num; i++ {
			for k := 0; k < num; k++ {
				pos := rl.Vector3{
					X: float32(i)*shift - centerX + offset,
					Y: float32(j)*shift + centerY + 3.0,
					Z: float32(k)*shift - centerZ + offset,
				}

				handles = append(handles, world.SpawnBody(physics.SpawnCommand{
					Name:     fmt.Sprintf("Cube_%d_%d_%d", j, i, k),
					Type:     physics.BodyDynamic,
					Position: pos,
					Collider: physics.Cuboid(rad, rad, rad),
				}))
			}
		}

		offset -= 0.05 * rad * float32(num-1)
	}

	return handles
}
