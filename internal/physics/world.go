// Package physics defines the port to an external rigid-body engine:
// spawn commands going in, collision events coming out. The simulation
// itself (integration, broad and narrow phase, constraint solving)
// lives on the other side of the port.
package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// BodyHandle identifies a spawned body across the port. Handles are
// assigned by the world and never reused.
type BodyHandle uint64

type BodyType int

const (
	// BodyDynamic is simulated with full dynamics.
	BodyDynamic BodyType = iota
	// BodyFixed never moves (ground, walls).
	BodyFixed
)

type ShapeKind int

const (
	ShapeCuboid ShapeKind = iota
	ShapeCapsule
	ShapeBall
)

// Collider describes collision geometry. It is pure data; the external
// engine builds its own shapes from it.
type Collider struct {
	Kind        ShapeKind
	HalfExtents rl.Vector3 // cuboid
	SegmentA    rl.Vector3 // capsule axis start, local space
	SegmentB    rl.Vector3 // capsule axis end, local space
	Radius      float32    // capsule, ball
}

// Cuboid returns a box collider with the given half extents.
func Cuboid(hx, hy, hz float32) Collider {
	return Collider{
		Kind:        ShapeCuboid,
		HalfExtents: rl.Vector3{X: hx, Y: hy, Z: hz},
	}
}

// Capsule returns a capsule collider spanning the local segment a-b.
func Capsule(a, b rl.Vector3, radius float32) Collider {
	return Collider{
		Kind:     ShapeCapsule,
		SegmentA: a,
		SegmentB: b,
		Radius:   radius,
	}
}

// Ball returns a sphere collider.
func Ball(radius float32) Collider {
	return Collider{Kind: ShapeBall, Radius: radius}
}

// SpawnCommand is one "create this body" request. Zero values mean the
// engine defaults: mass 1, gravity scale 1, rotation free, no initial
// motion.
type SpawnCommand struct {
	Name string
	Type BodyType

	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Collider Collider

	LinearVelocity  rl.Vector3
	AngularVelocity rl.Vector3
	Impulse         rl.Vector3 // instantaneous, applied once at spawn
	TorqueImpulse   rl.Vector3

	Mass         float32
	GravityScale float32
	LockRotation bool
	Ccd          bool // continuous collision detection for fast bodies
	DisableSleep bool
	EmitContacts bool // body reports collision start/stop events

	// Handle is filled in by the world when the command is queued.
	Handle BodyHandle
}

// World is what the sandbox sees of the external physics engine.
//
// SpawnBody registers a body described by cmd and returns its handle.
// cmd.Impulse is applied once at spawn; cmd.LinearVelocity is taken
// verbatim (the shooter deliberately passes an unnormalized ray
// direction whose magnitude is the launch speed).
//
// DrainCollisionEvents returns the Started/Stopped events accumulated
// since the previous drain and clears them. Each update tick gets a
// finite, restartable batch.
type World interface {
	SpawnBody(cmd SpawnCommand) BodyHandle
	DrainCollisionEvents() []CollisionEvent
}
