// Package camera provides a free-flight camera whose state is passed
// explicitly to consumers instead of living in engine globals.
package camera

import (
	"sandbox3d/internal/picking"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Move is the per-frame movement input for a FlyCamera. It is supplied
// by the caller so the camera never polls input devices itself.
type Move struct {
	Forward, Back bool
	Left, Right   bool
	Up, Down      bool
	LookDelta     rl.Vector2 // cursor delta in pixels
}

type FlyCamera struct {
	Position  rl.Vector3
	Yaw       float32 // degrees, 0 looks down +X
	Pitch     float32 // degrees, clamped to (-89, 89)
	MoveSpeed float32 // units per second
	LookSpeed float32 // degrees per pixel of cursor delta

	Fovy float32 // vertical field of view in degrees
	Near float32
	Far  float32
}

func New(pos rl.Vector3) *FlyCamera {
	return &FlyCamera{
		Position:  pos,
		Yaw:       -135.0,
		Pitch:     -30.0,
		MoveSpeed: 12.0,
		LookSpeed: 0.1,
		Fovy:      45.0,
		Near:      0.1,
		Far:       1000.0,
	}
}

// NewLookingAt places the camera at pos with yaw and pitch chosen so it
// faces target.
func NewLookingAt(pos, target rl.Vector3) *FlyCamera {
	c := New(pos)

	dir := rl.Vector3Normalize(rl.Vector3Subtract(target, pos))
	c.Pitch = math32.Asin(dir.Y) * 180 / math32.Pi
	c.Yaw = math32.Atan2(dir.Z, dir.X) * 180 / math32.Pi
	return c
}

// Update applies look and movement input for one frame. Flight is free:
// forward movement follows the full look direction, not just the
// horizontal plane.
func (c *FlyCamera) Update(deltaTime float32, move Move) {
	c.Yaw += move.LookDelta.X * c.LookSpeed
	c.Pitch -= move.LookDelta.Y * c.LookSpeed

	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -89 {
		c.Pitch = -89
	}

	forward := c.Forward()
	right := c.right()

	var dir rl.Vector3
	if move.Forward {
		dir = rl.Vector3Add(dir, forward)
	}
	if move.Back {
		dir = rl.Vector3Subtract(dir, forward)
	}
	if move.Left {
		dir = rl.Vector3Add(dir, right)
	}
	if move.Right {
		dir = rl.Vector3Subtract(dir, right)
	}
	if move.Up {
		dir.Y += 1
	}
	if move.Down {
		dir.Y -= 1
	}

	// Normalize so diagonal movement isn't faster
	if length := rl.Vector3Length(dir); length > 0 {
		dir = rl.Vector3Scale(dir, 1/length)
	}

	c.Position = rl.Vector3Add(c.Position, rl.Vector3Scale(dir, c.MoveSpeed*deltaTime))
}

// Forward returns the unit look direction derived from yaw and pitch.
func (c *FlyCamera) Forward() rl.Vector3 {
	yawRad := c.Yaw * math32.Pi / 180
	pitchRad := c.Pitch * math32.Pi / 180

	return rl.Vector3{
		X: math32.Cos(yawRad) * math32.Cos(pitchRad),
		Y: math32.Sin(pitchRad),
		Z: math32.Sin(yawRad) * math32.Cos(pitchRad),
	}
}

func (c *FlyCamera) right() rl.Vector3 {
	yawRad := c.Yaw * math32.Pi / 180
	return rl.Vector3{
		X: math32.Sin(yawRad),
		Y: 0,
		Z: -math32.Cos(yawRad),
	}
}

// ViewMatrix returns the camera-from-world transform for the current pose.
func (c *FlyCamera) ViewMatrix() rl.Matrix {
	target := rl.Vector3Add(c.Position, c.Forward())
	return rl.MatrixLookAt(c.Position, target, rl.Vector3{X: 0, Y: 1, Z: 0})
}

// ProjectionMatrix returns the perspective projection for the given viewport.
func (c *FlyCamera) ProjectionMatrix(vp picking.Viewport) rl.Matrix {
	aspect := float32(1)
	if vp.Height > 0 {
		aspect = vp.Width / vp.Height
	}
	return rl.MatrixPerspective(c.Fovy*math32.Pi/180, aspect, c.Near, c.Far)
}

// Snapshot captures the view and projection matrices as one consistent
// pair. Casts must use a single snapshot so the matrices can't tear
// across a camera update.
func (c *FlyCamera) Snapshot(vp picking.Viewport) picking.Camera {
	return picking.Camera{
		View:       c.ViewMatrix(),
		Projection: c.ProjectionMatrix(vp),
	}
}
