// Package picking converts 2D cursor positions into world-space rays
// for mouse picking and projectile spawning.
package picking

import (
	"errors"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	// ErrInvalidViewport is returned when the viewport has zero or negative dimensions.
	ErrInvalidViewport = errors.New("picking: viewport has zero or negative dimensions")

	// ErrDegenerateCamera is returned when the view or projection matrix
	// cannot be inverted, or unprojection would divide by zero.
	ErrDegenerateCamera = errors.New("picking: camera matrix is not invertible")
)

// determinant of a singular float32 matrix rarely comes out exactly zero,
// so treat anything this close as degenerate
const detEpsilon = 1e-12

// Viewport is the pixel size of the render surface rays are cast through.
type Viewport struct {
	Width  float32
	Height float32
}

// Camera is a snapshot of the camera matrices used for a cast.
// View is the conventional view matrix (camera-from-world, what
// rl.MatrixLookAt returns); Projection is camera-from-clip's inverse,
// i.e. the usual perspective projection matrix.
// Both must be sampled from the same frame so they are consistent.
type Camera struct {
	View       rl.Matrix
	Projection rl.Matrix
}

// Ray is a world-space ray from a cast.
//
// Direction is NOT normalized: it spans from the near plane to the far
// plane, and callers rely on that magnitude directly as a launch
// velocity when spawning projectiles. Do not normalize it here.
type Ray struct {
	Origin    rl.Vector3
	Direction rl.Vector3
}

// Cast builds a world-space ray through the cursor position.
//
// The cursor is in pixel coordinates with Y growing downward and is
// clamped to the viewport. The result is deterministic for identical
// inputs and the function has no side effects. On a degenerate camera
// or viewport the cast fails instead of producing NaN/Inf.
func Cast(vp Viewport, cursor rl.Vector2, cam Camera) (Ray, error) {
	if vp.Width <= 0 || vp.Height <= 0 {
		return Ray{}, ErrInvalidViewport
	}
	if math32.Abs(rl.MatrixDeterminant(cam.Projection)) < detEpsilon ||
		math32.Abs(rl.MatrixDeterminant(cam.View)) < detEpsilon {
		return Ray{}, ErrDegenerateCamera
	}

	px := rl.Clamp(cursor.X, 0, vp.Width)
	py := rl.Clamp(cursor.Y, 0, vp.Height)

	// Pixel Y grows downward, NDC Y grows upward, so the Y axis flips.
	ndcX := 2*(px/vp.Width) - 1
	ndcY := 1 - 2*(py/vp.Height)

	// world = inverse(view) * inverse(projection) * clip.
	// MatrixMultiply composes left-then-right, so the projection
	// inverse is applied first.
	worldFromClip := rl.MatrixMultiply(rl.MatrixInvert(cam.Projection), rl.MatrixInvert(cam.View))

	near, ok := unproject(worldFromClip, ndcX, ndcY, -1)
	if !ok {
		return Ray{}, ErrDegenerateCamera
	}
	far, ok := unproject(worldFromClip, ndcX, ndcY, 1)
	if !ok {
		return Ray{}, ErrDegenerateCamera
	}

	return Ray{
		Origin:    near,
		Direction: rl.Vector3Subtract(far, near),
	}, nil
}

// unproject maps a clip-space point (x, y, z, 1) to world space,
// including the perspective divide. raymath has no Vector4 transform,
// so the product is spelled out against the column-major fields.
func unproject(m rl.Matrix, x, y, z float32) (rl.Vector3, bool) {
	rx := m.M0*x + m.M4*y + m.M8*z + m.M12
	ry := m.M1*x + m.M5*y + m.M9*z + m.M13
	rz := m.M2*x + m.M6*y + m.M10*z + m.M14
	rw := m.M3*x + m.M7*y + m.M11*z + m.M15

	if math32.Abs(rw) < 1e-20 {
		return rl.Vector3{}, false
	}
	return rl.Vector3{X: rx / rw, Y: ry / rw, Z: rz / rw}, true
}

// Project maps a world-space point back through the camera to NDC.
// Mainly useful for verifying casts; returns false for points on the
// camera plane (w = 0).
func Project(cam Camera, p rl.Vector3) (rl.Vector2, bool) {
	// clip = projection * view * world
	clipFromWorld := rl.MatrixMultiply(cam.View, cam.Projection)

	x := clipFromWorld.M0*p.X + clipFromWorld.M4*p.Y + clipFromWorld.M8*p.Z + clipFromWorld.M12
	y := clipFromWorld.M1*p.X + clipFromWorld.M5*p.Y + clipFromWorld.M9*p.Z + clipFromWorld.M13
	w := clipFromWorld.M3*p.X + clipFromWorld.M7*p.Y + clipFromWorld.M11*p.Z + clipFromWorld.M15

	if math32.Abs(w) < 1e-20 {
		return rl.Vector2{}, false
	}
	return rl.Vector2{X: x / w, Y: y / w}, true
}
