package sandbox

import (
	"testing"

	"sandbox3d/internal/config"
	"sandbox3d/internal/physics"
)

func TestSetupSpawnsFullScene(t *testing.T) {
	world := physics.NewCommandQueue()
	cfg := config.Default()

	scene := Setup(world, cfg)
	cmds := world.DrainSpawns()

	wantCubes := cfg.Stack.Layers * cfg.Stack.Count * cfg.Stack.Count
	if len(scene.Cubes) != wantCubes {
		t.Errorf("spawned %d cubes, want %d", len(scene.Cubes), wantCubes)
	}
	if len(cmds) != wantCubes+2 {
		t.Fatalf("queued %d commands, want %d (ground + cubes + player)", len(cmds), wantCubes+2)
	}
}

func TestSetupGround(t *testing.T) {
	world := physics.NewCommandQueue()
	cfg := config.Default()

	scene := Setup(world, cfg)
	cmds := world.DrainSpawns()

	ground := cmds[0]
	if ground.Handle != scene.Ground {
		t.Errorf("first command handle %d, want ground %d", ground.Handle, scene.Ground)
	}
	if ground.Type != physics.BodyFixed {
		t.Error("ground must be a fixed body")
	}
	if ground.Collider.Kind != physics.ShapeCuboid || ground.Collider.HalfExtents.X != 200.1 {
		t.Errorf("ground collider = %+v", ground.Collider)
	}
	if ground.Position.Y != -0.1 {
		t.Errorf("ground rests at y=%g, want -0.1", ground.Position.Y)
	}
}

func TestSetupFirstCubePosition(t *testing.T) {
	world := physics.NewCommandQueue()
	cfg := config.Default()

	Setup(world, cfg)
	cmds := world.DrainSpawns()

	// With count 8 and radius 1: shift 3, center 12, initial offset -12,
	// so cube (0,0,0) sits at (-24, 4.5, -24).
	first := cmds[1]
	if first.Position.X != -24 || first.Position.Y != 4.5 || first.Position.Z != -24 {
		t.Errorf("first cube at %+v, want (-24, 4.5, -24)", first.Position)
	}
	if first.Type != physics.BodyDynamic {
		t.Error("cubes must be dynamic")
	}
	if first.Collider.HalfExtents != (cmds[2].Collider.HalfExtents) {
		t.Error("all cubes share the same collider size")
	}
}

func TestSetupPlayer(t *testing.T) {
	world := physics.NewCommandQueue()
	cfg := config.Default()

	scene := Setup(world, cfg)
	cmds := world.DrainSpawns()

	player := cmds[len(cmds)-1]
	if player.Handle != scene.Player {
		t.Errorf("last command handle %d, want player %d", player.Handle, scene.Player)
	}
	if player.Collider.Kind != physics.ShapeCapsule {
		t.Errorf("player collider = %+v, want a capsule", player.Collider)
	}
	if player.Collider.SegmentA.Y != 0.5 || player.Collider.SegmentB.Y != 1.5 {
		t.Errorf("player capsule segment %+v..%+v", player.Collider.SegmentA, player.Collider.SegmentB)
	}
	if !player.LockRotation || !player.Ccd || !player.DisableSleep || !player.EmitContacts {
		t.Errorf("player flags wrong: %+v", player)
	}
	if player.Mass != 1 || player.GravityScale != 1 {
		t.Errorf("player mass=%g gravityScale=%g, want 1/1", player.Mass, player.GravityScale)
	}
	if player.Position != cfg.Player.Position.Vector3() {
		t.Errorf("player at %+v, want %+v", player.Position, cfg.Player.Position.Vector3())
	}
}

func TestSetupEmptyStack(t *testing.T) {
	world := physics.NewCommandQueue()
	cfg := config.Default()
	cfg.Stack.Layers = 0

	scene := Setup(world, cfg)
	if len(scene.Cubes) != 0 {
		t.Errorf("spawned %d cubes for zero layers", len(scene.Cubes))
	}
	if len(world.DrainSpawns()) != 2 {
		t.Error("zero-layer scene should still have ground and player")
	}
}
