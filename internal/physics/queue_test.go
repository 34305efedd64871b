package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestSpawnBodyAssignsUniqueHandles(t *testing.T) {
	q := NewCommandQueue()

	h1 := q.SpawnBody(SpawnCommand{Name: "a", Collider: Cuboid(1, 1, 1)})
	h2 := q.SpawnBody(SpawnCommand{Name: "b", Collider: Ball(0.5)})

	if h1 == 0 || h2 == 0 {
		t.Error("handles must be non-zero")
	}
	if h1 == h2 {
		t.Errorf("handles not unique: %d and %d", h1, h2)
	}
}

func TestDrainSpawnsPreservesOrderAndHandles(t *testing.T) {
	q := NewCommandQueue()

	h1 := q.SpawnBody(SpawnCommand{Name: "ground", Type: BodyFixed})
	h2 := q.SpawnBody(SpawnCommand{
		Name:           "shot",
		LinearVelocity: rl.Vector3{X: 1, Y: 2, Z: 3},
	})

	cmds := q.DrainSpawns()
	if len(cmds) != 2 {
		t.Fatalf("drained %d commands, want 2", len(cmds))
	}
	if cmds[0].Handle != h1 || cmds[1].Handle != h2 {
		t.Errorf("handles not carried on commands: %d/%d vs %d/%d",
			cmds[0].Handle, cmds[1].Handle, h1, h2)
	}
	if cmds[1].LinearVelocity != (rl.Vector3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("velocity not preserved: %+v", cmds[1].LinearVelocity)
	}

	if q.DrainSpawns() != nil {
		t.Error("second drain should be empty")
	}
	if q.PendingSpawns() != 0 {
		t.Error("pending count should be zero after drain")
	}
}

func TestContactDiffEmitsStartedThenStopped(t *testing.T) {
	q := NewCommandQueue()
	a := q.SpawnBody(SpawnCommand{Name: "a"})
	b := q.SpawnBody(SpawnCommand{Name: "b"})

	// Step 1: bodies touch
	q.ReportContact(a, b)
	q.EndStep()

	events := q.DrainCollisionEvents()
	if len(events) != 1 {
		t.Fatalf("step 1: got %d events, want 1", len(events))
	}
	if events[0].Kind != ContactStarted {
		t.Errorf("step 1: kind = %v, want started", events[0].Kind)
	}

	// Step 2: still touching, no new events
	q.ReportContact(b, a) // reversed order must normalize to the same pair
	q.EndStep()
	if events := q.DrainCollisionEvents(); events != nil {
		t.Errorf("step 2: got %v, want none", events)
	}

	// Step 3: separated
	q.EndStep()
	events = q.DrainCollisionEvents()
	if len(events) != 1 {
		t.Fatalf("step 3: got %d events, want 1", len(events))
	}
	if events[0].Kind != ContactStopped {
		t.Errorf("step 3: kind = %v, want stopped", events[0].Kind)
	}
	if makePair(events[0].A, events[0].B) != makePair(a, b) {
		t.Errorf("step 3: pair %d-%d, want %d-%d", events[0].A, events[0].B, a, b)
	}
}

func TestDrainCollisionEventsIsRestartable(t *testing.T) {
	q := NewCommandQueue()
	a := q.SpawnBody(SpawnCommand{})
	b := q.SpawnBody(SpawnCommand{})
	c := q.SpawnBody(SpawnCommand{})

	q.ReportContact(a, b)
	q.ReportContact(a, c)
	q.EndStep()

	if got := len(q.DrainCollisionEvents()); got != 2 {
		t.Fatalf("first drain returned %d events, want 2", got)
	}
	if q.DrainCollisionEvents() != nil {
		t.Error("drained events must not be returned twice")
	}
}

func TestColliderConstructors(t *testing.T) {
	box := Cuboid(200.1, 0.1, 200.1)
	if box.Kind != ShapeCuboid || box.HalfExtents.X != 200.1 {
		t.Errorf("Cuboid: %+v", box)
	}

	capsule := Capsule(rl.Vector3{Y: 0.5}, rl.Vector3{Y: 1.5}, 0.5)
	if capsule.Kind != ShapeCapsule || capsule.SegmentB.Y != 1.5 || capsule.Radius != 0.5 {
		t.Errorf("Capsule: %+v", capsule)
	}

	ball := Ball(0.5)
	if ball.Kind != ShapeBall || ball.Radius != 0.5 {
		t.Errorf("Ball: %+v", ball)
	}
}
