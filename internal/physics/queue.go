package physics

import "sync"

// CommandQueue is the reference World implementation: it buffers spawn
// commands for an external engine that drains them at its own step
// boundary, and relays that engine's contact reports back out as
// collision events. It performs no simulation.
//
// The sandbox side calls SpawnBody and DrainCollisionEvents; the engine
// side calls DrainSpawns, ReportContact, and EndStep. Both sides may
// run on different goroutines.
type CommandQueue struct {
	mu      sync.Mutex
	next    BodyHandle
	pending []SpawnCommand
	tracker contactTracker
}

func NewCommandQueue() *CommandQueue {
	return &CommandQueue{
		next:    1,
		tracker: newContactTracker(),
	}
}

// SpawnBody assigns the command a handle and queues it for the engine.
func (q *CommandQueue) SpawnBody(cmd SpawnCommand) BodyHandle {
	q.mu.Lock()
	defer q.mu.Unlock()

	cmd.Handle = q.next
	q.next++
	q.pending = append(q.pending, cmd)
	return cmd.Handle
}

// DrainSpawns returns all queued spawn commands, in spawn order, and
// clears the queue. The external engine calls this once per step.
func (q *CommandQueue) DrainSpawns() []SpawnCommand {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == 0 {
		return nil
	}
	drained := q.pending
	q.pending = nil
	return drained
}

// PendingSpawns returns the number of queued commands (for diagnostics).
func (q *CommandQueue) PendingSpawns() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// ReportContact records that two bodies are touching during the current
// engine step. Order of a and b does not matter.
func (q *CommandQueue) ReportContact(a, b BodyHandle) {
	q.mu.Lock()
	q.tracker.record(a, b)
	q.mu.Unlock()
}

// EndStep closes the current engine step: newly touching pairs produce
// ContactStarted events, pairs no longer reported produce ContactStopped.
func (q *CommandQueue) EndStep() {
	q.mu.Lock()
	q.tracker.endStep()
	q.mu.Unlock()
}

// DrainCollisionEvents implements World.
func (q *CommandQueue) DrainCollisionEvents() []CollisionEvent {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.tracker.drain()
}

var _ World = (*CommandQueue)(nil)
