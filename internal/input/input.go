// Package input carries cursor and click events from the windowing
// layer to the sandbox as an explicit per-tick feed. The producer
// pushes events as they arrive; the consumer drains them once per
// update, so nothing depends on an engine-managed event bus.
package input

import (
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Kind int

const (
	// CursorMoved updates the tracked cursor position.
	CursorMoved Kind = iota
	// CursorLeft marks the cursor as outside the window.
	CursorLeft
	// PrimaryPressed is the primary action (left mouse button) going down.
	PrimaryPressed
)

type Event struct {
	Kind Kind
	Pos  rl.Vector2 // cursor position for CursorMoved, unused otherwise
}

// Queue buffers events between producer and consumer. Push may be
// called from any goroutine; Drain returns everything pushed since the
// previous drain, in order, and resets the queue for the next tick.
type Queue struct {
	mu      sync.Mutex
	pending []Event
}

func (q *Queue) Push(ev Event) {
	q.mu.Lock()
	q.pending = append(q.pending, ev)
	q.mu.Unlock()
}

func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == 0 {
		return nil
	}
	drained := q.pending
	q.pending = nil
	return drained
}

// Len returns the number of buffered events (for diagnostics).
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// State is the cursor state accumulated from drained events.
type State struct {
	Cursor rl.Vector2
	Inside bool
}

// Apply folds one event into the state.
func (s *State) Apply(ev Event) {
	switch ev.Kind {
	case CursorMoved:
		s.Cursor = ev.Pos
		s.Inside = true
	case CursorLeft:
		s.Inside = false
	}
}

// CursorOrOrigin returns the cursor position, or (0, 0) when the cursor
// is outside the window. The fallback keeps casts deterministic: an
// unknown cursor behaves exactly like a click at the window origin.
func (s *State) CursorOrOrigin() rl.Vector2 {
	if !s.Inside {
		return rl.Vector2{}
	}
	return s.Cursor
}
