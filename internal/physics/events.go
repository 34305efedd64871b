package physics

type EventKind int

const (
	ContactStarted EventKind = iota
	ContactStopped
)

func (k EventKind) String() string {
	switch k {
	case ContactStarted:
		return "started"
	case ContactStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// CollisionEvent reports a contact between two bodies beginning or ending.
type CollisionEvent struct {
	Kind EventKind
	A, B BodyHandle
}

// ContactPair is an unordered body pair, normalized so the smaller
// handle comes first.
type ContactPair struct {
	A, B BodyHandle
}

func makePair(a, b BodyHandle) ContactPair {
	if a > b {
		a, b = b, a
	}
	return ContactPair{A: a, B: b}
}

// contactTracker turns per-step contact pair reports into start/stop
// events by diffing against the previous step's pairs.
type contactTracker struct {
	active  map[ContactPair]bool // pairs in contact after the last step
	current map[ContactPair]bool // pairs reported this step
	events  []CollisionEvent
}

func newContactTracker() contactTracker {
	return contactTracker{
		active:  make(map[ContactPair]bool),
		current: make(map[ContactPair]bool),
	}
}

func (t *contactTracker) record(a, b BodyHandle) {
	t.current[makePair(a, b)] = true
}

// endStep diffs current contacts against the previous step: pairs seen
// for the first time emit ContactStarted, pairs that disappeared emit
// ContactStopped. Then the buffers swap.
func (t *contactTracker) endStep() {
	for pair := range t.current {
		if !t.active[pair] {
			t.events = append(t.events, CollisionEvent{Kind: ContactStarted, A: pair.A, B: pair.B})
		}
	}
	for pair := range t.active {
		if !t.current[pair] {
			t.events = append(t.events, CollisionEvent{Kind: ContactStopped, A: pair.A, B: pair.B})
		}
	}

	t.active = t.current
	t.current = make(map[ContactPair]bool)
}

func (t *contactTracker) drain() []CollisionEvent {
	if len(t.events) == 0 {
		return nil
	}
	drained := t.events
	t.events = nil
	return drained
}
