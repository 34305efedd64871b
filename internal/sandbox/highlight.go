package sandbox

import (
	"log"

	"sandbox3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Highlighter paints bodies by collision state: yellow while a contact
// starts, blue once it stops. The color map is consumed by whatever
// renders the scene; this side only maintains it.
type Highlighter struct {
	colors map[physics.BodyHandle]rl.Color
}

func NewHighlighter() *Highlighter {
	return &Highlighter{
		colors: make(map[physics.BodyHandle]rl.Color),
	}
}

// Update applies one tick of drained collision events.
func (h *Highlighter) Update(events []physics.CollisionEvent) {
	for _, ev := range events {
		color := rl.Yellow
		if ev.Kind == physics.ContactStopped {
			color = rl.Blue
		}
		h.colors[ev.A] = color
		h.colors[ev.B] = color

		log.Printf("Sandbox: contact %s between body %d and body %d", ev.Kind, ev.A, ev.B)
	}
}

// Color returns the current highlight for a body, if it has one.
func (h *Highlighter) Color(handle physics.BodyHandle) (rl.Color, bool) {
	c, ok := h.colors[handle]
	return c, ok
}

// Reset clears all highlights.
func (h *Highlighter) Reset() {
	h.colors = make(map[physics.BodyHandle]rl.Color)
}
