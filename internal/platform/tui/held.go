package tui

import (
	"time"

	"github.com/vovakirdan/tower-climber/internal/core"
)

// DefaultHoldWindow is how long a key counts as held after its last press or
// auto-repeat. Terminals report no key releases.
const DefaultHoldWindow = 180 * time.Millisecond

type slotAction struct {
	id     core.PlayerID
	action core.Action
}

// HeldKeys emulates held keys from a stream of key presses.
type HeldKeys struct {
	window  time.Duration
	until   map[slotAction]time.Time
	pressed map[slotAction]bool
}

// NewHeldKeys creates an empty held set. A non-positive window uses
// DefaultHoldWindow.
func NewHeldKeys(window time.Duration) *HeldKeys {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HeldKeys{
		window:  window,
		until:   make(map[slotAction]time.Time),
		pressed: make(map[slotAction]bool),
	}
}

// Press records a key-down (or repeat) at now. Pressing one horizontal
// direction releases the opposite one.
func (h *HeldKeys) Press(id core.PlayerID, a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		delete(h.until, slotAction{id, core.ActionRight})
	case core.ActionRight:
		delete(h.until, slotAction{id, core.ActionLeft})
	}
	k := slotAction{id, a}
	h.until[k] = now.Add(h.window)
	h.pressed[k] = true
}

// Frame builds the input frame for a tick at now: every key still inside its
// hold window is held, and presses since the previous Frame are delivered
// once. Expired keys are dropped.
func (h *HeldKeys) Frame(now time.Time) core.MultiInputFrame {
	in := core.NewMultiInputFrame()
	for k, deadline := range h.until {
		if now.After(deadline) {
			delete(h.until, k)
			continue
		}
		in.Hold(k.id, k.action)
	}
	for k := range h.pressed {
		in.Press(k.id, k.action)
	}
	clear(h.pressed)
	return in
}

// Release forgets every held key, used on pause and restart.
func (h *HeldKeys) Release() {
	clear(h.until)
	clear(h.pressed)
}
