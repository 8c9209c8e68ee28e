package tooltip

import (
	"fmt"
	"time"
)

// Event is a discrete input to the visibility state machine.
type Event uint8

const (
	EventPointerEnter Event = iota // pointer moved over the anchor
	EventPointerLeave              // pointer left the anchor
)

// Visibility debounces the hover state of one anchor. Every change of
// Hovering (re)starts a single timer; only a value that holds for the whole
// delay reaches DebouncedVisible. Rapid toggling inside the window produces
// no change at all, in either direction.
type Visibility struct {
	// OnChange, if set, is called after DebouncedVisible changes value.
	OnChange func(visible bool)

	clock   Clock
	delay   time.Duration
	state   VisibilityState
	pending Timer
}

// NewVisibility creates a controller that schedules its timers on clock.
// A non-positive delay selects DefaultDelay.
func NewVisibility(clock Clock, delay time.Duration) *Visibility {
	if clock == nil {
		panic("tooltip: nil clock")
	}
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Visibility{clock: clock, delay: delay}
}

// State returns a copy of the current state.
func (v *Visibility) State() VisibilityState {
	return v.state
}

// Hovering reports the instantaneous pointer-over state.
func (v *Visibility) Hovering() bool { return v.state.Hovering }

// Visible reports the debounced visibility.
func (v *Visibility) Visible() bool { return v.state.DebouncedVisible }

// Delay returns the debounce window.
func (v *Visibility) Delay() time.Duration { return v.delay }

// PointerEnter marks the anchor as hovered.
func (v *Visibility) PointerEnter() { v.setHovering(true) }

// PointerLeave marks the anchor as no longer hovered.
func (v *Visibility) PointerLeave() { v.setHovering(false) }

// Handle processes a single event synchronously. Panics on an unknown event.
func (v *Visibility) Handle(e Event) {
	switch e {
	case EventPointerEnter:
		v.PointerEnter()
	case EventPointerLeave:
		v.PointerLeave()
	default:
		panic(fmt.Sprintf("tooltip: unknown visibility event %d", e))
	}
}

// Stop cancels any pending timer. The debounced value is left as is.
func (v *Visibility) Stop() {
	if v.pending != nil {
		v.pending.Stop()
		v.pending = nil
	}
}

func (v *Visibility) setHovering(h bool) {
	if v.state.Hovering == h {
		return
	}
	v.state.Hovering = h
	v.Stop()

	var t Timer
	t = v.clock.AfterFunc(v.delay, func() {
		if v.pending != t {
			return
		}
		v.pending = nil
		v.fire(h)
	})
	v.pending = t
}

// fire applies the value captured when the timer was scheduled.
func (v *Visibility) fire(visible bool) {
	if v.state.DebouncedVisible == visible {
		return
	}
	v.state.DebouncedVisible = visible
	if v.OnChange != nil {
		v.OnChange(visible)
	}
}
