package tooltip

// syntheticPointerEvent represents a single injected pointer event in screen
// coordinates.
type syntheticPointerEvent struct {
	screenX, screenY float64
	present          bool
}

// InjectMove queues a hover move to the given screen coordinates. The event
// is consumed on the next frame's input pass. Injecting switches pointer 0
// to synthetic input; the real cursor is ignored until ResumeMouse.
func (s *Scene) InjectMove(x, y float64) {
	s.synthetic = true
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		present: true,
	})
}

// InjectLeave queues the pointer leaving the viewport.
func (s *Scene) InjectLeave() {
	s.synthetic = true
	ps := s.pointers[0]
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		screenX: ps.lastX, screenY: ps.lastY,
		present: false,
	})
}

// ResumeMouse drops any queued synthetic events and returns pointer 0 to
// the real cursor.
func (s *Scene) ResumeMouse() {
	s.synthetic = false
	s.injectQueue = s.injectQueue[:0]
}

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer. Returns true if an event was consumed.
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.processPointer(0, evt.screenX, evt.screenY, evt.present)
	return true
}
