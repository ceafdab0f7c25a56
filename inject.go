package squares

// pointerEvent is a single injected press or release in device coordinates.
type pointerEvent struct {
	screenX, screenY int
	pressed          bool
}

// InjectPress queues a press at the given device coordinates. The event is
// consumed by the next Update, which skips device polling for that tick.
func (h *InputHandler) InjectPress(x, y int) {
	h.injectQueue = append(h.injectQueue, pointerEvent{screenX: x, screenY: y, pressed: true})
}

// InjectRelease queues a release at the given device coordinates.
func (h *InputHandler) InjectRelease(x, y int) {
	h.injectQueue = append(h.injectQueue, pointerEvent{screenX: x, screenY: y})
}

// InjectTap queues a press and release at the same point. Consumes two ticks.
func (h *InputHandler) InjectTap(x, y int) {
	h.InjectPress(x, y)
	h.InjectRelease(x, y)
}

// InjectSwipe queues a press at (fromX, fromY) and a release at (toX, toY).
// Consumes two ticks.
func (h *InputHandler) InjectSwipe(fromX, fromY, toX, toY int) {
	h.InjectPress(fromX, fromY)
	h.InjectRelease(toX, toY)
}

// Pending returns the number of injected events not yet consumed.
func (h *InputHandler) Pending() int {
	return len(h.injectQueue)
}

// processInjectedInput pops one queued event and feeds it to OnPress or
// OnRelease. Returns true if an event was consumed.
func (h *InputHandler) processInjectedInput() bool {
	if len(h.injectQueue) == 0 {
		return false
	}
	evt := h.injectQueue[0]
	copy(h.injectQueue, h.injectQueue[1:])
	h.injectQueue = h.injectQueue[:len(h.injectQueue)-1]

	if evt.pressed {
		h.OnPress(evt.screenX, evt.screenY)
	} else {
		h.OnRelease(evt.screenX, evt.screenY)
	}
	return true
}
