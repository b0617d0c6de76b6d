package sigslot

// A Slot is a non-owning view onto a [Signal]'s handler storage, used by the
// implementation of a cancellable operation to install its reaction handler.
//
// The zero Slot is disconnected. Slots are comparable: two slots are equal
// exactly when they were obtained from the same signal (all disconnected
// slots are equal to each other). Copying a slot is free and never copies the
// handler.
type Slot struct {
	cell *cell
}

// Emplace installs handler, destroying any previously installed handler and
// context first and reusing their backing memory when it is big enough. At no
// point do two installed handlers coexist.
//
// Emplace panics if the slot is disconnected or its signal has been closed.
func (s Slot) Emplace(handler func()) {
	c := s.checkUsable("Emplace")
	mem := c.takeRecord()
	c.rec = newFuncRecord(c.allocator(), mem, handler)
}

// EmplaceContext installs handler together with a context value, replacing
// any previously installed handler under the same protocol as [Slot.Emplace].
// On emission the handler receives a pointer to the stored context.
//
// The returned pointer refers to that same stored context, so the caller can
// populate cancellation-relevant state after installing and before handing
// control away; the handler sees every such write. The pointer is valid until
// the handler is replaced or cleared or the signal is closed.
//
// EmplaceContext is a function rather than a method because Go methods cannot
// introduce type parameters.
func EmplaceContext[C any](s Slot, handler func(*C), context C) *C {
	c := s.checkUsable("EmplaceContext")
	mem := c.takeRecord()
	rec := newContextRecord(c.allocator(), mem, handler, context)
	c.rec = rec
	return &rec.context
}

// Clear destroys the installed handler, if any, and returns its backing
// memory to the allocator. The slot stays connected; a subsequent Emit is a
// no-op. Clearing a slot with no handler installed does nothing, so repeated
// calls are harmless.
//
// Clear panics if the slot is disconnected or its signal has been closed.
func (s Slot) Clear() {
	c := s.checkUsable("Clear")
	if c.rec == nil {
		return
	}
	mem := c.takeRecord()
	c.allocator().Free(mem.buf)
}

// IsConnected reports whether the slot was obtained from a signal that has
// not yet been closed.
func (s Slot) IsConnected() bool {
	return s.cell != nil && !s.cell.closed
}

// HasHandler reports whether the slot is connected and a handler is currently
// installed.
func (s Slot) HasHandler() bool {
	return s.cell != nil && s.cell.rec != nil
}

func (s Slot) checkUsable(op string) *cell {
	if s.cell == nil {
		panic("sigslot: " + op + " on a disconnected slot")
	}
	if s.cell.closed {
		panic("sigslot: " + op + " on a slot of a closed signal")
	}
	return s.cell
}
