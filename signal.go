package sigslot

// cell is a signal's single handler storage location. Slots hold a pointer to
// the cell rather than to the record, so a handler installed through any slot
// is visible through all of them, and replacing the record never invalidates
// a slot.
type cell struct {
	rec    record
	alloc  Allocator
	closed bool
}

func (c *cell) allocator() Allocator {
	if c.alloc == nil {
		return defaultAllocator
	}
	return c.alloc
}

// takeRecord surrenders the cell's installed record, if any, leaving the cell
// empty and returning the record's backing block for reuse. The cell is
// emptied before anything else happens, so a failure while building a
// replacement record leaves no handler installed rather than a stale one.
func (c *cell) takeRecord() block {
	if c.rec == nil {
		return block{}
	}
	mem := c.rec.surrender()
	c.rec = nil
	return mem
}

// A Signal owns at most one cancellation handler and delivers a synchronous
// notification to it on [Signal.Emit]. The zero Signal is ready for use and
// draws handler memory from the Go heap; use [NewWithAllocator] to supply a
// different source.
//
// The signal is the single owner of the installed handler's memory: only the
// signal (through Close) and operations on its slot ever free it. A Signal
// must not be copied after first use, and must outlive every use of the slots
// derived from it.
type Signal struct {
	noCopy noCopy
	cell   cell
}

// New returns a ready-to-use Signal. It is equivalent to new(Signal).
func New() *Signal { return new(Signal) }

// NewWithAllocator returns a Signal whose handler records draw backing memory
// from a.
func NewWithAllocator(a Allocator) *Signal {
	return &Signal{cell: cell{alloc: a}}
}

// Emit invokes the installed handler, if any, synchronously on the calling
// goroutine. With no handler installed (or after Close) it does nothing.
//
// Emit runs arbitrary user code. A handler that re-enters the same signal is
// not guarded against; that is the caller's responsibility.
func (s *Signal) Emit() {
	if s.cell.rec != nil {
		s.cell.rec.invoke()
	}
}

// Slot returns the slot associated with the signal. Every call returns an
// equal slot; all of them view the same handler storage.
func (s *Signal) Slot() Slot { return Slot{cell: &s.cell} }

// Close tears down the installed handler, if any, and returns its backing
// memory to the allocator exactly once. All slots derived from the signal
// become dead: installing or clearing through them afterwards panics, and
// their IsConnected reports false. Close is idempotent.
func (s *Signal) Close() {
	if s.cell.closed {
		return
	}
	s.cell.closed = true
	if s.cell.rec != nil {
		mem := s.cell.takeRecord()
		s.cell.allocator().Free(mem.buf)
	}
}

// noCopy makes `go vet`'s copylocks check flag copying a Signal by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
