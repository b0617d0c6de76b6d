package sigslot

import "unsafe"

// block is a raw backing-memory handle. Ownership passes by value between
// surrender and the record constructors: whoever holds a block last either
// installs it into a new record or returns it to the allocator. The zero
// block holds no memory.
type block struct {
	buf []byte
}

func (b block) capacity() int { return cap(b.buf) }

// record is the type-erased view of one installed (handler, context) pair.
// Records are destroyed only through surrender, so each one is torn down
// exactly once and only its owning signal ever frees its memory.
type record interface {
	// invoke calls the stored handler. The record survives the call and may
	// be invoked again by a later emission.
	invoke()

	// surrender tears down the record's contents and returns its backing
	// block without releasing the block to the allocator.
	surrender() block
}

// contextRecord carries a handler together with a caller-supplied context
// value. The context is stored inline so that it contributes to the record's
// required size, which is what makes block reuse honest: a bigger context
// means a bigger block.
type contextRecord[C any] struct {
	handler func(*C)
	context C
	mem     block
}

// newContextRecord builds a context-carrying record, reusing mem when its
// capacity covers the record's required size and reallocating otherwise.
func newContextRecord[C any](a Allocator, mem block, handler func(*C), context C) *contextRecord[C] {
	mem = fitBlock(a, mem, int(unsafe.Sizeof(contextRecord[C]{})))
	return &contextRecord[C]{handler: handler, context: context, mem: mem}
}

func (r *contextRecord[C]) invoke() { r.handler(&r.context) }

func (r *contextRecord[C]) surrender() block {
	mem := r.mem
	var zero C
	r.handler = nil
	r.context = zero
	r.mem = block{}
	return mem
}

// funcRecord carries a handler that takes no context.
type funcRecord struct {
	handler func()
	mem     block
}

func newFuncRecord(a Allocator, mem block, handler func()) *funcRecord {
	mem = fitBlock(a, mem, int(unsafe.Sizeof(funcRecord{})))
	return &funcRecord{handler: handler, mem: mem}
}

func (r *funcRecord) invoke() { r.handler() }

func (r *funcRecord) surrender() block {
	mem := r.mem
	r.handler = nil
	r.mem = block{}
	return mem
}

// fitBlock returns a block of capacity at least need, reusing candidate when
// it is big enough. An oversized candidate is kept at its full capacity, so a
// block allocated for a large record keeps serving smaller replacements
// without ever reallocating down.
//
// An undersized candidate is freed before the fresh allocation is attempted;
// if the allocator then fails, nothing is leaked and no record holds memory.
func fitBlock(a Allocator, candidate block, need int) block {
	if candidate.capacity() >= need {
		return candidate
	}
	if candidate.buf != nil {
		a.Free(candidate.buf)
	}
	return block{buf: a.Allocate(need)}
}
