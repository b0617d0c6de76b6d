package sigslot

// Allocator is the raw allocate/free pair that handler records draw their
// backing memory from. Implementations report failure by panicking; the
// package treats allocation failure as fatal to the operation and never
// retries internally.
//
// Allocate must return a block of at least size bytes. Free releases a block
// previously returned by Allocate; every block is freed at most once, and
// Free is never called with a block the allocator did not hand out.
type Allocator interface {
	Allocate(size int) []byte
	Free(buf []byte)
}

// heapAllocator defers entirely to the Go runtime. Free is a no-op: once no
// record holds the block, the garbage collector reclaims it.
type heapAllocator struct{}

func (heapAllocator) Allocate(size int) []byte { return make([]byte, size) }

func (heapAllocator) Free([]byte) {}

var defaultAllocator Allocator = heapAllocator{}
