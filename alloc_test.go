package sigslot_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// countingAllocator wraps the heap with bookkeeping so tests can assert the
// allocation-count invariants directly: how often the allocator was hit, and
// that every block is freed exactly once.
type countingAllocator struct {
	t     *testing.T
	live  map[*byte]int
	stats allocStats
}

type allocStats struct {
	Allocs int
	Frees  int
}

func newCountingAllocator(t *testing.T) *countingAllocator {
	return &countingAllocator{t: t, live: make(map[*byte]int)}
}

func (a *countingAllocator) Allocate(size int) []byte {
	if size <= 0 {
		a.t.Errorf("Allocate(%d): non-positive size", size)
	}
	buf := make([]byte, size)
	a.live[&buf[0]] = size
	a.stats.Allocs++
	return buf
}

func (a *countingAllocator) Free(buf []byte) {
	a.t.Helper()
	if len(buf) == 0 {
		a.t.Errorf("Free of an empty block")
		return
	}
	if _, ok := a.live[&buf[0]]; !ok {
		a.t.Errorf("Free of a block that is not live (double free?)")
		return
	}
	delete(a.live, &buf[0])
	a.stats.Frees++
}

func (a *countingAllocator) expect(want allocStats) {
	a.t.Helper()
	if diff := cmp.Diff(want, a.stats); diff != "" {
		a.t.Fatalf("allocator stats mismatch (-want +got):\n%s", diff)
	}
}

// expectBalanced asserts that every allocated block has been freed.
func (a *countingAllocator) expectBalanced() {
	a.t.Helper()
	if a.stats.Allocs != a.stats.Frees || len(a.live) != 0 {
		a.t.Fatalf("allocator not balanced: %+v with %d live blocks", a.stats, len(a.live))
	}
}
