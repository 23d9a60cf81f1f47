package nostl

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/pavanmanishd/nostl/rawmem"
)

func expectAssert(t *testing.T, name string, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Errorf("%s: expected panic", name)
			return
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Errorf("%s: panic = %v, want %v", name, r, target)
			return
		}
		if !errors.HasAssertionFailure(err) {
			t.Errorf("%s: panic %v is not an assertion failure", name, err)
		}
	}()
	fn()
}

// ledger counts lifecycle events of tracked values.
type ledger struct {
	clones   int
	destroys map[int]int // id -> destroy count
}

func newLedger() *ledger {
	return &ledger{destroys: make(map[int]int)}
}

func (l *ledger) totalDestroys() int {
	n := 0
	for _, c := range l.destroys {
		n += c
	}
	return n
}

// tracked is a resource-holding element type.
type tracked struct {
	id  int
	led *ledger
}

func (r tracked) Clone() tracked {
	r.led.clones++
	return r
}

func (r *tracked) Destroy() {
	if r.led != nil {
		r.led.destroys[r.id]++
	}
}

// testAllocator returns a private manual allocator that must be empty when
// the test ends.
func testAllocator(t *testing.T) *rawmem.Manual {
	t.Helper()
	m := rawmem.NewManual()
	t.Cleanup(func() {
		if n := m.LiveBlocks(); n != 0 {
			t.Errorf("allocator leaked %d blocks", n)
		}
		m.Release()
	})
	return m
}
