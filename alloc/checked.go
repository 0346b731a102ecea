package alloc

import (
	"fmt"
	"sync"

	"github.com/mickamy/errv/internal/logging"
)

// Poison is written over memory returned to a Checked allocator, so stale
// slices read back garbage instead of the old message.
const Poison byte = 0xDD

// TestingT is the subset of testing.TB used by AssertOutstanding.
type TestingT interface {
	Helper()
	Errorf(format string, args ...any)
}

// CheckedOption configures a Checked allocator.
type CheckedOption func(*Checked)

// WithLimit caps the number of bytes that may be outstanding at once.
// A limit <= 0 means unlimited.
func WithLimit(bytes int) CheckedOption {
	return func(c *Checked) {
		c.limit = bytes
	}
}

// Checked is an Allocator that records every allocation. It detects double
// frees and frees of memory it never handed out, and poisons freed memory.
// It is safe for concurrent use.
//
// Freed slices stay referenced by the ledger, so their addresses are never
// reused and a late second Free is always recognized.
type Checked struct {
	mu     sync.Mutex
	limit  int
	live   map[*byte]int
	freed  map[*byte]struct{}
	allocs int
	frees  int
	bytes  int
}

// NewChecked returns an empty Checked allocator.
func NewChecked(opts ...CheckedOption) *Checked {
	c := &Checked{
		live:  make(map[*byte]int),
		freed: make(map[*byte]struct{}),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Allocate returns a zeroed slice of the given size. It panics with
// ErrOutOfMemory if the allocation would exceed the configured limit.
func (c *Checked) Allocate(size int) []byte {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.limit > 0 && c.bytes+size > c.limit {
		logging.Logger().Error("allocation limit exceeded",
			"size", size, "outstanding", c.bytes, "limit", c.limit)
		panic(fmt.Errorf("%d bytes requested with %d of %d outstanding: %w",
			size, c.bytes, c.limit, ErrOutOfMemory))
	}

	// Capacity is at least 1 so that every allocation has an address to key on.
	b := make([]byte, size, max(size, 1))
	c.live[key(b)] = size
	c.allocs++
	c.bytes += size
	return b
}

// Free returns b to the allocator and poisons it. It panics with
// ErrDoubleFree if b was already freed and with ErrForeignFree if b did not
// come from this allocator.
func (c *Checked) Free(b []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cap(b) == 0 {
		logging.Logger().Error("free of foreign memory", "size", len(b))
		panic(fmt.Errorf("free of zero-capacity slice: %w", ErrForeignFree))
	}
	k := key(b)
	size, ok := c.live[k]
	if !ok {
		if _, freed := c.freed[k]; freed {
			logging.Logger().Error("double free", "size", len(b))
			panic(fmt.Errorf("free of %d bytes: %w", len(b), ErrDoubleFree))
		}
		logging.Logger().Error("free of foreign memory", "size", len(b))
		panic(fmt.Errorf("free of %d bytes: %w", len(b), ErrForeignFree))
	}

	delete(c.live, k)
	c.freed[k] = struct{}{}
	c.frees++
	c.bytes -= size

	full := b[:cap(b)]
	for i := range full {
		full[i] = Poison
	}
}

// Allocations returns the number of successful Allocate calls.
func (c *Checked) Allocations() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.allocs
}

// Frees returns the number of successful Free calls.
func (c *Checked) Frees() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frees
}

// Outstanding returns the number of allocations not yet freed.
func (c *Checked) Outstanding() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.live)
}

// OutstandingBytes returns the number of bytes not yet freed.
func (c *Checked) OutstandingBytes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bytes
}

// Leaks logs every outstanding allocation at warn level and returns how many
// there are.
func (c *Checked) Leaks() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, size := range c.live {
		logging.Logger().Warn("leaked allocation", "size", size)
	}
	return len(c.live)
}

// AssertOutstanding reports a test error unless exactly want allocations are
// outstanding.
func (c *Checked) AssertOutstanding(t TestingT, want int) {
	t.Helper()
	if got := c.Outstanding(); got != want {
		t.Errorf("outstanding allocations = %d, want %d (%d bytes)", got, want, c.OutstandingBytes())
	}
}

func key(b []byte) *byte {
	return &b[:1][0]
}
