package alloc

// Allocator hands out byte slices of exactly the requested length. Every
// slice returned by Allocate must be passed to Free exactly once.
//
// Allocation failure is not reported through a return value: an allocator
// that cannot satisfy a request panics.
type Allocator interface {
	Allocate(size int) []byte
	Free(b []byte)
}

// compile-time checks
var (
	_ Allocator = Go{}
	_ Allocator = (*Checked)(nil)
)

// Go allocates from the Go heap. Free is a no-op and memory is reclaimed by
// the garbage collector.
type Go struct{}

// Allocate returns a zeroed slice of the given size.
func (Go) Allocate(size int) []byte { return make([]byte, size) }

// Free does nothing.
func (Go) Free([]byte) {}
