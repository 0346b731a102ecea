package errv

import (
	"log/slog"
	"sync/atomic"

	"github.com/mickamy/errv/alloc"
	"github.com/mickamy/errv/internal/logging"
)

// defaultAllocator holds the allocator installed with SetAllocator, nil
// meaning alloc.Go.
var defaultAllocator atomic.Pointer[alloc.Allocator]

// SetAllocator replaces the allocator used by owning constructors that are
// not given WithAllocator. A nil a restores alloc.Go.
// Values already constructed keep the allocator they were built with.
func SetAllocator(a alloc.Allocator) {
	if a == nil {
		defaultAllocator.Store(nil)
		return
	}
	defaultAllocator.Store(&a)
}

// DefaultAllocator returns the allocator used when no WithAllocator option is given.
func DefaultAllocator() alloc.Allocator {
	if p := defaultAllocator.Load(); p != nil {
		return *p
	}
	return alloc.Go{}
}

// Option configures an owning constructor such as [New] or [FromBytes].
type Option func(*options)

type options struct {
	allocator alloc.Allocator
}

// WithAllocator makes the constructor obtain its buffer from a.
// A nil a falls back to [DefaultAllocator].
func WithAllocator(a alloc.Allocator) Option {
	return func(o *options) {
		if a != nil {
			o.allocator = a
		}
	}
}

func applyOptions(opts []Option) options {
	o := options{allocator: DefaultAllocator()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// SetLogger replaces the logger used by errv and its allocators. The provided
// logger is used as is; errv adds no attributes of its own.
// If l is nil, the logger resets to slog.Default() with a "component"
// attribute. SetLogger is safe to call concurrently.
func SetLogger(l *slog.Logger) {
	logging.SetLogger(l)
}
