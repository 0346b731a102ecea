package alloc

import "github.com/mickamy/errv/internal/sentinel"

// Panics raised by buffers and allocators wrap one of these, so a recovered
// value can be matched with errors.Is.
const (
	// ErrDoubleFree is raised when memory is freed a second time.
	ErrDoubleFree = sentinel.Error("alloc: double free")

	// ErrUseAfterFree is raised when a freed buffer is read.
	ErrUseAfterFree = sentinel.Error("alloc: use after free")

	// ErrForeignFree is raised when an allocator is asked to free memory it
	// never handed out.
	ErrForeignFree = sentinel.Error("alloc: free of foreign memory")

	// ErrOutOfMemory is raised when an allocation would exceed the
	// allocator's byte limit.
	ErrOutOfMemory = sentinel.Error("alloc: allocation limit exceeded")
)
