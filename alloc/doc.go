// Package alloc provides the owned storage behind errv values.
//
// An [Allocator] hands out byte slices and takes them back with Free. A
// [Buffer] is a zero-terminated message copy obtained from an allocator; it
// remembers where it came from and must be freed exactly once. Freeing a
// buffer twice panics with [ErrDoubleFree] and reading a freed buffer panics
// with [ErrUseAfterFree], whichever allocator is in use.
//
// [Go] is the production allocator: it allocates from the Go heap and leaves
// reclamation to the garbage collector. [Checked] keeps a ledger of every
// allocation and is meant for tests:
//
//	a := alloc.NewChecked()
//	v := errv.New("disk full", errv.WithAllocator(a))
//	v.Release()
//	a.AssertOutstanding(t, 0)
package alloc
