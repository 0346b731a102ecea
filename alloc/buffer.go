package alloc

import "fmt"

// Buffer is an owned, zero-terminated copy of a message. The slice it holds
// is one byte longer than the message and the last byte is always 0.
//
// Buffers are shared by pointer: copies of the pointer observe the same freed
// state, so a second Free through any of them panics instead of corrupting
// the allocator.
type Buffer struct {
	data []byte
	a    Allocator
}

// Copy allocates len(text)+1 bytes from a, copies text and terminates it.
func Copy(a Allocator, text string) *Buffer {
	data := a.Allocate(len(text) + 1)
	n := copy(data, text)
	data[n] = 0
	return &Buffer{data: data[:n+1], a: a}
}

// CopyBytes is like Copy for a byte slice. The buffer does not alias b.
func CopyBytes(a Allocator, b []byte) *Buffer {
	data := a.Allocate(len(b) + 1)
	n := copy(data, b)
	data[n] = 0
	return &Buffer{data: data[:n+1], a: a}
}

// Len returns the message length, excluding the terminator.
func (b *Buffer) Len() int {
	return len(b.live()) - 1
}

// Bytes returns the message without the terminator. The slice aliases the
// buffer and must not be retained past Free or modified.
func (b *Buffer) Bytes() []byte {
	d := b.live()
	return d[:len(d)-1]
}

// Terminated returns the message including its trailing 0 byte.
func (b *Buffer) Terminated() []byte {
	return b.live()
}

// String returns an independent copy of the message.
func (b *Buffer) String() string {
	return string(b.Bytes())
}

// Clone copies the message into a new buffer from the same allocator.
func (b *Buffer) Clone() *Buffer {
	return CopyBytes(b.a, b.Bytes())
}

// Allocator returns the allocator the buffer was obtained from.
func (b *Buffer) Allocator() Allocator {
	return b.a
}

// Freed reports whether Free has been called.
func (b *Buffer) Freed() bool {
	return b.data == nil
}

// Free returns the storage to its allocator. It panics with ErrDoubleFree if
// the buffer was already freed.
func (b *Buffer) Free() {
	if b.data == nil {
		panic(fmt.Errorf("free of released buffer: %w", ErrDoubleFree))
	}
	d := b.data
	b.data = nil
	b.a.Free(d)
}

func (b *Buffer) live() []byte {
	if b.data == nil {
		panic(fmt.Errorf("read of released buffer: %w", ErrUseAfterFree))
	}
	return b.data
}
