// Package errv provides Value, a small copyable error message.
//
// A Value is in one of three states, reported by [Value.Kind]:
//
//   - unset: the zero Value, meaning "no error".
//   - borrowed: a view of a string that outlives the value, typically a
//     constant. Built with [Static]; never allocates, never frees.
//   - owned: a private zero-terminated copy of a dynamic message, held in an
//     [alloc.Buffer]. Built with [New], [Newf], [FromBytes] or [FromError].
//
// Owned storage is released explicitly. Duplicate a Value with [Value.Clone],
// hand it off with [Value.Take] and end its life with [Value.Release]:
//
//	e := errv.New("disk full")
//	e2 := e.Clone()
//	e.Release()
//	fmt.Println(e2) // disk full
//	e2.Release()
//
// Copying a Value with plain assignment shares its buffer. Releasing both
// copies panics with [alloc.ErrDoubleFree], and reading a copy after the
// other was released panics with [alloc.ErrUseAfterFree].
package errv

import (
	"fmt"

	"github.com/mickamy/errv/alloc"
)

// Value is an optional error message that either borrows or owns its text.
// The zero Value is unset.
type Value struct {
	kind Kind
	text string
	buf  *alloc.Buffer
}

// Empty returns the unset Value. It is equivalent to Value{}.
func Empty() Value {
	return Value{}
}

// Static returns a Value borrowing s. Nothing is allocated or copied, and
// releasing the value frees nothing. s must outlive the value; string
// constants always do.
//
// Static("") is set: it reports an error whose message is empty.
func Static(s string) Value {
	return Value{kind: KindBorrowed, text: s}
}

// New returns a Value owning a copy of msg. The copy is independent of msg
// and must be released with [Value.Release].
//
// New("") is set and owned; its buffer holds just the terminator.
func New(msg string, opts ...Option) Value {
	o := applyOptions(opts)
	return Value{kind: KindOwned, buf: alloc.Copy(o.allocator, msg)}
}

// Newf formats a message and returns a Value owning it, using the default allocator.
func Newf(format string, args ...any) Value {
	return New(fmt.Sprintf(format, args...))
}

// FromBytes returns a Value owning a copy of b. Later writes to b do not
// affect the value.
func FromBytes(b []byte, opts ...Option) Value {
	o := applyOptions(opts)
	return Value{kind: KindOwned, buf: alloc.CopyBytes(o.allocator, b)}
}

// FromError returns a Value owning a copy of err's message.
// Returns the unset Value if err is nil.
func FromError(err error, opts ...Option) Value {
	if err == nil {
		return Value{}
	}
	return New(err.Error(), opts...)
}

// Clone returns a Value with the same message and kind. An owned value is
// deep-copied into a new buffer from the same allocator, so the clone and v
// are released independently. Borrowed and unset values are returned as is
// without allocating.
func (v Value) Clone() Value {
	if v.kind != KindOwned {
		return v
	}
	return Value{kind: KindOwned, buf: v.buf.Clone()}
}

// Take moves the value out of v and leaves v unset, so releasing v
// afterwards frees nothing.
func (v *Value) Take() Value {
	t := *v
	*v = Value{}
	return t
}

// Release frees v's buffer if v is owned and resets v to unset.
// It panics with alloc.ErrDoubleFree if the buffer was already freed through
// another copy of v.
func (v *Value) Release() {
	if v.kind == KindOwned {
		v.buf.Free()
	}
	*v = Value{}
}

// IsSet reports whether v carries an error. It depends only on how v was
// built, not on the message length.
func (v Value) IsSet() bool {
	return v.kind != KindUnset
}

// Kind returns whether v is unset, borrowed or owned.
func (v Value) Kind() Kind {
	return v.kind
}

// Owned reports whether v owns its buffer.
func (v Value) Owned() bool {
	return v.kind == KindOwned
}

// Len returns the length of the message in bytes.
func (v Value) Len() int {
	switch v.kind {
	case KindOwned:
		return v.buf.Len()
	case KindBorrowed:
		return len(v.text)
	default:
		return 0
	}
}

// String returns the message. It returns "" if v is unset.
// The result does not alias an owned buffer and stays valid after Release.
func (v Value) String() string {
	switch v.kind {
	case KindOwned:
		return v.buf.String()
	case KindBorrowed:
		return v.text
	default:
		return ""
	}
}

// AppendText implements encoding.TextAppender. It appends the message to b
// without allocating beyond b's growth.
func (v Value) AppendText(b []byte) ([]byte, error) {
	switch v.kind {
	case KindOwned:
		return append(b, v.buf.Bytes()...), nil
	case KindBorrowed:
		return append(b, v.text...), nil
	default:
		return b, nil
	}
}

// Err returns v as a standard error, or nil if v is unset.
func (v Value) Err() error {
	if !v.IsSet() {
		return nil
	}
	return Message(v.String())
}
