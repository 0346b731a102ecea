package errv

// Message is an immutable error backed by a string. [Value.Err] returns one,
// and it can be declared as a package-level const:
//
//	const ErrDiskFull = errv.Message("disk full")
//
// Messages compare by text, so errors.Is(v.Err(), ErrDiskFull) holds for any
// set value whose message is "disk full".
type Message string

var _ error = Message("")

// Error implements the error interface.
func (m Message) Error() string { return string(m) }

// Value returns a borrowed Value viewing m.
func (m Message) Value() Value { return Static(string(m)) }
