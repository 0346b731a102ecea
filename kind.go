package errv

// Kind tells how a [Value] holds its message.
type Kind uint8

const (
	// KindUnset is the zero Value: no error.
	KindUnset Kind = iota
	// KindBorrowed views a string the value does not own.
	KindBorrowed
	// KindOwned holds a private buffer the value must release.
	KindOwned
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindUnset:
		return "unset"
	case KindBorrowed:
		return "borrowed"
	case KindOwned:
		return "owned"
	default:
		return "unknown"
	}
}
