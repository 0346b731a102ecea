// Package sentinel provides a string-backed error type that can be declared
// as a const, so sentinel errors cannot be reassigned by importers.
package sentinel

var _ error = Error("")

// Error is an immutable error backed by a string constant.
// It is comparable, so errors.Is matches it through wrapped chains.
type Error string

// Error implements the error interface.
func (e Error) Error() string {
	return string(e)
}
