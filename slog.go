package errv

import (
	"log/slog"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// LogValue implements slog.LogValuer, allowing a Value to be logged directly.
// A set value logs as a group with its message and kind. An unset value logs
// as an empty group, which handlers omit.
//
// Invalid UTF-8 in the message is replaced with U+FFFD.
func (v Value) LogValue() slog.Value {
	if !v.IsSet() {
		return slog.GroupValue()
	}
	return slog.GroupValue(
		slog.String("msg", validUTF8(v.String())),
		slog.String("kind", v.kind.String()),
	)
}

// SlogAttr builds an "error" attribute from v. It returns the zero Attr,
// which handlers ignore, if v is unset.
func SlogAttr(v Value) slog.Attr {
	if !v.IsSet() {
		return slog.Attr{}
	}
	return slog.Attr{Key: "error", Value: v.LogValue()}
}

func validUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	out, _, err := transform.String(runes.ReplaceIllFormed(), s)
	if err != nil {
		return s
	}
	return out
}

// Ensure Value implements slog.LogValuer at compile time.
var _ slog.LogValuer = Value{}
