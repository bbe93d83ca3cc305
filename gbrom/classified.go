package gbrom

import "fmt"

// Classified is a header code looked up in one of the code tables. It is
// either known, holding the table value, or unknown. Both forms keep the raw
// header byte.
type Classified[T any] struct {
	raw   byte
	val   T
	known bool
}

// Known returns a classified value for a mapped code.
func Known[T any](raw byte, v T) Classified[T] {
	return Classified[T]{raw: raw, val: v, known: true}
}

// Unknown returns a classified value for an unmapped code.
func Unknown[T any](raw byte) Classified[T] {
	return Classified[T]{raw: raw}
}

// Raw returns the header byte the value was classified from.
func (c Classified[T]) Raw() byte { return c.raw }

// IsKnown reports whether the code is mapped in its table.
func (c Classified[T]) IsKnown() bool { return c.known }

// Value returns the table value and true, or the zero value and false for an
// unknown code.
func (c Classified[T]) Value() (T, bool) { return c.val, c.known }

// String returns the table value, or "unknown (0xNN)" for unmapped codes.
func (c Classified[T]) String() string {
	if !c.known {
		return UnknownString(c.raw)
	}
	return fmt.Sprint(c.val)
}

// UnknownString is the textual form of an unmapped header code.
func UnknownString(raw byte) string {
	return fmt.Sprintf("unknown (0x%02X)", raw)
}
