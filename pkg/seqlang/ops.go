package seqlang

import "fmt"

// OpKind identifies one of the four sequence operations. The set is closed;
// callers switch exhaustively over it.
type OpKind int

const (
	// Take copies the next n bits verbatim.
	Take OpKind = iota
	// Reverse copies the next n bits in reverse order.
	Reverse
	// Invert copies the next n bits with each bit flipped.
	Invert
	// Skip advances past the next n bits without emitting anything.
	Skip
)

// Letter returns the canonical single-letter form of the op kind.
func (k OpKind) Letter() byte {
	switch k {
	case Take:
		return 't'
	case Reverse:
		return 'r'
	case Invert:
		return 'i'
	case Skip:
		return 's'
	default:
		return '?'
	}
}

// Op is a single operation with its bit count. Count is always >= 1 for ops
// produced by Parse.
type Op struct {
	Kind  OpKind
	Count int
}

// String renders the op in canonical token form, e.g. "t4".
func (o Op) String() string {
	return fmt.Sprintf("%c%d", o.Kind.Letter(), o.Count)
}
