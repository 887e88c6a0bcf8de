// Package bitseq provides the bit-level buffer type shared by all analysis
// and transformation packages.
//
// A BitSeq is an ordered sequence of bits where bit 0 is the most
// significant bit of the first source byte. Values are treated as
// immutable: every transformation allocates and returns a new BitSeq and
// never modifies its receiver or arguments.
package bitseq

import "fmt"

// BitSeq is an ordered, indexable sequence of bits.
type BitSeq []bool

// FromBytes expands raw bytes into a BitSeq, most significant bit first.
func FromBytes(data []byte) BitSeq {
	bits := make(BitSeq, 0, len(data)*8)
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			bits = append(bits, b&(1<<uint(i)) != 0)
		}
	}
	return bits
}

// FromString builds a BitSeq from a string of '0' and '1' runes. Any other
// rune is an error. Intended for tests and fixtures; pattern input parsing
// lives in the patloc package.
func FromString(s string) (BitSeq, error) {
	bits := make(BitSeq, 0, len(s))
	for _, c := range s {
		switch c {
		case '0':
			bits = append(bits, false)
		case '1':
			bits = append(bits, true)
		default:
			return nil, fmt.Errorf("bitseq: invalid bit character %q", c)
		}
	}
	return bits, nil
}

// Bytes packs the sequence back into bytes, MSB first. A trailing partial
// byte is zero-padded on the right.
func (b BitSeq) Bytes() []byte {
	out := make([]byte, (len(b)+7)/8)
	for i, bit := range b {
		if bit {
			out[i/8] |= 1 << uint(7-i%8)
		}
	}
	return out
}

// String renders the sequence as a run of '0' and '1' characters.
func (b BitSeq) String() string {
	buf := make([]byte, len(b))
	for i, bit := range b {
		if bit {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}

// Clone returns an independent copy of the sequence.
func (b BitSeq) Clone() BitSeq {
	if b == nil {
		return nil
	}
	out := make(BitSeq, len(b))
	copy(out, b)
	return out
}

// Invert returns a new sequence with every bit flipped. Applying Invert
// twice returns the original sequence.
func (b BitSeq) Invert() BitSeq {
	out := make(BitSeq, len(b))
	for i, bit := range b {
		out[i] = !bit
	}
	return out
}

// Reverse returns a new sequence with the bit order reversed.
func (b BitSeq) Reverse() BitSeq {
	out := make(BitSeq, len(b))
	for i, bit := range b {
		out[len(b)-1-i] = bit
	}
	return out
}

// Slice returns a copy of the half-open range [start, end). Both bounds are
// clamped to [0, len]; a start at or past the clamped end yields an empty
// sequence.
func (b BitSeq) Slice(start, end int) BitSeq {
	if start < 0 {
		start = 0
	}
	if end > len(b) {
		end = len(b)
	}
	if start >= end {
		return BitSeq{}
	}
	out := make(BitSeq, end-start)
	copy(out, b[start:end])
	return out
}

// HammingDistance counts the positions at which a and b differ. The two
// sequences must have equal length.
func HammingDistance(a, b BitSeq) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("bitseq: length mismatch: %d vs %d", len(a), len(b))
	}
	dist := 0
	for i := range a {
		if a[i] != b[i] {
			dist++
		}
	}
	return dist, nil
}
