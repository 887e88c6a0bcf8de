// Package patloc compiles bit/hex/ASCII pattern specifications and scans
// bit buffers for error-tolerant occurrences.
package patloc

import (
	"fmt"
	"strings"

	"github.com/OpenTraceLab/OpenTraceBits/pkg/bitseq"
)

// Format selects how pattern input text is compiled into bits.
type Format int

const (
	// FormatBits accepts a literal '0'/'1' string, one bit per character.
	FormatBits Format = iota
	// FormatHex accepts hex digits, optionally prefixed "0x"; each digit
	// contributes 4 bits, most significant nibble first.
	FormatHex
	// FormatAscii maps each character to its 8-bit value, MSB first.
	FormatAscii
)

// Name returns the display name of the format.
func (f Format) Name() string {
	switch f {
	case FormatHex:
		return "Hex (0x...)"
	case FormatAscii:
		return "ASCII"
	case FormatBits:
		return "Bits (0/1)"
	default:
		return "unknown"
	}
}

// ParseFormat maps a format name (bits, hex, ascii) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "bits", "bit":
		return FormatBits, nil
	case "hex":
		return FormatHex, nil
	case "ascii", "text":
		return FormatAscii, nil
	default:
		return 0, fmt.Errorf("patloc: unknown format %q", name)
	}
}

// Pattern is a compiled search pattern plus its garble tolerance and the
// matches from the most recent search.
type Pattern struct {
	Name    string
	Format  Format
	Input   string
	Garbles int // Maximum Hamming distance for a window to still match

	Bits    bitseq.BitSeq
	Matches []Match
}

// New compiles input under the given format. It fails on a character the
// format does not accept or when the compiled pattern is empty; a failed
// construction leaves nothing behind.
func New(name string, format Format, input string, garbles int) (*Pattern, error) {
	if garbles < 0 {
		return nil, fmt.Errorf("patloc: negative garble tolerance %d", garbles)
	}
	bits, err := compile(input, format)
	if err != nil {
		return nil, err
	}
	return &Pattern{
		Name:    name,
		Format:  format,
		Input:   input,
		Garbles: garbles,
		Bits:    bits,
	}, nil
}

// Recompile re-parses the pattern's input text, used after the caller edits
// Input in place.
func (p *Pattern) Recompile() error {
	bits, err := compile(p.Input, p.Format)
	if err != nil {
		return err
	}
	p.Bits = bits
	return nil
}

func compile(input string, format Format) (bitseq.BitSeq, error) {
	switch format {
	case FormatBits:
		return compileBits(input)
	case FormatHex:
		return compileHex(input)
	case FormatAscii:
		return compileAscii(input)
	default:
		return nil, fmt.Errorf("patloc: unknown format %d", format)
	}
}

// compileBits accepts '0' and '1'; spaces and underscores are tolerated as
// visual separators and contribute nothing.
func compileBits(input string) (bitseq.BitSeq, error) {
	var bits bitseq.BitSeq
	for _, c := range strings.TrimSpace(input) {
		switch c {
		case '0':
			bits = append(bits, false)
		case '1':
			bits = append(bits, true)
		case ' ', '_':
		default:
			return nil, fmt.Errorf("patloc: invalid bit character %q, use only 0 and 1", c)
		}
	}
	if len(bits) == 0 {
		return nil, fmt.Errorf("patloc: empty bit pattern")
	}
	return bits, nil
}

func compileHex(input string) (bitseq.BitSeq, error) {
	s := strings.TrimSpace(input)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	if s == "" {
		return nil, fmt.Errorf("patloc: empty hex pattern")
	}

	var bits bitseq.BitSeq
	for _, c := range s {
		nibble, err := hexDigit(c)
		if err != nil {
			return nil, err
		}
		for i := 3; i >= 0; i-- {
			bits = append(bits, nibble&(1<<uint(i)) != 0)
		}
	}
	return bits, nil
}

func hexDigit(c rune) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return byte(c - '0'), nil
	case c >= 'a' && c <= 'f':
		return byte(c-'a') + 10, nil
	case c >= 'A' && c <= 'F':
		return byte(c-'A') + 10, nil
	default:
		return 0, fmt.Errorf("patloc: invalid hex character %q", c)
	}
}

func compileAscii(input string) (bitseq.BitSeq, error) {
	if input == "" {
		return nil, fmt.Errorf("patloc: empty ASCII pattern")
	}
	return bitseq.FromBytes([]byte(input)), nil
}
