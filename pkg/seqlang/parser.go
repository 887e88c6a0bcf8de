package seqlang

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
)

var sequenceParser = participle.MustBuild[sequenceAST](
	participle.Lexer(SequenceLexer),
)

// Sequence is an ordered list of ops parsed from sequence text. A Sequence
// produced by Parse is never empty.
type Sequence struct {
	Ops []Op
}

// Parse compiles sequence text like "t4r3i8s1" into a Sequence. It fails on
// an empty string, an unknown op letter, a missing or malformed count, or a
// zero count.
func Parse(input string) (*Sequence, error) {
	if strings.TrimSpace(input) == "" {
		return nil, fmt.Errorf("seqlang: empty sequence")
	}

	ast, err := sequenceParser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("seqlang: parse %q: %w", input, err)
	}

	ops := make([]Op, 0, len(ast.Tokens))
	for _, tok := range ast.Tokens {
		if tok.Count < 1 {
			return nil, fmt.Errorf("seqlang: zero count in token %q%d", tok.Code, tok.Count)
		}
		var kind OpKind
		switch strings.ToLower(tok.Code) {
		case "t":
			kind = Take
		case "r":
			kind = Reverse
		case "i":
			kind = Invert
		case "s":
			kind = Skip
		default:
			return nil, fmt.Errorf("seqlang: unknown operation %q", tok.Code)
		}
		ops = append(ops, Op{Kind: kind, Count: tok.Count})
	}

	return &Sequence{Ops: ops}, nil
}

// String returns the canonical textual form of the sequence. For input
// composed of canonical tokens, Parse and String round-trip exactly.
func (s *Sequence) String() string {
	var sb strings.Builder
	for _, op := range s.Ops {
		sb.WriteString(op.String())
	}
	return sb.String()
}

// MarshalJSON encodes the sequence as its canonical text, which is the form
// stored in worksheet files.
func (s *Sequence) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", s.String())), nil
}

// UnmarshalJSON decodes a canonical-text sequence.
func (s *Sequence) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("seqlang: sequence must be a JSON string")
	}
	parsed, err := Parse(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	s.Ops = parsed.Ops
	return nil
}
