package seqlang

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// SequenceLexer defines the lexical structure of the take/skip sequence
// language. A sequence is a run of tokens, each a single op letter followed
// immediately by a decimal count, with no separators (e.g. "t4r3i8s1").
var SequenceLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Op letters (case-insensitive on input; canonical form is lower-case)
	{Name: "OpCode", Pattern: `[trisTRIS]`},

	// Decimal counts
	{Name: "Count", Pattern: `[0-9]+`},
})
