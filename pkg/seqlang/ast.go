package seqlang

// sequenceAST is the participle grammar root: one or more op tokens.
type sequenceAST struct {
	Tokens []*opToken `parser:"@@+"`
}

// opToken is a single <letter><count> pair as it appears in the source text.
type opToken struct {
	Code  string `parser:"@OpCode"`
	Count int    `parser:"@Count"`
}
