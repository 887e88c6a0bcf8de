package pipeline

import (
	"fmt"
	"path/filepath"

	"github.com/OpenTraceLab/OpenTraceBits/pkg/seqlang"
)

// BitOperation is one pipeline stage. The variant set is closed: LoadFile,
// TakeSkipSequence, InvertBits, TruncateBits, MultiWorksheetLoad, and
// InterleaveBits. The pipeline switches exhaustively over the concrete
// types; new variants require touching every switch.
type BitOperation interface {
	// Name returns the caller-assigned label for the stage.
	Name() string
	// Description returns a short human-readable summary of the stage.
	Description() string

	isBitOperation()
}

// LoadFile appends the bits of an external byte source to the accumulator.
// Its presence switches the pipeline into accumulation mode.
type LoadFile struct {
	OpName    string
	SourceRef string
}

func (o *LoadFile) Name() string { return o.OpName }

func (o *LoadFile) Description() string {
	return fmt.Sprintf("Load: %s", filepath.Base(o.SourceRef))
}

func (o *LoadFile) isBitOperation() {}

// TakeSkipSequence rewrites its input with a parsed sequence.
type TakeSkipSequence struct {
	OpName   string
	Sequence *seqlang.Sequence
}

func (o *TakeSkipSequence) Name() string { return o.OpName }

func (o *TakeSkipSequence) Description() string { return o.Sequence.String() }

func (o *TakeSkipSequence) isBitOperation() {}

// InvertBits flips every bit of its input. Applying it twice returns the
// original buffer.
type InvertBits struct {
	OpName string
}

func (o *InvertBits) Name() string { return o.OpName }

func (o *InvertBits) Description() string { return "Inverts all bits" }

func (o *InvertBits) isBitOperation() {}

// TruncateBits keeps the half-open bit range [Start, End) and discards the
// rest. A nil End means the end of the input. Both bounds are clamped to
// the input length; Start at or past End yields an empty buffer.
type TruncateBits struct {
	OpName string
	Start  int
	End    *int
}

func (o *TruncateBits) Name() string { return o.OpName }

func (o *TruncateBits) Description() string {
	if o.End == nil {
		return fmt.Sprintf("Keep bits %d-end", o.Start)
	}
	return fmt.Sprintf("Keep bits %d-%d", o.Start, *o.End)
}

func (o *TruncateBits) isBitOperation() {}

// WorksheetEntry references another worksheet's source bits plus the
// sequence to apply to them before concatenation.
type WorksheetEntry struct {
	WorksheetIndex int
	Sequence       *seqlang.Sequence
}

// MultiWorksheetLoad appends, in entry order, the referenced worksheets'
// source bits with each entry's sequence applied. Its presence switches the
// pipeline into accumulation mode.
type MultiWorksheetLoad struct {
	OpName  string
	Entries []WorksheetEntry
}

func (o *MultiWorksheetLoad) Name() string { return o.OpName }

func (o *MultiWorksheetLoad) Description() string {
	return fmt.Sprintf("Load from %d worksheet(s)", len(o.Entries))
}

func (o *MultiWorksheetLoad) isBitOperation() {}

// InterleaveBits reorders its input through a bit or symbol interleaver.
type InterleaveBits struct {
	OpName      string
	Interleaver Interleaver
}

func (o *InterleaveBits) Name() string { return o.OpName }

func (o *InterleaveBits) Description() string { return o.Interleaver.Describe() }

func (o *InterleaveBits) isBitOperation() {}
