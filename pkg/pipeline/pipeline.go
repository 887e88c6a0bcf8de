package pipeline

import (
	"fmt"
	"os"

	"github.com/OpenTraceLab/OpenTraceBits/pkg/bitseq"
	"github.com/OpenTraceLab/OpenTraceBits/pkg/worksheet"
)

// SourceReader reads the bits of an external byte source. Implementations
// may block; the pipeline calls them synchronously.
type SourceReader interface {
	ReadBits(ref string) (bitseq.BitSeq, error)
}

// FileReader is a SourceReader over the local filesystem.
type FileReader struct{}

// ReadBits reads the file at ref and expands it into bits, MSB first.
func (FileReader) ReadBits(ref string) (bitseq.BitSeq, error) {
	data, err := os.ReadFile(ref)
	if err != nil {
		return nil, fmt.Errorf("pipeline: read %s: %w", ref, err)
	}
	return bitseq.FromBytes(data), nil
}

// NonFatalError records a per-entry failure that did not abort the run.
type NonFatalError struct {
	Op  string // Name of the operation the entry belonged to
	Err error
}

func (e NonFatalError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap supports errors.Is/As over the recorded cause.
func (e NonFatalError) Unwrap() error { return e.Err }

// Pipeline binds the external collaborators needed to execute op lists: a
// byte-source reader, the worksheet registry, and the caller's own worksheet
// index (used to reject self-referencing entries).
type Pipeline struct {
	Reader   SourceReader
	Registry worksheet.Registry
	Active   int
}

// New creates a pipeline. A nil reader defaults to FileReader; a nil
// registry makes every worksheet reference out of range.
func New(reader SourceReader, registry worksheet.Registry, active int) *Pipeline {
	if reader == nil {
		reader = FileReader{}
	}
	return &Pipeline{Reader: reader, Registry: registry, Active: active}
}

// Apply executes ops in order and returns the processed buffer together
// with any non-fatal errors encountered. See the package comment for the
// mode selection and error policy.
func (p *Pipeline) Apply(original bitseq.BitSeq, ops []BitOperation) (bitseq.BitSeq, []NonFatalError) {
	var errs []NonFatalError

	sourceMode := false
	for _, op := range ops {
		switch op.(type) {
		case *LoadFile, *MultiWorksheetLoad:
			sourceMode = true
		}
	}

	var result bitseq.BitSeq
	if sourceMode {
		result = bitseq.BitSeq{}
	} else {
		result = original.Clone()
	}

	for _, op := range ops {
		switch o := op.(type) {
		case *LoadFile:
			bits, err := p.Reader.ReadBits(o.SourceRef)
			if err != nil {
				errs = append(errs, NonFatalError{Op: o.Name(), Err: err})
				continue
			}
			result = append(result, bits...)

		case *MultiWorksheetLoad:
			result, errs = p.loadWorksheets(o, result, errs)

		case *TakeSkipSequence:
			result = o.Sequence.Apply(result)

		case *InvertBits:
			result = result.Invert()

		case *TruncateBits:
			end := len(result)
			if o.End != nil {
				end = *o.End
			}
			result = result.Slice(o.Start, end)

		case *InterleaveBits:
			result = o.Interleaver.Apply(result)
		}
	}

	return result, errs
}

// loadWorksheets appends each entry's referenced source bits, rewritten by
// the entry's sequence, to the accumulator. Entries that are out of range,
// reference the active worksheet, lack a source, or fail to read contribute
// zero bits; each such skip is recorded.
func (p *Pipeline) loadWorksheets(op *MultiWorksheetLoad, acc bitseq.BitSeq, errs []NonFatalError) (bitseq.BitSeq, []NonFatalError) {
	for _, entry := range op.Entries {
		var ws *worksheet.Worksheet
		if p.Registry != nil {
			ws, _ = p.Registry.Get(entry.WorksheetIndex)
		}
		if ws == nil {
			errs = append(errs, NonFatalError{
				Op:  op.Name(),
				Err: fmt.Errorf("pipeline: worksheet index %d out of range", entry.WorksheetIndex),
			})
			continue
		}
		if entry.WorksheetIndex == p.Active {
			errs = append(errs, NonFatalError{
				Op:  op.Name(),
				Err: fmt.Errorf("pipeline: worksheet %d references itself", entry.WorksheetIndex),
			})
			continue
		}
		if ws.SourcePath == "" {
			errs = append(errs, NonFatalError{
				Op:  op.Name(),
				Err: fmt.Errorf("pipeline: worksheet %d has no source", entry.WorksheetIndex),
			})
			continue
		}

		bits, err := p.Reader.ReadBits(ws.SourcePath)
		if err != nil {
			errs = append(errs, NonFatalError{Op: op.Name(), Err: err})
			continue
		}
		if entry.Sequence != nil {
			bits = entry.Sequence.Apply(bits)
		}
		acc = append(acc, bits...)
	}
	return acc, errs
}
