// Package pipeline executes an ordered list of bit operations against a bit
// buffer, producing a processed buffer plus a list of non-fatal errors.
//
// Two execution modes exist, selected by the op list itself. When the list
// contains any source-redefining op (LoadFile or MultiWorksheetLoad) the
// original buffer is discarded and the result is built purely by
// accumulation: source ops append bits, every other op transforms the
// accumulator built so far. Otherwise the pipeline starts from the original
// buffer and applies every op as a transform, in order.
//
// Resource failures (an unreadable source file, an out-of-range or
// self-referencing worksheet entry, a worksheet without a source) never
// abort the run. The failing entry contributes zero bits, the failure is
// recorded as a NonFatalError, and execution continues, so callers always
// receive a best-effort buffer alongside the error list.
//
// The pipeline itself is pure and synchronous: all blocking I/O happens
// through the caller-supplied SourceReader, and the worksheet registry is
// an explicit read-only argument rather than ambient state.
package pipeline
