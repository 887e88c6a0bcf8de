package patloc

import (
	"context"

	"github.com/OpenTraceLab/OpenTraceBits/pkg/bitseq"
)

// Match records one qualifying window in the haystack.
type Match struct {
	Position   int           // Bit position of the window start
	Bits       bitseq.BitSeq // The actual window bits that matched
	Delta      *int          // Position minus previous match's position; nil for the first
	Mismatches int           // Hamming distance actually observed (garbles used)
}

// BitsString renders the matched window as '0'/'1' text.
func (m Match) BitsString() string {
	return m.Bits.String()
}

// cancelCheckInterval is the number of scanned positions between context
// checks. Inputs can be gigabyte-scale, so the scan must stay cancellable
// without paying a select per position.
const cancelCheckInterval = 4096

// Search slides the pattern across the haystack and collects every start
// position whose window is within the garble tolerance of the pattern.
// Overlapping matches are all reported; positions are ascending and deltas
// are filled in afterwards over the ordered list.
//
// The matches are stored on the pattern and returned. A context canceled
// mid-scan aborts with ctx.Err() and leaves the pattern's previous matches
// untouched, never a truncated list.
func (p *Pattern) Search(ctx context.Context, haystack bitseq.BitSeq) ([]Match, error) {
	if len(p.Bits) == 0 || len(haystack) < len(p.Bits) {
		p.Matches = nil
		return nil, nil
	}

	var matches []Match
	patternLen := len(p.Bits)

	for start := 0; start <= len(haystack)-patternLen; start++ {
		if start%cancelCheckInterval == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}

		window := haystack[start : start+patternLen]
		mismatches, ok := distanceWithin(p.Bits, window, p.Garbles)
		if !ok {
			continue
		}

		matches = append(matches, Match{
			Position:   start,
			Bits:       window.Clone(),
			Mismatches: mismatches,
		})
	}

	fillDeltas(matches)
	p.Matches = matches
	return matches, nil
}

// distanceWithin computes the Hamming distance between two equal-length
// windows, bailing out once the distance exceeds limit. The early exit is a
// speedup only; it never changes which positions qualify.
func distanceWithin(pattern, window bitseq.BitSeq, limit int) (int, bool) {
	dist := 0
	for i := range pattern {
		if pattern[i] != window[i] {
			dist++
			if dist > limit {
				return dist, false
			}
		}
	}
	return dist, true
}

// fillDeltas computes each match's distance to its predecessor as a second
// pass over the position-ordered list.
func fillDeltas(matches []Match) {
	for i := 1; i < len(matches); i++ {
		d := matches[i].Position - matches[i-1].Position
		matches[i].Delta = &d
	}
}
