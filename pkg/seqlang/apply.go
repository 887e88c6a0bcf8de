package seqlang

import "github.com/OpenTraceLab/OpenTraceBits/pkg/bitseq"

// Apply runs the sequence over the input bits and returns the rewritten
// output. The op list is iterated cyclically with a cursor over the input:
// take, reverse, and invert copy min(count, remaining) bits into the output
// (verbatim, reversed, or flipped respectively) while skip only advances the
// cursor. The loop ends when the cursor reaches the input length; a full
// pass that makes no progress also terminates it, which is the designed
// exit rather than an error.
func (s *Sequence) Apply(input bitseq.BitSeq) bitseq.BitSeq {
	out := make(bitseq.BitSeq, 0, len(input))
	pos := 0

	for pos < len(input) {
		start := pos

		for _, op := range s.Ops {
			if pos >= len(input) {
				break
			}

			end := pos + op.Count
			if end > len(input) {
				end = len(input)
			}

			switch op.Kind {
			case Take:
				out = append(out, input[pos:end]...)
			case Reverse:
				for i := end - 1; i >= pos; i-- {
					out = append(out, input[i])
				}
			case Invert:
				for _, bit := range input[pos:end] {
					out = append(out, !bit)
				}
			case Skip:
				// Advances the cursor only.
			}

			pos = end
		}

		if pos == start {
			break
		}
	}

	return out
}
