package seqlang

import (
	"testing"

	"github.com/OpenTraceLab/OpenTraceBits/pkg/bitseq"
)

func mustBits(t *testing.T, s string) bitseq.BitSeq {
	t.Helper()
	bits, err := bitseq.FromString(s)
	if err != nil {
		t.Fatalf("bad bit literal %q: %v", s, err)
	}
	return bits
}

func applySeq(t *testing.T, seqText, input string) string {
	t.Helper()
	seq, err := Parse(seqText)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", seqText, err)
	}
	return seq.Apply(mustBits(t, input)).String()
}

func TestApplyTakeSkip(t *testing.T) {
	// Take 2, skip 2, cyclically: keeps bits 0-1 and 4-5 of the 8.
	if got := applySeq(t, "t2s2t2s2", "11001010"); got != "1110" {
		t.Errorf("t2s2t2s2 over 11001010 = %s, want 1110", got)
	}
}

func TestApplyTakeIsIdentity(t *testing.T) {
	if got := applySeq(t, "t4", "10110010"); got != "10110010" {
		t.Errorf("t4 = %s, want input unchanged", got)
	}
}

func TestApplyReverse(t *testing.T) {
	if got := applySeq(t, "r3", "110"); got != "011" {
		t.Errorf("r3 over 110 = %s, want 011", got)
	}
}

func TestApplyInvert(t *testing.T) {
	if got := applySeq(t, "i4", "1010"); got != "0101" {
		t.Errorf("i4 over 1010 = %s, want 0101", got)
	}
}

func TestApplySkipDropsBits(t *testing.T) {
	if got := applySeq(t, "t2s2t2", "101100"); got != "1000" {
		t.Errorf("t2s2t2 over 101100 = %s, want 1000", got)
	}
}

func TestApplyComplexSequence(t *testing.T) {
	// t4: 1011, r3: 001 -> 100, i2: 01 -> 10, s1 drops one;
	// second pass t4 clamps to the remaining 10.
	if got := applySeq(t, "t4r3i2s1", "101100101110"); got != "10111001010" {
		t.Errorf("t4r3i2s1 = %s, want 10111001010", got)
	}
}

func TestApplyClampsFinalOp(t *testing.T) {
	// r4 with only 3 bits left reverses just those 3.
	if got := applySeq(t, "t3r4", "110100"); got != "110001" {
		t.Errorf("t3r4 over 110100 = %s, want 110001", got)
	}
}

func TestApplyEmptyInput(t *testing.T) {
	seq, err := Parse("t4s2")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := seq.Apply(bitseq.BitSeq{}); len(got) != 0 {
		t.Errorf("apply over empty input produced %d bits", len(got))
	}
}

func TestApplyOutputLengthExcludesSkips(t *testing.T) {
	input := mustBits(t, "1111111111111111") // 16 bits
	seq, err := Parse("t3s1")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	out := seq.Apply(input)
	if len(out) != 12 {
		t.Errorf("output length = %d, want 12 (4 skipped)", len(out))
	}
}
