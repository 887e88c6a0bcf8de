package pipeline

import (
	"testing"

	"github.com/OpenTraceLab/OpenTraceBits/pkg/bitseq"
)

func TestBlockInterleaveSimple(t *testing.T) {
	// 2x2 matrix: write AB/CD row-wise, read ACBD column-wise.
	input := mustBits(t, "1011")
	cfg := BlockInterleaver{BlockSize: 2, Depth: 2, Direction: Interleave}
	if got := cfg.Apply(input).String(); got != "1101" {
		t.Errorf("interleave = %s, want 1101", got)
	}
}

func TestBlockDeinterleaveSimple(t *testing.T) {
	input := mustBits(t, "1101")
	cfg := BlockInterleaver{BlockSize: 2, Depth: 2, Direction: Deinterleave}
	if got := cfg.Apply(input).String(); got != "1011" {
		t.Errorf("deinterleave = %s, want 1011", got)
	}
}

func TestBlockInterleaveRoundTrip(t *testing.T) {
	input := mustBits(t, "10101100")

	scrambled := BlockInterleaver{BlockSize: 4, Depth: 2, Direction: Interleave}.Apply(input)
	recovered := BlockInterleaver{BlockSize: 4, Depth: 2, Direction: Deinterleave}.Apply(scrambled)

	if recovered.String() != input.String() {
		t.Errorf("round trip = %s, want %s", recovered.String(), input.String())
	}
}

func TestConvolutionalPreservesLength(t *testing.T) {
	input := mustBits(t, "101101")
	cfg := ConvolutionalInterleaver{Branches: 3, DelayIncrement: 1, Direction: Interleave}
	if got := cfg.Apply(input); len(got) != len(input) {
		t.Errorf("output length = %d, want %d", len(got), len(input))
	}
}

func TestConvolutionalTotalDelay(t *testing.T) {
	cfg := ConvolutionalInterleaver{Branches: 4, DelayIncrement: 2}
	if got := cfg.TotalDelay(); got != 6 {
		t.Errorf("total delay = %d, want 6", got)
	}
}

func TestSymbolInterleaveBytes(t *testing.T) {
	// AABB as bytes through a 2x2 symbol matrix becomes ABAB.
	input := bitseq.FromBytes([]byte{0x41, 0x41, 0x42, 0x42})
	cfg := SymbolInterleaver{SymbolSize: 8, BlockSize: 2, Depth: 2, Direction: Interleave}

	got := cfg.Apply(input).Bytes()
	want := []byte{0x41, 0x42, 0x41, 0x42}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d = 0x%02X, want 0x%02X", i, got[i], want[i])
		}
	}
}

func TestSymbolInterleaveRegroups(t *testing.T) {
	// AABBCCDD through a 2-column, 4-row symbol matrix becomes ABCDABCD.
	input := bitseq.FromBytes([]byte{0x41, 0x41, 0x42, 0x42, 0x43, 0x43, 0x44, 0x44})
	cfg := SymbolInterleaver{SymbolSize: 8, BlockSize: 2, Depth: 4, Direction: Interleave}

	got := cfg.Apply(input).Bytes()
	want := []byte{0x41, 0x42, 0x43, 0x44, 0x41, 0x42, 0x43, 0x44}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d = 0x%02X, want 0x%02X", i, got[i], want[i])
		}
	}
}

func TestSymbolInterleaveRoundTrip(t *testing.T) {
	input := bitseq.FromBytes([]byte{0xAA, 0xBB, 0xCC, 0xDD})

	scrambled := SymbolInterleaver{SymbolSize: 8, BlockSize: 2, Depth: 2, Direction: Interleave}.Apply(input)
	recovered := SymbolInterleaver{SymbolSize: 8, BlockSize: 2, Depth: 2, Direction: Deinterleave}.Apply(scrambled)

	if recovered.String() != input.String() {
		t.Errorf("round trip mismatch")
	}
}

func TestInterleaveEmptyInput(t *testing.T) {
	empty := bitseq.BitSeq{}

	if got := (BlockInterleaver{BlockSize: 4, Depth: 2, Direction: Interleave}).Apply(empty); len(got) != 0 {
		t.Errorf("block interleave of empty input produced %d bits", len(got))
	}
	if got := (ConvolutionalInterleaver{Branches: 3, DelayIncrement: 1, Direction: Interleave}).Apply(empty); len(got) != 0 {
		t.Errorf("convolutional interleave of empty input produced %d bits", len(got))
	}
}

func TestInterleaveBitsAsPipelineOp(t *testing.T) {
	p := New(nil, nil, 0)
	result, errs := p.Apply(mustBits(t, "1011"), []BitOperation{
		&InterleaveBits{
			OpName:      "scramble",
			Interleaver: BlockInterleaver{BlockSize: 2, Depth: 2, Direction: Interleave},
		},
	})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if result.String() != "1101" {
		t.Errorf("result = %s, want 1101", result.String())
	}
}
