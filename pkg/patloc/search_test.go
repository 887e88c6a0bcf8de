package patloc

import (
	"context"
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

func mustPattern(t *testing.T, format Format, input string, garbles int) *Pattern {
	t.Helper()
	p, err := New("test", format, input, garbles)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return p
}

func TestSearchExactMatches(t *testing.T) {
	p := mustPattern(t, FormatBits, "101", 0)
	matches, err := p.Search(context.Background(), mustBits(t, "10110101"))
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	wantPositions := []int{0, 3, 5}
	if len(matches) != len(wantPositions) {
		t.Fatalf("got %d matches, want %d", len(matches), len(wantPositions))
	}
	for i, m := range matches {
		if m.Position != wantPositions[i] {
			t.Errorf("match %d at %d, want %d", i, m.Position, wantPositions[i])
		}
		if m.Mismatches != 0 {
			t.Errorf("match %d has %d mismatches, want 0", i, m.Mismatches)
		}
	}

	if matches[0].Delta != nil {
		t.Errorf("first match delta = %d, want nil", *matches[0].Delta)
	}
	if matches[1].Delta == nil || *matches[1].Delta != 3 {
		t.Errorf("second match delta = %v, want 3", matches[1].Delta)
	}
	if matches[2].Delta == nil || *matches[2].Delta != 2 {
		t.Errorf("third match delta = %v, want 2", matches[2].Delta)
	}
}

func TestSearchGarbleTolerance(t *testing.T) {
	// 1111 vs windows of 1011 0111: distance varies per window.
	p := mustPattern(t, FormatBits, "1111", 1)
	matches, err := p.Search(context.Background(), mustBits(t, "10110111"))
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	// Windows: 1011(1), 0110(2), 1101(1), 1011(1), 0111(1).
	want := map[int]int{0: 1, 2: 1, 3: 1, 4: 1}
	for _, m := range matches {
		dist, ok := want[m.Position]
		if !ok {
			t.Errorf("unexpected match at %d (mismatches %d)", m.Position, m.Mismatches)
			continue
		}
		if m.Mismatches != dist {
			t.Errorf("position %d: mismatches = %d, want %d", m.Position, m.Mismatches, dist)
		}
		delete(want, m.Position)
	}
	for pos := range want {
		t.Errorf("missing match at %d", pos)
	}
}

func TestSearchOverlappingRun(t *testing.T) {
	// A short low-entropy pattern inside a run of identical bits matches at
	// every shiftable start.
	p := mustPattern(t, FormatBits, "11", 0)
	matches, err := p.Search(context.Background(), mustBits(t, "11111"))
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(matches) != 4 {
		t.Fatalf("got %d matches, want 4", len(matches))
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Delta == nil || *matches[i].Delta != 1 {
			t.Errorf("match %d delta = %v, want 1", i, matches[i].Delta)
		}
	}
}

func TestSearchPatternLongerThanHaystack(t *testing.T) {
	p := mustPattern(t, FormatBits, "10101010", 0)
	matches, err := p.Search(context.Background(), mustBits(t, "1010"))
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("got %d matches, want 0", len(matches))
	}
}

func TestSearchRecordsWindowBits(t *testing.T) {
	p := mustPattern(t, FormatBits, "110", 1)
	matches, err := p.Search(context.Background(), mustBits(t, "111"))
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if got := matches[0].BitsString(); got != "111" {
		t.Errorf("window bits = %s, want actual haystack bits 111", got)
	}
}

func TestSearchFullToleranceMatchesEverywhere(t *testing.T) {
	p := mustPattern(t, FormatBits, "111", 3)
	matches, err := p.Search(context.Background(), mustBits(t, "000000"))
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(matches) != 4 {
		t.Errorf("got %d matches, want every window", len(matches))
	}
}

func TestSearchCanceledContext(t *testing.T) {
	p := mustPattern(t, FormatBits, "101", 0)
	prior := []Match{{Position: 42}}
	p.Matches = prior

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	matches, err := p.Search(ctx, mustBits(t, "10110101"))
	if err != context.Canceled {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if matches != nil {
		t.Errorf("canceled search returned %d matches, want none", len(matches))
	}
	if len(p.Matches) != 1 || p.Matches[0].Position != 42 {
		t.Errorf("canceled search disturbed stored matches: %v", p.Matches)
	}
}
