package bitseq

import "testing"

func TestFromBytesMSBFirst(t *testing.T) {
	bits := FromBytes([]byte{0xA5})
	want := "10100101"
	if bits.String() != want {
		t.Errorf("FromBytes(0xA5) = %s, want %s", bits.String(), want)
	}
}

func TestBytesRoundTrip(t *testing.T) {
	data := []byte{0x00, 0xFF, 0x42, 0x17}
	bits := FromBytes(data)
	out := bits.Bytes()
	if len(out) != len(data) {
		t.Fatalf("round trip length = %d, want %d", len(out), len(data))
	}
	for i := range data {
		if out[i] != data[i] {
			t.Errorf("byte %d: got 0x%02X, want 0x%02X", i, out[i], data[i])
		}
	}
}

func TestBytesPartialBytePadding(t *testing.T) {
	bits, err := FromString("101")
	if err != nil {
		t.Fatalf("FromString failed: %v", err)
	}
	out := bits.Bytes()
	if len(out) != 1 {
		t.Fatalf("got %d bytes, want 1", len(out))
	}
	if out[0] != 0xA0 {
		t.Errorf("got 0x%02X, want 0xA0", out[0])
	}
}

func TestFromStringRejectsOtherRunes(t *testing.T) {
	if _, err := FromString("10x1"); err == nil {
		t.Errorf("expected error for non-bit character")
	}
}

func TestInvertIsInvolution(t *testing.T) {
	bits, err := FromString("110010100111")
	if err != nil {
		t.Fatalf("FromString failed: %v", err)
	}
	twice := bits.Invert().Invert()
	if twice.String() != bits.String() {
		t.Errorf("invert twice = %s, want %s", twice.String(), bits.String())
	}
}

func TestInvertAllocates(t *testing.T) {
	bits, _ := FromString("1010")
	inverted := bits.Invert()
	if bits.String() != "1010" {
		t.Errorf("input mutated to %s", bits.String())
	}
	if inverted.String() != "0101" {
		t.Errorf("inverted = %s, want 0101", inverted.String())
	}
}

func TestReverse(t *testing.T) {
	bits, _ := FromString("1100")
	if got := bits.Reverse().String(); got != "0011" {
		t.Errorf("reverse = %s, want 0011", got)
	}
}

func TestSliceClamps(t *testing.T) {
	bits, _ := FromString("10110010")

	cases := []struct {
		name       string
		start, end int
		want       string
	}{
		{"inner", 2, 5, "110"},
		{"negative start", -3, 4, "1011"},
		{"end beyond len", 5, 100, "010"},
		{"start past end", 6, 4, ""},
		{"equal bounds", 3, 3, ""},
	}

	for _, tc := range cases {
		if got := bits.Slice(tc.start, tc.end).String(); got != tc.want {
			t.Errorf("%s: Slice(%d, %d) = %q, want %q", tc.name, tc.start, tc.end, got, tc.want)
		}
	}
}

func TestHammingDistance(t *testing.T) {
	a, _ := FromString("10110")
	b, _ := FromString("10011")

	dist, err := HammingDistance(a, b)
	if err != nil {
		t.Fatalf("HammingDistance failed: %v", err)
	}
	if dist != 2 {
		t.Errorf("distance = %d, want 2", dist)
	}

	if _, err := HammingDistance(a, a[:3]); err == nil {
		t.Errorf("expected error for mismatched lengths")
	}
}
