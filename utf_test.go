package weburl

import "testing"

func TestUTF8FromUTF16(t *testing.T) {
	// "A" + U+1F600 (surrogate pair) + "B"
	units := []uint16{0x0041, 0xD83D, 0xDE00, 0x0042}
	out, err := UTF8FromUTF16(units)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pts, err := DecodeUTF8CodePoints(out)
	if err != nil {
		t.Fatalf("unexpected error decoding: %v", err)
	}
	want := []rune{'A', 0x1F600, 'B'}
	if len(pts) != len(want) {
		t.Fatalf("got %d code points, want %d", len(pts), len(want))
	}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("code point %d = %U, want %U", i, pts[i], want[i])
		}
	}
}

func TestUTF8FromUTF16_loneSurrogate(t *testing.T) {
	if _, err := UTF8FromUTF16([]uint16{0xD83D}); err == nil {
		t.Error("expected error for lone surrogate")
	}
}

func TestUTF8FromUTF32(t *testing.T) {
	out, err := UTF8FromUTF32([]rune{'h', 'i', 0x1F600})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !utf8OK(string(out)) {
		t.Error("expected valid UTF-8 output")
	}
}

func TestUTF8FromUTF32_surrogateRejected(t *testing.T) {
	if _, err := UTF8FromUTF32([]rune{0xD800}); err == nil {
		t.Error("expected error for surrogate code point")
	}
}

func TestDecodeUTF8CodePoints_invalid(t *testing.T) {
	if _, err := DecodeUTF8CodePoints([]byte{0xFF, 0xFE}); err == nil {
		t.Error("expected error for invalid UTF-8 bytes")
	}
}

func TestIsValidCodePoint(t *testing.T) {
	if !isValidCodePoint('a') {
		t.Error("expected 'a' to be valid")
	}
	if isValidCodePoint(surrogateStart) {
		t.Error("did not expect a surrogate to be valid")
	}
	if isValidCodePoint(maxCodePoint + 1) {
		t.Error("did not expect an out-of-range code point to be valid")
	}
}
