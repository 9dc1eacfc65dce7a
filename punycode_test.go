package weburl

import "testing"

func TestPunycodeEncode(t *testing.T) {
	tests := []struct {
		input []rune
		want  string
	}{
		{[]rune("abc"), "abc-"},
		{[]rune("bücher"), "bcher-kva"},
		{[]rune("mañana"), "maana-pta"},
	}
	for _, tt := range tests {
		got, err := PunycodeEncode(tt.input)
		if err != nil {
			t.Fatalf("PunycodeEncode(%q) error: %v", string(tt.input), err)
		}
		if got != tt.want {
			t.Errorf("PunycodeEncode(%q) = %q, want %q", string(tt.input), got, tt.want)
		}
	}
}

func TestPunycodeDecode(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"abc-", "abc"},
		{"bcher-kva", "bücher"},
		{"maana-pta", "mañana"},
	}
	for _, tt := range tests {
		got, err := PunycodeDecode(tt.input)
		if err != nil {
			t.Fatalf("PunycodeDecode(%q) error: %v", tt.input, err)
		}
		if string(got) != tt.want {
			t.Errorf("PunycodeDecode(%q) = %q, want %q", tt.input, string(got), tt.want)
		}
	}
}

func TestPunycodeRoundTrip(t *testing.T) {
	inputs := [][]rune{
		[]rune("straße"),
		[]rune("例え"),
		[]rune("xn--already-ascii"),
	}
	for _, in := range inputs {
		encoded, err := PunycodeEncode(in)
		if err != nil {
			t.Fatalf("encode(%q) error: %v", string(in), err)
		}
		decoded, err := PunycodeDecode(encoded)
		if err != nil {
			t.Fatalf("decode(%q) error: %v", encoded, err)
		}
		if string(decoded) != string(in) {
			t.Errorf("round trip %q -> %q -> %q", string(in), encoded, string(decoded))
		}
	}
}

func TestPunycodeDecode_malformed(t *testing.T) {
	if _, err := PunycodeDecode("!!!"); err == nil {
		t.Error("expected error decoding malformed punycode")
	}
}
