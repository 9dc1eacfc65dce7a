package weburl

import "testing"

func TestParseIPv4(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
	}{
		{"127.0.0.1", 0x7F000001},
		{"255.255.255.255", 0xFFFFFFFF},
		{"0.0.0.0", 0},
		{"0x7f.0.0.1", 0x7F000001},
		{"017.0.0.1", 0x0F000001}, // octal 017 == 15
		{"1.2.3", 0x01020003},     // 3-part form
		{"1.2", 0x01000002},       // 2-part form
		{"1", 1},                  // 1-part form
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var verr bool
			got, err := ParseIPv4(tt.in, &verr)
			if err != nil {
				t.Fatalf("ParseIPv4(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseIPv4(%q) = %#x, want %#x", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseIPv4_errors(t *testing.T) {
	bad := []string{
		"1.2.3.4.5",
		"1..2.3",
		"256.0.0.1",
		"1.2.3.99999999999",
	}
	for _, in := range bad {
		var verr bool
		if _, err := ParseIPv4(in, &verr); err == nil {
			t.Errorf("ParseIPv4(%q) expected error, got none", in)
		}
	}
}

func TestSerializeIPv4(t *testing.T) {
	if got := SerializeIPv4(0x7F000001); got != "127.0.0.1" {
		t.Errorf("SerializeIPv4() = %q", got)
	}
	if got := SerializeIPv4(0); got != "0.0.0.0" {
		t.Errorf("SerializeIPv4() = %q", got)
	}
}

func TestEndsInANumber(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"127.0.0.1", true},
		{"example.com", false},
		{"1.2.3.", true},
		{"0x7f", true},
		{"example.1", true},
	}
	for _, tt := range tests {
		if got := EndsInANumber(tt.in); got != tt.want {
			t.Errorf("EndsInANumber(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
