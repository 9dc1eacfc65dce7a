package weburl

import "testing"

func TestPercentEncodeByte(t *testing.T) {
	tests := []struct {
		b    byte
		set  EncodeSet
		want string
	}{
		{'a', C0ControlEncodeSet, "a"},
		{' ', FragmentEncodeSet, "%20"},
		{'/', UserinfoEncodeSet, "%2F"},
		{'$', ComponentEncodeSet, "%24"},
		{'\'', SpecialQueryEncodeSet, "%27"},
		{'\'', QueryEncodeSet, "'"},
	}
	for _, tt := range tests {
		if got := PercentEncodeByte(tt.b, tt.set); got != tt.want {
			t.Errorf("PercentEncodeByte(%q) = %q, want %q", tt.b, got, tt.want)
		}
	}
}

func TestPercentEncodeString(t *testing.T) {
	got := PercentEncodeString("a b/c", UserinfoEncodeSet)
	want := "a%20b%2Fc"
	if got != want {
		t.Errorf("PercentEncodeString() = %q, want %q", got, want)
	}
}

func TestPercentDecode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"%20", " "},
		{"abc", "abc"},
		{"%2", "%2"},
		{"%zz", "%zz"},
		{"%2F", "/"},
	}
	for _, tt := range tests {
		if got := string(PercentDecode(tt.in)); got != tt.want {
			t.Errorf("PercentDecode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPercentDecodeByte_strict(t *testing.T) {
	if _, err := PercentDecodeByte("%2"); err == nil {
		t.Error("expected error for incomplete escape")
	}
	if _, err := PercentDecodeByte("%zz"); err == nil {
		t.Error("expected error for non-hex escape")
	}
	got, err := PercentDecodeByte("a%2Fb")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "a/b" {
		t.Errorf("PercentDecodeByte() = %q", got)
	}
}

func TestIsPercentEncoded(t *testing.T) {
	if !isPercentEncoded("%2F", 0) {
		t.Error("expected %2F to be recognized")
	}
	if isPercentEncoded("%2", 0) {
		t.Error("did not expect %2 to be recognized")
	}
	if isPercentEncoded("abc", 0) {
		t.Error("did not expect abc to be recognized")
	}
}
