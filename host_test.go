package weburl

import "testing"

func TestParseHost_domain(t *testing.T) {
	var verr bool
	h, err := ParseHost("EXAMPLE.com", false, &verr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Kind != HostDomain || h.Domain != "example.com" {
		t.Errorf("ParseHost() = %+v", h)
	}
}

func TestParseHost_ipv4(t *testing.T) {
	var verr bool
	h, err := ParseHost("127.0.0.1", false, &verr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Kind != HostIPv4 {
		t.Errorf("ParseHost() kind = %v, want HostIPv4", h.Kind)
	}
	if h.String() != "127.0.0.1" {
		t.Errorf("ParseHost().String() = %q", h.String())
	}
}

func TestParseHost_ipv6Bracketed(t *testing.T) {
	var verr bool
	h, err := ParseHost("[::1]", false, &verr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Kind != HostIPv6 {
		t.Errorf("ParseHost() kind = %v, want HostIPv6", h.Kind)
	}
	if h.String() != "[::1]" {
		t.Errorf("ParseHost().String() = %q", h.String())
	}
}

func TestParseHost_ipv6MissingBracket(t *testing.T) {
	var verr bool
	if _, err := ParseHost("[::1", false, &verr); err == nil {
		t.Error("expected error for unterminated IPv6 literal")
	}
}

func TestParseHost_opaqueNonSpecial(t *testing.T) {
	var verr bool
	h, err := ParseHost("Not_A_Domain", true, &verr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Kind != HostOpaque || h.Opaque != "Not_A_Domain" {
		t.Errorf("ParseHost() = %+v", h)
	}
}

func TestParseHost_opaqueRejectsForbidden(t *testing.T) {
	var verr bool
	if _, err := ParseHost("exa<mple", true, &verr); err == nil {
		t.Error("expected error for a forbidden host code point")
	}
}

func TestParseHost_opaqueAllowsPercentTriplet(t *testing.T) {
	var verr bool
	h, err := ParseHost("foo%20bar", true, &verr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Opaque != "foo%20bar" {
		t.Errorf("ParseHost() opaque = %q", h.Opaque)
	}
}

func TestParseHost_empty(t *testing.T) {
	var verr bool
	h, err := ParseHost("", false, &verr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !h.IsZero() {
		t.Errorf("ParseHost(\"\") = %+v, want zero host", h)
	}
}

func TestHost_String_empty(t *testing.T) {
	var h Host
	if got := h.String(); got != "" {
		t.Errorf("empty Host.String() = %q", got)
	}
}
