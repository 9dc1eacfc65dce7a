package weburl

import "testing"

func TestIsSpecialScheme(t *testing.T) {
	special := []string{"ftp", "file", "http", "https", "ws", "wss"}
	for _, s := range special {
		if !IsSpecialScheme(s) {
			t.Errorf("IsSpecialScheme(%q) = false, want true", s)
		}
	}
	if IsSpecialScheme("mailto") {
		t.Error("IsSpecialScheme(mailto) = true, want false")
	}
}

func TestDefaultPort(t *testing.T) {
	tests := []struct {
		scheme   string
		wantPort int
		wantOK   bool
	}{
		{"http", 80, true},
		{"https", 443, true},
		{"ws", 80, true},
		{"wss", 443, true},
		{"ftp", 21, true},
		{"file", 0, false},
		{"mailto", 0, false},
	}
	for _, tt := range tests {
		p, ok := DefaultPort(tt.scheme)
		if ok != tt.wantOK || (ok && p != tt.wantPort) {
			t.Errorf("DefaultPort(%q) = (%d, %v), want (%d, %v)", tt.scheme, p, ok, tt.wantPort, tt.wantOK)
		}
	}
}

func TestRecord_Clone(t *testing.T) {
	r := &Record{Scheme: "http", Path: []string{"a", "b"}}
	clone := r.Clone()
	clone.Path[0] = "x"
	if r.Path[0] != "a" {
		t.Error("Clone() did not deep-copy Path")
	}
}

func TestRecord_includesCredentials(t *testing.T) {
	r := &Record{Username: "u"}
	if !r.includesCredentials() {
		t.Error("expected includesCredentials() true with a username set")
	}
	r2 := &Record{}
	if r2.includesCredentials() {
		t.Error("expected includesCredentials() false with no credentials")
	}
}

func TestRecord_cannotHaveUsernamePasswordOrPort(t *testing.T) {
	fileRec := &Record{Scheme: "file", HasHost: true, Host: Host{Kind: HostDomain, Domain: "x"}}
	if !fileRec.cannotHaveUsernamePasswordOrPort() {
		t.Error("expected file: scheme to forbid username/password/port")
	}

	httpRec := &Record{Scheme: "http", HasHost: true, Host: Host{Kind: HostDomain, Domain: "x"}}
	if httpRec.cannotHaveUsernamePasswordOrPort() {
		t.Error("expected http: with a host to allow username/password/port")
	}

	noHost := &Record{Scheme: "http", HasHost: false}
	if !noHost.cannotHaveUsernamePasswordOrPort() {
		t.Error("expected hostless record to forbid username/password/port")
	}
}

func TestRecord_Equal(t *testing.T) {
	a := &Record{Scheme: "http", Host: Host{Kind: HostDomain, Domain: "example.com"}, HasHost: true, Path: []string{"a"}}
	b := &Record{Scheme: "http", Host: Host{Kind: HostDomain, Domain: "example.com"}, HasHost: true, Path: []string{"a"}}
	if !a.Equal(b) {
		t.Error("expected identical records to be Equal")
	}
	b.Path = []string{"b"}
	if a.Equal(b) {
		t.Error("expected records with different paths to not be Equal")
	}
}
