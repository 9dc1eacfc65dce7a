package weburl

/*
url.go implements § 4.L: the public façade over the basic URL parser —
construction from a string (with an optional base), property
getters/setters that re-invoke § 4.J with a state override, and the
immutable transformation/sanitizer methods § 4.L and the skyr-derived
supplements of SPEC_FULL.md describe.
*/

import "strings"

// WHATWGURL namespaces the façade's top-level entry points.
type WHATWGURL struct{}

// URL returns the URL Standard document location for the URL class.
func (WHATWGURL) URL() string {
	return "https://url.spec.whatwg.org/#url-class"
}

// URL is the public façade over a parsed Record. It owns its record
// exclusively; cloning it is deep and cheap, per § 5's ownership model.
type URL struct {
	record *Record
}

// Parse constructs a URL from input, resolved against an optional
// base. On failure it returns a typed error: a *ParseError, or a bare
// ParseErrc when the failure comes from host parsing.
func Parse(input string, base *URL) (*URL, error) {
	var baseRecord *Record
	if base != nil {
		baseRecord = base.record
	}
	rec, err := BasicParse(input, baseRecord, nil, stateSchemeStart, false)
	if err != nil {
		return nil, err
	}
	return &URL{record: rec}, nil
}

// TryParse is the non-raising constructor variant § 7 also requires:
// it returns (nil, false) instead of an error.
func TryParse(input string, base *URL) (*URL, bool) {
	u, err := Parse(input, base)
	if err != nil {
		return nil, false
	}
	return u, true
}

// Record returns the receiver's underlying structured record. The
// caller must not mutate the slices/strings it reaches through it;
// use Clone if a detached, mutable copy is needed.
func (u *URL) Record() *Record { return u.record }

// Clone returns a URL with a deep copy of the receiver's record.
func (u *URL) Clone() *URL {
	if u == nil {
		return nil
	}
	return &URL{record: u.record.Clone()}
}

// Equal reports whether two URLs' records are structurally identical,
// the public operation implied by property P1.
func (u *URL) Equal(o *URL) bool {
	if u == nil || o == nil {
		return u == o
	}
	return u.record.Equal(o.record)
}

// Href returns the canonical serialization of the receiver (§ 4.K).
func (u *URL) Href() string { return Serialize(u.record, false) }

// String satisfies fmt.Stringer with the canonical serialization.
func (u *URL) String() string { return u.Href() }

// Protocol returns the scheme followed by ':'.
func (u *URL) Protocol() string { return u.record.Scheme + ":" }

// Origin returns the tuple origin serialization: scheme + "://" +
// host + port for special non-file schemes, or "null" otherwise.
func (u *URL) Origin() string {
	r := u.record
	if !IsSpecialScheme(r.Scheme) || r.Scheme == "file" {
		return "null"
	}
	if !r.HasHost {
		return "null"
	}
	s := r.Scheme + "://" + r.Host.String()
	if r.HasPort {
		s += ":" + itoa(r.Port)
	}
	return s
}

// Username returns the percent-encoded username.
func (u *URL) Username() string { return u.record.Username }

// Password returns the percent-encoded password.
func (u *URL) Password() string { return u.record.Password }

// Host returns "hostname[:port]", or "" if there is no host.
func (u *URL) Host() string {
	if !u.record.HasHost {
		return ""
	}
	h := u.record.Host.String()
	if u.record.HasPort {
		h += ":" + itoa(u.record.Port)
	}
	return h
}

// Hostname returns the host alone, with no port.
func (u *URL) Hostname() string {
	if !u.record.HasHost {
		return ""
	}
	return u.record.Host.String()
}

// Port returns the port as a string, or "" if absent.
func (u *URL) Port() string {
	if !u.record.HasPort {
		return ""
	}
	return itoa(u.record.Port)
}

// Pathname returns the path serialization without query or fragment.
func (u *URL) Pathname() string {
	r := u.record
	if r.CannotBeABaseURL {
		if len(r.Path) > 0 {
			return r.Path[0]
		}
		return ""
	}
	var b strings.Builder
	for _, seg := range r.Path {
		b.WriteByte('/')
		b.WriteString(seg)
	}
	return b.String()
}

// Search returns the query prefixed with '?' if non-empty, else "".
func (u *URL) Search() string {
	if !u.record.HasQuery || u.record.Query == "" {
		return ""
	}
	return "?" + u.record.Query
}

// Hash returns the fragment prefixed with '#' if non-empty, else "".
func (u *URL) Hash() string {
	if !u.record.HasFragment || u.record.Fragment == "" {
		return ""
	}
	return "#" + u.record.Fragment
}

// CannotBeABaseURL reports the receiver's cannot_be_a_base_url flag.
func (u *URL) CannotBeABaseURL() bool { return u.record.CannotBeABaseURL }

// ValidationError reports whether any non-fatal deviation was observed
// while parsing the receiver.
func (u *URL) ValidationError() bool { return u.record.ValidationError }

// setterOverride re-invokes the basic parser on a clone of the
// receiver's record with the given state override, returning a new
// *Record on success or nil on any failure (§ 7: "setters ... leave
// the original record unchanged and return a failure").
func (u *URL) setterOverride(input string, state parserState) (*Record, error) {
	clone := u.record.Clone()
	return BasicParse(input, nil, clone, state, true)
}

// SetProtocol implements the protocol setter: input is parsed from
// scheme_start with a state override.
func (u *URL) SetProtocol(scheme string) error {
	rec, err := u.setterOverride(scheme+":", stateSchemeStart)
	if err != nil {
		return err
	}
	u.record = rec
	return nil
}

// SetUsername implements the username setter directly (§ 4.L has no
// dedicated parser state for it; it percent-encodes under the
// userinfo set, as § 4.J's authority state does).
func (u *URL) SetUsername(username string) error {
	if u.record.cannotHaveUsernamePasswordOrPort() {
		return ErrCannotHaveUsernamePasswordOrPort
	}
	u.record.Username = PercentEncodeString(username, UserinfoEncodeSet)
	return nil
}

// SetPassword implements the password setter.
func (u *URL) SetPassword(password string) error {
	if u.record.cannotHaveUsernamePasswordOrPort() {
		return ErrCannotHaveUsernamePasswordOrPort
	}
	u.record.Password = PercentEncodeString(password, UserinfoEncodeSet)
	return nil
}

// SetHost implements the host setter: re-invoked from host state.
func (u *URL) SetHost(host string) error {
	if u.record.CannotBeABaseURL {
		return ErrCannotBeABaseURL
	}
	rec, err := u.setterOverride(host, stateHost)
	if err != nil {
		return err
	}
	u.record = rec
	return nil
}

// SetHostname implements the hostname setter: re-invoked from hostname
// state, which stops before the port.
func (u *URL) SetHostname(hostname string) error {
	if u.record.CannotBeABaseURL {
		return ErrCannotBeABaseURL
	}
	rec, err := u.setterOverride(hostname, stateHostname)
	if err != nil {
		return err
	}
	u.record = rec
	return nil
}

// SetPort implements the port setter. An empty string clears the port.
func (u *URL) SetPort(port string) error {
	if u.record.cannotHaveUsernamePasswordOrPort() {
		return ErrCannotHaveUsernamePasswordOrPort
	}
	if port == "" {
		u.record.HasPort = false
		return nil
	}
	rec, err := u.setterOverride(port, statePort)
	if err != nil {
		return err
	}
	u.record = rec
	return nil
}

// SetPathname implements the pathname setter.
func (u *URL) SetPathname(pathname string) error {
	if u.record.CannotBeABaseURL {
		return ErrCannotBeABaseURL
	}
	clone := u.record.Clone()
	clone.Path = nil
	rec, err := BasicParse(pathname, nil, clone, statePathStart, true)
	if err != nil {
		return err
	}
	u.record = rec
	return nil
}

// SetSearch implements the search setter; an empty string clears the
// query entirely rather than producing an empty-but-present one.
func (u *URL) SetSearch(search string) error {
	if search == "" {
		u.record.HasQuery = false
		u.record.Query = ""
		return nil
	}
	input := trimPfx(search, "?")
	u.record.Query = ""
	u.record.HasQuery = true
	rec, err := u.setterOverride(input, stateQuery)
	if err != nil {
		return err
	}
	u.record = rec
	return nil
}

// SetHash implements the hash setter; an empty string clears the
// fragment entirely.
func (u *URL) SetHash(hash string) error {
	if hash == "" {
		u.record.HasFragment = false
		u.record.Fragment = ""
		return nil
	}
	input := trimPfx(hash, "#")
	u.record.Fragment = ""
	u.record.HasFragment = true
	rec, err := u.setterOverride(input, stateFragment)
	if err != nil {
		return err
	}
	u.record = rec
	return nil
}

// WithScheme returns a copy of the receiver with its scheme replaced,
// or an error if the replacement is rejected (§ 4.L immutable
// builders).
func (u *URL) WithScheme(scheme string) (*URL, error) {
	clone := u.Clone()
	if err := clone.SetProtocol(scheme); err != nil {
		return nil, err
	}
	return clone, nil
}

// WithHostname returns a copy of the receiver with its hostname
// replaced.
func (u *URL) WithHostname(hostname string) (*URL, error) {
	clone := u.Clone()
	if err := clone.SetHostname(hostname); err != nil {
		return nil, err
	}
	return clone, nil
}

// WithPort returns a copy of the receiver with its port replaced.
func (u *URL) WithPort(port string) (*URL, error) {
	clone := u.Clone()
	if err := clone.SetPort(port); err != nil {
		return nil, err
	}
	return clone, nil
}

// WithPathname returns a copy of the receiver with its path replaced.
func (u *URL) WithPathname(pathname string) (*URL, error) {
	clone := u.Clone()
	if err := clone.SetPathname(pathname); err != nil {
		return nil, err
	}
	return clone, nil
}

// WithSearch returns a copy of the receiver with its query replaced.
func (u *URL) WithSearch(search string) (*URL, error) {
	clone := u.Clone()
	if err := clone.SetSearch(search); err != nil {
		return nil, err
	}
	return clone, nil
}

// WithFragment returns a copy of the receiver with its fragment
// replaced.
func (u *URL) WithFragment(fragment string) (*URL, error) {
	clone := u.Clone()
	if err := clone.SetHash(fragment); err != nil {
		return nil, err
	}
	return clone, nil
}

// Sanitize returns a copy of the receiver with credentials and
// fragment stripped.
func (u *URL) Sanitize() *URL {
	clone := u.Clone()
	clone.record.Username = ""
	clone.record.Password = ""
	clone.record.HasFragment = false
	clone.record.Fragment = ""
	return clone
}

// WithoutQuery returns a copy of the receiver with the query removed.
func (u *URL) WithoutQuery() *URL {
	clone := u.Clone()
	clone.record.HasQuery = false
	clone.record.Query = ""
	return clone
}

// WithoutFragment returns a copy of the receiver with the fragment
// removed.
func (u *URL) WithoutFragment() *URL {
	clone := u.Clone()
	clone.record.HasFragment = false
	clone.record.Fragment = ""
	return clone
}

// WithoutParams returns a copy of the receiver with the named query
// parameters removed from its (application/x-www-form-urlencoded)
// query string. Parameter order among the survivors is preserved.
func (u *URL) WithoutParams(names map[string]bool) *URL {
	clone := u.Clone()
	if !clone.record.HasQuery || clone.record.Query == "" {
		return clone
	}

	pairs := split(clone.record.Query, "&")
	kept := pairs[:0]
	for _, p := range pairs {
		key := p
		if i := stridx(p, "="); i >= 0 {
			key = p[:i]
		}
		if decoded, err := PercentDecodeByte(key); err == nil {
			key = string(decoded)
		}
		if !names[key] {
			kept = append(kept, p)
		}
	}
	clone.record.Query = join(kept, "&")
	if clone.record.Query == "" {
		clone.record.HasQuery = false
	}
	return clone
}

// Filepath returns the platform-neutral filesystem path a file: URL
// names, joining its decoded path segments with '/'. It is the
// minimal file:-URL seam SPEC_FULL.md carries over from skyr's
// filesystem/path.hpp; broader path-normalization semantics remain
// the embedding host's responsibility per spec.md §1's Non-goals.
func (u *URL) Filepath() (string, error) {
	if u.record.Scheme != "file" {
		return "", errorTxt("not a file: URL")
	}
	segs := make([]string, len(u.record.Path))
	for i, s := range u.record.Path {
		decoded := PercentDecode(s)
		segs[i] = string(decoded)
	}
	return "/" + join(segs, "/"), nil
}
