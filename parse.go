package weburl

/*
parse.go implements § 4.J: the basic URL parser, a 22-state machine
driven by a moving pointer over the UTF-8 bytes of the (pre-processed)
input, plus one past-the-end EOF sentinel position. It consumes a base
URL, an optional pre-seeded record, an optional state override, and
accumulates a validation_error flag rather than failing on anything
but the hard errors of § 7.
*/

type parserState uint8

const (
	stateSchemeStart parserState = iota
	stateScheme
	stateNoScheme
	stateSpecialRelativeOrAuthority
	statePathOrAuthority
	stateRelative
	stateRelativeSlash
	stateSpecialAuthoritySlashes
	stateSpecialAuthorityIgnoreSlashes
	stateAuthority
	stateHost
	stateHostname
	statePort
	stateFile
	stateFileSlash
	stateFileHost
	statePathStart
	statePath
	stateCannotBeABaseURLPath
	stateQuery
	stateFragment
	stateDone
)

// eof is the one-past-the-end sentinel byte § 4.J's pre-processing
// note requires the state machine to be able to dereference safely.
const eof = -1

// WHATWGParser namespaces the basic URL parser entry point.
type WHATWGParser struct{}

// URL returns the URL Standard document location for the basic URL
// parser.
func (WHATWGParser) URL() string {
	return "https://url.spec.whatwg.org/#concept-basic-url-parser"
}

type parseContext struct {
	input           string
	pointer         int
	state           parserState
	override        bool
	buffer          []byte
	atSignSeen      bool
	insideBrackets  bool
	base            *Record
	url             *Record
	validationError bool
}

func (c *parseContext) byteAt(i int) int {
	if i < 0 || i >= len(c.input) {
		return eof
	}
	return int(c.input[i])
}

func (c *parseContext) current() int { return c.byteAt(c.pointer) }

func (c *parseContext) remaining() string {
	if c.pointer+1 >= len(c.input) {
		return ""
	}
	return c.input[c.pointer+1:]
}

// BasicParse implements basic_parse(input, base?, url?, state_override?)
// of § 4.J. A nil url starts a fresh record; a non-nil url is mutated
// in place (used by the façade's setters via stateOverride).
func BasicParse(input string, base *Record, url *Record, stateOverride parserState, hasOverride bool) (*Record, error) {
	trimmed, trimErr := preprocess(input)

	rec := url
	if rec == nil {
		rec = &Record{}
	}

	c := &parseContext{
		input:    trimmed,
		pointer:  0,
		base:     base,
		url:      rec,
		override: hasOverride,
	}
	if trimErr {
		c.validationError = true
	}

	if hasOverride {
		c.state = stateOverride
	} else {
		c.state = stateSchemeStart
	}

	for {
		b := c.current()
		done, err := c.step(b)
		rec.ValidationError = rec.ValidationError || c.validationError
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
		c.pointer++
	}

	return rec, nil
}

// preprocess implements § 4.J's pre-processing steps: trim leading and
// trailing C0-controls/space, then strip every tab/LF/CR anywhere in
// the string. Returns whether any byte was removed (validation_error).
func preprocess(input string) (string, bool) {
	var trimmedAny bool

	start, end := 0, len(input)
	for start < end && isC0OrSpace(input[start]) {
		start++
		trimmedAny = true
	}
	for end > start && isC0OrSpace(input[end-1]) {
		end--
		trimmedAny = true
	}
	input = input[start:end]

	var b []byte
	for i := 0; i < len(input); i++ {
		if isASCIITabOrNewline(input[i]) {
			trimmedAny = true
			continue
		}
		b = append(b, input[i])
	}
	if b == nil {
		return input, trimmedAny
	}
	return string(b), trimmedAny
}

// step executes exactly one state transition. It returns done=true
// once the parse has terminated (success or an override's implicit
// stop), or an error for a hard § 7 failure.
func (c *parseContext) step(b int) (bool, error) {
	switch c.state {
	case stateSchemeStart:
		return c.stepSchemeStart(b)
	case stateScheme:
		return c.stepScheme(b)
	case stateNoScheme:
		return c.stepNoScheme(b)
	case stateSpecialRelativeOrAuthority:
		return c.stepSpecialRelativeOrAuthority(b)
	case statePathOrAuthority:
		return c.stepPathOrAuthority(b)
	case stateRelative:
		return c.stepRelative(b)
	case stateRelativeSlash:
		return c.stepRelativeSlash(b)
	case stateSpecialAuthoritySlashes:
		return c.stepSpecialAuthoritySlashes(b)
	case stateSpecialAuthorityIgnoreSlashes:
		return c.stepSpecialAuthorityIgnoreSlashes(b)
	case stateAuthority:
		return c.stepAuthority(b)
	case stateHost, stateHostname:
		return c.stepHost(b)
	case statePort:
		return c.stepPort(b)
	case stateFile:
		return c.stepFile(b)
	case stateFileSlash:
		return c.stepFileSlash(b)
	case stateFileHost:
		return c.stepFileHost(b)
	case statePathStart:
		return c.stepPathStart(b)
	case statePath:
		return c.stepPath(b)
	case stateCannotBeABaseURLPath:
		return c.stepCannotBeABaseURLPath(b)
	case stateQuery:
		return c.stepQuery(b)
	case stateFragment:
		return c.stepFragment(b)
	case stateDone:
		return true, nil
	}
	return true, nil
}

// 1. scheme_start
func (c *parseContext) stepSchemeStart(b int) (bool, error) {
	if b != eof && isASCIIAlpha(byte(b)) {
		c.buffer = append(c.buffer, lcByte(byte(b)))
		c.state = stateScheme
		return false, nil
	}
	if !c.override {
		c.state = stateNoScheme
		c.pointer--
		return false, nil
	}
	return false, newParseError(ErrInvalidSchemeCharacter, c.input)
}

func lcByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}

// 2. scheme
func (c *parseContext) stepScheme(b int) (bool, error) {
	if b != eof && (isASCIIAlphanumeric(byte(b)) || b == '+' || b == '-' || b == '.') {
		c.buffer = append(c.buffer, lcByte(byte(b)))
		return false, nil
	}
	if b == ':' {
		scheme := string(c.buffer)
		if c.override {
			wasSpecial := c.url.IsSpecial()
			isSpecial := IsSpecialScheme(scheme)
			if wasSpecial != isSpecial {
				return true, nil
			}
			if scheme == "file" && (c.url.includesCredentials() || c.url.HasPort) {
				return true, nil
			}
			if c.url.Scheme == "file" && c.url.Host.Kind == HostEmpty {
				return true, nil
			}
		}
		c.url.Scheme = scheme
		c.buffer = nil

		if c.override {
			if c.url.HasPort {
				if p, ok := DefaultPort(c.url.Scheme); ok && p == c.url.Port {
					c.url.HasPort = false
				}
			}
			return true, nil
		}

		if c.url.Scheme == "file" {
			c.state = stateFile
			return false, nil
		}
		if c.url.IsSpecial() && c.base != nil && c.base.Scheme == c.url.Scheme {
			c.state = stateSpecialRelativeOrAuthority
			return false, nil
		}
		if c.url.IsSpecial() {
			c.state = stateSpecialAuthoritySlashes
			return false, nil
		}
		if c.byteAt(c.pointer+1) == '/' {
			c.state = statePathOrAuthority
			c.pointer++
			return false, nil
		}
		c.url.CannotBeABaseURL = true
		c.url.Path = append(c.url.Path, "")
		c.state = stateCannotBeABaseURLPath
		return false, nil
	}
	if !c.override {
		c.buffer = nil
		c.state = stateNoScheme
		c.pointer = -1
		return false, nil
	}
	return false, newParseError(ErrInvalidSchemeCharacter, c.input)
}

// 3. no_scheme
func (c *parseContext) stepNoScheme(b int) (bool, error) {
	if c.base == nil || (c.base.CannotBeABaseURL && b != '#') {
		return false, newParseError(ErrNotAnAbsoluteURLWithFragment, c.input)
	}
	if c.base.CannotBeABaseURL && b == '#' {
		c.url.Scheme = c.base.Scheme
		c.url.Path = append([]string(nil), c.base.Path...)
		c.url.Query = c.base.Query
		c.url.HasQuery = c.base.HasQuery
		c.url.CannotBeABaseURL = true
		c.state = stateFragment
		return false, nil
	}
	if c.base.Scheme != "file" {
		c.state = stateRelative
		c.pointer--
		return false, nil
	}
	c.state = stateFile
	c.pointer--
	return false, nil
}

// 4. special_relative_or_authority
func (c *parseContext) stepSpecialRelativeOrAuthority(b int) (bool, error) {
	if b == '/' && c.byteAt(c.pointer+1) == '/' {
		c.pointer++
		c.state = stateSpecialAuthorityIgnoreSlashes
		return false, nil
	}
	c.validationError = true
	c.state = stateRelative
	c.pointer--
	return false, nil
}

// 5. path_or_authority
func (c *parseContext) stepPathOrAuthority(b int) (bool, error) {
	if b == '/' {
		c.state = stateAuthority
		return false, nil
	}
	c.state = statePath
	c.pointer--
	return false, nil
}

func (c *parseContext) inheritBase() {
	c.url.Username = c.base.Username
	c.url.Password = c.base.Password
	c.url.Host = c.base.Host
	c.url.HasHost = c.base.HasHost
	c.url.Port = c.base.Port
	c.url.HasPort = c.base.HasPort
}

// 6. relative
func (c *parseContext) stepRelative(b int) (bool, error) {
	c.url.Scheme = c.base.Scheme
	switch {
	case b == '/':
		c.state = stateRelativeSlash
	case c.url.IsSpecial() && b == '\\':
		c.validationError = true
		c.state = stateRelativeSlash
	case b == '?':
		c.inheritBase()
		c.url.Path = append([]string(nil), c.base.Path...)
		c.url.Query = ""
		c.url.HasQuery = true
		c.state = stateQuery
	case b == '#':
		c.inheritBase()
		c.url.Path = append([]string(nil), c.base.Path...)
		c.url.Query = c.base.Query
		c.url.HasQuery = c.base.HasQuery
		c.url.Fragment = ""
		c.url.HasFragment = true
		c.state = stateFragment
	case b == eof:
		c.inheritBase()
		c.url.Path = append([]string(nil), c.base.Path...)
		c.url.Query = c.base.Query
		c.url.HasQuery = c.base.HasQuery
		c.state = stateDone
		return true, nil
	default:
		c.inheritBase()
		c.url.Path = append([]string(nil), c.base.Path...)
		if len(c.url.Path) > 0 {
			c.url.Path = c.url.Path[:len(c.url.Path)-1]
		}
		c.state = statePath
		c.pointer--
	}
	return false, nil
}

// 7. relative_slash
func (c *parseContext) stepRelativeSlash(b int) (bool, error) {
	if c.url.IsSpecial() && (b == '/' || b == '\\') {
		if b == '\\' {
			c.validationError = true
		}
		c.state = stateSpecialAuthorityIgnoreSlashes
		return false, nil
	}
	if b == '/' {
		c.state = stateAuthority
		return false, nil
	}
	c.url.Username = c.base.Username
	c.url.Password = c.base.Password
	c.url.Host = c.base.Host
	c.url.HasHost = c.base.HasHost
	c.url.Port = c.base.Port
	c.url.HasPort = c.base.HasPort
	c.state = statePath
	c.pointer--
	return false, nil
}

// 8. special_authority_slashes
func (c *parseContext) stepSpecialAuthoritySlashes(b int) (bool, error) {
	if b == '/' && c.byteAt(c.pointer+1) == '/' {
		c.pointer++
		c.state = stateSpecialAuthorityIgnoreSlashes
		return false, nil
	}
	c.validationError = true
	c.state = stateSpecialAuthorityIgnoreSlashes
	c.pointer--
	return false, nil
}

// 9. special_authority_ignore_slashes
func (c *parseContext) stepSpecialAuthorityIgnoreSlashes(b int) (bool, error) {
	if b != '/' && b != '\\' {
		c.state = stateAuthority
		c.pointer--
		return false, nil
	}
	c.validationError = true
	return false, nil
}

// 10. authority
func (c *parseContext) stepAuthority(b int) (bool, error) {
	if b == '@' {
		c.validationError = true
		if c.atSignSeen {
			c.buffer = append([]byte("%40"), c.buffer...)
		}
		c.atSignSeen = true
		var user, pass []byte
		seenColon := false
		for _, ch := range c.buffer {
			if ch == ':' && !seenColon {
				seenColon = true
				continue
			}
			if seenColon {
				pass = append(pass, ch)
			} else {
				user = append(user, ch)
			}
		}
		c.url.Username += PercentEncodeString(string(user), UserinfoEncodeSet)
		c.url.Password += PercentEncodeString(string(pass), UserinfoEncodeSet)
		c.buffer = nil
		return false, nil
	}

	if b == eof || b == '/' || b == '?' || b == '#' || (c.url.IsSpecial() && b == '\\') {
		if c.atSignSeen && len(c.buffer) == 0 {
			return false, newParseError(ErrEmptyHostname, c.input)
		}
		c.pointer -= len(c.buffer) + 1
		c.buffer = nil
		c.state = stateHost
		return false, nil
	}

	c.buffer = append(c.buffer, byte(b))
	return false, nil
}

// 11. host / hostname
func (c *parseContext) stepHost(b int) (bool, error) {
	if c.override && c.url.Scheme == "file" {
		c.pointer--
		c.state = stateFileHost
		return false, nil
	}

	if b == ':' && !c.insideBrackets {
		if len(c.buffer) == 0 {
			return false, newParseError(ErrEmptyHostname, c.input)
		}
		if c.override && c.state == stateHostname {
			return true, nil
		}
		host, err := ParseHost(string(c.buffer), !c.url.IsSpecial(), &c.validationError)
		if err != nil {
			return false, err
		}
		c.url.Host = host
		c.url.HasHost = true
		c.buffer = nil
		c.state = statePort
		return false, nil
	}

	if b == eof || b == '/' || b == '?' || b == '#' || (c.url.IsSpecial() && b == '\\') {
		c.pointer--
		if c.url.IsSpecial() && len(c.buffer) == 0 {
			return false, newParseError(ErrEmptyHostname, c.input)
		}
		if c.override && len(c.buffer) == 0 && (c.url.includesCredentials() || c.url.HasPort) {
			return true, nil
		}
		host, err := ParseHost(string(c.buffer), !c.url.IsSpecial(), &c.validationError)
		if err != nil {
			return false, err
		}
		c.url.Host = host
		c.url.HasHost = true
		c.buffer = nil
		if c.override {
			return true, nil
		}
		c.state = statePathStart
		return false, nil
	}

	if b == '[' {
		c.insideBrackets = true
	} else if b == ']' {
		c.insideBrackets = false
	}
	c.buffer = append(c.buffer, byte(b))
	return false, nil
}

// 12. port
func (c *parseContext) stepPort(b int) (bool, error) {
	if b != eof && isASCIIDigit(byte(b)) {
		c.buffer = append(c.buffer, byte(b))
		return false, nil
	}

	if b == eof || b == '/' || b == '?' || b == '#' || (c.url.IsSpecial() && b == '\\') || c.override {
		if len(c.buffer) > 0 {
			n, err := atoi(string(c.buffer))
			if err != nil || n > 65535 {
				return false, newParseError(ErrInvalidPort, c.input)
			}
			if def, ok := DefaultPort(c.url.Scheme); ok && def == n {
				c.url.HasPort = false
			} else {
				c.url.Port = n
				c.url.HasPort = true
			}
			c.buffer = nil
		}
		if c.override {
			return true, nil
		}
		c.state = statePathStart
		c.pointer--
		return false, nil
	}

	return false, newParseError(ErrInvalidPort, c.input)
}

// 13. file
func (c *parseContext) stepFile(b int) (bool, error) {
	c.url.Scheme = "file"
	c.url.Host = Host{Kind: HostEmpty}
	c.url.HasHost = true

	if b == '/' || b == '\\' {
		if b == '\\' {
			c.validationError = true
		}
		c.state = stateFileSlash
		return false, nil
	}

	if c.base != nil && c.base.Scheme == "file" {
		c.url.Host = c.base.Host
		c.url.HasHost = c.base.HasHost
		switch {
		case b == '?':
			c.url.Path = append([]string(nil), c.base.Path...)
			c.url.Query = ""
			c.url.HasQuery = true
			c.state = stateQuery
		case b == '#':
			c.url.Path = append([]string(nil), c.base.Path...)
			c.url.Query = c.base.Query
			c.url.HasQuery = c.base.HasQuery
			c.url.Fragment = ""
			c.url.HasFragment = true
			c.state = stateFragment
		case b == eof:
			c.url.Path = append([]string(nil), c.base.Path...)
			c.url.Query = c.base.Query
			c.url.HasQuery = c.base.HasQuery
			c.state = stateDone
			return true, nil
		default:
			c.url.Path = append([]string(nil), c.base.Path...)
			if !isWindowsDriveLetterAt(c.input, c.pointer) {
				popLastSegment(c.url)
			}
			c.state = statePath
			c.pointer--
		}
		return false, nil
	}

	c.state = statePath
	c.pointer--
	return false, nil
}

func popLastSegment(r *Record) {
	if len(r.Path) > 0 {
		r.Path = r.Path[:len(r.Path)-1]
	}
}

// isWindowsDriveLetterAt reports whether input[pointer:] begins a
// Windows drive letter: an ASCII letter, then ':' or '|', then either
// end-of-input or a path-segment boundary ('/', '\', '?', '#'). That
// trailing boundary check is required by the Standard — a drive
// letter is only a drive letter when nothing else shares its segment.
func isWindowsDriveLetterAt(input string, pointer int) bool {
	if pointer >= len(input) || !isASCIIAlpha(input[pointer]) {
		return false
	}
	if pointer+1 >= len(input) {
		return false
	}
	c2 := input[pointer+1]
	if c2 != ':' && c2 != '|' {
		return false
	}
	if pointer+2 == len(input) {
		return true
	}
	switch input[pointer+2] {
	case '/', '\\', '?', '#':
		return true
	}
	return false
}

func isWindowsDriveLetter(s string) bool {
	return len(s) == 2 && isASCIIAlpha(s[0]) && (s[1] == ':' || s[1] == '|')
}

// 14. file_slash
func (c *parseContext) stepFileSlash(b int) (bool, error) {
	if b == '/' || b == '\\' {
		if b == '\\' {
			c.validationError = true
		}
		c.state = stateFileHost
		return false, nil
	}

	if c.base != nil && c.base.Scheme == "file" {
		c.url.Host = c.base.Host
		c.url.HasHost = c.base.HasHost
		if !isWindowsDriveLetterAt(c.input, c.pointer) && len(c.base.Path) > 0 &&
			isWindowsDriveLetter(c.base.Path[0]) {
			c.url.Path = append(c.url.Path, c.base.Path[0])
		}
	}
	c.state = statePath
	c.pointer--
	return false, nil
}

// 15. file_host
func (c *parseContext) stepFileHost(b int) (bool, error) {
	if b == eof || b == '/' || b == '\\' || b == '?' || b == '#' {
		c.pointer--
		if !c.override && isWindowsDriveLetter(string(c.buffer)) {
			c.validationError = true
			c.state = statePath
			return false, nil
		}
		if len(c.buffer) == 0 {
			c.url.Host = Host{Kind: HostEmpty}
			c.url.HasHost = true
			if c.override {
				return true, nil
			}
			c.state = statePathStart
			return false, nil
		}
		host, err := ParseHost(string(c.buffer), true, &c.validationError)
		if err != nil {
			return false, err
		}
		if host.Kind == HostOpaque && host.Opaque == "localhost" {
			host = Host{Kind: HostEmpty}
		}
		c.url.Host = host
		c.url.HasHost = true
		c.buffer = nil
		if c.override {
			return true, nil
		}
		c.state = statePathStart
		return false, nil
	}
	c.buffer = append(c.buffer, byte(b))
	return false, nil
}

// 16. path_start
func (c *parseContext) stepPathStart(b int) (bool, error) {
	if c.url.IsSpecial() {
		if b == '\\' {
			c.validationError = true
		}
		c.state = statePath
		if b != '/' && b != '\\' {
			c.pointer--
		}
		return false, nil
	}

	if !c.override && b == '?' {
		c.url.Query = ""
		c.url.HasQuery = true
		c.state = stateQuery
		return false, nil
	}
	if !c.override && b == '#' {
		c.url.Fragment = ""
		c.url.HasFragment = true
		c.state = stateFragment
		return false, nil
	}

	if b != eof {
		c.state = statePath
		if b != '/' {
			c.pointer--
		}
		return false, nil
	}
	if c.override && !c.url.HasHost {
		c.url.Path = append(c.url.Path, "")
	}
	return true, nil
}

func isDoubleDotSegment(s string) bool {
	lower := lc(s)
	switch lower {
	case "..", ".%2e", "%2e.", "%2e%2e":
		return true
	}
	return false
}

func isSingleDotSegment(s string) bool {
	lower := lc(s)
	return lower == "." || lower == "%2e"
}

// 17. path
func (c *parseContext) stepPath(b int) (bool, error) {
	atEnd := b == eof || b == '/'
	specialBackslash := c.url.IsSpecial() && b == '\\'
	terminator := atEnd || specialBackslash || b == '?' || b == '#'

	if !terminator {
		if b == '%' && !isPercentEncoded(c.input[c.pointer:], 0) {
			c.validationError = true
		}
		c.buffer = append(c.buffer, []byte(PercentEncodeByte(byte(b), PathEncodeSet))...)
		return false, nil
	}

	if specialBackslash {
		c.validationError = true
	}

	seg := string(c.buffer)
	c.buffer = nil

	switch {
	case isDoubleDotSegment(seg):
		if c.url.Scheme == "file" && len(c.url.Path) == 1 && isWindowsDriveLetter(c.url.Path[0]) {
			// don't pop the drive letter
		} else {
			popLastSegment(c.url)
		}
		if b != '/' && !specialBackslash {
			c.url.Path = append(c.url.Path, "")
		}
	case isSingleDotSegment(seg):
		if b != '/' && !specialBackslash {
			c.url.Path = append(c.url.Path, "")
		}
	default:
		if c.url.Scheme == "file" && len(c.url.Path) == 0 && isWindowsDriveLetter(seg) {
			seg = string(seg[0]) + ":"
			c.url.Host = Host{Kind: HostEmpty}
			c.url.HasHost = true
		}
		c.url.Path = append(c.url.Path, seg)
	}

	switch {
	case b == '?':
		c.url.Query = ""
		c.url.HasQuery = true
		c.state = stateQuery
	case b == '#':
		c.url.Fragment = ""
		c.url.HasFragment = true
		c.state = stateFragment
	case b == eof:
		return true, nil
	}

	return false, nil
}

// 18. cannot_be_a_base_url_path
func (c *parseContext) stepCannotBeABaseURLPath(b int) (bool, error) {
	switch b {
	case '?':
		c.url.Query = ""
		c.url.HasQuery = true
		c.state = stateQuery
		return false, nil
	case '#':
		c.url.Fragment = ""
		c.url.HasFragment = true
		c.state = stateFragment
		return false, nil
	case eof:
		return true, nil
	}

	if b == '%' && !isPercentEncoded(c.input[c.pointer:], 0) {
		c.validationError = true
	}
	if len(c.url.Path) == 0 {
		c.url.Path = append(c.url.Path, "")
	}
	c.url.Path[0] += PercentEncodeByte(byte(b), C0ControlEncodeSet)
	return false, nil
}

// 19. query
func (c *parseContext) stepQuery(b int) (bool, error) {
	if b == '#' || b == eof {
		if b == '#' {
			c.url.Fragment = ""
			c.url.HasFragment = true
			c.state = stateFragment
			return false, nil
		}
		return true, nil
	}

	set := QueryEncodeSet
	if c.url.IsSpecial() {
		set = SpecialQueryEncodeSet
	}
	if b == '%' && !isPercentEncoded(c.input[c.pointer:], 0) {
		c.validationError = true
	}
	c.url.Query += PercentEncodeByte(byte(b), set)
	return false, nil
}

// 20. fragment
func (c *parseContext) stepFragment(b int) (bool, error) {
	if b == eof {
		return true, nil
	}
	if b == 0x00 {
		c.validationError = true
	}
	if b == '%' && !isPercentEncoded(c.input[c.pointer:], 0) {
		c.validationError = true
	}
	c.url.Fragment += PercentEncodeByte(byte(b), FragmentEncodeSet)
	return false, nil
}
