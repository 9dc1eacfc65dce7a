/*
Package weburl parses, normalizes, manipulates and serializes URLs in
strict conformance with the WHATWG URL Living Standard.

common.go declares package-level aliases of standard library functions
used throughout the parser, mirroring the stdlib-aliasing convention
this module's teacher favors.
*/
package weburl

import (
	"strconv"
	"strings"
)

var (
	lc      func(string) string                        = strings.ToLower
	uc      func(string) string                        = strings.ToUpper
	hasPfx  func(string, string) bool                  = strings.HasPrefix
	hasSfx  func(string, string) bool                  = strings.HasSuffix
	trimPfx func(string, string) string                = strings.TrimPrefix
	trimSfx func(string, string) string                = strings.TrimSuffix
	trimL   func(string, string) string                = strings.TrimLeft
	trimR   func(string, string) string                = strings.TrimRight
	split   func(string, string) []string              = strings.Split
	splitN  func(string, string, int) []string         = strings.SplitN
	join    func([]string, string) string              = strings.Join
	cntns   func(string, string) bool                  = strings.Contains
	stridx  func(string, string) int                   = strings.Index
	lstridx func(string, string) int                   = strings.LastIndex
	cntByte func(string, string) int                    = strings.Count
	atoi    func(string) (int, error)                  = strconv.Atoi
	itoa    func(int) string                            = strconv.Itoa
	puint   func(string, int, int) (uint64, error)     = strconv.ParseUint
	fmtUint func(uint64, int) string                    = strconv.FormatUint
)

func streq(a, b string) bool { return a == b }

func isASCIIAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isASCIIAlphanumeric(b byte) bool {
	return isASCIIAlpha(b) || isASCIIDigit(b)
}

func isASCIIHexDigit(b byte) bool {
	return isASCIIDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func asciiHexValue(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10
	}
	return -1
}

// isC0OrSpace reports whether b is a C0 control (U+0000-U+001F) or space
// (U+0020), the set trimmed from both ends of input per § 4.J pre-processing.
func isC0OrSpace(b byte) bool {
	return b <= 0x20
}

// isASCIITabOrNewline reports whether b is one of the three bytes removed
// from anywhere in the input per § 4.J pre-processing step 2.
func isASCIITabOrNewline(b byte) bool {
	return b == '\t' || b == '\n' || b == '\r'
}
