package weburl

/*
err.go contains the typed parse-error taxonomy of § 7, plus the
plain-error constructor helpers this module's teacher favors
(errorTxt, errorBadType) for the non-fatal/internal error paths.
*/

import "errors"

var mkerr func(string) error = errors.New

func errorTxt(txt string) error { return mkerr(txt) }

func errorBadType(name string) error {
	return mkerr("incompatible input type for " + name)
}

// ParseErrc enumerates the hard, fatal failures the basic URL parser
// (§ 4.J) and its collaborators can raise. Every member here appears
// in § 7's taxonomy table. A ParseErrc stops the parse outright; it is
// distinct from the non-fatal validation_error flag, which accumulates
// silently and never stops anything.
type ParseErrc uint8

const (
	ErrNone ParseErrc = iota
	ErrInvalidSchemeCharacter
	ErrNotAnAbsoluteURLWithFragment
	ErrEmptyHostname
	ErrInvalidIPv4Address
	ErrInvalidIPv6Address
	ErrForbiddenHostPoint
	ErrCannotDecodeHostPoint
	ErrDomainError
	ErrCannotBeABaseURL
	ErrCannotHaveUsernamePasswordOrPort
	ErrInvalidPort
)

var parseErrcText = map[ParseErrc]string{
	ErrNone:                             "no error",
	ErrInvalidSchemeCharacter:           "invalid scheme character",
	ErrNotAnAbsoluteURLWithFragment:     "not an absolute URL with fragment",
	ErrEmptyHostname:                    "empty hostname",
	ErrInvalidIPv4Address:               "invalid IPv4 address",
	ErrInvalidIPv6Address:               "invalid IPv6 address",
	ErrForbiddenHostPoint:               "forbidden host code point",
	ErrCannotDecodeHostPoint:            "cannot decode host code point",
	ErrDomainError:                      "domain error",
	ErrCannotBeABaseURL:                 "cannot-be-a-base URL",
	ErrCannotHaveUsernamePasswordOrPort: "cannot have a username, password or port",
	ErrInvalidPort:                      "invalid port",
}

// String renders the human-readable description of the receiver.
func (e ParseErrc) String() string {
	if s, ok := parseErrcText[e]; ok {
		return s
	}
	return "unknown parse error"
}

// Error satisfies the error interface directly on ParseErrc, so a bare
// constant (e.g. ErrForbiddenHostPoint) can be returned wherever an
// error is expected without wrapping it in a *ParseError first.
func (e ParseErrc) Error() string { return e.String() }

// ParseError wraps a ParseErrc with the offending input for display,
// implementing the error interface so the façade can raise it directly
// from a failed construction (§ 7 "User-visible failure").
type ParseError struct {
	Code  ParseErrc
	Input string
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return "parse error: " + e.Code.String() + ": " + e.Input
}

func newParseError(code ParseErrc, input string) *ParseError {
	return &ParseError{Code: code, Input: input}
}

// DomainErrc enumerates § 4.E failures.
type DomainErrc uint8

const (
	DomainErrNone DomainErrc = iota
	DomainErrDisallowedCodePoint
	DomainErrLabelTooLong
	DomainErrDomainTooLong
	DomainErrEmptyLabel
	DomainErrPunycode
)

func (e DomainErrc) Error() string {
	switch e {
	case DomainErrDisallowedCodePoint:
		return "domain: disallowed code point"
	case DomainErrLabelTooLong:
		return "domain: label exceeds 63 bytes"
	case DomainErrDomainTooLong:
		return "domain: domain exceeds 253 bytes"
	case DomainErrEmptyLabel:
		return "domain: empty label"
	case DomainErrPunycode:
		return "domain: punycode failure"
	}
	return "domain: no error"
}

// PercentErrc enumerates § 4.A strict-decode failures.
type PercentErrc uint8

const (
	PercentErrNone PercentErrc = iota
	PercentErrIncompleteSequence
	PercentErrNotHex
)

func (e PercentErrc) Error() string {
	switch e {
	case PercentErrIncompleteSequence:
		return "percent-decode: incomplete escape sequence"
	case PercentErrNotHex:
		return "percent-decode: non-hex digit in escape sequence"
	}
	return "percent-decode: no error"
}

// IPv4Errc enumerates § 4.F failures.
type IPv4Errc uint8

const (
	IPv4ErrNone IPv4Errc = iota
	IPv4ErrTooManySegments
	IPv4ErrEmptySegment
	IPv4ErrInvalidSegmentNumber
	IPv4ErrOverflow
)

func (e IPv4Errc) Error() string {
	switch e {
	case IPv4ErrTooManySegments:
		return "ipv4: too many segments"
	case IPv4ErrEmptySegment:
		return "ipv4: empty segment"
	case IPv4ErrInvalidSegmentNumber:
		return "ipv4: invalid segment number"
	case IPv4ErrOverflow:
		return "ipv4: segment overflow"
	}
	return "ipv4: no error"
}

// IPv6Errc enumerates § 4.G failures.
type IPv6Errc uint8

const (
	IPv6ErrNone IPv6Errc = iota
	IPv6ErrTooManyPieces
	IPv6ErrMultipleCompression
	IPv6ErrLoneColon
	IPv6ErrInvalidPiece
	IPv6ErrInvalidIPv4Tail
	IPv6ErrTooFewPieces
)

func (e IPv6Errc) Error() string {
	switch e {
	case IPv6ErrTooManyPieces:
		return "ipv6: too many pieces"
	case IPv6ErrMultipleCompression:
		return "ipv6: multiple :: compression markers"
	case IPv6ErrLoneColon:
		return "ipv6: lone colon"
	case IPv6ErrInvalidPiece:
		return "ipv6: invalid piece"
	case IPv6ErrInvalidIPv4Tail:
		return "ipv6: invalid embedded IPv4 tail"
	case IPv6ErrTooFewPieces:
		return "ipv6: too few pieces"
	}
	return "ipv6: no error"
}
