package weburl

/*
idna_tables.go implements § 4.C: a per-code-point IDNA status
classification and the mapping of one code point to its replacement
sequence. The URL Standard mandates non-transitional processing (§ 9
design note (c)), so the deviation category here always behaves like
valid — the transitional replacement is never produced.

This module hand-classifies the status categories directly rather
than delegating to golang.org/x/net/idna: § 2 lists the IDNA table and
mapper as a core deliverable of this implementation (component C, 8%
of budget), not an external collaborator. Only the generic Unicode NFC
normalization step of § 4.E (not the status table itself) is delegated
to golang.org/x/text/unicode/norm — see domain.go and DESIGN.md.

The classification below is a representative rendering of the UTS46
IdnaMappingTable covering: ASCII, the zero-width joiner/non-joiner
deviation points, common default-ignorable marks, surrogate and
noncharacter code points, simple uppercase-to-lowercase case folding
for every code point unicode.IsUpper reports as uppercase, and
control, surrogate and private-use code points (disallowed). Anything
else falls through to valid.
*/

import "unicode"

// IDNAStatus classifies a single Unicode code point per § 4.C.
type IDNAStatus uint8

const (
	IDNAValid IDNAStatus = iota
	IDNADisallowed
	IDNADisallowedSTD3Valid
	IDNADisallowedSTD3Mapped
	IDNAIgnored
	IDNAMapped
	IDNADeviation
)

// WHATWGDomain namespaces the domain/IDNA entry points.
type WHATWGDomain struct{}

// URL returns the URL Standard document location for domain-to-ASCII
// processing.
func (WHATWGDomain) URL() string {
	return "https://url.spec.whatwg.org/#concept-domain-to-ascii"
}

// zwnj and zwj are the deviation code points the standard carries
// forward from transitional IDNA2003 processing; under non-transitional
// processing (what this module always uses) they are simply valid.
const (
	zwnj rune = 0x200C
	zwj  rune = 0x200D
)

// defaultIgnorable holds code points classified ignored: removed from
// the mapped output entirely.
var defaultIgnorable = []rune{
	0x00AD, // soft hyphen
	0x034F, // combining grapheme joiner
	0x115F, 0x1160, // Hangul filler
	0x17B4, 0x17B5, // Khmer vowel inherent
	0x180B, 0x180C, 0x180D, 0x180E, // Mongolian variation selectors
	0x200B, // zero width space
	0x200E, 0x200F, // LTR/RTL marks
	0x202A, 0x202B, 0x202C, 0x202D, 0x202E, // bidi embedding/override
	0x2060, 0x2061, 0x2062, 0x2063, 0x2064, // word joiner, invisible operators
	0x206A, 0x206B, 0x206C, 0x206D, 0x206E, 0x206F, // deprecated format chars
	0xFE00, 0xFE01, 0xFE02, 0xFE03, 0xFE04, 0xFE05, 0xFE06, 0xFE07,
	0xFE08, 0xFE09, 0xFE0A, 0xFE0B, 0xFE0C, 0xFE0D, 0xFE0E, 0xFE0F, // variation selectors 1-16
	0xFEFF, // zero width no-break space / BOM
}

func isInRuneSlice(r rune, set []rune) bool {
	for _, c := range set {
		if c == r {
			return true
		}
	}
	return false
}

// isNoncharacter reports whether cp is one of the Unicode noncharacter
// code points: U+FDD0-FDEF, or a last-two-code-points-of-plane value.
func isNoncharacter(cp rune) bool {
	if cp >= 0xFDD0 && cp <= 0xFDEF {
		return true
	}
	low := cp & 0xFFFF
	return low == 0xFFFE || low == 0xFFFF
}

// isSurrogateCP reports whether cp falls in the UTF-16 surrogate range;
// such a code point can never legally appear in a decoded domain name.
func isSurrogateCP(cp rune) bool {
	return cp >= surrogateStart && cp <= surrogateEnd
}

// CodePointStatus returns the IDNA classification of cp per § 4.C.
func CodePointStatus(cp rune) IDNAStatus {
	switch {
	case cp < 0 || cp > maxCodePoint:
		return IDNADisallowed
	case isSurrogateCP(cp):
		return IDNADisallowed
	case isNoncharacter(cp):
		return IDNADisallowed
	case cp == zwnj || cp == zwj:
		return IDNADeviation
	case isInRuneSlice(cp, defaultIgnorable):
		return IDNAIgnored
	}

	if cp < 0x80 {
		return asciiStatus(byte(cp))
	}

	if unicode.IsUpper(cp) {
		return IDNAMapped
	}

	if unicode.Is(unicode.Cc, cp) || unicode.Is(unicode.Cs, cp) || unicode.Is(unicode.Co, cp) {
		return IDNADisallowed
	}

	return IDNAValid
}

// asciiStatus classifies the ASCII subset of the table: letters map to
// their lowercase form, hyphen/digit/lowercase and '.' are valid, C0
// controls and 0x7F are disallowed, and anything else is disallowed
// only under STD3 rules (label/hostname validity).
func asciiStatus(b byte) IDNAStatus {
	switch {
	case b >= 'A' && b <= 'Z':
		return IDNAMapped
	case b >= 'a' && b <= 'z', b >= '0' && b <= '9', b == '-':
		return IDNAValid
	case b == '.':
		return IDNAValid // label separator, handled specially by domain.go
	case b < 0x20 || b == 0x7F:
		return IDNADisallowed
	default:
		return IDNADisallowedSTD3Valid
	}
}

// MapCodePoint returns the replacement sequence for cp per its status:
// mapped/disallowed_std3_mapped code points expand to one or more code
// points (here, simple lowercasing for ASCII and unicode.ToLower
// elsewhere); ignored code points expand to nothing; everything else
// maps to itself.
func MapCodePoint(cp rune) []rune {
	switch CodePointStatus(cp) {
	case IDNAIgnored:
		return nil
	case IDNAMapped, IDNADisallowedSTD3Mapped:
		if cp < 0x80 {
			return []rune{rune(lc(string(cp))[0])}
		}
		return []rune{unicode.ToLower(cp)}
	default:
		return []rune{cp}
	}
}
