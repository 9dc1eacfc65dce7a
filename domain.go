package weburl

/*
domain.go implements § 4.E, translating a domain between its Unicode
and ASCII ("Punycode") forms per the WHATWG-flavored IDNA ToASCII
algorithm: map every code point through the § 4.C table, NFC-normalize,
split into labels on U+002E, Punycode-encode/decode labels that need
it, and (when strict) enforce label/domain length limits.
*/

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	maxDomainLength = 253
	maxLabelLength  = 63
	acePrefix       = "xn--"
)

// DomainToASCII implements domain_to_ascii(domain, be_strict) of § 4.E.
// validationError is set (never cleared) on any non-fatal deviation
// encountered along the way, matching the basic parser's cumulative
// validation_error convention.
func DomainToASCII(domain string, beStrict bool, validationError *bool) (string, error) {
	mapped, err := mapDomainCodePoints(domain, beStrict, validationError)
	if err != nil {
		return "", err
	}

	// NFC-normalize. golang.org/x/text/unicode/norm provides the
	// Unicode normalization tables; this is the one step in the
	// pipeline deliberately delegated to an external library (see
	// SPEC_FULL.md DOMAIN STACK).
	normalized := norm.NFC.String(mapped)

	labels := split(normalized, ".")
	for i, label := range labels {
		if hasPfx(label, acePrefix) {
			decoded, derr := PunycodeDecode(label[len(acePrefix):])
			if derr != nil {
				if beStrict {
					return "", DomainErrPunycode
				}
				*validationError = true
				continue
			}
			remapped, rerr := mapDomainCodePoints(string(decoded), beStrict, validationError)
			if rerr != nil {
				return "", rerr
			}
			labels[i] = remapped
			label = remapped
		}

		if needsPunycode(label) {
			encoded, eerr := PunycodeEncode([]rune(label))
			if eerr != nil {
				return "", DomainErrPunycode
			}
			labels[i] = acePrefix + encoded
		}
	}

	result := join(labels, ".")

	if beStrict {
		if len(result) > maxDomainLength {
			return "", DomainErrDomainTooLong
		}
		for _, label := range labels {
			if len(label) == 0 {
				return "", DomainErrEmptyLabel
			}
			if len(label) > maxLabelLength {
				return "", DomainErrLabelTooLong
			}
		}
	} else if len(result) > maxDomainLength {
		*validationError = true
	}

	return result, nil
}

// DomainToUnicode implements domain_to_unicode(ascii) of § 4.E: the
// same mapping pipeline, stopping before the re-encoding step so
// "xn--" labels are decoded back to Unicode and never re-encoded.
func DomainToUnicode(domain string) (string, error) {
	var validationError bool
	mapped, err := mapDomainCodePoints(domain, false, &validationError)
	if err != nil {
		return "", err
	}
	normalized := norm.NFC.String(mapped)

	labels := split(normalized, ".")
	for i, label := range labels {
		if hasPfx(label, acePrefix) {
			decoded, derr := PunycodeDecode(label[len(acePrefix):])
			if derr != nil {
				continue
			}
			remapped, rerr := mapDomainCodePoints(string(decoded), false, &validationError)
			if rerr == nil {
				labels[i] = remapped
			}
		}
	}
	return join(labels, "."), nil
}

func needsPunycode(label string) bool {
	for _, r := range label {
		if r >= 0x80 {
			return true
		}
	}
	return false
}

// mapDomainCodePoints applies the § 4.C status table to every code
// point of domain, concatenating mapped replacements and dropping
// ignored code points. Deviation code points pass through unchanged
// under the non-transitional processing this module always uses.
func mapDomainCodePoints(domain string, beStrict bool, validationError *bool) (string, error) {
	var b strings.Builder
	b.Grow(len(domain))

	for _, cp := range domain {
		status := CodePointStatus(cp)
		switch status {
		case IDNADisallowed:
			return "", DomainErrDisallowedCodePoint
		case IDNADisallowedSTD3Valid:
			if beStrict {
				return "", DomainErrDisallowedCodePoint
			}
			*validationError = true
			b.WriteRune(cp)
		case IDNADisallowedSTD3Mapped:
			if beStrict {
				return "", DomainErrDisallowedCodePoint
			}
			*validationError = true
			for _, r := range MapCodePoint(cp) {
				b.WriteRune(r)
			}
		case IDNAIgnored:
			*validationError = true
		case IDNAMapped:
			for _, r := range MapCodePoint(cp) {
				b.WriteRune(r)
			}
		default: // valid, deviation
			b.WriteRune(cp)
		}
	}
	return b.String(), nil
}
