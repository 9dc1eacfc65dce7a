package weburl

/*
serialize.go implements § 4.K: the deterministic concatenation from a
url_record back to its canonical string.
*/

// WHATWGSerializer namespaces the serialization entry points.
type WHATWGSerializer struct{}

// URL returns the URL Standard document location for URL
// serialization.
func (WHATWGSerializer) URL() string {
	return "https://url.spec.whatwg.org/#url-serializing"
}

// Serialize renders r to its canonical string. When excludeFragment is
// true the fragment (and its leading '#') is omitted, matching the
// "exclude fragment" serialization flag of § 4.K.
func Serialize(r *Record, excludeFragment bool) string {
	var b []byte
	b = append(b, r.Scheme...)
	b = append(b, ':')

	if r.HasHost {
		b = append(b, '/', '/')
		if r.includesCredentials() {
			b = append(b, PercentEncodeString(r.Username, UserinfoEncodeSet)...)
			if r.Password != "" {
				b = append(b, ':')
				b = append(b, PercentEncodeString(r.Password, UserinfoEncodeSet)...)
			}
			b = append(b, '@')
		}
		b = append(b, r.Host.String()...)
		if r.HasPort {
			b = append(b, ':')
			b = append(b, itoa(r.Port)...)
		}
	} else if r.Scheme == "file" {
		b = append(b, '/', '/')
	}

	if r.CannotBeABaseURL {
		if len(r.Path) > 0 {
			b = append(b, r.Path[0]...)
		}
	} else {
		for _, seg := range r.Path {
			b = append(b, '/')
			b = append(b, seg...)
		}
	}

	if r.HasQuery {
		b = append(b, '?')
		b = append(b, r.Query...)
	}

	if !excludeFragment && r.HasFragment {
		b = append(b, '#')
		b = append(b, r.Fragment...)
	}

	return string(b)
}
