package viewq

const upperhex = "0123456789ABCDEF"

// unreservedByte reports whether c passes through percent encoding unescaped -
// ascii letters, digits, '-', '_' and '.'
func unreservedByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	}
	return c == '-' || c == '_' || c == '.'
}

// PctEncodedLen returns the exact number of bytes PctEncoded produces for s -
// every byte outside the unreserved set expands to a three byte "%XX" escape
func PctEncodedLen(s string) int {
	n := len(s)
	for i := 0; i < len(s); i++ {
		if !unreservedByte(s[i]) {
			n += 2
		}
	}
	return n
}

// AppendPctEncode appends the percent-encoded form of s to dst and returns the
// extended slice - escapes use uppercase hex, so "a space" becomes "a%20space"
func AppendPctEncode(dst []byte, s string) []byte {
	for i := 0; i < len(s); i++ {
		if c := s[i]; unreservedByte(c) {
			dst = append(dst, c)
		} else {
			dst = append(dst, '%', upperhex[c>>4], upperhex[c&0xf])
		}
	}
	return dst
}

// PctEncoded returns the percent-encoded form of s (s itself when nothing
// needs escaping)
func PctEncoded(s string) string {
	n := PctEncodedLen(s)
	if n == len(s) {
		return s
	}
	return string(AppendPctEncode(make([]byte, 0, n), s))
}
