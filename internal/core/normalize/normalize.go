// Package normalize provides the byte-level text preparation used by the
// classifier.
//
// Folding is deliberately ASCII-only: bytes 'A'..'Z' map to lowercase and
// every other byte passes through untouched. Multibyte UTF-8 sequences are
// never case-mapped, and NonASCII counts their bytes individually. Keeping
// both operations bytewise makes classification total over arbitrary input,
// valid UTF-8 or not
package normalize

// Fold returns s with ASCII uppercase letters lowercased.
// When nothing maps it returns the input string without allocating
func Fold(s string) string {
	i := 0
	for ; i < len(s); i++ {
		if c := s[i]; c >= 'A' && c <= 'Z' {
			break
		}
	}
	if i == len(s) {
		return s
	}
	b := []byte(s)
	for ; i < len(b); i++ {
		if c := b[i]; c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// NonASCII counts the bytes of s outside the 7-bit range
func NonASCII(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			n++
		}
	}
	return n
}
