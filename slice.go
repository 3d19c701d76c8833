package utf8slice

import "unicode/utf8"

// Slice returns the view of s covering characters [begin, end).
//
// end is resolved over all of s first; begin is then resolved within the
// resulting prefix, which bounds the second scan by the first result. A
// reversed range (begin > end) resolves to the empty view.
func Slice(s string, begin, end int) string {
	e := byteOffset(s, end)
	b := byteOffset(s[:e], begin)
	return s[b:e]
}

// From returns the suffix view of s starting at character begin.
// It is empty when begin >= Len(s).
func From(s string, begin int) string {
	return s[byteOffset(s, begin):]
}

// Till returns the prefix view holding the first end characters of s.
// It is all of s when end >= Len(s).
func Till(s string, end int) string {
	return s[:byteOffset(s, end)]
}

// Len returns the number of characters (runes) in s. This differs from
// len(s) whenever s holds multi-byte characters, and from the number of
// user-perceived characters whenever s holds multi-rune clusters.
func Len(s string) int {
	return utf8.RuneCountInString(s)
}

// byteOffset returns the byte offset of the boundary after the first n
// characters of s: the offset of the (n+1)-th character-start byte, or
// len(s) when the buffer runs out first. No rune is decoded; a byte starts
// a character iff it is not a UTF-8 continuation byte.
func byteOffset(s string, n int) int {
	if n <= 0 {
		return 0
	}
	starts := 0
	for i := 0; i < len(s); i++ {
		if utf8.RuneStart(s[i]) {
			if starts == n {
				return i
			}
			starts++
		}
	}
	return len(s)
}
