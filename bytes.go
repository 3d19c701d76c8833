package utf8slice

import "unicode/utf8"

// SliceBytes is Slice over a byte slice. The returned slice shares b's
// backing array and is capped at its own end; callers must treat it as
// read-only.
func SliceBytes(b []byte, begin, end int) []byte {
	e := byteOffsetBytes(b, end)
	s := byteOffsetBytes(b[:e], begin)
	return b[s:e:e]
}

// FromBytes is From over a byte slice, sharing b's backing array.
func FromBytes(b []byte, begin int) []byte {
	return b[byteOffsetBytes(b, begin):]
}

// TillBytes is Till over a byte slice, sharing b's backing array.
func TillBytes(b []byte, end int) []byte {
	e := byteOffsetBytes(b, end)
	return b[:e:e]
}

// LenBytes returns the number of characters (runes) in b.
func LenBytes(b []byte) int {
	return utf8.RuneCount(b)
}

func byteOffsetBytes(b []byte, n int) int {
	if n <= 0 {
		return 0
	}
	starts := 0
	for i := 0; i < len(b); i++ {
		if utf8.RuneStart(b[i]) {
			if starts == n {
				return i
			}
			starts++
		}
	}
	return len(b)
}
