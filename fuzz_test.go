package utf8slice

import (
	"testing"
	"unicode/utf8"
)

// FuzzSlice_MatchesRuneIndexing cross-checks the boundary-scanning
// implementation against the obvious []rune-based reference.
func FuzzSlice_MatchesRuneIndexing(f *testing.F) {
	seeds := []struct {
		s          string
		begin, end int
	}{
		{s: "", begin: 0, end: 0},
		{s: "Hello, World!", begin: 7, end: 12},
		{s: "aé日\U0001f389", begin: 1, end: 3},
		{s: "日本語", begin: 1, end: 2},
		{s: "\U0001f468\u200d\U0001f680 family", begin: 0, end: 4},
		{s: "reversed", begin: 5, end: 2},
		{s: "negative", begin: -3, end: 4},
		{s: "overshoot", begin: 2, end: 99},
	}
	for _, seed := range seeds {
		f.Add(seed.s, seed.begin, seed.end)
	}

	f.Fuzz(func(t *testing.T, s string, begin, end int) {
		if !utf8.ValidString(s) {
			t.Skip("input validity is a precondition, not a checked error")
		}

		runes := []rune(s)
		b := clampIndex(begin, len(runes))
		e := clampIndex(end, len(runes))
		if b > e {
			b = e
		}

		if got, want := Slice(s, begin, end), string(runes[b:e]); got != want {
			t.Fatalf("Slice(%q, %d, %d) = %q, want %q", s, begin, end, got, want)
		}
		if got, want := From(s, begin), string(runes[clampIndex(begin, len(runes)):]); got != want {
			t.Fatalf("From(%q, %d) = %q, want %q", s, begin, got, want)
		}
		if got, want := Till(s, end), string(runes[:clampIndex(end, len(runes))]); got != want {
			t.Fatalf("Till(%q, %d) = %q, want %q", s, end, got, want)
		}
		if got, want := Len(s), len(runes); got != want {
			t.Fatalf("Len(%q) = %d, want %d", s, got, want)
		}
	})
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}
