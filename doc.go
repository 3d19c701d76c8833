// Package utf8slice provides character-indexed, zero-copy slicing over
// UTF-8 text.
//
// Indices count Unicode scalar values (runes), not bytes and not grapheme
// clusters: a combining mark or each code point of a multi-rune emoji counts
// as one character. Every operation returns a sub-view of its input backed
// by the same storage — nothing is copied or allocated, and a returned view
// always starts and ends on a rune boundary.
//
// Out-of-range indices clamp to the nearest buffer edge, so every function
// is total: slicing past the end returns an empty (or whole-buffer) view
// rather than panicking. Input is assumed to be valid UTF-8; the package
// performs no validation.
package utf8slice
