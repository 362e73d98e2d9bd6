// Package ucd provides fast, allocation-free access to Unicode character
// properties and to the pairwise primitives underlying Unicode
// normalization.
//
// For every codepoint in [0, 0x110000) the package answers a fixed set of
// property queries — general category, canonical combining class,
// bidirectional class, east-asian width, script, linebreak class, mirror
// glyph and paired bracket — and exposes pairwise canonical decomposition,
// flat compatibility decomposition and pairwise canonical composition.
// Full string normalization (NFC/NFD/NFKC/NFKD) is deliberately left to
// callers, who can assemble it from these primitives.
//
// All data comes from tables generated offline from the Unicode Character
// Database and compiled into the binary; Version reports the UCD version.
// Hangul syllables are decomposed and composed arithmetically per chapter
// 3.12 of the Unicode core specification. Lookups are O(1) through
// three-stage tries (O(log n) for the small mirror and bracket tables), do
// not allocate, and are safe for unsynchronized concurrent use.
//
// Basic usage:
//
//	gc, _ := ucd.LookupGeneralCategory('Ä')   // GCUppercaseLetter
//	a, b, _ := ucd.Decompose('Ä')             // U+0041, U+0308
//	c, _ := ucd.Compose(a, b)                 // U+00C4
//	ucd.ResolvedLinebreakClass('あ')           // LBID
package ucd
