package ucd

import "sort"

// Mirror and paired-bracket lookup
//
// Both tables are small, BMP-only and sorted ascending by source
// codepoint, so a binary search beats another trie.

// mirrorPair maps a codepoint to its Bidi_Mirroring_Glyph.
type mirrorPair struct {
	from, to uint16
}

// bracketPair maps a bracket codepoint to its Bidi_Paired_Bracket and
// Bidi_Paired_Bracket_Type ordinal.
type bracketPair struct {
	from, to    uint16
	bracketType uint8
}

// Mirror returns the mirrored counterpart of a codepoint per the
// Bidi_Mirroring_Glyph property. It fails with ErrInvalidCodepoint outside
// the BMP and ErrNoMapping when no mirror glyph exists.
func Mirror(c rune) (rune, error) {
	if c < 0 || c >= maxBMP {
		return 0, ErrInvalidCodepoint
	}
	i := sort.Search(len(mirrorPairs), func(i int) bool {
		return rune(mirrorPairs[i].from) >= c
	})
	if i == len(mirrorPairs) || rune(mirrorPairs[i].from) != c {
		return 0, ErrNoMapping
	}
	return rune(mirrorPairs[i].to), nil
}

// pairedBracketEntry looks up the bracket table row for c, if any.
func pairedBracketEntry(c rune) (bracketPair, bool) {
	if c < 0 || c >= maxBMP {
		return bracketPair{}, false
	}
	i := sort.Search(len(bracketPairs), func(i int) bool {
		return rune(bracketPairs[i].from) >= c
	})
	if i == len(bracketPairs) || rune(bracketPairs[i].from) != c {
		return bracketPair{}, false
	}
	return bracketPairs[i], true
}

// PairedBracket returns the paired bracket of a codepoint per the
// Bidi_Paired_Bracket property (UAX #9), or ErrNoMapping when the
// codepoint is not a bracket. Codepoints outside the BMP are never in the
// table and fail the same way.
func PairedBracket(c rune) (rune, error) {
	e, ok := pairedBracketEntry(c)
	if !ok {
		return 0, ErrNoMapping
	}
	return rune(e.to), nil
}

// PairedBracketType returns the paired bracket type of a codepoint per
// UAX #9. Codepoints not in the bracket table, out-of-range inputs
// included, report BracketNone.
func PairedBracketType(c rune) BracketType {
	e, ok := pairedBracketEntry(c)
	if !ok {
		return BracketNone
	}
	t, err := bracketTypeFromByte(e.bracketType)
	if err != nil {
		return BracketNone
	}
	return t
}
