package ucd

// Hangul syllable algebra
//
// The Hangul syllable block is not stored in the decomposition or
// composition tables; syllables decompose and compose arithmetically per
// chapter 3.12 of the Unicode core specification.

// Hangul Jamo constants.
const (
	lBase rune = 0x1100
	vBase rune = 0x1161
	tBase rune = 0x11A7
	sBase rune = 0xAC00

	lCount = 19
	vCount = 21
	tCount = 28
	nCount = vCount * tCount // 588
	sCount = lCount * nCount // 11172
)

// hangulDecompose splits a precomposed Hangul syllable into a pair: LVT
// forms split into the LV syllable and the trailing jamo, LV forms split
// into the leading and vowel jamos. Codepoints outside the syllable block
// report ok == false.
func hangulDecompose(c rune) (a, b rune, ok bool) {
	if c < sBase || c >= sBase+sCount {
		return 0, 0, false
	}
	si := c - sBase
	if si%tCount != 0 {
		// LV,T
		return sBase + (si/tCount)*tCount, tBase + si%tCount, true
	}
	// L,V
	return lBase + si/nCount, vBase + (si%nCount)/tCount, true
}

// hangulCompose is the inverse of hangulDecompose: an LV syllable plus a
// trailing jamo, or a leading plus a vowel jamo. Any syllable in the block
// is accepted as the left operand of the T form, LVT included, matching the
// decomposition side rather than the narrower LV-only rule of UAX #15.
func hangulCompose(a, b rune) (rune, bool) {
	if a >= sBase && a < sBase+sCount && b >= tBase && b < tBase+tCount {
		// LV,T
		return a + (b - tBase), true
	}
	if a >= lBase && a < lBase+lCount && b >= vBase && b < vBase+vCount {
		// L,V
		return sBase + (a-lBase)*nCount + (b-vBase)*tCount, true
	}
	return 0, false
}
