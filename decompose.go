package ucd

// Decomposition codec
//
// Decomposition records live in a second trie whose terminal table holds
// length-prefixed UTF-16 payloads: a 16-bit header with the payload unit
// count in the high byte and a mapping tag in the low byte (0 canonical,
// non-zero compatibility), followed by that many code units. Supplementary
// codepoints are stored as surrogate pairs and decoded transparently.

// CompatDecompositionMax is the longest compatibility decomposition in the
// database, in codepoints (U+FDFA decomposes to 18).
const CompatDecompositionMax = 18

// decodeUTF16 decodes one codepoint from the front of seq and returns it
// together with the number of code units consumed (1 or 2).
func decodeUTF16(seq []uint16) (rune, int) {
	if seq[0] < surrLow || seq[0] >= surrHigh {
		return rune(seq[0]), 1
	}
	return maxBMP + ((rune(seq[0]) - surrLow) << 10) + (rune(seq[1]) - surrHigh), 2
}

// decompRecord returns the mapping tag and UTF-16 payload for a codepoint.
// Codepoints outside the codespace short-circuit to the shared empty record
// so callers uniformly see "no decomposition".
func decompRecord(c rune) (tag uint16, payload []uint16) {
	off := uint32(0)
	if c >= 0 && c < maxCodepoint {
		i := trieIndex(decompIndex0[:], decompIndex1[:], decompShift1, decompShift2, uint32(c))
		off = uint32(decompIndex2[i])
	}
	n := uint32(decompData[off] >> 8)
	return decompData[off] & 0xFF, decompData[off+1 : off+1+n]
}

// Decompose performs pairwise canonical decomposition of a codepoint,
// including arithmetic Hangul syllable decomposition. For single-codepoint
// decompositions b is 0. Codepoints with no canonical decomposition
// (compatibility-only mappings included) fail with ErrNoMapping.
func Decompose(c rune) (a, b rune, err error) {
	if a, b, ok := hangulDecompose(c); ok {
		return a, b, nil
	}

	tag, payload := decompRecord(c)
	if tag != 0 || len(payload) == 0 {
		return 0, 0, ErrNoMapping
	}
	a, step := decodeUTF16(payload)
	if len(payload) > step {
		b, _ = decodeUTF16(payload[step:])
	}
	return a, b, nil
}

// CompatDecompose performs compatibility decomposition of a codepoint,
// returning the decomposed sequence and its length. Canonical mappings are
// returned as well; only codepoints with no mapping at all fail with
// ErrNoMapping. Hangul syllables are not handled here.
func CompatDecompose(c rune) ([CompatDecompositionMax]rune, int, error) {
	var out [CompatDecompositionMax]rune

	_, payload := decompRecord(c)
	if len(payload) == 0 {
		return out, 0, ErrNoMapping
	}
	n := 0
	for i := 0; i < len(payload); {
		if len(payload)-i < 2 {
			// A lone trailing unit cannot be a surrogate pair; take it as a
			// BMP codepoint. The generator always emits complete sequences,
			// so this is belt and braces.
			out[n] = rune(payload[i])
			i++
		} else {
			cp, step := decodeUTF16(payload[i:])
			out[n] = cp
			i += step
		}
		n++
	}
	return out, n, nil
}
