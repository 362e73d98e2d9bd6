package ucd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHangulDecompose(t *testing.T) {
	a, b, ok := hangulDecompose(0xAC01) // 각 = 가 + ᆨ (LV,T)
	require.True(t, ok)
	assert.Equal(t, rune(0xAC00), a)
	assert.Equal(t, rune(0x11A8), b)

	a, b, ok = hangulDecompose(0xD7A3) // 힣 = 히 + ᇂ (LV,T)
	require.True(t, ok)
	assert.Equal(t, rune(0xD788), a)
	assert.Equal(t, rune(0x11C2), b)

	a, b, ok = hangulDecompose(0xAC00) // 가 = ᄀ + ᅡ (L,V)
	require.True(t, ok)
	assert.Equal(t, rune(0x1100), a)
	assert.Equal(t, rune(0x1161), b)

	_, _, ok = hangulDecompose(0xD7A4) // past the syllable block
	assert.False(t, ok)
	_, _, ok = hangulDecompose(0x1100) // a bare jamo is not a syllable
	assert.False(t, ok)
}

func TestHangulCompose(t *testing.T) {
	c, ok := hangulCompose(0xAC00, 0x11A8) // LV,T
	require.True(t, ok)
	assert.Equal(t, rune(0xAC01), c)

	c, ok = hangulCompose(0x1100, 0x1161) // L,V
	require.True(t, ok)
	assert.Equal(t, rune(0xAC00), c)

	_, ok = hangulCompose(0xD788, 0x11A3) // invalid T jamo
	assert.False(t, ok)
	_, ok = hangulCompose(0x1100, 0x11A8) // L,T is not composable
	assert.False(t, ok)
}

// TestHangulRoundTrip decomposes and recomposes the entire syllable block.
func TestHangulRoundTrip(t *testing.T) {
	for c := sBase; c < sBase+sCount; c++ {
		a, b, ok := hangulDecompose(c)
		require.True(t, ok, "syllable %#x did not decompose", c)
		rt, ok := hangulCompose(a, b)
		require.True(t, ok, "pair (%#x, %#x) did not compose", a, b)
		require.Equal(t, c, rt, "round trip of %#x", c)
	}
}
