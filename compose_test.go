package ucd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose(t *testing.T) {
	c, err := Compose(0x0041, 0x0308) // A + combining diaeresis
	require.NoError(t, err)
	assert.Equal(t, rune(0x00C4), c)

	_, err = Compose(0x0066, 0x0069) // compatibility forms never recompose
	assert.ErrorIs(t, err, ErrNoMapping)
	_, err = Compose(0x0028, 0x0028) // no composition exists
	assert.ErrorIs(t, err, ErrNoMapping)
	_, err = Compose(0x200000, 0x0028) // outside the codespace
	assert.ErrorIs(t, err, ErrNoMapping)

	// Hangul goes through the arithmetic path.
	c, err = Compose(0xAC00, 0x11A8)
	require.NoError(t, err)
	assert.Equal(t, rune(0xAC01), c)
	c, err = Compose(0x1100, 0x1161)
	require.NoError(t, err)
	assert.Equal(t, rune(0xAC00), c)
	_, err = Compose(0xD788, 0x11A3) // LV with an invalid T jamo
	assert.ErrorIs(t, err, ErrNoMapping)
}

func TestComposeMultiPart(t *testing.T) {
	c, err := Compose(0x0041, 0x0308)
	require.NoError(t, err)
	c, err = Compose(c, 0x0304)
	require.NoError(t, err)
	assert.Equal(t, rune(0x01DE), c) // Ǟ
}

func TestComposeExcluded(t *testing.T) {
	// pairs on the UCD composition-exclusion list decompose but must not
	// recompose
	_, err := Compose(0xFB49, 0x05C1)
	assert.ErrorIs(t, err, ErrNoMapping)
	_, err = Compose(0x2ADD, 0x0338)
	assert.ErrorIs(t, err, ErrNoMapping)
}

func TestComposeOutsideBMP(t *testing.T) {
	c, err := Compose(0x11099, 0x110BA) // Kaithi
	require.NoError(t, err)
	assert.Equal(t, rune(0x1109A), c)
}

// TestComposeRoundTrip walks every canonical pair decomposition in the
// database: the pair must either recompose to the original codepoint or be
// a composition exclusion, and never to anything else. U+0000 must never
// come back as a composed codepoint.
func TestComposeRoundTrip(t *testing.T) {
	pairs, excluded := 0, 0
	for c := rune(0); c < maxCodepoint; c++ {
		a, b, err := Decompose(c)
		if err != nil || b == 0 {
			continue
		}
		pairs++
		rt, err := Compose(a, b)
		if err != nil {
			require.True(t, errors.Is(err, ErrNoMapping), "pair (%#x, %#x)", a, b)
			excluded++
			continue
		}
		require.NotEqual(t, rune(0), rt, "pair (%#x, %#x) composed to NUL", a, b)
		require.Equal(t, c, rt, "round trip of %#x", c)
	}
	// Hangul plus the table pairs on one side, the exclusion list on the
	// other; both sides must be non-trivial.
	assert.Greater(t, pairs, 11172)
	assert.Greater(t, excluded, 0)
}

func TestRangeOrdinal(t *testing.T) {
	// first table entry, last table entry, and codepoints below the first
	// range and past the last
	first := nfcFirst[0]
	l, ok := rangeOrdinal(rune(first.start), nfcFirst[:])
	require.True(t, ok)
	assert.Equal(t, int(first.index), l)

	last := nfcFirst[len(nfcFirst)-1]
	l, ok = rangeOrdinal(rune(last.start)+rune(last.count), nfcFirst[:])
	require.True(t, ok)
	assert.Equal(t, int(last.index)+int(last.count), l)

	_, ok = rangeOrdinal(0, nfcFirst[:])
	assert.False(t, ok)
	_, ok = rangeOrdinal(maxCodepoint, nfcFirst[:])
	assert.False(t, ok)
}
