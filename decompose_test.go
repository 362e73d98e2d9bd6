package ucd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecompose(t *testing.T) {
	a, b, err := Decompose(0x00C4) // Ä
	require.NoError(t, err)
	assert.Equal(t, rune(0x0041), a)
	assert.Equal(t, rune(0x0308), b)

	_, _, err = Decompose(0xFB01) // ﬁ: compatibility-only
	assert.ErrorIs(t, err, ErrNoMapping)
	_, _, err = Decompose(0x0065) // e: no decomposition at all
	assert.ErrorIs(t, err, ErrNoMapping)
	_, _, err = Decompose(0x200000) // outside the codespace
	assert.ErrorIs(t, err, ErrNoMapping)

	// Hangul goes through the arithmetic path.
	a, b, err = Decompose(0xAC01)
	require.NoError(t, err)
	assert.Equal(t, rune(0xAC00), a)
	assert.Equal(t, rune(0x11A8), b)
	a, b, err = Decompose(0xAC00)
	require.NoError(t, err)
	assert.Equal(t, rune(0x1100), a)
	assert.Equal(t, rune(0x1161), b)
	_, _, err = Decompose(0xD7A4) // unassigned, past the syllable block
	assert.ErrorIs(t, err, ErrNoMapping)
}

func TestDecomposeMultiPart(t *testing.T) {
	// Decomposition is pairwise; a full NFD expansion chains it.
	a, b, err := Decompose(0xFB2C)
	require.NoError(t, err)
	assert.Equal(t, rune(0xFB49), a)
	assert.Equal(t, rune(0x05C1), b)

	a, b, err = Decompose(a)
	require.NoError(t, err)
	assert.Equal(t, rune(0x05E9), a)
	assert.Equal(t, rune(0x05BC), b)
}

func TestDecomposeOutsideBMP(t *testing.T) {
	a, b, err := Decompose(0x1109A) // Kaithi
	require.NoError(t, err)
	assert.Equal(t, rune(0x11099), a)
	assert.Equal(t, rune(0x110BA), b)
}

func TestDecomposeSingle(t *testing.T) {
	// singleton decomposition: b reported as 0
	a, b, err := Decompose(0x212B) // angstrom sign
	require.NoError(t, err)
	assert.Equal(t, rune(0x00C5), a)
	assert.Equal(t, rune(0), b)
}

func TestCompatDecompose(t *testing.T) {
	seq, n, err := CompatDecompose(0x00C4)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	assert.Equal(t, []rune{0x0041, 0x0308}, seq[:n])

	_, _, err = CompatDecompose(0x0065)
	assert.ErrorIs(t, err, ErrNoMapping)
	_, _, err = CompatDecompose(0x200000)
	assert.ErrorIs(t, err, ErrNoMapping)

	// surrogate-pair payload decode outside the BMP
	seq, n, err = CompatDecompose(0x2FA1D)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	assert.Equal(t, rune(0x2A600), seq[0])

	// the longest decomposition in the database
	seq, n, err = CompatDecompose(0xFDFA)
	require.NoError(t, err)
	require.Equal(t, CompatDecompositionMax, n)
	assert.Equal(t, []rune{
		0x0635, 0x0644, 0x0649, 0x0020, 0x0627, 0x0644, 0x0644, 0x0647, 0x0020,
		0x0639, 0x0644, 0x064A, 0x0647, 0x0020, 0x0648, 0x0633, 0x0644, 0x0645,
	}, seq[:n])
}

// TestCompatDecomposeSweep checks that no record in the database exceeds
// the fixed output size and that every payload decodes cleanly: the length
// in codepoints matches the header's unit count walked through the UTF-16
// codec, and no surrogate leaks into the output.
func TestCompatDecomposeSweep(t *testing.T) {
	decomposable := 0
	for c := rune(0); c < maxCodepoint; c++ {
		seq, n, err := CompatDecompose(c)
		if err != nil {
			continue
		}
		decomposable++
		require.GreaterOrEqual(t, n, 1, "codepoint %#x", c)
		require.LessOrEqual(t, n, CompatDecompositionMax, "codepoint %#x", c)
		units := 0
		for _, cp := range seq[:n] {
			require.False(t, cp >= surrLow && cp < 0xE000, "codepoint %#x: surrogate %#x in output", c, cp)
			require.Less(t, cp, rune(maxCodepoint), "codepoint %#x", c)
			if cp >= maxBMP {
				units += 2
			} else {
				units++
			}
		}
		_, payload := decompRecord(c)
		require.Equal(t, len(payload), units, "codepoint %#x: unit count mismatch", c)
	}
	// sanity: the sweep actually visited the table
	assert.Greater(t, decomposable, 5000)
}
