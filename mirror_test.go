package ucd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMirror(t *testing.T) {
	m, err := Mirror(0x0028)
	require.NoError(t, err)
	assert.Equal(t, rune(0x0029), m)

	m, err = Mirror(0x223D) // reversed tilde
	require.NoError(t, err)
	assert.Equal(t, rune(0x223C), m)

	_, err = Mirror(0x0032) // no mirroring exists
	assert.ErrorIs(t, err, ErrNoMapping)
	_, err = Mirror(0x10000) // outside the BMP
	assert.ErrorIs(t, err, ErrInvalidCodepoint)
	_, err = Mirror(0x200000)
	assert.ErrorIs(t, err, ErrInvalidCodepoint)
	_, err = Mirror(-1)
	assert.ErrorIs(t, err, ErrInvalidCodepoint)
}

// TestMirrorSymmetry: mirroring is an involution in the UCD table.
func TestMirrorSymmetry(t *testing.T) {
	for _, p := range mirrorPairs {
		back, err := Mirror(rune(p.to))
		require.NoError(t, err, "mirror of %#x", p.to)
		assert.Equal(t, rune(p.from), back, "mirror of %#x", p.to)
	}
}

func TestPairedBracket(t *testing.T) {
	b, err := PairedBracket(0x0028)
	require.NoError(t, err)
	assert.Equal(t, rune(0x0029), b)

	b, err = PairedBracket(0xFF08) // fullwidth parenthesis
	require.NoError(t, err)
	assert.Equal(t, rune(0xFF09), b)

	_, err = PairedBracket(0x00AB) // mirrored, but not a bracket
	assert.ErrorIs(t, err, ErrNoMapping)
	_, err = PairedBracket(0x200000) // out of range reads as "not a bracket"
	assert.ErrorIs(t, err, ErrNoMapping)
}

func TestPairedBracketType(t *testing.T) {
	assert.Equal(t, BracketOpen, PairedBracketType(0x0028))
	assert.Equal(t, BracketClose, PairedBracketType(0x0029))
	assert.Equal(t, BracketNone, PairedBracketType(0x0020))
	assert.Equal(t, BracketNone, PairedBracketType(0x200000))
}

// TestBracketTableShape: both pair tables are sorted by source codepoint
// (the binary searches rely on it) and every bracket row carries a valid
// open/close type.
func TestBracketTableShape(t *testing.T) {
	for i := 1; i < len(mirrorPairs); i++ {
		require.Less(t, mirrorPairs[i-1].from, mirrorPairs[i].from, "mirror table order at %d", i)
	}
	for i := 1; i < len(bracketPairs); i++ {
		require.Less(t, bracketPairs[i-1].from, bracketPairs[i].from, "bracket table order at %d", i)
	}
	for _, p := range bracketPairs {
		typ, err := bracketTypeFromByte(p.bracketType)
		require.NoError(t, err)
		require.NotEqual(t, BracketNone, typ, "bracket %#x typed None", p.from)
	}
}
