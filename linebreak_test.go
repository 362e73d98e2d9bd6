package ucd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinebreakClass(t *testing.T) {
	tests := []struct {
		c    rune
		want LinebreakClass
	}{
		{0x0020, LBSP},  // space
		{0xFFEF, LBXX},  // unassigned
		{0xD800, LBSG},  // surrogate
		{0x3400, LBID},  // CJK extension A
		{0x1F46E, LBEB}, // outside BMP, unusual class
	}
	for _, tt := range tests {
		lb, err := LookupLinebreakClass(tt.c)
		require.NoError(t, err)
		assert.Equal(t, tt.want, lb, "linebreak class of %#x", tt.c)
	}

	_, err := LookupLinebreakClass(0x200000)
	assert.ErrorIs(t, err, ErrInvalidCodepoint)
}

func TestResolvedLinebreakClass(t *testing.T) {
	tests := []struct {
		c    rune
		want LinebreakClass
	}{
		{0x00A7, LBAL},   // AI resolves to AL
		{0xD801, LBAL},   // SG resolves to AL
		{0xFFEF, LBAL},   // XX resolves to AL
		{0x0E31, LBCM},   // SA with category Mn
		{0x1A55, LBCM},   // SA with category Mc
		{0x19DA, LBAL},   // SA with any other category
		{0x3041, LBNS},   // CJ resolves to NS
		{0xFFFC, LBB2},   // CB resolves to B2
		{0x0085, LBBK},   // NL resolves to BK
		{0x200000, LBXX}, // outside the codespace
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ResolvedLinebreakClass(tt.c), "resolved class of %#x", tt.c)
	}
}

// TestResolvedLinebreakClassSweep verifies that LB1 resolution is total:
// no valid codepoint resolves to one of the classes the rule eliminates.
func TestResolvedLinebreakClassSweep(t *testing.T) {
	for c := rune(0); c < maxCodepoint; c++ {
		switch cls := ResolvedLinebreakClass(c); cls {
		case LBAI, LBSG, LBXX, LBSA, LBCJ, LBCB, LBNL:
			t.Fatalf("codepoint %#x resolved to raw class %v", c, cls)
		}
	}
}
