package ucd

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	assert.Equal(t, "14.0.0", Version())
	assert.Regexp(t, regexp.MustCompile(`^\d+\.\d+\.\d+$`), Version())
}

func TestBasicProperties(t *testing.T) {
	// one sample check inside the BMP for each property
	gc, err := LookupGeneralCategory(0x0040)
	require.NoError(t, err)
	assert.Equal(t, GCOtherPunctuation, gc)

	sc, err := LookupScript(0x0122)
	require.NoError(t, err)
	assert.Equal(t, ScriptLatin, sc)

	bc, err := LookupBidiClass(0x0032)
	require.NoError(t, err)
	assert.Equal(t, BidiEN, bc)

	ea, err := LookupEastAsianWidth(0x4000)
	require.NoError(t, err)
	assert.Equal(t, EAWWide, ea)

	lb, err := LookupLinebreakClass(0xFEFF)
	require.NoError(t, err)
	assert.Equal(t, LBWJ, lb)

	mirrored, err := IsMirrored(0x0028)
	require.NoError(t, err)
	assert.True(t, mirrored)

	ccc, err := CombiningClass(0x0000)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), ccc)

	ccc, err = CombiningClass(0x0308)
	require.NoError(t, err)
	assert.Equal(t, uint8(230), ccc)
}

func TestPropertiesOutsideBMP(t *testing.T) {
	// validity in blocks and planes outside the BMP
	tests := []struct {
		c    rune
		want Script
	}{
		{0x103A0, ScriptOldPersian},           // SMP, Old Persian
		{0x14400, ScriptAnatolianHieroglyphs}, // SMP, Anatolian Hieroglyphs
		{0x1E910, ScriptAdlam},                // SMP, Adlam
		{0x20100, ScriptHan},                  // SIP, CJK Unified Ideographs
		{0x28100, ScriptHan},                  // SIP, CJK Unified Ideographs
		{0x2F810, ScriptHan},                  // SIP, CJK Compatibility Ideographs
	}
	for _, tt := range tests {
		sc, err := LookupScript(tt.c)
		require.NoError(t, err)
		assert.Equal(t, tt.want, sc, "script of %#x", tt.c)
	}

	gc, err := LookupGeneralCategory(0xE0020) // SSP, Tags
	require.NoError(t, err)
	assert.Equal(t, GCFormat, gc)
}

func TestCodespaceBoundaries(t *testing.T) {
	gc, err := LookupGeneralCategory(0xFEFE) // unassigned
	require.NoError(t, err)
	assert.Equal(t, GCUnassigned, gc)

	gc, err = LookupGeneralCategory(0x10FFFF) // last valid codepoint
	require.NoError(t, err)
	assert.Equal(t, GCUnassigned, gc)

	_, err = LookupGeneralCategory(0x110000) // first invalid codepoint
	assert.ErrorIs(t, err, ErrInvalidCodepoint)

	_, err = LookupGeneralCategory(-1)
	assert.ErrorIs(t, err, ErrInvalidCodepoint)

	_, err = CombiningClass(0x200000)
	assert.ErrorIs(t, err, ErrInvalidCodepoint)
}

// TestRecordSweep exercises the trie for the entire codespace: every valid
// codepoint must resolve to a record whose bytes are all within their
// enums' ordinal ranges.
func TestRecordSweep(t *testing.T) {
	for c := rune(0); c < maxCodepoint; c++ {
		rec, err := lookupRecord(c)
		require.NoError(t, err, "codepoint %#x", c)
		if _, err := generalCategoryFromByte(rec.category); err != nil {
			t.Fatalf("codepoint %#x: bad category byte %d", c, rec.category)
		}
		if _, err := bidiClassFromByte(rec.bidiClass); err != nil {
			t.Fatalf("codepoint %#x: bad bidi class byte %d", c, rec.bidiClass)
		}
		if _, err := eastAsianWidthFromByte(rec.eastAsianWidth); err != nil {
			t.Fatalf("codepoint %#x: bad east asian width byte %d", c, rec.eastAsianWidth)
		}
		if _, err := scriptFromByte(rec.script); err != nil {
			t.Fatalf("codepoint %#x: bad script byte %d", c, rec.script)
		}
		if _, err := linebreakClassFromByte(rec.linebreakClass); err != nil {
			t.Fatalf("codepoint %#x: bad linebreak class byte %d", c, rec.linebreakClass)
		}
		if rec.mirrored > 1 {
			t.Fatalf("codepoint %#x: bad mirrored flag %d", c, rec.mirrored)
		}
	}
}

// TestRecordTableBytes checks the deduplicated record table directly, so a
// bad ordinal is caught even in rows only reachable for exotic codepoints.
func TestRecordTableBytes(t *testing.T) {
	assert.Equal(t, ucdRecord{category: uint8(GCUnassigned), bidiClass: uint8(BidiL),
		eastAsianWidth: uint8(EAWNeutral), script: uint8(ScriptUnknown),
		linebreakClass: uint8(LBXX)}, ucdRecords[0], "default record")

	for i, rec := range ucdRecords {
		for _, check := range []struct {
			name string
			err  error
		}{
			{"category", errOf(generalCategoryFromByte(rec.category))},
			{"bidi class", errOf(bidiClassFromByte(rec.bidiClass))},
			{"east asian width", errOf(eastAsianWidthFromByte(rec.eastAsianWidth))},
			{"script", errOf(scriptFromByte(rec.script))},
			{"linebreak class", errOf(linebreakClassFromByte(rec.linebreakClass))},
		} {
			assert.NoErrorf(t, check.err, "record %d: %s", i, check.name)
		}
	}
}

func errOf[T any](_ T, err error) error { return err }
