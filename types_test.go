package ucd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumConversionBounds(t *testing.T) {
	gc, err := generalCategoryFromByte(uint8(GCSpaceSeparator))
	require.NoError(t, err)
	assert.Equal(t, GCSpaceSeparator, gc)
	_, err = generalCategoryFromByte(uint8(GCSpaceSeparator) + 1)
	assert.ErrorIs(t, err, ErrInvalidVariant)

	bc, err := bidiClassFromByte(uint8(BidiPDI))
	require.NoError(t, err)
	assert.Equal(t, BidiPDI, bc)
	_, err = bidiClassFromByte(uint8(BidiPDI) + 1)
	assert.ErrorIs(t, err, ErrInvalidVariant)

	ea, err := eastAsianWidthFromByte(uint8(EAWNeutral))
	require.NoError(t, err)
	assert.Equal(t, EAWNeutral, ea)
	_, err = eastAsianWidthFromByte(uint8(EAWNeutral) + 1)
	assert.ErrorIs(t, err, ErrInvalidVariant)

	lb, err := linebreakClassFromByte(uint8(LBEM))
	require.NoError(t, err)
	assert.Equal(t, LBEM, lb)
	_, err = linebreakClassFromByte(uint8(LBEM) + 1)
	assert.ErrorIs(t, err, ErrInvalidVariant)

	sc, err := scriptFromByte(uint8(ScriptVithkuqi))
	require.NoError(t, err)
	assert.Equal(t, ScriptVithkuqi, sc)
	_, err = scriptFromByte(uint8(ScriptVithkuqi) + 1)
	assert.ErrorIs(t, err, ErrInvalidVariant)

	bt, err := bracketTypeFromByte(uint8(BracketNone))
	require.NoError(t, err)
	assert.Equal(t, BracketNone, bt)
	_, err = bracketTypeFromByte(uint8(BracketNone) + 1)
	assert.ErrorIs(t, err, ErrInvalidVariant)
}

func TestEnumVariantCounts(t *testing.T) {
	assert.Len(t, generalCategoryNames, 30)
	assert.Len(t, bidiClassNames, 23)
	assert.Len(t, eastAsianWidthNames, 6)
	assert.Len(t, linebreakClassNames, 43)
	assert.Len(t, bracketTypeNames, 3)
	assert.Equal(t, len(scriptNames), int(ScriptVithkuqi)+1)
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "Lu", GCUppercaseLetter.String())
	assert.Equal(t, "Cn", GCUnassigned.String())
	assert.Equal(t, "AL", BidiAL.String())
	assert.Equal(t, "PDI", BidiPDI.String())
	assert.Equal(t, "Na", EAWNarrow.String())
	assert.Equal(t, "OP", LBOP.String())
	assert.Equal(t, "ZWJ", LBZWJ.String())
	assert.Equal(t, "Latin", ScriptLatin.String())
	assert.Equal(t, "Old_Uyghur", ScriptOldUyghur.String())
	assert.Equal(t, "Open", BracketOpen.String())

	// out-of-range ordinals still stringify without panicking
	assert.Equal(t, "GeneralCategory(255)", GeneralCategory(255).String())
	assert.Equal(t, "Script(255)", Script(255).String())
}

func TestScriptNamesComplete(t *testing.T) {
	for s := ScriptCommon; s <= ScriptVithkuqi; s++ {
		assert.NotEmpty(t, scriptNames[s], "script ordinal %d has no name", s)
	}
}
