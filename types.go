package ucd

import "strconv"

// Property enumerations
//
// Every enum is a dense uint8 ordinal set assigned by the offline database
// generator. The trie records store raw ordinals; conversion back to the
// typed value is bounds-checked so corrupt or incompatible tables surface as
// ErrInvalidVariant instead of an out-of-range constant.

// GeneralCategory represents the Unicode General_Category property (UAX #44).
type GeneralCategory uint8

const (
	GCControl              GeneralCategory = iota // Cc
	GCFormat                                      // Cf
	GCUnassigned                                  // Cn
	GCPrivateUse                                  // Co
	GCSurrogate                                   // Cs
	GCLowercaseLetter                             // Ll
	GCModifierLetter                              // Lm
	GCOtherLetter                                 // Lo
	GCTitlecaseLetter                             // Lt
	GCUppercaseLetter                             // Lu
	GCSpacingMark                                 // Mc
	GCEnclosingMark                               // Me
	GCNonspacingMark                              // Mn
	GCDecimalNumber                               // Nd
	GCLetterNumber                                // Nl
	GCOtherNumber                                 // No
	GCConnectorPunctuation                        // Pc
	GCDashPunctuation                             // Pd
	GCClosePunctuation                            // Pe
	GCFinalPunctuation                            // Pf
	GCInitialPunctuation                          // Pi
	GCOtherPunctuation                            // Po
	GCOpenPunctuation                             // Ps
	GCCurrencySymbol                              // Sc
	GCModifierSymbol                              // Sk
	GCMathSymbol                                  // Sm
	GCOtherSymbol                                 // So
	GCLineSeparator                               // Zl
	GCParagraphSeparator                          // Zp
	GCSpaceSeparator                              // Zs
)

var generalCategoryNames = [...]string{
	"Cc", "Cf", "Cn", "Co", "Cs", "Ll", "Lm", "Lo", "Lt", "Lu",
	"Mc", "Me", "Mn", "Nd", "Nl", "No", "Pc", "Pd", "Pe", "Pf",
	"Pi", "Po", "Ps", "Sc", "Sk", "Sm", "So", "Zl", "Zp", "Zs",
}

func generalCategoryFromByte(b uint8) (GeneralCategory, error) {
	if b > uint8(GCSpaceSeparator) {
		return 0, ErrInvalidVariant
	}
	return GeneralCategory(b), nil
}

// String returns the two-letter UCD alias, e.g. "Lu".
func (g GeneralCategory) String() string {
	if int(g) < len(generalCategoryNames) {
		return generalCategoryNames[g]
	}
	return "GeneralCategory(" + strconv.Itoa(int(g)) + ")"
}

// BidiClass represents the Unicode Bidi_Class property (UAX #44, UAX #9).
type BidiClass uint8

const (
	BidiAL  BidiClass = iota // Arabic_Letter
	BidiAN                   // Arabic_Number
	BidiB                    // Paragraph_Separator
	BidiBN                   // Boundary_Neutral
	BidiCS                   // Common_Separator
	BidiEN                   // European_Number
	BidiES                   // European_Separator
	BidiET                   // European_Terminator
	BidiL                    // Left_To_Right
	BidiLRE                  // Left_To_Right_Embedding
	BidiLRO                  // Left_To_Right_Override
	BidiNSM                  // Nonspacing_Mark
	BidiON                   // Other_Neutral
	BidiPDF                  // Pop_Directional_Format
	BidiR                    // Right_To_Left
	BidiRLE                  // Right_To_Left_Embedding
	BidiRLO                  // Right_To_Left_Override
	BidiS                    // Segment_Separator
	BidiWS                   // White_Space
	BidiLRI                  // Left_To_Right_Isolate
	BidiRLI                  // Right_To_Left_Isolate
	BidiFSI                  // First_Strong_Isolate
	BidiPDI                  // Pop_Directional_Isolate
)

var bidiClassNames = [...]string{
	"AL", "AN", "B", "BN", "CS", "EN", "ES", "ET", "L", "LRE", "LRO",
	"NSM", "ON", "PDF", "R", "RLE", "RLO", "S", "WS", "LRI", "RLI",
	"FSI", "PDI",
}

func bidiClassFromByte(b uint8) (BidiClass, error) {
	if b > uint8(BidiPDI) {
		return 0, ErrInvalidVariant
	}
	return BidiClass(b), nil
}

// String returns the UCD alias, e.g. "AL".
func (b BidiClass) String() string {
	if int(b) < len(bidiClassNames) {
		return bidiClassNames[b]
	}
	return "BidiClass(" + strconv.Itoa(int(b)) + ")"
}

// EastAsianWidth represents the East_Asian_Width property (UAX #11).
type EastAsianWidth uint8

const (
	EAWFullwidth EastAsianWidth = iota // F
	EAWHalfwidth                       // H
	EAWWide                            // W
	EAWNarrow                          // Na
	EAWAmbiguous                       // A
	EAWNeutral                         // N
)

var eastAsianWidthNames = [...]string{"F", "H", "W", "Na", "A", "N"}

func eastAsianWidthFromByte(b uint8) (EastAsianWidth, error) {
	if b > uint8(EAWNeutral) {
		return 0, ErrInvalidVariant
	}
	return EastAsianWidth(b), nil
}

// String returns the UCD alias, e.g. "Na".
func (w EastAsianWidth) String() string {
	if int(w) < len(eastAsianWidthNames) {
		return eastAsianWidthNames[w]
	}
	return "EastAsianWidth(" + strconv.Itoa(int(w)) + ")"
}

// LinebreakClass represents the Line_Break property (UAX #14).
type LinebreakClass uint8

const (
	LBOP  LinebreakClass = iota // Open_Punctuation
	LBCL                        // Close_Punctuation
	LBCP                        // Close_Parenthesis
	LBQU                        // Quotation
	LBGL                        // Glue
	LBNS                        // Nonstarter
	LBEX                        // Exclamation
	LBSY                        // Break_Symbols
	LBIS                        // Infix_Numeric
	LBPR                        // Prefix_Numeric
	LBPO                        // Postfix_Numeric
	LBNU                        // Numeric
	LBAL                        // Alphabetic
	LBHL                        // Hebrew_Letter
	LBID                        // Ideographic
	LBIN                        // Inseparable
	LBHY                        // Hyphen
	LBBA                        // Break_After
	LBBB                        // Break_Before
	LBB2                        // Break_Both
	LBZW                        // ZWSpace
	LBCM                        // Combining_Mark
	LBWJ                        // Word_Joiner
	LBH2                        // H2
	LBH3                        // H3
	LBJL                        // JL
	LBJV                        // JV
	LBJT                        // JT
	LBRI                        // Regional_Indicator
	LBAI                        // Ambiguous
	LBBK                        // Mandatory_Break
	LBCB                        // Contingent_Break
	LBCJ                        // Conditional_Japanese_Starter
	LBCR                        // Carriage_Return
	LBLF                        // Line_Feed
	LBNL                        // Next_Line
	LBSA                        // Complex_Context
	LBSG                        // Surrogate
	LBSP                        // Space
	LBXX                        // Unknown
	LBZWJ                       // ZWJ
	LBEB                        // E_Base
	LBEM                        // E_Modifier
)

var linebreakClassNames = [...]string{
	"OP", "CL", "CP", "QU", "GL", "NS", "EX", "SY", "IS", "PR", "PO",
	"NU", "AL", "HL", "ID", "IN", "HY", "BA", "BB", "B2", "ZW", "CM",
	"WJ", "H2", "H3", "JL", "JV", "JT", "RI", "AI", "BK", "CB", "CJ",
	"CR", "LF", "NL", "SA", "SG", "SP", "XX", "ZWJ", "EB", "EM",
}

func linebreakClassFromByte(b uint8) (LinebreakClass, error) {
	if b > uint8(LBEM) {
		return 0, ErrInvalidVariant
	}
	return LinebreakClass(b), nil
}

// String returns the UCD alias, e.g. "OP".
func (l LinebreakClass) String() string {
	if int(l) < len(linebreakClassNames) {
		return linebreakClassNames[l]
	}
	return "LinebreakClass(" + strconv.Itoa(int(l)) + ")"
}

// BracketType classifies a codepoint's Bidi_Paired_Bracket_Type (UAX #9).
type BracketType uint8

const (
	BracketOpen  BracketType = iota // o
	BracketClose                    // c
	BracketNone                     // n
)

var bracketTypeNames = [...]string{"Open", "Close", "None"}

func bracketTypeFromByte(b uint8) (BracketType, error) {
	if b > uint8(BracketNone) {
		return 0, ErrInvalidVariant
	}
	return BracketType(b), nil
}

func (t BracketType) String() string {
	if int(t) < len(bracketTypeNames) {
		return bracketTypeNames[t]
	}
	return "BracketType(" + strconv.Itoa(int(t)) + ")"
}
