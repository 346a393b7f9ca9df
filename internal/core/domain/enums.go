package domain

type CharacterClass string
type StrengthLevel string

const (
	// Character classes
	ClassLowercase CharacterClass = "lowercase"
	ClassUppercase CharacterClass = "uppercase"
	ClassDigit     CharacterClass = "digit"
	ClassSymbol    CharacterClass = "symbol"

	// Password strength levels
	StrengthVeryWeak   StrengthLevel = "VERY_WEAK"
	StrengthWeak       StrengthLevel = "WEAK"
	StrengthModerate   StrengthLevel = "MODERATE"
	StrengthStrong     StrengthLevel = "STRONG"
	StrengthVeryStrong StrengthLevel = "VERY_STRONG"
)

var (
	CharsetLower   = "abcdefghijklmnopqrstuvwxyz"
	CharsetUpper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	CharsetDigits  = "0123456789"
	CharsetSymbols = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	// Glyphs easy to misread when a password is transcribed by hand.
	AmbiguousGlyphs = "il1Lo0O"
)

// AllClasses is the fixed evaluation and presentation order.
var AllClasses = []CharacterClass{ClassLowercase, ClassUppercase, ClassDigit, ClassSymbol}

// Alphabet returns the fixed alphabet backing a character class.
func (c CharacterClass) Alphabet() string {
	switch c {
	case ClassLowercase:
		return CharsetLower
	case ClassUppercase:
		return CharsetUpper
	case ClassDigit:
		return CharsetDigits
	case ClassSymbol:
		return CharsetSymbols
	}
	return ""
}

// DisplayName converts a strength level to the human form used by the CLI.
func (s StrengthLevel) DisplayName() string {
	switch s {
	case StrengthVeryWeak:
		return "Very Weak"
	case StrengthWeak:
		return "Weak"
	case StrengthModerate:
		return "Moderate"
	case StrengthStrong:
		return "Strong"
	case StrengthVeryStrong:
		return "Very Strong"
	}
	return string(s)
}

type ConstraintError string

const (
	ErrEmptyCharacterPool   ConstraintError = "EMPTY_CHARACTER_POOL"
	ErrMinimumsExceedLength ConstraintError = "MINIMUMS_EXCEED_LENGTH"
)

func (e ConstraintError) Error() string {
	return string(e)
}
