package readability

import (
	"fmt"
	"strings"
)

// Language selects the coefficient variant of language-dependent formulas.
type Language string

const (
	// English is the default language. Every formula is defined for it.
	English Language = "en"
	// German swaps Flesch Reading Ease for the Amstad variant. Formulas
	// whose published coefficients are English-only are not defined for
	// German.
	German Language = "de"
)

// ParseLanguage parses a user-supplied language code.
func ParseLanguage(raw string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(English):
		return English, nil
	case string(German):
		return German, nil
	default:
		return "", &UnsupportedLanguageError{Code: raw}
	}
}

// UnsupportedLanguageError reports a language code with no coefficient
// table.
type UnsupportedLanguageError struct {
	Code string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("readability: unsupported language %q (supported: en, de)", e.Code)
}

// fleschVariant holds the coefficients of one Flesch Reading Ease variant:
// score = base - sentenceLen*(words/sentences) - wordLen*(syllables/words).
type fleschVariant struct {
	base        float64
	sentenceLen float64
	wordLen     float64
}

// fleschVariants maps each language to its Reading Ease coefficients.
// The German row is Amstad's recalibration. Built once at init, read-only
// thereafter.
var fleschVariants = map[Language]fleschVariant{
	English: {base: 206.835, sentenceLen: 1.015, wordLen: 84.6},
	German:  {base: 180, sentenceLen: 1, wordLen: 58.5},
}

// FleschReadingEaseFor computes the Flesch Reading Ease variant for lang.
// The boolean result is false when lang has no variant, in which case the
// score is zero.
func FleschReadingEaseFor(lang Language, s Statistics) (float64, bool) {
	v, ok := fleschVariants[lang]
	if !ok {
		return 0, false
	}
	if s.Words == 0 || s.Sentences == 0 {
		return 0, true
	}
	return v.base - v.sentenceLen*s.wordsPerSentence() - v.wordLen*s.syllablesPerWord(), true
}
