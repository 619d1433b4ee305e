package readability

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/RaRedmer/readability/syllable"
)

// longWordLength is the surface length above which a word counts as long.
const longWordLength = 6

// complexWordSyllables is the estimated syllable count at which a word
// counts as complex.
const complexWordSyllables = 3

// Statistics holds the base counters computed in a single pass over a
// document. All counts are non-negative; ComplexWords, LongWords and
// Monosyllables never exceed Words.
type Statistics struct {
	// Sentences counts sentences containing at least one word. Sentences
	// of pure punctuation do not count, so they cannot skew per-sentence
	// averages.
	Sentences int
	// Words counts tokens passing the word predicate.
	Words int
	// Letters counts alphabetic characters across all words.
	Letters int
	// Syllables sums the per-word syllable estimates.
	Syllables int
	// ComplexWords counts words estimated at three or more syllables.
	ComplexWords int
	// LongWords counts words whose surface text exceeds six characters.
	LongWords int
	// Monosyllables counts words estimated at exactly one syllable.
	Monosyllables int
}

// Compute walks doc once and returns its Statistics. Tokens failing the
// word predicate are skipped. A token that passes the predicate but
// contains no letters violates the front-end contract; the error wraps
// syllable.ErrInvalidInput and no partial counts are returned.
func Compute(doc Document) (Statistics, error) {
	var st Statistics
	for _, sent := range doc.Sentences() {
		words := 0
		for _, tok := range sent.Tokens() {
			if !tok.IsWord() {
				continue
			}
			text := tok.Text()
			count, err := syllable.Estimate(text)
			if err != nil {
				return Statistics{}, fmt.Errorf("token %q: %w", text, err)
			}

			words++
			st.Words++
			st.Letters += letterCount(text)
			st.Syllables += count
			if count >= complexWordSyllables {
				st.ComplexWords++
			}
			if count == 1 {
				st.Monosyllables++
			}
			if utf8.RuneCountInString(text) > longWordLength {
				st.LongWords++
			}
		}
		if words > 0 {
			st.Sentences++
		}
	}
	return st, nil
}

// DifficultWords counts the words of doc not found in list, the count the
// Dale-Chall formula consumes. Tokens failing the word predicate are
// skipped.
func DifficultWords(doc Document, list WordList) int {
	difficult := 0
	for _, sent := range doc.Sentences() {
		for _, tok := range sent.Tokens() {
			if !tok.IsWord() {
				continue
			}
			if !list.Contains(tok.Text()) {
				difficult++
			}
		}
	}
	return difficult
}

// letterCount returns the number of alphabetic runes in s.
func letterCount(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			n++
		}
	}
	return n
}

func (s Statistics) wordsPerSentence() float64 {
	return float64(s.Words) / float64(s.Sentences)
}

func (s Statistics) syllablesPerWord() float64 {
	return float64(s.Syllables) / float64(s.Words)
}

func (s Statistics) lettersPerWord() float64 {
	return float64(s.Letters) / float64(s.Words)
}
