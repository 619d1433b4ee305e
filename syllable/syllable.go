// Package syllable estimates syllable counts for single words using a
// vowel-cluster heuristic. The estimate is phonetically approximate, not
// dictionary-exact, and is deterministic: the same word always yields the
// same count.
package syllable

import (
	"errors"
	"strings"
	"unicode"
)

// ErrInvalidInput is returned for input containing no alphabetic
// characters. Callers filter punctuation and number tokens before
// estimating; seeing this error means the upstream tokenizer misclassified
// a token.
var ErrInvalidInput = errors.New("syllable: input contains no letters")

// Estimate returns the approximate syllable count for a single word.
// Each maximal run of vowels (a, e, i, o, u, y) counts as one syllable,
// a trailing silent "e" is dropped, and consonant+"le" endings ("table",
// "little") are compensated. Words shorter than three letters count as
// one syllable. The result is always >= 1.
func Estimate(word string) (int, error) {
	letters := normalize(word)
	if len(letters) == 0 {
		return 0, ErrInvalidInput
	}
	if len(letters) < 3 {
		return 1, nil
	}

	count := 0
	prevVowel := false
	for _, r := range letters {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}

	n := len(letters)
	// Trailing "e" after a consonant is usually silent ("rope", "made").
	if letters[n-1] == 'e' && !isVowel(letters[n-2]) && count > 1 {
		count--
	}
	// Consonant+"le" endings do carry a syllable ("table", "apple").
	if letters[n-1] == 'e' && letters[n-2] == 'l' && !isVowel(letters[n-3]) {
		count++
	}

	if count < 1 {
		count = 1
	}
	return count, nil
}

// normalize lower-cases the word and keeps only its letters.
func normalize(word string) []rune {
	out := make([]rune, 0, len(word))
	for _, r := range strings.ToLower(word) {
		if unicode.IsLetter(r) {
			out = append(out, r)
		}
	}
	return out
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
