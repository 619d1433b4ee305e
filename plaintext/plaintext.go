// Package plaintext segments plain text into the sentence and token shape
// the readability package consumes. It is a naive segmenter intended for
// prose; callers with a real NLP pipeline can implement the readability
// interfaces directly instead.
package plaintext

import (
	"strings"
	"unicode"

	"github.com/RaRedmer/readability"
)

// Token is a single token of a parsed sentence.
type Token struct {
	text string
	word bool
}

// Text returns the token surface form.
func (t Token) Text() string { return t.text }

// IsWord reports whether the token contains at least one letter.
// Pure-digit and punctuation tokens are not words.
func (t Token) IsWord() bool { return t.word }

// Sentence is a run of tokens ending at a sentence boundary.
type Sentence struct {
	tokens []readability.Token
}

// Tokens returns the tokens of the sentence in order.
func (s Sentence) Tokens() []readability.Token { return s.tokens }

// Doc is a segmented plain-text document.
type Doc struct {
	sentences []readability.Sentence
}

// Sentences returns the sentences of the document in order.
func (d *Doc) Sentences() []readability.Sentence { return d.sentences }

// Parse segments text into sentences and tokens. Empty or whitespace-only
// input yields a document with no sentences.
func Parse(text string) *Doc {
	doc := &Doc{}
	for _, chunk := range splitSentences(text) {
		tokens := tokenize(chunk)
		if len(tokens) == 0 {
			continue
		}
		doc.sentences = append(doc.sentences, Sentence{tokens: tokens})
	}
	return doc
}

// abbreviations are words whose trailing period never ends a sentence.
var abbreviations = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true,
	"rev": true, "sr": true, "jr": true, "st": true, "vs": true,
	"etc": true, "inc": true, "ltd": true, "dept": true, "fig": true,
	"al": true, "approx": true,
}

func splitSentences(text string) []string {
	var sentences []string
	runes := []rune(text)
	start := 0
	flush := func(end int) {
		if chunk := strings.TrimSpace(string(runes[start:end])); chunk != "" {
			sentences = append(sentences, chunk)
		}
	}
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		// A blank line is a paragraph break and always ends the sentence,
		// so headings and list items without terminators stand alone.
		if r == '\n' && blankLineAhead(runes, i) {
			flush(i)
			for i < len(runes) && unicode.IsSpace(runes[i]) {
				i++
			}
			start = i
			i--
			continue
		}
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if r == '.' && !periodEndsSentence(runes, i) {
			continue
		}
		end := i + 1
		for end < len(runes) && isTrailer(runes[end]) {
			end++
		}
		flush(end)
		start = end
		i = end - 1
	}
	flush(len(runes))
	return sentences
}

// blankLineAhead reports whether the newline at i is followed by another
// newline with only horizontal space between them.
func blankLineAhead(runes []rune, i int) bool {
	for j := i + 1; j < len(runes); j++ {
		switch runes[j] {
		case ' ', '\t', '\r':
		case '\n':
			return true
		default:
			return false
		}
	}
	return false
}

// periodEndsSentence applies the splitting guards: a period between digits
// is a decimal point, and a period after an abbreviation or a single-letter
// initial continues the sentence.
func periodEndsSentence(runes []rune, i int) bool {
	if i > 0 && i+1 < len(runes) && unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[i+1]) {
		return false
	}
	word := wordBefore(runes, i)
	if len(word) == 0 {
		return true
	}
	if len(word) == 1 {
		return false
	}
	return !abbreviations[strings.ToLower(string(word))]
}

// wordBefore returns the run of letters, including word-internal
// apostrophes, immediately preceding index i. Contractions stay whole so
// "don't." is not mistaken for a single-letter initial.
func wordBefore(runes []rune, i int) []rune {
	j := i
	for j > 0 {
		r := runes[j-1]
		if unicode.IsLetter(r) {
			j--
			continue
		}
		if isApostrophe(r) && j > 1 && unicode.IsLetter(runes[j-2]) {
			j--
			continue
		}
		break
	}
	return runes[j:i]
}

// isTrailer reports whether r belongs to the tail of a just-terminated
// sentence, such as the rest of an ellipsis or a closing quote.
func isTrailer(r rune) bool {
	switch r {
	case '.', '!', '?', '"', '\'', ')', ']', '”', '’':
		return true
	}
	return false
}

// tokenize splits a sentence chunk into tokens. Maximal runs of letters,
// digits, and word-internal apostrophes form one token; every other
// non-space rune is a punctuation token of its own.
func tokenize(sentence string) []readability.Token {
	var tokens []readability.Token
	var run []rune
	hasLetter := false
	flush := func() {
		if len(run) > 0 {
			tokens = append(tokens, Token{text: string(run), word: hasLetter})
			run = run[:0]
		}
		hasLetter = false
	}

	runes := []rune(sentence)
	for i, r := range runes {
		switch {
		case unicode.IsLetter(r):
			run = append(run, r)
			hasLetter = true
		case unicode.IsDigit(r):
			run = append(run, r)
		case isApostrophe(r) && len(run) > 0 && i+1 < len(runes) && unicode.IsLetter(runes[i+1]):
			run = append(run, r)
		case unicode.IsSpace(r):
			flush()
		default:
			flush()
			tokens = append(tokens, Token{text: string(r), word: false})
		}
	}
	flush()
	return tokens
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '’'
}
