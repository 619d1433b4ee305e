// Package readability computes standardized readability metrics (Flesch
// Reading Ease, Flesch-Kincaid Grade Level, SMOG, Coleman-Liau, ARI and
// friends) over text that has already been tokenized and sentence-segmented.
//
// The package does no segmentation of its own: any NLP front end can feed
// it by satisfying the Document, Sentence and Token interfaces. The
// plaintext subpackage provides a naive built-in front end for plain text.
package readability

// Token is a single unit of text produced by the upstream tokenizer.
type Token interface {
	// Text returns the token's surface text.
	Text() string
	// IsWord reports whether the token is word-like. Punctuation,
	// whitespace and pure-number tokens are not words.
	IsWord() bool
}

// Sentence is an ordered sequence of tokens.
type Sentence interface {
	Tokens() []Token
}

// Document is an ordered sequence of sentences.
type Document interface {
	Sentences() []Sentence
}

// WordList answers familiar-word membership for Dale-Chall scoring.
// Implementations normalize case internally; Contains receives the
// token's surface text as-is.
type WordList interface {
	Contains(word string) bool
}
