// Package wordlist loads familiar-word lists for the Dale-Chall measure.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kljensen/snowball"
)

// List is a set of familiar words. A word is contained when its lower-cased
// form matches an entry, or when its English Snowball stem matches the stem
// of an entry, so inflections of familiar words stay familiar.
type List struct {
	words map[string]struct{}
	stems map[string]struct{}
}

// New builds a list from the given words.
func New(words []string) *List {
	l := &List{
		words: make(map[string]struct{}, len(words)),
		stems: make(map[string]struct{}, len(words)),
	}
	for _, w := range words {
		l.add(w)
	}
	return l
}

// Read parses a list from r, one word per line. Blank lines and lines
// starting with # are skipped.
func Read(r io.Reader) (*List, error) {
	l := New(nil)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		l.add(line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return l, nil
}

// Load reads a list from the file at path.
func Load(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	l, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Len returns the number of distinct words in the list.
func (l *List) Len() int { return len(l.words) }

// Contains reports whether word is familiar.
func (l *List) Contains(word string) bool {
	w := strings.ToLower(word)
	if _, ok := l.words[w]; ok {
		return true
	}
	stem, err := snowball.Stem(w, "english", true)
	if err != nil {
		return false
	}
	_, ok := l.stems[stem]
	return ok
}

func (l *List) add(word string) {
	w := strings.ToLower(strings.TrimSpace(word))
	if w == "" {
		return
	}
	l.words[w] = struct{}{}
	if stem, err := snowball.Stem(w, "english", true); err == nil {
		l.stems[stem] = struct{}{}
	}
}
