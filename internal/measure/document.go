package measure

import (
	"path/filepath"
	"strings"

	"github.com/RaRedmer/readability"
	"github.com/RaRedmer/readability/internal/mdtext"
	"github.com/RaRedmer/readability/plaintext"
)

// Document is the shared measure input for a single file. Expensive
// derived values are computed lazily and cached.
type Document struct {
	Path     string
	Source   []byte
	Language readability.Language
	Words    readability.WordList

	plainText      string
	plainTextReady bool

	doc      *plaintext.Doc
	docReady bool

	report      *readability.Report
	reportReady bool
}

// NewDocument constructs a Document wrapper for measure computation.
// words may be nil when no familiar-word list is configured.
func NewDocument(path string, source []byte, lang readability.Language, words readability.WordList) *Document {
	return &Document{
		Path:     path,
		Source:   source,
		Language: lang,
		Words:    words,
	}
}

// PlainText returns the document prose. Markdown files are reduced to
// plain text first; any other file is used as-is.
func (d *Document) PlainText() string {
	if d.plainTextReady {
		return d.plainText
	}

	if isMarkdownPath(d.Path) {
		d.plainText = mdtext.Text(d.Source)
	} else {
		d.plainText = string(d.Source)
	}
	d.plainTextReady = true
	return d.plainText
}

// Parsed returns the segmented document.
func (d *Document) Parsed() *plaintext.Doc {
	if d.docReady {
		return d.doc
	}

	d.doc = plaintext.Parse(d.PlainText())
	d.docReady = true
	return d.doc
}

// Report returns the readability report for the document. The report
// caches its own statistics, so repeated measure reads share one scan.
func (d *Document) Report() *readability.Report {
	if d.reportReady {
		return d.report
	}

	opts := []readability.Option{readability.WithLanguage(d.Language)}
	if d.Words != nil {
		opts = append(opts, readability.WithWordList(d.Words))
	}
	d.report = readability.NewReport(d.Parsed(), opts...)
	d.reportReady = true
	return d.report
}

// Statistics returns the text counters for the document.
func (d *Document) Statistics() (readability.Statistics, error) {
	return d.Report().Statistics()
}

func isMarkdownPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
