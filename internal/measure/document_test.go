package measure

import (
	"testing"

	"github.com/RaRedmer/readability"
)

func TestDocument_MarkdownReducedToPlainText(t *testing.T) {
	src := []byte("# Heading\n\nSome *body* text.\n")
	doc := NewDocument("doc.md", src, readability.English, nil)

	got := doc.PlainText()
	want := "Heading\n\nSome body text."
	if got != want {
		t.Errorf("PlainText = %q, want %q", got, want)
	}
}

func TestDocument_PlainTextPassthrough(t *testing.T) {
	src := []byte("# not markdown, kept verbatim\n")
	doc := NewDocument("notes.txt", src, readability.English, nil)

	if got := doc.PlainText(); got != string(src) {
		t.Errorf("PlainText = %q, want %q", got, string(src))
	}
}

func TestDocument_MarkdownExtensionCaseInsensitive(t *testing.T) {
	src := []byte("# Heading\n")
	doc := NewDocument("DOC.MD", src, readability.English, nil)

	if got := doc.PlainText(); got != "Heading" {
		t.Errorf("PlainText = %q, want %q", got, "Heading")
	}
}

func TestDocument_StatisticsStable(t *testing.T) {
	doc := NewDocument("doc.txt", []byte("One two. Three four."), readability.English, nil)

	first, err := doc.Statistics()
	if err != nil {
		t.Fatalf("Statistics: %v", err)
	}
	second, err := doc.Statistics()
	if err != nil {
		t.Fatalf("Statistics: %v", err)
	}
	if first != second {
		t.Errorf("statistics drifted between reads: %+v vs %+v", first, second)
	}
	if first.Sentences != 2 || first.Words != 4 {
		t.Errorf("statistics = %+v, want 2 sentences and 4 words", first)
	}
}

func TestDocument_ReportUsesLanguage(t *testing.T) {
	doc := NewDocument("doc.txt", []byte("Der Hund lief."), readability.German, nil)

	got, err := doc.Report().FleschReadingEase()
	if err != nil {
		t.Fatalf("FleschReadingEase: %v", err)
	}
	// Amstad: 180 - 3/1 - 58.5*(3/3) = 118.5.
	want := 118.5
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("FleschReadingEase = %v, want %v", got, want)
	}
}
