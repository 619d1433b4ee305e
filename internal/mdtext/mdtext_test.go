package mdtext_test

import (
	"testing"

	"github.com/RaRedmer/readability/internal/mdtext"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestExtractPlainText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain sentence",
			input: "Reading scores guide revisions.\n",
			want:  "Reading scores guide revisions.",
		},
		{
			name:  "link unwrapped",
			input: "See the [style guide](https://docs.local/style) for details.\n",
			want:  "See the style guide for details.",
		},
		{
			name:  "emphasis unwrapped",
			input: "Prefer *short* sentences.\n",
			want:  "Prefer short sentences.",
		},
		{
			name:  "strong unwrapped",
			input: "Avoid **nested clauses** in summaries.\n",
			want:  "Avoid nested clauses in summaries.",
		},
		{
			name:  "code span kept as prose",
			input: "Run `go doc` for reference.\n",
			want:  "Run go doc for reference.",
		},
		{
			name:  "image alt text kept",
			input: "The ![coverage badge](badge.svg) tracks the trend.\n",
			want:  "The coverage badge tracks the trend.",
		},
		{
			name:  "nested markup",
			input: "Read [*the full report*](https://docs.local/report) first.\n",
			want:  "Read the full report first.",
		},
		{
			name:  "soft line break becomes space",
			input: "Wrapped lines\nstill flow.\n",
			want:  "Wrapped lines still flow.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := []byte(tt.input)
			node := firstParagraph(t, source)
			if got := mdtext.ExtractPlainText(node, source); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// firstParagraph parses source and returns its first top-level paragraph.
func firstParagraph(t *testing.T, source []byte) ast.Node {
	t.Helper()
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if _, ok := n.(*ast.Paragraph); ok {
			return n
		}
	}
	t.Fatalf("no paragraph in %q", source)
	return nil
}

func TestText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "paragraphs become blocks",
			input: "Opening thought.\n\nClosing thought.\n",
			want:  "Opening thought.\n\nClosing thought.",
		},
		{
			name:  "heading is its own block",
			input: "## Scoring\n\nEach file gets a score.\n",
			want:  "Scoring\n\nEach file gets a score.",
		},
		{
			name:  "list items are blocks",
			input: "- write short sentences\n- avoid jargon\n",
			want:  "write short sentences\n\navoid jargon",
		},
		{
			name:  "fenced code dropped",
			input: "Before the sample.\n\n```sh\nwc -w chapter.txt\n```\n\nAfter the sample.\n",
			want:  "Before the sample.\n\nAfter the sample.",
		},
		{
			name:  "indented code dropped",
			input: "Usage notes.\n\n    rank --top 3\n\nMore notes.\n",
			want:  "Usage notes.\n\nMore notes.",
		},
		{
			name:  "html block dropped",
			input: "<table>\n<tr><td>cell</td></tr>\n</table>\n\nTables render elsewhere.\n",
			want:  "Tables render elsewhere.",
		},
		{
			name:  "blockquote text kept",
			input: "> Keep sentences short.\n",
			want:  "Keep sentences short.",
		},
		{
			name:  "inline markup unwrapped",
			input: "Scores follow [*one formula*](https://docs.local/flesch) per measure.\n",
			want:  "Scores follow one formula per measure.",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mdtext.Text([]byte(tt.input)); got != tt.want {
				t.Errorf("Text(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
