package syllable

import (
	"errors"
	"testing"
)

func TestEstimate_KnownWords(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"a", 1},
		{"to", 1},
		{"the", 1},
		{"cat", 1},
		{"four", 1},
		{"words", 1},
		{"free", 1},
		{"made", 1},
		{"rope", 1},
		{"whale", 1},
		{"contain", 2},
		{"idea", 2},
		{"table", 2},
		{"apple", 2},
		{"estimate", 3},
		{"possible", 3},
		{"syllable", 3},
		{"calculate", 3},
		{"therefore", 3},
		{"readability", 5},
		{"extraordinary", 5},
	}
	for _, tt := range tests {
		got, err := Estimate(tt.word)
		if err != nil {
			t.Errorf("Estimate(%q) returned error: %v", tt.word, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Estimate(%q) = %d, want %d", tt.word, got, tt.want)
		}
	}
}

func TestEstimate_ShortWordsAreOneSyllable(t *testing.T) {
	for _, word := range []string{"a", "I", "ox", "be", "it"} {
		got, err := Estimate(word)
		if err != nil {
			t.Fatalf("Estimate(%q): %v", word, err)
		}
		if got != 1 {
			t.Errorf("Estimate(%q) = %d, want 1", word, got)
		}
	}
}

func TestEstimate_CaseInsensitive(t *testing.T) {
	lower, err := Estimate("readability")
	if err != nil {
		t.Fatal(err)
	}
	upper, err := Estimate("READABILITY")
	if err != nil {
		t.Fatal(err)
	}
	if lower != upper {
		t.Errorf("case changed the estimate: %d vs %d", lower, upper)
	}
}

func TestEstimate_StripsNonLetters(t *testing.T) {
	got, err := Estimate("don't")
	if err != nil {
		t.Fatalf("Estimate(don't): %v", err)
	}
	if got != 1 {
		t.Errorf("Estimate(don't) = %d, want 1", got)
	}
}

func TestEstimate_NoVowelsClampsToOne(t *testing.T) {
	got, err := Estimate("tsk")
	if err != nil {
		t.Fatalf("Estimate(tsk): %v", err)
	}
	if got != 1 {
		t.Errorf("Estimate(tsk) = %d, want 1", got)
	}
}

func TestEstimate_InvalidInput(t *testing.T) {
	for _, input := range []string{"", "?!", "123", "--"} {
		_, err := Estimate(input)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Estimate(%q) error = %v, want ErrInvalidInput", input, err)
		}
	}
}

func TestEstimate_AlwaysAtLeastOne(t *testing.T) {
	words := []string{
		"strength", "queue", "eye", "psst", "aloe",
		"onomatopoeia", "knight", "gnome",
	}
	for _, word := range words {
		got, err := Estimate(word)
		if err != nil {
			t.Fatalf("Estimate(%q): %v", word, err)
		}
		if got < 1 {
			t.Errorf("Estimate(%q) = %d, want >= 1", word, got)
		}
	}
}
