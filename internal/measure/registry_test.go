package measure

import (
	"strings"
	"testing"

	"github.com/RaRedmer/readability"
	"github.com/RaRedmer/readability/wordlist"
)

func TestParseOrder(t *testing.T) {
	order, err := ParseOrder("asc")
	if err != nil {
		t.Fatalf("ParseOrder(asc): %v", err)
	}
	if order != OrderAsc {
		t.Fatalf("order = %q, want %q", order, OrderAsc)
	}

	order, err = ParseOrder("")
	if err != nil {
		t.Fatalf("ParseOrder(empty): %v", err)
	}
	if order != OrderDesc {
		t.Fatalf("default order = %q, want %q", order, OrderDesc)
	}

	if _, err := ParseOrder("sideways"); err == nil {
		t.Fatal("expected error for invalid order")
	}
}

func TestResolve_Defaults(t *testing.T) {
	defs, err := Resolve(readability.English, nil)
	if err != nil {
		t.Fatalf("Resolve defaults: %v", err)
	}
	if len(defs) == 0 {
		t.Fatal("expected default measures")
	}
	if defs[0].ID != "RD007" {
		t.Fatalf("first default measure = %q, want RD007", defs[0].ID)
	}
}

func TestResolve_UnknownMeasureHasActionableError(t *testing.T) {
	_, err := Resolve(readability.English, []string{"bogus"})
	if err == nil {
		t.Fatal("expected unknown measure error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "unknown measure") {
		t.Fatalf("error = %q, expected unknown measure message", msg)
	}
	if !strings.Contains(msg, "available:") {
		t.Fatalf("error = %q, expected available list", msg)
	}
}

func TestResolve_LanguageGate(t *testing.T) {
	_, err := Resolve(readability.German, []string{"smog"})
	if err == nil {
		t.Fatal("expected language availability error")
	}
	if !strings.Contains(err.Error(), "not available for language") {
		t.Fatalf("error = %q, expected language message", err.Error())
	}
}

func TestResolve_DeduplicatesIDAndName(t *testing.T) {
	defs, err := Resolve(readability.English, []string{"RD009", "smog", "words"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(defs) != 2 {
		t.Fatalf("len = %d, want 2 (%v)", len(defs), defs)
	}
	if defs[0].Name != "smog" || defs[1].Name != "words" {
		t.Fatalf("resolved = %q, %q; want smog, words", defs[0].Name, defs[1].Name)
	}
}

func TestSplitList(t *testing.T) {
	got := SplitList(" smog, lix , ,words ")
	want := []string{"smog", "lix", "words"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("item %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestForLanguage_GermanExcludesEnglishOnly(t *testing.T) {
	defs := ForLanguage(readability.German)
	if len(defs) != 10 {
		t.Fatalf("len = %d, want 10", len(defs))
	}
	for _, def := range defs {
		if def.Name == "smog" {
			t.Fatal("smog should not be available for German")
		}
	}
}

func TestDefaults_German(t *testing.T) {
	defs := Defaults(readability.German)
	if len(defs) != 2 {
		t.Fatalf("len = %d, want 2", len(defs))
	}
	if defs[0].Name != "flesch-reading-ease" || defs[1].Name != "gunning-fog" {
		t.Fatalf("defaults = %q, %q", defs[0].Name, defs[1].Name)
	}
}

func TestBuiltins_Computable(t *testing.T) {
	src := []byte("# Title\n\nOne two three four. Five six seven.\n")
	doc := NewDocument("test.md", src, readability.English, nil)

	defs := ForLanguage(readability.English)
	if len(defs) != 17 {
		t.Fatalf("len = %d, want 17", len(defs))
	}

	values := make(map[string]Value, len(defs))
	for _, def := range defs {
		v, err := Evaluate(def, doc)
		if err != nil {
			t.Fatalf("compute(%s): %v", def.Name, err)
		}
		if def.Name == "dale-chall" {
			if v.Available {
				t.Fatal("dale-chall unexpectedly available without a word list")
			}
			continue
		}
		if !v.Available {
			t.Fatalf("measure %s unexpectedly unavailable", def.Name)
		}
		values[def.Name] = v
	}

	if values["sentences"].Number != 3 {
		t.Fatalf("sentences = %.0f, want 3", values["sentences"].Number)
	}
	if values["words"].Number != 8 {
		t.Fatalf("words = %.0f, want 8", values["words"].Number)
	}
}

func TestEvaluate_LanguageGateIsUnavailable(t *testing.T) {
	def, ok := Lookup("smog")
	if !ok {
		t.Fatal("smog measure not found")
	}

	doc := NewDocument("test.txt", []byte("Ein kurzer Satz."), readability.German, nil)
	v, err := Evaluate(def, doc)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if v.Available {
		t.Fatal("smog should be unavailable for a German document")
	}
}

func TestDaleChall_AvailableWithList(t *testing.T) {
	def, ok := Lookup("dale-chall")
	if !ok {
		t.Fatal("dale-chall measure not found")
	}

	list := wordlist.New([]string{"the", "cat", "sat"})
	doc := NewDocument("test.txt", []byte("The cat sat."), readability.English, list)

	v, err := Evaluate(def, doc)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !v.Available {
		t.Fatal("dale-chall should be available with a word list")
	}
}

func TestLookup_CaseInsensitiveID(t *testing.T) {
	def, ok := Lookup("rd007")
	if !ok {
		t.Fatal("lookup rd007 failed")
	}
	if def.Name != "flesch-reading-ease" {
		t.Fatalf("name = %q, want flesch-reading-ease", def.Name)
	}
}
