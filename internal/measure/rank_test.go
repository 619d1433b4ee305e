package measure

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/RaRedmer/readability"
)

func TestSortRows_DescendingWithPathTieBreak(t *testing.T) {
	def, ok := Lookup("words")
	if !ok {
		t.Fatal("words measure not found")
	}

	rows := []Row{
		{Path: "b.md", Measures: map[string]Value{"words": AvailableValue(10)}},
		{Path: "a.md", Measures: map[string]Value{"words": AvailableValue(10)}},
		{Path: "c.md", Measures: map[string]Value{"words": AvailableValue(3)}},
	}

	SortRows(rows, def, OrderDesc)

	want := []string{"a.md", "b.md", "c.md"}
	for i, path := range want {
		if rows[i].Path != path {
			t.Fatalf("row %d path = %q, want %q", i, rows[i].Path, path)
		}
	}
}

func TestSortRows_AvailableBeforeUnavailable(t *testing.T) {
	def, ok := Lookup("dale-chall")
	if !ok {
		t.Fatal("dale-chall measure not found")
	}

	rows := []Row{
		{Path: "a.md", Measures: map[string]Value{"dale-chall": UnavailableValue()}},
		{Path: "b.md", Measures: map[string]Value{"dale-chall": AvailableValue(6.2)}},
	}

	SortRows(rows, def, OrderAsc)
	if rows[0].Path != "b.md" {
		t.Fatalf("available row should sort first, got %q", rows[0].Path)
	}
}

func TestLimitRows(t *testing.T) {
	rows := []Row{
		{Path: "a.md"},
		{Path: "b.md"},
		{Path: "c.md"},
	}
	limited := LimitRows(rows, 2)
	if len(limited) != 2 {
		t.Fatalf("len = %d, want 2", len(limited))
	}
	if full := LimitRows(rows, 0); len(full) != 3 {
		t.Fatalf("top 0 should keep all rows, got %d", len(full))
	}
}

func TestDefinitionFormat(t *testing.T) {
	intDef, ok := Lookup("words")
	if !ok {
		t.Fatal("words measure not found")
	}
	floatDef, ok := Lookup("flesch-reading-ease")
	if !ok {
		t.Fatal("flesch-reading-ease measure not found")
	}

	if got := intDef.Format(AvailableValue(12.4)); got != "12" {
		t.Fatalf("int format = %q, want 12", got)
	}
	if got := floatDef.Format(AvailableValue(12.44)); got != "12.4" {
		t.Fatalf("float format = %q, want 12.4", got)
	}
	if got := floatDef.Format(UnavailableValue()); got != "-" {
		t.Fatalf("unavailable format = %q, want -", got)
	}
}

func TestDefinitionScalar(t *testing.T) {
	intDef, _ := Lookup("words")
	floatDef, _ := Lookup("rix")

	if got := intDef.Scalar(AvailableValue(12.6)); got != int64(13) {
		t.Fatalf("integer value = %v, want 13", got)
	}
	if got := floatDef.Scalar(AvailableValue(3.14159)); got != 3.14 {
		t.Fatalf("float value = %v, want 3.14", got)
	}
	if got := floatDef.Scalar(UnavailableValue()); got != nil {
		t.Fatalf("unavailable value = %v, want nil", got)
	}
}

func TestCollect(t *testing.T) {
	dir := t.TempDir()
	short := filepath.Join(dir, "short.txt")
	long := filepath.Join(dir, "long.txt")
	if err := os.WriteFile(short, []byte("One two."), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(long, []byte("One two three four five."), 0o644); err != nil {
		t.Fatal(err)
	}

	def, ok := Lookup("words")
	if !ok {
		t.Fatal("words measure not found")
	}

	rows, err := Collect([]string{short, long}, []Definition{def}, readability.English, nil)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len = %d, want 2", len(rows))
	}
	if rows[0].Path != short || rows[0].Measures["words"].Number != 2 {
		t.Fatalf("row 0 = %+v, want 2 words for %s", rows[0], short)
	}
	if rows[1].Measures["words"].Number != 5 {
		t.Fatalf("row 1 words = %.0f, want 5", rows[1].Measures["words"].Number)
	}
}

func TestCollect_MissingFile(t *testing.T) {
	def, _ := Lookup("words")
	_, err := Collect([]string{filepath.Join(t.TempDir(), "absent.txt")}, []Definition{def}, readability.English, nil)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
