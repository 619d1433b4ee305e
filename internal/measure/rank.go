package measure

import (
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/rs/zerolog"

	"github.com/RaRedmer/readability"
)

// Row holds the computed values of the selected measures for one file.
type Row struct {
	Path     string
	Measures map[string]Value
}

// Collect scores every path with the selected measures.
func Collect(paths []string, defs []Definition, lang readability.Language, words readability.WordList) ([]Row, error) {
	return CollectWithLogger(paths, defs, lang, words, zerolog.Nop())
}

// CollectWithLogger is Collect with per-file debug logging.
func CollectWithLogger(paths []string, defs []Definition, lang readability.Language, words readability.WordList, log zerolog.Logger) ([]Row, error) {
	rows := make([]Row, 0, len(paths))
	for _, path := range paths {
		row, err := scoreFile(path, defs, lang, words)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("path", path).Int("measures", len(defs)).Msg("scored file")
		rows = append(rows, row)
	}
	return rows, nil
}

func scoreFile(path string, defs []Definition, lang readability.Language, words readability.WordList) (Row, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return Row{}, fmt.Errorf("reading %q: %w", path, err)
	}

	doc := NewDocument(path, source, lang, words)
	row := Row{Path: path, Measures: make(map[string]Value, len(defs))}
	for _, def := range defs {
		v, err := Evaluate(def, doc)
		if err != nil {
			return Row{}, fmt.Errorf("computing %q for %q: %w", def.Name, path, err)
		}
		row.Measures[def.Name] = v
	}
	return row, nil
}

// SortRows orders rows by the given measure, ties broken by path so the
// ordering is deterministic. Files where the measure is unavailable sink
// to the bottom regardless of order.
func SortRows(rows []Row, by Definition, order Order) {
	sort.SliceStable(rows, func(i, j int) bool {
		switch c := compareValues(rows[i].Measures[by.Name], rows[j].Measures[by.Name], order); {
		case c != 0:
			return c < 0
		default:
			return rows[i].Path < rows[j].Path
		}
	})
}

// compareValues returns a negative number when a sorts before b under
// order. Values within 1e-9 of each other count as equal.
func compareValues(a, b Value, order Order) int {
	if a.Available != b.Available {
		if a.Available {
			return -1
		}
		return 1
	}
	if !a.Available {
		return 0
	}

	diff := a.Number - b.Number
	if math.Abs(diff) <= 1e-9 {
		return 0
	}
	if (order == OrderAsc) == (diff < 0) {
		return -1
	}
	return 1
}

// LimitRows truncates rows to the top n entries. Zero keeps everything.
func LimitRows(rows []Row, n int) []Row {
	if n > 0 && n < len(rows) {
		return rows[:n]
	}
	return rows
}
