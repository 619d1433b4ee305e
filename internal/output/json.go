package output

import (
	"encoding/json"
	"io"
	"math"
)

// JSONFormatter outputs findings as a JSON array.
type JSONFormatter struct{}

type jsonFinding struct {
	Path      string  `json:"path"`
	Measure   string  `json:"measure"`
	Value     float64 `json:"value"`
	Limit     float64 `json:"limit"`
	Direction string  `json:"direction"`
}

// Format writes findings as a pretty-printed JSON array.
// Values are rounded to two decimals; an empty slice produces [].
func (f *JSONFormatter) Format(w io.Writer, findings []Finding) error {
	items := make([]jsonFinding, 0, len(findings))
	for _, fd := range findings {
		items = append(items, jsonFinding{
			Path:      fd.Path,
			Measure:   fd.Measure,
			Value:     math.Round(fd.Value*100) / 100,
			Limit:     fd.Limit,
			Direction: string(fd.Direction),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}
