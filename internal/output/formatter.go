// Package output renders check findings in text or JSON form.
package output

import (
	"fmt"
	"io"
	"strconv"
)

// Direction says which side of the limit a threshold guards.
type Direction string

const (
	// Max means the measured value must stay at or below the limit.
	Max Direction = "max"
	// Min means the measured value must stay at or above the limit.
	Min Direction = "min"
)

// Finding is a single threshold violation produced by the check command.
type Finding struct {
	Path      string
	Measure   string
	Value     float64
	Limit     float64
	Direction Direction
}

// message renders the violation in words.
func (f Finding) message() string {
	limit := strconv.FormatFloat(f.Limit, 'g', -1, 64)
	if f.Direction == Min {
		return fmt.Sprintf("value %.2f is below min %s", f.Value, limit)
	}
	return fmt.Sprintf("value %.2f exceeds max %s", f.Value, limit)
}

// Formatter defines the interface for outputting findings.
type Formatter interface {
	Format(w io.Writer, findings []Finding) error
}
