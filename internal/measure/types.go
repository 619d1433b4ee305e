package measure

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/RaRedmer/readability"
)

// Order is the direction rows are sorted in when ranking by a measure.
type Order string

const (
	// OrderAsc puts the smallest value first.
	OrderAsc Order = "asc"
	// OrderDesc puts the largest value first.
	OrderDesc Order = "desc"
)

// ParseOrder maps a user-supplied order flag to an Order. The empty
// string means descending.
func ParseOrder(raw string) (Order, error) {
	switch o := Order(strings.ToLower(strings.TrimSpace(raw))); o {
	case "", OrderDesc:
		return OrderDesc, nil
	case OrderAsc:
		return OrderAsc, nil
	default:
		return "", fmt.Errorf("unknown order %q (supported: asc, desc)", raw)
	}
}

// ValueKind selects the rendering of a measure value.
type ValueKind string

const (
	// KindInteger values render as whole numbers.
	KindInteger ValueKind = "integer"
	// KindFloat values render with the definition's precision.
	KindFloat ValueKind = "float"
)

// Value is one computed measure result. Available is false when the
// measure does not apply, for instance a language-gated formula or
// Dale-Chall without a word list.
type Value struct {
	Number    float64
	Available bool
}

// AvailableValue wraps a computed number.
func AvailableValue(n float64) Value {
	return Value{Number: n, Available: true}
}

// UnavailableValue marks a measure as not applicable.
func UnavailableValue() Value {
	return Value{}
}

// Definition describes a measure and how to compute it.
type Definition struct {
	ID           string
	Name         string
	Description  string
	Kind         ValueKind
	Precision    int
	Default      bool
	DefaultOrder Order

	// Languages lists the languages the measure is published for.
	// Empty means the measure applies to every supported language.
	Languages []readability.Language

	Compute func(doc *Document) (Value, error)
}

// Supports reports whether the measure applies to documents in lang.
func (d Definition) Supports(lang readability.Language) bool {
	if len(d.Languages) == 0 {
		return true
	}
	for _, l := range d.Languages {
		if l == lang {
			return true
		}
	}
	return false
}

// Format renders v for text output. Unavailable values render as "-".
func (d Definition) Format(v Value) string {
	switch s := d.Scalar(v).(type) {
	case int64:
		return strconv.FormatInt(s, 10)
	case float64:
		return strconv.FormatFloat(s, 'f', d.Precision, 64)
	default:
		return "-"
	}
}

// Scalar converts v to a JSON-safe value, rounded to the definition's
// precision. Unavailable values become nil.
func (d Definition) Scalar(v Value) any {
	if !v.Available {
		return nil
	}
	if d.Kind == KindInteger {
		return int64(math.Round(v.Number))
	}
	if d.Precision < 0 {
		return v.Number
	}
	scale := math.Pow10(d.Precision)
	return math.Round(v.Number*scale) / scale
}
