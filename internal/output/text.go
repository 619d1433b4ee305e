package output

import (
	"fmt"
	"io"
)

// TextFormatter outputs findings in human-readable text format.
// When Color is true, the file path is printed in cyan and the measure
// name in yellow.
type TextFormatter struct {
	Color bool
}

// Format writes each finding as a single line in the pattern:
// path measure message
func (f *TextFormatter) Format(w io.Writer, findings []Finding) error {
	for _, fd := range findings {
		var err error
		if f.Color {
			// path in cyan, measure in yellow
			_, err = fmt.Fprintf(w, "\033[36m%s\033[0m \033[33m%s\033[0m %s\n",
				fd.Path, fd.Measure, fd.message())
		} else {
			_, err = fmt.Fprintf(w, "%s %s %s\n", fd.Path, fd.Measure, fd.message())
		}
		if err != nil {
			return err
		}
	}
	return nil
}
