package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	flag "github.com/spf13/pflag"

	"github.com/RaRedmer/readability"
	"github.com/RaRedmer/readability/internal/measure"
)

// runMeasures implements the "measures" subcommand: list the registry.
func runMeasures(args []string) int {
	fs := flag.NewFlagSet("measures", flag.ContinueOnError)
	var (
		language string
		format   string
	)

	fs.StringVar(&language, "language", "", "Only list measures available for this language")
	fs.StringVarP(&format, "format", "f", "text", "Output format: text, json")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: readability measures [flags]\n\n"+
			"List available readability measures.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "readability: measures takes no file arguments\n")
		return 2
	}

	var defs []measure.Definition
	if strings.TrimSpace(language) == "" {
		defs = measure.All()
	} else {
		lang, err := readability.ParseLanguage(language)
		if err != nil {
			fmt.Fprintf(os.Stderr, "readability: unsupported language %q (supported: en, de)\n", language)
			return 2
		}
		defs = measure.ForLanguage(lang)
	}

	switch format {
	case "text":
		if err := writeMeasuresText(defs); err != nil {
			fmt.Fprintf(os.Stderr, "readability: writing output: %v\n", err)
			return 2
		}
	case "json":
		if err := writeMeasuresJSON(defs); err != nil {
			fmt.Fprintf(os.Stderr, "readability: writing output: %v\n", err)
			return 2
		}
	default:
		fmt.Fprintf(os.Stderr, "readability: unknown format %q (supported: text, json)\n", format)
		return 2
	}

	return 0
}

// languagesLabel renders a definition's language gate for listings.
func languagesLabel(def measure.Definition) string {
	if len(def.Languages) == 0 {
		return "all"
	}
	parts := make([]string, 0, len(def.Languages))
	for _, lang := range def.Languages {
		parts = append(parts, string(lang))
	}
	return strings.Join(parts, ",")
}

func writeMeasuresText(defs []measure.Definition) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "ID\tNAME\tLANGUAGES\tORDER\tDEFAULT\tDESCRIPTION"); err != nil {
		return err
	}
	for _, def := range defs {
		if _, err := fmt.Fprintf(
			tw,
			"%s\t%s\t%s\t%s\t%t\t%s\n",
			def.ID,
			def.Name,
			languagesLabel(def),
			def.DefaultOrder,
			def.Default,
			def.Description,
		); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func writeMeasuresJSON(defs []measure.Definition) error {
	items := make([]map[string]any, 0, len(defs))
	for _, def := range defs {
		items = append(items, map[string]any{
			"id":            def.ID,
			"name":          def.Name,
			"description":   def.Description,
			"languages":     languagesLabel(def),
			"default":       def.Default,
			"default_order": def.DefaultOrder,
		})
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

// runHelpMeasure implements "help measure [id|name]".
func runHelpMeasure(args []string) int {
	if len(args) == 0 {
		return listAllMeasures()
	}
	return showMeasure(args[0])
}

func listAllMeasures() int {
	docs, err := measure.ListDocs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "readability: %v\n", err)
		return 2
	}

	for _, d := range docs {
		fmt.Printf("%-6s %-22s %s\n", d.ID, d.Name, d.Description)
	}
	return 0
}

func showMeasure(query string) int {
	content, err := measure.LookupDoc(query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "readability: %v\n", err)
		return 2
	}
	fmt.Print(content)
	return 0
}
