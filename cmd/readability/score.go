package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	flag "github.com/spf13/pflag"

	"github.com/RaRedmer/readability"
	"github.com/RaRedmer/readability/internal/config"
	"github.com/RaRedmer/readability/internal/discovery"
	"github.com/RaRedmer/readability/internal/measure"
)

// scoreOptions holds the flags shared by the score and rank subcommands.
type scoreOptions struct {
	configPath   string
	measuresRaw  string
	language     string
	wordListPath string
	format       string
	verbose      bool
	noGitignore  bool
}

// addScoreFlags registers the shared score/rank flags on fs.
func addScoreFlags(fs *flag.FlagSet, opts *scoreOptions) {
	fs.StringVarP(&opts.configPath, "config", "c", "", "Override config file path")
	fs.StringVar(&opts.measuresRaw, "measures", "", "Comma-separated measures (defaults to registry defaults)")
	fs.StringVar(&opts.language, "language", "", "Document language (en, de)")
	fs.StringVar(&opts.wordListPath, "word-list", "", "Path to a familiar-word list for dale-chall")
	fs.StringVarP(&opts.format, "format", "f", "text", "Output format: text, json")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "Show config, files, and timing on stderr")
	fs.BoolVar(&opts.noGitignore, "no-gitignore", false, "Disable .gitignore filtering when walking directories")
}

// runScore implements the "score" subcommand.
func runScore(args []string) int {
	fs := flag.NewFlagSet("score", flag.ContinueOnError)
	var opts scoreOptions
	addScoreFlags(fs, &opts)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: readability score [flags] [files...]\n\n"+
			"Compute readability measures for text and Markdown files.\n\n"+
			"Files can be paths, directories (walked recursively for .md, .markdown\n"+
			"and .txt files), or glob patterns.\n"+
			"With no file arguments, reads from stdin if piped.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := newLogger(opts.verbose)

	cfg, cfgPath, err := loadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "readability: %v\n", err)
		return 2
	}
	if cfgPath != "" {
		logger.Debug().Str("path", cfgPath).Msg("loaded config")
	}

	lang, words, err := documentSettings(opts.language, opts.wordListPath, cfg, cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "readability: %v\n", err)
		return 2
	}

	defs, err := measure.Resolve(lang, selectionNames(opts.measuresRaw, cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "readability: %v\n", err)
		return 2
	}

	fileArgs := fs.Args()

	var rows []measure.Row
	if len(fileArgs) == 0 {
		if !isStdinPipe() {
			return 0
		}
		row, err := scoreStdin(defs, lang, words)
		if err != nil {
			fmt.Fprintf(os.Stderr, "readability: %v\n", err)
			return 2
		}
		rows = []measure.Row{row}
	} else {
		files, err := discovery.Resolve(fileArgs, discovery.Options{
			UseGitignore: !opts.noGitignore,
			Ignore:       cfg.Ignore,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "readability: %v\n", err)
			return 2
		}
		if len(files) == 0 {
			return 0
		}

		rows, err = measure.CollectWithLogger(files, defs, lang, words, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "readability: %v\n", err)
			return 2
		}
	}

	if err := writeScoreOutput(opts.format, rows, defs); err != nil {
		fmt.Fprintf(os.Stderr, "readability: %v\n", err)
		return 2
	}

	logger.Info().Int("files", len(rows)).Int("measures", len(defs)).Msg("scored")
	return 0
}

// selectionNames returns the measure names selected by flag or config.
// The flag wins over the config; an empty result means registry defaults.
func selectionNames(measuresRaw string, cfg *config.Config) []string {
	names := measure.SplitList(measuresRaw)
	if len(names) == 0 {
		names = cfg.Measures
	}
	return names
}

// scoreStdin reads all of stdin and evaluates the selected measures on it.
func scoreStdin(defs []measure.Definition, lang readability.Language, words readability.WordList) (measure.Row, error) {
	source, err := io.ReadAll(os.Stdin)
	if err != nil {
		return measure.Row{}, fmt.Errorf("reading stdin: %w", err)
	}

	doc := measure.NewDocument("<stdin>", source, lang, words)
	values := make(map[string]measure.Value, len(defs))
	for _, def := range defs {
		v, err := measure.Evaluate(def, doc)
		if err != nil {
			return measure.Row{}, fmt.Errorf("computing %q: %w", def.Name, err)
		}
		values[def.Name] = v
	}

	return measure.Row{Path: "<stdin>", Measures: values}, nil
}

// writeScoreOutput renders rows to stdout in the requested format.
func writeScoreOutput(format string, rows []measure.Row, defs []measure.Definition) error {
	switch format {
	case "text":
		return writeScoreText(rows, defs)
	case "json":
		return writeScoreJSON(rows, defs)
	default:
		return fmt.Errorf("unknown format %q (supported: text, json)", format)
	}
}

func writeScoreText(rows []measure.Row, defs []measure.Definition) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	var headers []string
	for _, def := range defs {
		headers = append(headers, strings.ToUpper(def.Name))
	}
	headers = append(headers, "PATH")
	if _, err := fmt.Fprintln(tw, strings.Join(headers, "\t")); err != nil {
		return err
	}

	for _, row := range rows {
		cols := make([]string, 0, len(defs)+1)
		for _, def := range defs {
			cols = append(cols, def.Format(row.Measures[def.Name]))
		}
		cols = append(cols, row.Path)
		if _, err := fmt.Fprintln(tw, strings.Join(cols, "\t")); err != nil {
			return err
		}
	}

	return tw.Flush()
}

func writeScoreJSON(rows []measure.Row, defs []measure.Definition) error {
	items := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		item := map[string]any{
			"path": row.Path,
		}
		for _, def := range defs {
			item[def.Name] = def.Scalar(row.Measures[def.Name])
		}
		items = append(items, item)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}
