package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	"github.com/RaRedmer/readability"
	"github.com/RaRedmer/readability/internal/config"
	"github.com/RaRedmer/readability/internal/discovery"
	"github.com/RaRedmer/readability/internal/measure"
	"github.com/RaRedmer/readability/internal/output"
)

// runCheck implements the "check" subcommand: evaluate configured thresholds.
func runCheck(args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	var (
		configPath  string
		format      string
		noColor     bool
		quiet       bool
		verbose     bool
		noGitignore bool
	)

	fs.StringVarP(&configPath, "config", "c", "", "Override config file path")
	fs.StringVarP(&format, "format", "f", "text", "Output format: text, json")
	fs.BoolVar(&noColor, "no-color", false, "Disable ANSI colors")
	fs.BoolVarP(&quiet, "quiet", "q", false, "Suppress non-error output")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Show config, files, and thresholds on stderr")
	fs.BoolVar(&noGitignore, "no-gitignore", false, "Disable .gitignore filtering when walking directories")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: readability check [flags] [files...]\n\n"+
			"Check files against the thresholds configured in .readability.yml.\n\n"+
			"Files can be paths, directories (walked recursively for .md, .markdown\n"+
			"and .txt files), or glob patterns.\n"+
			"With no file arguments, reads from stdin if piped.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	// --quiet suppresses verbose
	if quiet {
		verbose = false
	}

	logger := newLogger(verbose)

	cfg, cfgPath, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "readability: %v\n", err)
		return 2
	}
	if cfgPath != "" {
		logger.Debug().Str("path", cfgPath).Msg("loaded config")
	}

	lang, words, err := documentSettings("", "", cfg, cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "readability: %v\n", err)
		return 2
	}

	fileArgs := fs.Args()

	var findings []output.Finding
	checked := 0
	if len(fileArgs) == 0 {
		if !isStdinPipe() {
			return 0
		}
		source, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "readability: reading stdin: %v\n", err)
			return 2
		}
		findings, err = findingsForSource("<stdin>", source, cfg, lang, words, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "readability: %v\n", err)
			return 2
		}
		checked = 1
	} else {
		files, err := discovery.Resolve(fileArgs, discovery.Options{
			UseGitignore: !noGitignore,
			Ignore:       cfg.Ignore,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "readability: %v\n", err)
			return 2
		}
		if len(files) == 0 {
			return 0
		}

		findings, err = collectFindings(files, cfg, lang, words, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "readability: %v\n", err)
			return 2
		}
		checked = len(files)
	}

	if !quiet && len(findings) > 0 {
		if code := formatFindings(findings, format, noColor); code != 0 {
			return code
		}
	}
	logger.Info().Int("files", checked).Int("findings", len(findings)).Msg("checked")

	if len(findings) > 0 {
		return 1
	}
	return 0
}

// collectFindings evaluates the effective thresholds for each file.
func collectFindings(paths []string, cfg *config.Config, lang readability.Language, words readability.WordList, log zerolog.Logger) ([]output.Finding, error) {
	var findings []output.Finding
	for _, path := range paths {
		source, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}

		found, err := findingsForSource(path, source, cfg, lang, words, log)
		if err != nil {
			return nil, err
		}
		findings = append(findings, found...)
	}
	return findings, nil
}

// findingsForSource checks one document against its effective thresholds.
// Thresholds naming unknown measures are skipped; measures unavailable for
// the document (missing word list, language gate) produce no finding.
func findingsForSource(path string, source []byte, cfg *config.Config, lang readability.Language, words readability.WordList, log zerolog.Logger) ([]output.Finding, error) {
	thresholds := config.Effective(cfg, path)
	if len(thresholds) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(thresholds))
	for name := range thresholds {
		names = append(names, name)
	}
	sort.Strings(names)

	doc := measure.NewDocument(path, source, lang, words)

	var findings []output.Finding
	for _, name := range names {
		def, ok := measure.Lookup(name)
		if !ok {
			log.Warn().Str("measure", name).Msg("threshold names unknown measure")
			continue
		}

		value, err := measure.Evaluate(def, doc)
		if err != nil {
			return nil, fmt.Errorf("computing %q for %q: %w", def.Name, path, err)
		}
		if !value.Available {
			continue
		}

		th := thresholds[name]
		if th.Max != nil && value.Number > *th.Max {
			findings = append(findings, output.Finding{
				Path:      path,
				Measure:   def.Name,
				Value:     value.Number,
				Limit:     *th.Max,
				Direction: output.Max,
			})
		}
		if th.Min != nil && value.Number < *th.Min {
			findings = append(findings, output.Finding{
				Path:      path,
				Measure:   def.Name,
				Value:     value.Number,
				Limit:     *th.Min,
				Direction: output.Min,
			})
		}
	}

	log.Debug().Str("path", path).Int("findings", len(findings)).Msg("checked file")
	return findings, nil
}

// formatFindings writes findings to stderr using the specified format.
// Returns a non-zero exit code on write error, or 0 on success.
func formatFindings(findings []output.Finding, format string, noColor bool) int {
	var formatter output.Formatter
	switch format {
	case "json":
		formatter = &output.JSONFormatter{}
	default:
		formatter = &output.TextFormatter{Color: !noColor}
	}
	if err := formatter.Format(os.Stderr, findings); err != nil {
		fmt.Fprintf(os.Stderr, "readability: error writing output: %v\n", err)
		return 2
	}
	return 0
}
