package main

import (
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/RaRedmer/readability"
	"github.com/RaRedmer/readability/internal/config"
	"github.com/RaRedmer/readability/internal/discovery"
	"github.com/RaRedmer/readability/internal/measure"
)

type rankOptions struct {
	scoreOptions
	byRaw    string
	orderRaw string
	top      int
}

// runRank implements the "rank" subcommand.
func runRank(args []string) int {
	opts, fileArgs, err := parseRankOptions(args)
	if err != nil {
		if err == flag.ErrHelp {
			return 2
		}
		fmt.Fprintf(os.Stderr, "readability: %v\n", err)
		return 2
	}
	return executeRank(opts, fileArgs)
}

func parseRankOptions(args []string) (rankOptions, []string, error) {
	fs := flag.NewFlagSet("rank", flag.ContinueOnError)
	var opts rankOptions

	addScoreFlags(fs, &opts.scoreOptions)
	fs.StringVar(&opts.byRaw, "by", "", "Measure to sort by (defaults to the first selected measure)")
	fs.StringVar(&opts.orderRaw, "order", "", "Sort order: asc or desc (defaults by measure)")
	fs.IntVar(&opts.top, "top", 0, "Limit results to top N files (0 = all)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: readability rank [flags] [files...]\n\n"+
			"Compute selected measures and rank files by one of them.\n"+
			"With no file arguments, defaults to the current directory.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return rankOptions{}, nil, err
	}
	if opts.top < 0 {
		return rankOptions{}, nil, fmt.Errorf("--top must be >= 0")
	}

	fileArgs := fs.Args()
	if len(fileArgs) == 0 {
		fileArgs = []string{"."}
	}

	return opts, fileArgs, nil
}

func executeRank(opts rankOptions, fileArgs []string) int {
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

	defs, byDef, order, err := resolveRankSelection(opts, lang, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "readability: %v\n", err)
		return 2
	}

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

	rows, err := measure.CollectWithLogger(files, defs, lang, words, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "readability: %v\n", err)
		return 2
	}
	measure.SortRows(rows, byDef, order)
	rows = measure.LimitRows(rows, opts.top)

	if err := writeScoreOutput(opts.format, rows, defs); err != nil {
		fmt.Fprintf(os.Stderr, "readability: %v\n", err)
		return 2
	}

	logger.Info().Int("files", len(rows)).Str("by", byDef.Name).Msg("ranked")
	return 0
}

// resolveRankSelection resolves the selected measures, the sort measure,
// and the sort order for a rank invocation.
func resolveRankSelection(
	opts rankOptions,
	lang readability.Language,
	cfg *config.Config,
) ([]measure.Definition, measure.Definition, measure.Order, error) {
	selectedNames := selectionNames(opts.measuresRaw, cfg)
	defs, err := measure.Resolve(lang, selectedNames)
	if err != nil {
		return nil, measure.Definition{}, "", err
	}

	var byDef measure.Definition
	if strings.TrimSpace(opts.byRaw) == "" {
		byDef = defs[0]
	} else {
		byDefs, err := measure.Resolve(lang, []string{opts.byRaw})
		if err != nil {
			return nil, measure.Definition{}, "", err
		}
		byDef = byDefs[0]
	}

	// The sort measure is always computed.
	if !containsMeasure(defs, byDef.ID) {
		if len(selectedNames) > 0 {
			return nil, measure.Definition{}, "", fmt.Errorf(
				"--by measure %q must be included in --measures",
				byDef.Name,
			)
		}
		defs = append(defs, byDef)
	}

	order := byDef.DefaultOrder
	if strings.TrimSpace(opts.orderRaw) != "" {
		parsed, err := measure.ParseOrder(opts.orderRaw)
		if err != nil {
			return nil, measure.Definition{}, "", err
		}
		order = parsed
	}

	return defs, byDef, order, nil
}

func containsMeasure(defs []measure.Definition, id string) bool {
	for _, def := range defs {
		if def.ID == id {
			return true
		}
	}
	return false
}
