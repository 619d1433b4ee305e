package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/RaRedmer/readability"
	"github.com/RaRedmer/readability/internal/config"
	"github.com/RaRedmer/readability/wordlist"
)

func main() {
	os.Exit(run())
}

const usageText = `Usage: readability <command> [flags] [files...]

Commands:
  score     Compute readability measures for files
  rank      Rank files by a readability measure
  check     Check files against configured thresholds
  measures  List available measures
  help      Show help for measures and topics
  init      Generate a default .readability.yml config file
  version   Print the version and exit

Global flags:
  -h, --help      Show this help

Run 'readability <command> --help' for more information on a command.
`

func run() int {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	switch cmd := os.Args[1]; cmd {
	case "--help", "-h":
		fmt.Fprint(os.Stderr, usageText)
		return 0
	case "score":
		return runScore(os.Args[2:])
	case "rank":
		return runRank(os.Args[2:])
	case "check":
		return runCheck(os.Args[2:])
	case "measures":
		return runMeasures(os.Args[2:])
	case "help":
		return runHelp(os.Args[2:])
	case "init":
		return runInit(os.Args[2:])
	case "version":
		fmt.Printf("readability %s\n", buildVersion())
		return 0
	default:
		fmt.Fprintf(os.Stderr, "readability: unknown command %q\n\n%s", cmd, usageText)
		return 2
	}
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}

// runInit implements the "init" subcommand: generate .readability.yml.
func runInit(args []string) int {
	if len(args) > 0 {
		fmt.Fprintf(os.Stderr, "readability: init takes no arguments\n")
		return 2
	}

	const configFile = ".readability.yml"

	for _, name := range []string{configFile, ".readability.yaml"} {
		if _, err := os.Stat(name); err == nil {
			fmt.Fprintf(os.Stderr, "readability: %s already exists\n", name)
			return 2
		}
	}

	data, err := yaml.Marshal(config.DumpDefaults())
	if err != nil {
		fmt.Fprintf(os.Stderr, "readability: marshalling config: %v\n", err)
		return 2
	}
	if err := os.WriteFile(configFile, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "readability: writing %s: %v\n", configFile, err)
		return 2
	}

	fmt.Fprintf(os.Stderr, "readability: created %s\n", configFile)
	return 0
}

const helpUsageText = `Usage: readability help <topic>

Topics:
  measure [id|name]   Show measure documentation
`

func runHelp(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, helpUsageText)
		return 0
	}

	switch args[0] {
	case "measure":
		return runHelpMeasure(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "readability: help: unknown topic %q\n", args[0])
		return 2
	}
}

// isStdinPipe reports whether stdin carries piped data rather than a
// terminal.
func isStdinPipe() bool {
	info, err := os.Stdin.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice == 0
}

// newLogger returns a console logger on stderr when verbose is set and a
// no-op logger otherwise.
func newLogger(verbose bool) zerolog.Logger {
	if !verbose {
		return zerolog.Nop()
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(w).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}

// loadConfig returns the effective config: the defaults overlaid with the
// file at configPath, or with a config discovered upward from the working
// directory when no path is given. The second result names the file that
// was loaded, "" when running on defaults alone.
func loadConfig(configPath string) (*config.Config, string, error) {
	path := configPath
	if path == "" {
		if cwd, err := os.Getwd(); err == nil {
			if found, err := config.Discover(cwd); err == nil {
				path = found
			}
		}
	}

	defaults := config.Defaults()
	if path == "" {
		return config.Merge(defaults, nil), "", nil
	}

	loaded, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return config.Merge(defaults, loaded), path, nil
}

// documentSettings resolves the language and word list for scoring from
// flags and config. Flag values win over config values. A word list path
// from the config file is taken relative to the config file's directory.
func documentSettings(langFlag, wordListFlag string, cfg *config.Config, cfgPath string) (readability.Language, readability.WordList, error) {
	langRaw := langFlag
	if langRaw == "" {
		langRaw = cfg.Language
	}
	lang, err := readability.ParseLanguage(langRaw)
	if err != nil {
		return "", nil, fmt.Errorf("unsupported language %q (supported: en, de)", langRaw)
	}

	listPath := wordListFlag
	if listPath == "" && cfg.WordList != "" {
		listPath = cfg.WordList
		if !filepath.IsAbs(listPath) && cfgPath != "" {
			listPath = filepath.Join(filepath.Dir(cfgPath), listPath)
		}
	}

	var words readability.WordList
	if listPath != "" {
		list, err := wordlist.Load(listPath)
		if err != nil {
			return lang, nil, err
		}
		words = list
	}

	return lang, words, nil
}
