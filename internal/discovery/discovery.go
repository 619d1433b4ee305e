// Package discovery expands file arguments and glob patterns into the set
// of documents a command should read.
package discovery

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gobwas/glob"
)

// textPatterns are the globs collected when an argument names a directory.
var textPatterns = []string{"**/*.md", "**/*.markdown", "**/*.txt"}

// Options controls discovery.
type Options struct {
	// Patterns holds the globs a walked file must match. Nothing is
	// discovered when the list is empty.
	Patterns []string

	// BaseDir is the walk root, "." when empty.
	BaseDir string

	// UseGitignore drops files matched by .gitignore rules.
	UseGitignore bool

	// Ignore holds the config file's ignore globs.
	Ignore []string
}

// Resolve expands command line arguments into concrete file paths. An
// argument may name a file, a directory, or a glob pattern. Directories
// are walked recursively for Markdown and plain text files. Explicitly
// named files are always included, even when ignore rules would match
// them; naming a path that does not exist is an error.
func Resolve(args []string, opts Options) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	keep := func(path string) {
		key := path
		if abs, err := filepath.Abs(path); err == nil {
			key = abs
		}
		if !seen[key] {
			seen[key] = true
			files = append(files, path)
		}
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		switch {
		case err == nil && info.IsDir():
			found, derr := Discover(Options{
				Patterns:     textPatterns,
				BaseDir:      arg,
				UseGitignore: opts.UseGitignore,
				Ignore:       opts.Ignore,
			})
			if derr != nil {
				return nil, derr
			}
			for _, f := range found {
				keep(f)
			}
		case err == nil:
			keep(arg)
		case hasGlobMeta(arg):
			found, derr := Discover(Options{
				Patterns:     []string{filepath.ToSlash(arg)},
				BaseDir:      opts.BaseDir,
				UseGitignore: opts.UseGitignore,
				Ignore:       opts.Ignore,
			})
			if derr != nil {
				return nil, derr
			}
			for _, f := range found {
				keep(f)
			}
		default:
			return nil, err
		}
	}
	return files, nil
}

func hasGlobMeta(arg string) bool {
	return strings.ContainsAny(arg, "*?[{")
}

// Discover walks BaseDir and returns the files matching any pattern,
// sorted and deduplicated. Paths come back relative to BaseDir as the
// caller wrote it, so output stays in the user's own terms.
func Discover(opts Options) ([]string, error) {
	globs := usablePatterns(opts.Patterns)
	if len(globs) == 0 {
		return nil, nil
	}

	root := opts.BaseDir
	if root == "" {
		root = "."
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	scan := &treeScan{
		root:    filepath.Clean(root),
		absRoot: absRoot,
		globs:   globs,
		ignore:  compileIgnore(opts.Ignore),
		found:   make(map[string]string),
	}
	if opts.UseGitignore {
		scan.git = NewGitignoreMatcher(root)
	}

	if err := filepath.WalkDir(absRoot, scan.visit); err != nil {
		return nil, err
	}
	return scan.files(), nil
}

// usablePatterns drops syntactically invalid globs.
func usablePatterns(patterns []string) []string {
	out := patterns[:0:0]
	for _, p := range patterns {
		if doublestar.ValidatePattern(p) {
			out = append(out, p)
		}
	}
	return out
}

// compileIgnore compiles ignore globs, dropping patterns that fail to parse.
func compileIgnore(patterns []string) []glob.Glob {
	out := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		if g, err := glob.Compile(p); err == nil {
			out = append(out, g)
		}
	}
	return out
}

// treeScan accumulates matches during one directory walk. found maps the
// absolute path to the display path recorded for it.
type treeScan struct {
	root    string
	absRoot string
	globs   []string
	git     *GitignoreMatcher
	ignore  []glob.Glob
	found   map[string]string
}

func (s *treeScan) visit(path string, d fs.DirEntry, walkErr error) error {
	if walkErr != nil {
		return walkErr
	}

	rel, err := filepath.Rel(s.absRoot, path)
	if err != nil || rel == "." {
		return nil
	}
	rel = filepath.ToSlash(rel)

	if s.git != nil && s.git.IsIgnored(path, d.IsDir()) {
		if d.IsDir() {
			return filepath.SkipDir
		}
		return nil
	}
	if d.IsDir() {
		return nil
	}

	display := filepath.Join(s.root, filepath.FromSlash(rel))
	if s.configIgnored(display, rel) {
		return nil
	}
	if !s.matchesPattern(rel) {
		return nil
	}

	if _, ok := s.found[path]; !ok {
		s.found[path] = display
	}
	return nil
}

// configIgnored reports whether a configured ignore glob matches the
// file. Globs are tried against the display path, the walk-relative
// path, and the base name.
func (s *treeScan) configIgnored(display, rel string) bool {
	base := filepath.Base(rel)
	for _, g := range s.ignore {
		if g.Match(display) || g.Match(rel) || g.Match(base) {
			return true
		}
	}
	return false
}

func (s *treeScan) matchesPattern(rel string) bool {
	for _, p := range s.globs {
		if ok, err := doublestar.Match(p, rel); err == nil && ok {
			return true
		}
	}
	return false
}

// files returns the recorded display paths in sorted order.
func (s *treeScan) files() []string {
	out := make([]string, 0, len(s.found))
	for _, display := range s.found {
		out = append(out, display)
	}
	sort.Strings(out)
	return out
}
