package discovery

import (
	"bufio"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// GitignoreMatcher answers whether a path is ignored under git semantics.
// Rules come from every .gitignore visible from the walk root: the files
// in ancestor directories apply first, then the files inside the subtree,
// and within that order the last matching rule wins. Negated rules
// (!pattern) re-include paths an earlier rule ignored.
type GitignoreMatcher struct {
	rules []gitignoreRule
}

// gitignoreRule is one non-comment line of a .gitignore.
type gitignoreRule struct {
	// dir is where the owning .gitignore lives; the rule only applies
	// below it.
	dir     string
	glob    string
	negated bool
	// dirOnly marks patterns with a trailing slash.
	dirOnly bool
	// rooted marks patterns containing a slash, which git matches
	// against the path relative to dir instead of against base names.
	rooted bool
}

// NewGitignoreMatcher loads the .gitignore files governing root: first
// those of the ancestor directories from the filesystem root downward,
// then every .gitignore found inside the tree.
func NewGitignoreMatcher(root string) *GitignoreMatcher {
	m := &GitignoreMatcher{}

	abs, err := filepath.Abs(root)
	if err != nil {
		return m
	}

	var ancestors []string
	for dir := filepath.Dir(abs); ; dir = filepath.Dir(dir) {
		ancestors = append(ancestors, filepath.Join(dir, ".gitignore"))
		if dir == filepath.Dir(dir) {
			break
		}
	}
	for i := len(ancestors) - 1; i >= 0; i-- {
		m.load(ancestors[i])
	}

	_ = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() && d.Name() == ".gitignore" {
			m.load(path)
		}
		return nil
	})

	return m
}

// load appends the rules of one .gitignore file. Unreadable files
// contribute nothing.
func (m *GitignoreMatcher) load(path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer func() { _ = f.Close() }()

	dir := filepath.Dir(path)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if r, ok := parseGitignoreLine(sc.Text(), dir); ok {
			m.rules = append(m.rules, r)
		}
	}
}

// parseGitignoreLine turns one line into a rule. Blank lines and
// comments yield ok == false.
func parseGitignoreLine(line, dir string) (gitignoreRule, bool) {
	line = cutTrailingSpace(line)
	if line == "" || line[0] == '#' {
		return gitignoreRule{}, false
	}

	r := gitignoreRule{dir: dir}
	if line[0] == '!' {
		r.negated = true
		line = line[1:]
	}
	if strings.HasSuffix(line, "/") {
		r.dirOnly = true
		line = strings.TrimSuffix(line, "/")
	}
	if strings.HasPrefix(line, "/") {
		// A leading slash only roots the pattern, it is not part of it.
		line = line[1:]
		r.rooted = true
	} else {
		r.rooted = strings.Contains(line, "/")
	}
	r.glob = line
	return r, line != ""
}

// cutTrailingSpace strips unescaped trailing blanks. A backslash before
// the final space keeps one literal space, per gitignore quoting.
func cutTrailingSpace(s string) string {
	t := strings.TrimRight(s, " \t")
	if strings.HasSuffix(t, `\`) && len(t) < len(s) {
		return t[:len(t)-1] + " "
	}
	return t
}

// IsIgnored reports whether the absolute path is ignored. The rules are
// consulted in order and the last match decides, so a negation can undo
// an earlier ignore.
func (m *GitignoreMatcher) IsIgnored(absPath string, isDir bool) bool {
	ignored := false
	for _, r := range m.rules {
		if r.dirOnly && !isDir {
			continue
		}
		if r.match(absPath) {
			ignored = !r.negated
		}
	}
	return ignored
}

// match tests one rule against an absolute path.
func (r gitignoreRule) match(absPath string) bool {
	rel, err := filepath.Rel(r.dir, absPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		// The rule's .gitignore does not govern this path.
		return false
	}
	rel = filepath.ToSlash(rel)

	if r.rooted {
		return globMatch(r.glob, rel)
	}
	// Unrooted patterns match base names at any depth. The ** prefix
	// also covers depth zero since it may match no components at all.
	return globMatch(r.glob, filepath.Base(absPath)) || globMatch("**/"+r.glob, rel)
}

func globMatch(pattern, name string) bool {
	ok, err := doublestar.Match(pattern, name)
	return err == nil && ok
}
