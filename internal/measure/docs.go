package measure

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed RD*/README.md
var docsFS embed.FS

// frontMatterSep delimits the YAML front matter block of a measure README.
const frontMatterSep = "---"

// DocInfo holds metadata extracted from a measure README's front matter.
type DocInfo struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Content     string `yaml:"-"`
}

// ListDocs returns all embedded measure docs sorted by ID.
func ListDocs() ([]DocInfo, error) {
	return listDocsFromFS(docsFS)
}

// LookupDoc finds a measure doc by ID (e.g. RD001) or name (e.g. words)
// and returns its full README content. IDs match case-insensitively.
func LookupDoc(query string) (string, error) {
	docs, err := ListDocs()
	if err != nil {
		return "", err
	}

	trimmed := strings.TrimSpace(query)
	for _, d := range docs {
		if strings.EqualFold(d.ID, trimmed) || d.Name == strings.ToLower(trimmed) {
			return d.Content, nil
		}
	}
	return "", fmt.Errorf("unknown measure %q", query)
}

func listDocsFromFS(fsys fs.FS) ([]DocInfo, error) {
	paths, err := fs.Glob(fsys, "*/README.md")
	if err != nil {
		return nil, fmt.Errorf("globbing measure docs: %w", err)
	}

	var docs []DocInfo
	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			continue
		}
		info, ok := parseDoc(string(data))
		if !ok {
			continue
		}
		docs = append(docs, info)
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

// parseDoc decodes the front matter of one README. Files without a
// well-formed front matter block carrying id and name are skipped.
func parseDoc(content string) (DocInfo, bool) {
	meta, ok := frontMatterBlock(content)
	if !ok {
		return DocInfo{}, false
	}

	var info DocInfo
	if err := yaml.Unmarshal([]byte(meta), &info); err != nil {
		return DocInfo{}, false
	}
	if info.ID == "" || info.Name == "" {
		return DocInfo{}, false
	}
	info.Content = content
	return info, true
}

// frontMatterBlock returns the YAML between the leading pair of ---
// separator lines.
func frontMatterBlock(content string) (string, bool) {
	rest, found := strings.CutPrefix(content, frontMatterSep+"\n")
	if !found {
		return "", false
	}
	meta, _, found := strings.Cut(rest, "\n"+frontMatterSep)
	if !found {
		return "", false
	}
	return meta, true
}
