package walker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultExcludes are directory names skipped during traversal.
var DefaultExcludes = []string{
	".git",
	".hg",
	".svn",
	"node_modules",
	"vendor",
	"dist",
	"build",
	"target",
	".venv",
	".idea",
	".vscode",
}

// markdownExts are the file extensions treated as markdown.
var markdownExts = map[string]bool{
	".md":       true,
	".markdown": true,
	".mdown":    true,
}

// File is a markdown file discovered under a root.
type File struct {
	Path    string // Path on disk.
	RelPath string // Slash-separated path relative to the root.
}

// IsMarkdown reports whether name has a markdown extension.
func IsMarkdown(name string) bool {
	return markdownExts[strings.ToLower(filepath.Ext(name))]
}

// Markdown lists the markdown files under root, sorted by relative path.
// Include patterns restrict the result when non-empty; exclude patterns
// and the root's .gitignore remove entries. Patterns are doublestar globs
// matched against the relative path and the base name.
func Markdown(root string, include, exclude []string) ([]File, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("walker: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("walker: %s is not a directory", root)
	}

	ignored := loadGitignore(filepath.Join(root, ".gitignore"))

	var files []File
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Skip entries we cannot read instead of aborting.
			return nil
		}

		if d.IsDir() {
			if path != root && isExcludedDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || !IsMarkdown(d.Name()) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if len(include) > 0 && !matchesAny(rel, include) {
			return nil
		}
		if matchesAny(rel, exclude) || matchesAny(rel, ignored) {
			return nil
		}

		files = append(files, File{Path: path, RelPath: rel})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walker: traversal: %w", err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].RelPath < files[j].RelPath })
	return files, nil
}

func isExcludedDir(name string) bool {
	for _, excl := range DefaultExcludes {
		if strings.EqualFold(name, excl) {
			return true
		}
	}
	return false
}

// matchesAny checks rel and each of its parent directories against the
// patterns, so "drafts/**" and "drafts" both exclude a subtree.
func matchesAny(rel string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	base := filepath.Base(rel)
	for _, pattern := range patterns {
		pattern = strings.TrimSuffix(filepath.ToSlash(pattern), "/")
		if pattern == "" {
			continue
		}
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
		if ok, _ := doublestar.Match(pattern, base); ok {
			return true
		}
		for dir := filepath.Dir(rel); dir != "." && dir != "/"; dir = filepath.Dir(dir) {
			if ok, _ := doublestar.Match(pattern, dir); ok {
				return true
			}
		}
	}
	return false
}

// loadGitignore reads a .gitignore file and returns its non-empty,
// non-comment, non-negated lines as patterns.
func loadGitignore(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var patterns []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}
		patterns = append(patterns, strings.TrimPrefix(line, "/"))
	}
	return patterns
}
