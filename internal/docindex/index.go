package docindex

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Document is a single searchable entry in the documentation index.
type Document struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Content string `json:"content"`
	Folder  string `json:"folder,omitempty"`
	Path    string `json:"path"`
}

// Breadcrumb splits the slash-separated folder into its display segments.
// For "guides/setup/linux" it returns ["guides", "setup", "linux"].
func (d Document) Breadcrumb() []string {
	if d.Folder == "" {
		return nil
	}
	var parts []string
	for _, p := range strings.Split(d.Folder, "/") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// file is the on-disk shape of docs.json.
type file struct {
	Files []Document `json:"files"`
}

// Index is an ordered, read-only collection of documents.
type Index struct {
	docs   []Document
	byPath map[string]int
}

// New builds an Index from docs, preserving their order.
// Document IDs must be unique.
func New(docs []Document) (*Index, error) {
	idx := &Index{
		docs:   make([]Document, len(docs)),
		byPath: make(map[string]int, len(docs)),
	}
	copy(idx.docs, docs)

	seen := make(map[int]bool, len(docs))
	for i, d := range idx.docs {
		if seen[d.ID] {
			return nil, fmt.Errorf("duplicate document id %d (%q)", d.ID, d.Name)
		}
		seen[d.ID] = true
		key := normalizePath(d.Path)
		if _, ok := idx.byPath[key]; !ok {
			idx.byPath[key] = i
		}
	}
	return idx, nil
}

// Parse decodes a docs.json payload of the form {"files": [...]}.
func Parse(data []byte) (*Index, error) {
	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding document index: %w", err)
	}
	return New(f.Files)
}

// Load reads and parses the document index at path.
func Load(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document index %s: %w", path, err)
	}
	idx, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return idx, nil
}

// Save writes the index as indented JSON to path.
func (i *Index) Save(path string) error {
	data, err := json.MarshalIndent(file{Files: i.docs}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Documents returns a copy of the documents in index order.
func (i *Index) Documents() []Document {
	out := make([]Document, len(i.docs))
	copy(out, i.docs)
	return out
}

// Len reports the number of documents.
func (i *Index) Len() int { return len(i.docs) }

// ByPath looks up a document by its navigation path. Leading and trailing
// slashes are ignored.
func (i *Index) ByPath(path string) (Document, bool) {
	pos, ok := i.byPath[normalizePath(path)]
	if !ok {
		return Document{}, false
	}
	return i.docs[pos], true
}

func normalizePath(p string) string {
	return strings.Trim(p, "/")
}
