package search

import (
	"strings"

	"github.com/ziadkadry99/docsview/internal/docindex"
)

// Filter returns the documents whose name or content contains query,
// ignoring case. Results keep index order; the empty query matches all.
func Filter(docs []docindex.Document, query string) []docindex.Document {
	q := strings.ToLower(query)
	out := make([]docindex.Document, 0, len(docs))
	for _, d := range docs {
		if Matches(d, q) {
			out = append(out, d)
		}
	}
	return out
}

// Matches reports whether doc matches an already lower-cased query.
func Matches(doc docindex.Document, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(doc.Name), lowerQuery) ||
		strings.Contains(strings.ToLower(doc.Content), lowerQuery)
}
