package markdown

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DocumentRenderer renders markdown into a Document.
type DocumentRenderer interface {
	RenderDocument(markdown string) (Document, error)
}

type cacheEntry struct {
	source string
	doc    Document
}

// CachedRenderer memoizes rendered documents in a bounded LRU keyed by
// the hash of the markdown source. It is safe for concurrent use.
type CachedRenderer struct {
	next  DocumentRenderer
	cache *lru.Cache[uint64, cacheEntry]
}

// NewCachedRenderer wraps next with an LRU of size entries.
func NewCachedRenderer(next DocumentRenderer, size int) (*CachedRenderer, error) {
	cache, err := lru.New[uint64, cacheEntry](size)
	if err != nil {
		return nil, fmt.Errorf("creating render cache: %w", err)
	}
	return &CachedRenderer{next: next, cache: cache}, nil
}

// RenderDocument returns the cached document for markdown, rendering it on
// a miss. Hash collisions are detected by comparing the source.
func (c *CachedRenderer) RenderDocument(markdown string) (Document, error) {
	key := xxhash.Sum64String(markdown)
	if e, ok := c.cache.Get(key); ok && e.source == markdown {
		return e.doc, nil
	}
	doc, err := c.next.RenderDocument(markdown)
	if err != nil {
		return Document{}, err
	}
	c.cache.Add(key, cacheEntry{source: markdown, doc: doc})
	return doc, nil
}

// Len reports the number of cached documents.
func (c *CachedRenderer) Len() int { return c.cache.Len() }
