package markdown

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// ErrHighlight wraps every failure to highlight a code block.
var ErrHighlight = errors.New("highlight failed")

// Highlighter turns source code into highlighted HTML for the inside of a
// <code> element. lang is the language declared on the fence and may be
// empty or unknown.
type Highlighter interface {
	Highlight(code, lang string) (string, error)
}

// HighlightFunc adapts a function to Highlighter.
type HighlightFunc func(code, lang string) (string, error)

func (f HighlightFunc) Highlight(code, lang string) (string, error) { return f(code, lang) }

// ChromaHighlighter highlights with chroma, emitting CSS classes rather
// than inline styles.
type ChromaHighlighter struct {
	fallback  string
	formatter *chromahtml.Formatter
}

// NewChromaHighlighter returns a highlighter that uses fallback for
// unknown or missing languages and prefixes token classes with
// tokenPrefix.
func NewChromaHighlighter(fallback, tokenPrefix string) *ChromaHighlighter {
	return &ChromaHighlighter{
		fallback: fallback,
		formatter: chromahtml.New(
			chromahtml.WithClasses(true),
			chromahtml.ClassPrefix(tokenPrefix),
			chromahtml.PreventSurroundingPre(true),
		),
	}
}

// Lexer resolves lang, falling back to the configured default language.
func (h *ChromaHighlighter) Lexer(lang string) chroma.Lexer {
	var lexer chroma.Lexer
	if lang != "" {
		lexer = lexers.Get(lang)
	}
	if lexer == nil {
		lexer = lexers.Get(h.fallback)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}

// Highlight implements Highlighter. Panics inside chroma are reported as
// errors.
func (h *ChromaHighlighter) Highlight(code, lang string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %q: %v", ErrHighlight, lang, r)
		}
	}()

	iterator, err := h.Lexer(lang).Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("%w: tokenising %q: %v", ErrHighlight, lang, err)
	}
	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, styles.Fallback, iterator); err != nil {
		return "", fmt.Errorf("%w: formatting %q: %v", ErrHighlight, lang, err)
	}
	return buf.String(), nil
}

// StyleSheet returns the CSS for the named chroma style, using the same
// token class prefix as the highlighter. Unknown styles use chroma's
// fallback style.
func StyleSheet(style, tokenPrefix string) (string, error) {
	f := chromahtml.New(
		chromahtml.WithClasses(true),
		chromahtml.ClassPrefix(tokenPrefix),
	)
	var buf bytes.Buffer
	if err := f.WriteCSS(&buf, styles.Get(style)); err != nil {
		return "", fmt.Errorf("writing %s stylesheet: %w", style, err)
	}
	return buf.String(), nil
}
