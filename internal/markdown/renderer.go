package markdown

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// Defaults for Options.
const (
	DefaultFallbackLanguage = "bash"
	DefaultLangPrefix       = "hljs language-"
	DefaultTokenPrefix      = "hljs-"
)

// Options configures a Renderer. Zero fields take the defaults above.
type Options struct {
	// Highlighter overrides the chroma highlighter.
	Highlighter      Highlighter
	FallbackLanguage string
	// LangPrefix is prepended to the language in the <code> class.
	LangPrefix string
	// TokenPrefix is prepended to chroma token classes.
	TokenPrefix string
	// UnsafeHTML passes raw HTML in the markdown through untouched.
	UnsafeHTML bool
	Logger     *slog.Logger
}

// Document is a rendered markdown document.
type Document struct {
	HTML string
	// CopyPayloads holds the copy button payload of each code block, in
	// document order.
	CopyPayloads []string
}

// Renderer converts markdown into display HTML with highlighted code and
// copy buttons. It holds no per-document state and may be shared.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer builds a GFM renderer from opts.
func NewRenderer(opts Options) *Renderer {
	if opts.FallbackLanguage == "" {
		opts.FallbackLanguage = DefaultFallbackLanguage
	}
	if opts.LangPrefix == "" {
		opts.LangPrefix = DefaultLangPrefix
	}
	if opts.TokenPrefix == "" {
		opts.TokenPrefix = DefaultTokenPrefix
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Highlighter == nil {
		opts.Highlighter = NewChromaHighlighter(opts.FallbackLanguage, opts.TokenPrefix)
	}

	code := &codeBlockRenderer{
		hl:         opts.Highlighter,
		langPrefix: opts.LangPrefix,
		fallback:   opts.FallbackLanguage,
		logger:     opts.Logger,
	}
	rendererOpts := []renderer.Option{
		renderer.WithNodeRenderers(util.Prioritized(code, 200)),
	}
	if opts.UnsafeHTML {
		rendererOpts = append(rendererOpts, html.WithUnsafe())
	}

	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(rendererOpts...),
		),
	}
}

// RenderDocument converts markdown to HTML and collects the copy payloads.
// Malformed markdown is handled by the parser's own recovery rules.
func (r *Renderer) RenderDocument(markdown string) (Document, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return Document{}, fmt.Errorf("converting markdown: %w", err)
	}
	out, payloads, err := decorateCodeBlocks(buf.String())
	if err != nil {
		return Document{}, err
	}
	return Document{HTML: out, CopyPayloads: payloads}, nil
}

// Render converts markdown to HTML.
func (r *Renderer) Render(markdown string) (string, error) {
	doc, err := r.RenderDocument(markdown)
	if err != nil {
		return "", err
	}
	return doc.HTML, nil
}
