package markdown

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/docsview/internal/clipboard"
)

func parseHTML(t *testing.T, s string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	require.NoError(t, err)
	return doc
}

func TestRenderSingleCodeBlockGetsOneCopyButton(t *testing.T) {
	r := NewRenderer(Options{})
	src := "# Setup\n\n```go\n  fmt.Println(\"a < b && c\")\n```\n"

	doc, err := r.RenderDocument(src)
	require.NoError(t, err)

	page := parseHTML(t, doc.HTML)
	buttons := page.Find("button.copy-btn")
	require.Equal(t, 1, buttons.Length())
	assert.Equal(t, "Copy", buttons.Text())

	payload, ok := buttons.Attr("data-clipboard-text")
	require.True(t, ok)
	assert.Equal(t, `fmt.Println("a < b && c")`, payload)
	assert.Equal(t, []string{payload}, doc.CopyPayloads)

	wrapper := page.Find("div.code-block")
	require.Equal(t, 1, wrapper.Length())
	assert.True(t, wrapper.HasClass("group"))
	assert.Equal(t, 1, wrapper.Find("pre > code").Length())
}

func TestRenderCodeClassUsesLangPrefix(t *testing.T) {
	r := NewRenderer(Options{})
	out, err := r.Render("```python\nprint(1)\n```\n")
	require.NoError(t, err)

	class, ok := parseHTML(t, out).Find("pre > code").Attr("class")
	require.True(t, ok)
	assert.Equal(t, "hljs language-python", class)
	assert.Contains(t, out, `class="hljs-`)
}

func TestRenderUnknownLanguageFallsBack(t *testing.T) {
	var logs bytes.Buffer
	r := NewRenderer(Options{Logger: slog.New(slog.NewTextHandler(&logs, nil))})

	doc, err := r.RenderDocument("```notalanguage\necho \"hello\" | grep h\n```\n")
	require.NoError(t, err)

	code := parseHTML(t, doc.HTML).Find("pre > code")
	assert.Equal(t, `echo "hello" | grep h`, strings.TrimSpace(code.Text()))
	// The bash lexer recognises the builtin.
	assert.Greater(t, code.Find("span").Length(), 0)
	assert.Empty(t, logs.String())
}

func TestRenderEmptyLanguageUsesFallbackClass(t *testing.T) {
	r := NewRenderer(Options{})
	out, err := r.Render("```\nls -la\n```\n")
	require.NoError(t, err)

	class, _ := parseHTML(t, out).Find("pre > code").Attr("class")
	assert.Equal(t, "hljs language-bash", class)
}

func TestRenderIndentedCodeBlock(t *testing.T) {
	r := NewRenderer(Options{})
	doc, err := r.RenderDocument("Some text\n\n    make build\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"make build"}, doc.CopyPayloads)
}

func TestRenderHighlightFailureDegrades(t *testing.T) {
	var logs bytes.Buffer
	failing := HighlightFunc(func(code, lang string) (string, error) {
		return "", errors.New("boom")
	})
	r := NewRenderer(Options{
		Highlighter: failing,
		Logger:      slog.New(slog.NewTextHandler(&logs, nil)),
	})

	doc, err := r.RenderDocument("```go\nif a < b {}\n```\n")
	require.NoError(t, err)

	code := parseHTML(t, doc.HTML).Find("pre > code")
	assert.Equal(t, "if a < b {}", strings.TrimSpace(code.Text()))
	assert.Equal(t, 0, code.Find("span").Length())
	assert.Equal(t, []string{"if a < b {}"}, doc.CopyPayloads)
	assert.Contains(t, logs.String(), "highlighting code block")
	assert.Contains(t, logs.String(), "boom")
}

func TestRenderPayloadRoundTrip(t *testing.T) {
	r := NewRenderer(Options{})
	code := "package main\n\nfunc main() {\n\tprintln(\"<tag attr=\\\"x\\\">\")\n}"
	doc, err := r.RenderDocument("```go\n\n" + code + "\n\n```\n")
	require.NoError(t, err)
	require.Len(t, doc.CopyPayloads, 1)
	assert.Equal(t, code, doc.CopyPayloads[0])
}

func TestRenderMultipleBlocksInOrder(t *testing.T) {
	r := NewRenderer(Options{})
	src := "```sh\nfirst\n```\n\ntext\n\n```js\nsecond()\n```\n"
	doc, err := r.RenderDocument(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second()"}, doc.CopyPayloads)
	assert.Equal(t, 2, parseHTML(t, doc.HTML).Find("button.copy-btn").Length())
}

func TestRenderIsIdempotent(t *testing.T) {
	r := NewRenderer(Options{})
	src := "# Title\n\n| a | b |\n|---|---|\n| 1 | 2 |\n\n```go\nx := 1\n```\n"
	first, err := r.Render(src)
	require.NoError(t, err)
	second, err := r.Render(src)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderGFM(t *testing.T) {
	r := NewRenderer(Options{})
	out, err := r.Render("| a | b |\n|---|---|\n| 1 | 2 |\n\n~~gone~~ https://example.com\n\n- [x] done\n")
	require.NoError(t, err)
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<del>gone</del>")
	assert.Contains(t, out, `href="https://example.com"`)
	assert.Contains(t, out, `type="checkbox"`)
}

func TestRenderEmptyMarkdown(t *testing.T) {
	r := NewRenderer(Options{})
	doc, err := r.RenderDocument("")
	require.NoError(t, err)
	assert.Empty(t, doc.HTML)
	assert.Empty(t, doc.CopyPayloads)
}

func TestRenderRawHTML(t *testing.T) {
	safe := NewRenderer(Options{})
	out, err := safe.Render("<div class=\"x\">hi</div>\n")
	require.NoError(t, err)
	assert.NotContains(t, out, `<div class="x">`)

	unsafe := NewRenderer(Options{UnsafeHTML: true})
	out, err = unsafe.Render("<div class=\"x\">hi</div>\n")
	require.NoError(t, err)
	assert.Contains(t, out, `<div class="x">`)
}

func TestDecorateIsIdempotent(t *testing.T) {
	once, payloads, err := decorateCodeBlocks(`<p>x</p><pre><code class="a">  y  </code></pre>`)
	require.NoError(t, err)
	assert.Equal(t, []string{"y"}, payloads)

	twice, payloads, err := decorateCodeBlocks(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
	assert.Equal(t, []string{"y"}, payloads)
}

func TestDecorateAttributeWithDelimiters(t *testing.T) {
	src := `<pre><code class="weird&quot;&gt;</code></pre>">a</code></pre>`
	out, payloads, err := decorateCodeBlocks(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, payloads)
	assert.Equal(t, 1, parseHTML(t, out).Find("button.copy-btn").Length())
}

func TestDecorateWithoutCodeIsUnchanged(t *testing.T) {
	src := "<h1 id=\"a\">A</h1>\n<p>text</p>\n"
	out, payloads, err := decorateCodeBlocks(src)
	require.NoError(t, err)
	assert.Equal(t, src, out)
	assert.Nil(t, payloads)
}

func TestChromaHighlighterLexer(t *testing.T) {
	h := NewChromaHighlighter("bash", "hljs-")
	assert.Equal(t, "Go", h.Lexer("go").Config().Name)
	assert.Equal(t, "Bash", h.Lexer("").Config().Name)
	assert.Equal(t, "Bash", h.Lexer("definitely-unknown").Config().Name)
}

func TestStyleSheet(t *testing.T) {
	css, err := StyleSheet("github", "hljs-")
	require.NoError(t, err)
	assert.Contains(t, css, ".hljs-")
}

type countingRenderer struct {
	calls int
	next  DocumentRenderer
}

func (c *countingRenderer) RenderDocument(md string) (Document, error) {
	c.calls++
	return c.next.RenderDocument(md)
}

func TestCachedRenderer(t *testing.T) {
	inner := &countingRenderer{next: NewRenderer(Options{})}
	cached, err := NewCachedRenderer(inner, 2)
	require.NoError(t, err)

	a1, err := cached.RenderDocument("# a")
	require.NoError(t, err)
	a2, err := cached.RenderDocument("# a")
	require.NoError(t, err)
	assert.Equal(t, a1, a2)
	assert.Equal(t, 1, inner.calls)

	_, _ = cached.RenderDocument("# b")
	_, _ = cached.RenderDocument("# c")
	assert.Equal(t, 2, cached.Len())

	// "# a" was evicted.
	_, _ = cached.RenderDocument("# a")
	assert.Equal(t, 4, inner.calls)
}

func TestNewCachedRendererRejectsBadSize(t *testing.T) {
	_, err := NewCachedRenderer(NewRenderer(Options{}), 0)
	assert.Error(t, err)
}

type memClipboard struct{ text string }

func (m *memClipboard) WriteAll(s string) error { m.text = s; return nil }

func TestViewRerendersOnlyOnChange(t *testing.T) {
	inner := &countingRenderer{next: NewRenderer(Options{})}
	v := NewView(inner)

	changed, err := v.SetMarkdown("```go\nx := 1\n```\n")
	require.NoError(t, err)
	assert.True(t, changed)
	first := v.HTML()

	changed, err = v.SetMarkdown("```go\nx := 1\n```\n")
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 1, inner.calls)

	changed, err = v.SetMarkdown("```go\ny := 2\n```\n")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.NotEqual(t, first, v.HTML())
	assert.Equal(t, []string{"y := 2"}, v.Payloads())
}

func TestViewEmptyMarkdownIsRendered(t *testing.T) {
	inner := &countingRenderer{next: NewRenderer(Options{})}
	v := NewView(inner)
	changed, err := v.SetMarkdown("")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 1, inner.calls)
}

func TestViewMountLifecycle(t *testing.T) {
	v := NewView(NewRenderer(Options{}))
	_, err := v.SetMarkdown("```\necho hi\n```\n")
	require.NoError(t, err)

	assert.ErrorIs(t, v.Copy(0), clipboard.ErrUnbound)

	clip := &memClipboard{}
	var notices []clipboard.Notice
	notify := clipboard.NotifierFunc(func(n clipboard.Notice) { notices = append(notices, n) })

	require.NoError(t, v.Mount(clip, notify))
	assert.True(t, v.Mounted())
	assert.ErrorIs(t, v.Mount(clip, notify), ErrMounted)

	require.NoError(t, v.Copy(0))
	assert.Equal(t, "echo hi", clip.text)
	require.Len(t, notices, 1)
	assert.Equal(t, clipboard.LevelSuccess, notices[0].Level)

	assert.Error(t, v.Copy(1))

	v.Unmount()
	v.Unmount()
	assert.False(t, v.Mounted())
	assert.ErrorIs(t, v.Copy(0), clipboard.ErrUnbound)

	// Remounting acquires a fresh binding.
	require.NoError(t, v.Mount(clip, notify))
	require.NoError(t, v.Copy(0))
	assert.Len(t, notices, 2)
}
