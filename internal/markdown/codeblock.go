package markdown

import (
	"log/slog"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// codeBlockRenderer renders fenced and indented code blocks through a
// Highlighter. A failed highlight degrades to escaped plain code.
type codeBlockRenderer struct {
	hl         Highlighter
	langPrefix string
	fallback   string
	logger     *slog.Logger
}

func (r *codeBlockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCodeBlock)
	reg.Register(ast.KindCodeBlock, r.renderCodeBlock)
}

func (r *codeBlockRenderer) renderFencedCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.FencedCodeBlock)
	r.writeBlock(w, string(n.Language(source)), blockText(n, source))
	return ast.WalkContinue, nil
}

func (r *codeBlockRenderer) renderCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	r.writeBlock(w, "", blockText(node, source))
	return ast.WalkContinue, nil
}

func (r *codeBlockRenderer) writeBlock(w util.BufWriter, lang, code string) {
	classLang := lang
	if classLang == "" {
		classLang = r.fallback
	}

	body, err := r.hl.Highlight(code, lang)
	if err != nil {
		r.logger.Warn("highlighting code block", "lang", lang, "err", err)
		body = string(util.EscapeHTML([]byte(code)))
	}

	_, _ = w.WriteString(`<pre><code class="`)
	_, _ = w.Write(util.EscapeHTML([]byte(r.langPrefix + classLang)))
	_, _ = w.WriteString(`">`)
	_, _ = w.WriteString(body)
	_, _ = w.WriteString("</code></pre>\n")
}

func blockText(n ast.Node, source []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		b.Write(line.Value(source))
	}
	return b.String()
}
