package markdown

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	wrapperClass = "code-block"
	wrapperHTML  = `<div class="relative group code-block"></div>`
	copyButton   = `<button type="button" class="absolute right-2 rounded top-2 btn btn-xs btn-outline hidden group-hover:block copy-btn btn-accent">Copy</button>`
	payloadAttr  = "data-clipboard-text"
)

// decorateCodeBlocks wraps every <pre><code> block in a container holding
// a copy button whose payload is the block's trimmed text. Blocks that are
// already wrapped keep their button. It returns the payloads in document
// order.
func decorateCodeBlocks(src string) (string, []string, error) {
	if !strings.Contains(src, "<pre") {
		return src, nil, nil
	}

	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(src), body)
	if err != nil {
		return "", nil, fmt.Errorf("parsing rendered html: %w", err)
	}
	root := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	doc := goquery.NewDocumentFromNode(root)

	var payloads []string
	doc.Find("pre > code").Each(func(_ int, code *goquery.Selection) {
		pre := code.Parent()
		if pre.Parent().HasClass(wrapperClass) {
			if existing, ok := pre.Prev().Attr(payloadAttr); ok {
				payloads = append(payloads, existing)
				return
			}
		}
		payload := strings.TrimSpace(code.Text())
		pre.WrapHtml(wrapperHTML)
		pre.BeforeHtml(copyButton)
		pre.Prev().SetAttr(payloadAttr, payload)
		payloads = append(payloads, payload)
	})

	out, err := doc.Selection.Html()
	if err != nil {
		return "", nil, fmt.Errorf("serializing html: %w", err)
	}
	return out, payloads, nil
}
