package markdown

import (
	"errors"
	"fmt"

	"github.com/ziadkadry99/docsview/internal/clipboard"
)

// ErrMounted is returned when mounting a view that is already mounted.
var ErrMounted = errors.New("view already mounted")

// View is a mounted markdown display. It re-renders only when its
// markdown changes and owns the clipboard binding for its copy buttons
// while mounted.
type View struct {
	r        DocumentRenderer
	markdown string
	doc      Document
	rendered bool
	binding  *clipboard.Binding
}

// NewView creates an unmounted view backed by r.
func NewView(r DocumentRenderer) *View {
	return &View{r: r}
}

// SetMarkdown updates the source. It reports whether the HTML was
// recomputed; unchanged input keeps the previous render.
func (v *View) SetMarkdown(markdown string) (bool, error) {
	if v.rendered && markdown == v.markdown {
		return false, nil
	}
	doc, err := v.r.RenderDocument(markdown)
	if err != nil {
		return false, err
	}
	v.markdown = markdown
	v.doc = doc
	v.rendered = true
	return true, nil
}

// HTML returns the current rendered HTML.
func (v *View) HTML() string { return v.doc.HTML }

// Payloads returns the copy payloads of the current render.
func (v *View) Payloads() []string { return v.doc.CopyPayloads }

// Mount acquires the clipboard binding. A view holds at most one binding.
func (v *View) Mount(w clipboard.Writer, n clipboard.Notifier, opts ...clipboard.BindOption) error {
	if v.binding != nil {
		return ErrMounted
	}
	v.binding = clipboard.Bind(w, n, opts...)
	return nil
}

// Unmount releases the clipboard binding.
func (v *View) Unmount() {
	if v.binding == nil {
		return
	}
	v.binding.Close()
	v.binding = nil
}

// Mounted reports whether the view holds a clipboard binding.
func (v *View) Mounted() bool { return v.binding != nil }

// Copy copies the payload of the given code block (zero-based).
func (v *View) Copy(block int) error {
	if v.binding == nil {
		return clipboard.ErrUnbound
	}
	if block < 0 || block >= len(v.doc.CopyPayloads) {
		return fmt.Errorf("no code block %d (document has %d)", block, len(v.doc.CopyPayloads))
	}
	return v.binding.Copy(v.doc.CopyPayloads[block])
}
