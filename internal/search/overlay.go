package search

import (
	"io"
	"log/slog"
	"time"

	"github.com/ziadkadry99/docsview/internal/docindex"
)

// DefaultFocusDelay is how long Open waits before focusing the query
// field, so the overlay's own entrance does not steal focus back.
const DefaultFocusDelay = 100 * time.Millisecond

// Overlay is the search-and-navigate controller behind the modal search
// box. It is driven from a single event loop and is not safe for
// concurrent use.
type Overlay struct {
	docs     []docindex.Document
	nav      Navigator
	focuser  Focuser
	scroller Scroller
	delay    time.Duration
	logger   *slog.Logger

	state      State
	results    []docindex.Document
	open       bool
	onClose    func()
	focusTimer *time.Timer
}

// Option configures an Overlay.
type Option func(*Overlay)

// WithFocuser sets the target of the deferred focus call.
func WithFocuser(f Focuser) Option { return func(o *Overlay) { o.focuser = f } }

// WithScroller sets the scroll-into-view hook.
func WithScroller(s Scroller) Option { return func(o *Overlay) { o.scroller = s } }

// WithFocusDelay overrides DefaultFocusDelay.
func WithFocusDelay(d time.Duration) Option { return func(o *Overlay) { o.delay = d } }

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option { return func(o *Overlay) { o.logger = l } }

// NewOverlay creates a closed overlay over idx.
func NewOverlay(idx *docindex.Index, nav Navigator, opts ...Option) *Overlay {
	o := &Overlay{
		docs:   idx.Documents(),
		nav:    nav,
		delay:  DefaultFocusDelay,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(o)
	}
	o.results = o.docs
	return o
}

// Open mounts the overlay with an empty query and schedules the deferred
// focus call. onClose runs once when the overlay closes.
func (o *Overlay) Open(onClose func()) {
	o.stopFocusTimer()
	o.open = true
	o.onClose = onClose
	o.state = State{}
	o.results = o.docs

	if o.focuser != nil {
		o.focusTimer = time.AfterFunc(o.delay, o.focuser.Focus)
	}
	o.scroll()
}

// Close releases the focus timer and invokes onClose. Closing a closed
// overlay does nothing.
func (o *Overlay) Close() {
	if !o.open {
		return
	}
	o.open = false
	o.stopFocusTimer()
	if cb := o.onClose; cb != nil {
		o.onClose = nil
		cb()
	}
}

// IsOpen reports whether the overlay is mounted.
func (o *Overlay) IsOpen() bool { return o.open }

// State returns the current query and selection.
func (o *Overlay) State() State { return o.state }

// Results returns the filtered list for the current query.
func (o *Overlay) Results() []docindex.Document { return o.results }

// Selected returns the highlighted result, if any.
func (o *Overlay) Selected() (docindex.Document, bool) {
	if len(o.results) == 0 {
		return docindex.Document{}, false
	}
	return o.results[o.state.Selected], true
}

// SetQuery refilters the index and resets the selection to the first
// result. An empty result list is a valid state.
func (o *Overlay) SetQuery(q string) {
	if q == o.state.Query {
		return
	}
	o.state = State{Query: q}
	o.results = Filter(o.docs, q)
	o.logger.Debug("search query", "query", q, "results", len(o.results))
	o.scroll()
}

// HandleKey runs key through Reduce and performs the resulting action.
func (o *Overlay) HandleKey(key Key) {
	prev := o.state.Selected
	next, action := Reduce(o.state, len(o.results), key)
	o.state = next

	switch action {
	case ActionNavigate:
		o.Select(o.results[o.state.Selected])
	case ActionClose:
		o.Close()
	default:
		if next.Selected != prev {
			o.scroll()
		}
	}
}

// Select navigates to doc and closes the overlay.
func (o *Overlay) Select(doc docindex.Document) {
	o.logger.Debug("navigate", "id", doc.ID, "path", doc.Path)
	if o.nav != nil {
		o.nav.Navigate(doc.Path)
	}
	o.Close()
}

// scroll asks the scroller to reveal the selection. Nothing is rendered
// for an empty result list, so there is nothing to reveal.
func (o *Overlay) scroll() {
	if o.scroller == nil || len(o.results) == 0 {
		return
	}
	if o.state.Selected < 0 || o.state.Selected >= len(o.results) {
		return
	}
	o.scroller.ScrollIntoView(o.state.Selected)
}

func (o *Overlay) stopFocusTimer() {
	if o.focusTimer != nil {
		o.focusTimer.Stop()
		o.focusTimer = nil
	}
}
