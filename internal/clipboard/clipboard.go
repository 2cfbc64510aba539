package clipboard

import (
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
)

var (
	// ErrCopy is wrapped by every failed copy.
	ErrCopy = errors.New("clipboard copy failed")
	// ErrUnbound is returned by Copy after the binding was closed.
	ErrUnbound = errors.New("clipboard binding closed")
)

// DefaultNoticeTTL is how long a copy notice stays visible.
const DefaultNoticeTTL = 2 * time.Second

const (
	copiedMessage = "Code copied to clipboard!"
	failedMessage = "Failed to copy"
)

// Writer places text on a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(text string) error

func (f WriterFunc) WriteAll(text string) error { return f(text) }

// System writes to the operating system clipboard.
var System Writer = WriterFunc(clipboard.WriteAll)

// Binding connects copy actions to a clipboard and a notifier for the
// lifetime of a mounted view. Release it with Close.
type Binding struct {
	w      Writer
	n      Notifier
	ttl    time.Duration
	closed bool
}

// BindOption configures a Binding.
type BindOption func(*Binding)

// WithNoticeTTL overrides DefaultNoticeTTL.
func WithNoticeTTL(d time.Duration) BindOption {
	return func(b *Binding) { b.ttl = d }
}

// Bind acquires a binding. A nil notifier discards notices.
func Bind(w Writer, n Notifier, opts ...BindOption) *Binding {
	if n == nil {
		n = NotifierFunc(func(Notice) {})
	}
	b := &Binding{w: w, n: n, ttl: DefaultNoticeTTL}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Copy writes payload to the clipboard and reports the outcome as a
// transient notice. Failures are not retried.
func (b *Binding) Copy(payload string) error {
	if b.closed {
		return ErrUnbound
	}
	if err := b.w.WriteAll(payload); err != nil {
		b.n.Notify(NewNotice(LevelError, failedMessage, b.ttl))
		return fmt.Errorf("%w: %v", ErrCopy, err)
	}
	b.n.Notify(NewNotice(LevelSuccess, copiedMessage, b.ttl))
	return nil
}

// Close releases the binding. It is safe to call more than once.
func (b *Binding) Close() {
	b.closed = true
}

// Closed reports whether Close has been called.
func (b *Binding) Closed() bool { return b.closed }
