package tui

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ziadkadry99/docsview/internal/docindex"
	"github.com/ziadkadry99/docsview/internal/search"
)

const (
	defaultVisible = 8
	// chromeLines is the height taken by the title, input, help and frame.
	chromeLines = 9
)

// focusMsg is delivered when the overlay's deferred focus fires.
type focusMsg struct{}

// focusRelay forwards the overlay's focus call into the running program.
type focusRelay struct {
	send func(tea.Msg)
}

func (r *focusRelay) Focus() {
	if r.send != nil {
		r.send(focusMsg{})
	}
}

// listWindow is the visible slice of the result list. It implements
// search.Scroller with "nearest" semantics: it scrolls only as far as
// needed to reveal the entry.
type listWindow struct {
	height int
	offset int
}

func (w *listWindow) ScrollIntoView(i int) {
	if w.height <= 0 {
		return
	}
	if i < w.offset {
		w.offset = i
	} else if i >= w.offset+w.height {
		w.offset = i - w.height + 1
	}
}

// bounds returns the [start, end) range of n entries to draw.
func (w *listWindow) bounds(n int) (int, int) {
	start := w.offset
	if start > n-w.height {
		start = n - w.height
	}
	if start < 0 {
		start = 0
	}
	end := start + w.height
	if end > n {
		end = n
	}
	return start, end
}

// Options configures the terminal overlay.
type Options struct {
	Navigator  search.Navigator
	FocusDelay time.Duration
	// Visible is the number of entries shown before scrolling.
	Visible int
	Logger  *slog.Logger
	Styles  *Styles
}

// Model is the bubbletea model of the search overlay.
type Model struct {
	overlay *search.Overlay
	input   textinput.Model
	window  *listWindow
	relay   *focusRelay
	styles  Styles
}

// NewModel builds an overlay model over idx. The overlay opens in Init.
func NewModel(idx *docindex.Index, opts Options) Model {
	visible := opts.Visible
	if visible <= 0 {
		visible = defaultVisible
	}
	delay := opts.FocusDelay
	if delay <= 0 {
		delay = search.DefaultFocusDelay
	}
	styles := DefaultStyles()
	if opts.Styles != nil {
		styles = *opts.Styles
	}

	win := &listWindow{height: visible}
	relay := &focusRelay{}
	overlayOpts := []search.Option{
		search.WithScroller(win),
		search.WithFocuser(relay),
		search.WithFocusDelay(delay),
	}
	if opts.Logger != nil {
		overlayOpts = append(overlayOpts, search.WithLogger(opts.Logger))
	}

	ti := textinput.New()
	ti.Placeholder = "Search..."
	ti.Prompt = "› "

	return Model{
		overlay: search.NewOverlay(idx, opts.Navigator, overlayOpts...),
		input:   ti,
		window:  win,
		relay:   relay,
		styles:  styles,
	}
}

// Init mounts the overlay.
func (m Model) Init() tea.Cmd {
	m.overlay.Open(nil)
	return nil
}

// Update handles focus, resize and key messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case focusMsg:
		return m, m.input.Focus()

	case tea.WindowSizeMsg:
		rows := (msg.Height - chromeLines) / 2
		if rows < 1 {
			rows = 1
		}
		m.window.height = rows
		m.window.ScrollIntoView(m.overlay.State().Selected)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.overlay.Close()
			return m, tea.Quit
		}
		if key := search.ParseKey(msg.String()); key != search.KeyOther {
			m.overlay.HandleKey(key)
			if !m.overlay.IsOpen() {
				return m, tea.Quit
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.overlay.SetQuery(m.input.Value())
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the overlay.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("📄 Documentation"))
	b.WriteString("\n")
	b.WriteString(m.styles.Input.Render(m.input.View()))
	b.WriteString("\n")

	results := m.overlay.Results()
	if len(results) == 0 {
		b.WriteString(m.styles.Empty.Render("No matching documents"))
		b.WriteString("\n")
	}

	selected := m.overlay.State().Selected
	start, end := m.window.bounds(len(results))
	for i := start; i < end; i++ {
		doc := results[i]
		entry := doc.Name
		if crumbs := doc.Breadcrumb(); len(crumbs) > 0 {
			entry += "\n" + m.styles.Breadcrumb.Render(strings.Join(crumbs, " › "))
		}
		style := m.styles.Item
		if i == selected {
			style = m.styles.Selected
		}
		b.WriteString(style.Render(entry))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render("↑/↓ move • enter open • esc close"))
	return m.styles.Frame.Render(b.String())
}

// Run shows the overlay until it closes.
func Run(idx *docindex.Index, opts Options) error {
	m := NewModel(idx, opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	m.relay.send = p.Send
	_, err := p.Run()
	return err
}
