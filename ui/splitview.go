package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"splitpane/log"
	"splitpane/split"
	"splitpane/ui/layout"
)

// TransitionDuration is how long a simulated size transition takes.
const TransitionDuration = 300 * time.Millisecond

// Pane is the content drawn in one area.
type Pane struct {
	Title string
	Body  string
}

type paneState struct {
	pane    Pane
	size    split.SizeExpr
	order   int
	visible bool
	locked  int
	// transition is the generation of the pending simulated transition.
	transition uint64
}

type listenerEntry struct {
	id    int
	event split.EventName
	fn    func(split.PointerEvent)
}

// scheduledMsg runs a callback the container asked to be scheduled.
type scheduledMsg struct {
	fn func()
}

// transitionMsg ends the simulated size transition of a pane.
type transitionMsg struct {
	handle split.Handle
	gen    uint64
}

// SplitView hosts a split container in a rectangle of the terminal. It
// measures in cells, draws panes and gutters with lipgloss and turns mouse
// messages into pointer events.
type SplitView struct {
	container *split.Container
	panes     map[split.Handle]*paneState
	handles   []split.Handle

	x, y          int
	width, height int
	sized         bool
	degradation   layout.Degradation

	listeners    []*listenerEntry
	nextListener int
	pending      []tea.Cmd
	transitions  uint64
	renders      int
}

// NewSplitView creates a view with an empty container.
func NewSplitView(opts split.Options, handlers split.Handlers) *SplitView {
	v := &SplitView{panes: make(map[split.Handle]*paneState)}
	v.container = split.New(v, opts, handlers)
	return v
}

// Container returns the container drawn by the view.
func (v *SplitView) Container() *split.Container {
	return v.container
}

// AddPane registers a pane and returns its handle.
func (v *SplitView) AddPane(p Pane, spec split.AreaSpec) split.Handle {
	h := v.container.AddArea(spec)
	if h == 0 {
		return 0
	}
	v.state(h).pane = p
	v.handles = append(v.handles, h)
	return h
}

// RemovePane unregisters a pane.
func (v *SplitView) RemovePane(h split.Handle) {
	v.container.RemoveArea(h)
	delete(v.panes, h)
	for i, other := range v.handles {
		if other == h {
			v.handles = append(v.handles[:i], v.handles[i+1:]...)
			break
		}
	}
}

// Handles returns the pane handles in registration order.
func (v *SplitView) Handles() []split.Handle {
	return append([]split.Handle(nil), v.handles...)
}

// Pane returns the content of a pane.
func (v *SplitView) Pane(h split.Handle) (Pane, bool) {
	st, ok := v.panes[h]
	if !ok {
		return Pane{}, false
	}
	return st.pane, true
}

// SetRect places the view. The first call lays the panes out from their
// size hints; later calls keep the current sizes.
func (v *SplitView) SetRect(x, y, width, height int) {
	changed := v.width != width || v.height != height
	v.x, v.y = x, y
	v.width, v.height = max(width, 0), max(height, 0)
	switch {
	case !v.sized:
		v.sized = true
		v.container.Rebuild(false, true)
		v.container.Ready()
	case changed:
		v.container.Rebuild(false, false)
	}
}

// SetDegradation sets which decorations panes drop.
func (v *SplitView) SetDegradation(d layout.Degradation) {
	v.degradation = d
}

// Size returns the width and height of the view.
func (v *SplitView) Size() (int, int) {
	return v.width, v.height
}

// Renders returns how often the container asked for a repaint.
func (v *SplitView) Renders() int {
	return v.renders
}

func (v *SplitView) state(h split.Handle) *paneState {
	st, ok := v.panes[h]
	if !ok {
		st = &paneState{}
		v.panes[h] = st
	}
	return st
}

// MeasureContainer implements split.Host.
func (v *SplitView) MeasureContainer(axis split.Axis) float64 {
	if axis == split.Vertical {
		return float64(v.height)
	}
	return float64(v.width)
}

// MeasureArea implements split.AreaMeasurer with the rounded cell count.
func (v *SplitView) MeasureArea(h split.Handle, axis split.Axis) float64 {
	return float64(v.Cells(h))
}

// ApplyAreaStyle implements split.Host. A changed size with transitions on
// starts a simulated transition.
func (v *SplitView) ApplyAreaStyle(h split.Handle, size split.SizeExpr, order int, transition bool) {
	st := v.state(h)
	changed := st.size != size
	st.size = size
	st.order = order
	if !transition || !changed {
		return
	}
	v.transitions++
	gen := v.transitions
	st.transition = gen
	v.pending = append(v.pending, tea.Tick(TransitionDuration, func(time.Time) tea.Msg {
		return transitionMsg{handle: h, gen: gen}
	}))
}

// ApplyVisibilityStyle implements split.Host.
func (v *SplitView) ApplyVisibilityStyle(h split.Handle, visible bool, axis split.Axis) {
	v.state(h).visible = visible
}

// LockSelection implements split.Host.
func (v *SplitView) LockSelection(h split.Handle) {
	v.state(h).locked++
}

// UnlockSelection implements split.Host.
func (v *SplitView) UnlockSelection(h split.Handle) {
	if st, ok := v.panes[h]; ok && st.locked > 0 {
		st.locked--
	}
}

// Listen implements split.Host. Every target maps to the whole terminal.
func (v *SplitView) Listen(target split.Target, event split.EventName, fn func(split.PointerEvent)) func() {
	v.nextListener++
	id := v.nextListener
	v.listeners = append(v.listeners, &listenerEntry{id: id, event: event, fn: fn})
	return func() {
		for i, l := range v.listeners {
			if l.id == id {
				v.listeners = append(v.listeners[:i], v.listeners[i+1:]...)
				return
			}
		}
	}
}

// Listeners returns the number of registered pointer listeners.
func (v *SplitView) Listeners() int {
	return len(v.listeners)
}

// RequestRender implements split.Host. Bubble Tea repaints after every
// message, so this only counts.
func (v *SplitView) RequestRender() {
	v.renders++
}

// Schedule implements split.Host on the Bubble Tea event loop.
func (v *SplitView) Schedule(d time.Duration, fn func()) {
	v.pending = append(v.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return scheduledMsg{fn: fn}
	}))
}

// Cmd returns the commands queued by the container since the last call.
func (v *SplitView) Cmd() tea.Cmd {
	if len(v.pending) == 0 {
		return nil
	}
	cmds := v.pending
	v.pending = nil
	return tea.Batch(cmds...)
}

// Update handles mouse input and the view's own messages.
func (v *SplitView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		v.handleMouse(msg)
	case scheduledMsg:
		msg.fn()
	case transitionMsg:
		if st, ok := v.panes[msg.handle]; ok && st.transition == msg.gen {
			st.transition = 0
			v.container.TransitionEnded()
		}
	}
	return v.Cmd()
}

func (v *SplitView) handleMouse(msg tea.MouseMsg) {
	ev := split.PointerEvent{Kind: split.PointerMouse, X: float64(msg.X), Y: float64(msg.Y)}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if g := v.GutterAt(msg.X, msg.Y); g > 0 {
			log.InputTrace("press on gutter %d at %d,%d", g, msg.X, msg.Y)
			v.container.StartDrag(g, ev)
		}
	case tea.MouseActionMotion:
		v.dispatch(split.EventMouseMove, ev)
	case tea.MouseActionRelease:
		v.dispatch(split.EventMouseUp, ev)
	}
}

func (v *SplitView) dispatch(event split.EventName, ev split.PointerEvent) {
	var targets []*listenerEntry
	for _, l := range v.listeners {
		if l.event == event {
			targets = append(targets, l)
		}
	}
	for _, l := range targets {
		l.fn(ev)
	}
}

// View renders the panes and gutters into exactly width x height cells.
func (v *SplitView) View() string {
	defer log.GetProfiler().StartRender("splitview")()
	if v.width <= 0 || v.height <= 0 {
		return ""
	}

	opts := v.container.Options()
	gutters := v.container.Gutters()
	active := v.container.ActiveGutter()
	vertical := opts.Axis == split.Vertical

	var parts []string
	for _, s := range v.Segments() {
		if s.Length <= 0 {
			continue
		}
		w, h := s.Length, v.height
		if vertical {
			w, h = v.width, s.Length
		}
		if s.IsGutter() {
			parts = append(parts, renderGutter(gutters[s.Gutter-1], w, h, s.Gutter == active))
			continue
		}
		parts = append(parts, v.renderPane(s.Handle, w, h))
	}

	var out string
	if vertical {
		out = lipgloss.JoinVertical(lipgloss.Left, parts...)
	} else {
		out = lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	log.RenderTrace("splitview", "%dx%d segments=%d", v.width, v.height, len(parts))
	return lipgloss.Place(v.width, v.height, lipgloss.Left, lipgloss.Top, out)
}

func (v *SplitView) paneStyle(st *paneState, w, h int) lipgloss.Style {
	style := PaneStyles.Plain
	if v.degradation.Bordered(w, h) {
		style = PaneStyles.Default
		if st.locked > 0 {
			style = PaneStyles.Locked
		}
	}
	return style
}

func (v *SplitView) renderPane(handle split.Handle, w, h int) string {
	st := v.state(handle)
	iw, ih := v.degradation.InnerSize(w, h)
	if iw == 0 || ih == 0 {
		return lipgloss.NewStyle().Width(w).Height(h).Render("")
	}
	lines := v.paneLines(st, iw, ih)
	return v.paneStyle(st, w, h).Width(iw).Height(ih).MaxWidth(w).MaxHeight(h).Render(strings.Join(lines, "\n"))
}

// paneLines is the pane content cut to iw x ih cells.
func (v *SplitView) paneLines(st *paneState, iw, ih int) []string {
	if iw <= 0 || ih <= 0 {
		return nil
	}
	title := v.paneTitle(st)
	lines := []string{TextStyles.Title.Render(fitText(title, iw))}
	if v.degradation.ShouldShowBody() && st.pane.Body != "" {
		for _, l := range strings.Split(st.pane.Body, "\n") {
			lines = append(lines, TextStyles.Secondary.Render(fitText(l, iw)))
		}
	}
	if len(lines) > ih {
		lines = lines[:ih]
	}
	return lines
}

func (v *SplitView) paneTitle(st *paneState) string {
	if !v.degradation.ShouldShowPercent() {
		return st.pane.Title
	}
	return fmt.Sprintf("%s %s", st.pane.Title, FormatPercent(st.size.Percent))
}

// fitText cuts s to width cells, marking the cut with an ellipsis.
func fitText(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return IconEllipsis
	}
	return truncate.StringWithTail(s, uint(width), IconEllipsis)
}

func renderGutter(g split.GutterStyle, w, h int, active bool) string {
	img := runewidth.Truncate(g.Image, w, "")
	return GutterStyle(g.Color, active).Width(w).Height(h).MaxWidth(w).MaxHeight(h).Render(img)
}

// FormatPercent renders a size percentage for display.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}
